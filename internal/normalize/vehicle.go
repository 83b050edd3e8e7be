package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// vehicleMakes is checked in order; longer names precede their abbreviations
// so "MERCEDES-BENZ" wins over "MERCEDES"
var vehicleMakes = []string{
	"MERCEDES-BENZ", "MERCEDES", "TOYOTA", "SCANIA", "VOLVO", "MAN",
	"ISUZU", "HINO", "UD", "NISSAN", "FORD", "VOLKSWAGEN", "VW",
	"BMW", "AUDI", "JCB", "JOHN DEERE", "CASE", "MASSEY FERGUSON",
	"NEW HOLLAND", "CATERPILLAR", "CAT", "KOMATSU", "LEMKEN",
}

var vehicleYearPattern = regexp.MustCompile(`^(\d{4})\s+`)

// VehicleDescription is the decomposition of a vehicle description line like
// "2021 MERCEDES-BENZ ACTROS 2645LS/33 PURE 6X4 A/T T/T C/C"
type VehicleDescription struct {
	Year            *int
	Make            *string
	Model           *string
	FullDescription string
}

// Vehicle parses a vehicle description into year, make and model. A missing
// leading year leaves Year nil and parsing continues from the start. Unknown
// manufacturers fall back to a first-whitespace split.
func Vehicle(description string) VehicleDescription {
	result := VehicleDescription{FullDescription: description}
	if description == "" {
		return result
	}

	rest := description
	if m := vehicleYearPattern.FindStringSubmatch(rest); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			result.Year = &year
		}
		rest = rest[len(m[0]):]
	}

	upper := strings.ToUpper(rest)
	for _, name := range vehicleMakes {
		if strings.HasPrefix(upper, name) {
			result.Make = &name
			modelPart := strings.TrimSpace(rest[len(name):])
			result.Model = &modelPart
			return result
		}
	}

	parts := strings.Fields(rest)
	if len(parts) >= 1 {
		result.Make = &parts[0]
	}
	if len(parts) >= 2 {
		modelPart := strings.Join(parts[1:], " ")
		result.Model = &modelPart
	}
	return result
}

// Registration canonicalizes a vehicle registration number. Placeholder
// tokens meaning "not yet assigned" return nil.
func Registration(reg string) *string {
	r := strings.ToUpper(strings.TrimSpace(reg))
	switch r {
	case "", "TBA", "N/A", "-":
		return nil
	}
	return &r
}
