package extract

import (
	"regexp"
	"strings"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/normalize"
)

// minVehicleBlockLen discards the short scraps of text that appear between
// vehicle records when the schedule is split on recurring markers
const minVehicleBlockLen = 50

var (
	vehicleBlockStart     = regexp.MustCompile(`Registration\s*\n|Details of Vehicle`)
	registrationPattern   = regexp.MustCompile(`([A-Z]{2,3}\d{3,4}[A-Z]{2}|TBA)`)
	vinPattern            = regexp.MustCompile(`(?i)VIN Number\s*([A-Z0-9]{17})`)
	enginePattern         = regexp.MustCompile(`(?i)Engine Number\s*([A-Z0-9]+)`)
	vehicleDescPattern    = regexp.MustCompile(`(?i)(\d{4}\s+[A-Z][A-Z\-\s\d/]+(?:T/T|P/U|S/C|C/C|TRACTOR|BACKHOE|TRAILER|TIPPER)[^\n]*)`)
	vehicleSumPattern     = regexp.MustCompile(`(?i)(?:Sum\s*Insured|Value)\s*[:\n]\s*([^\n]+)`)
	vehiclePremiumPattern = regexp.MustCompile(`Premium\s*\n[^\n]*R\s*([\d\s,.]+)`)
	vehicleSasriaPattern  = regexp.MustCompile(`Sasria\s+R\s*([\d\s,.]+)`)
	additionalNotesBlock  = regexp.MustCompile(`(?s)Additional Notes\s*\n(.+?)(?:Registration|Details of|\z)`)
	vehicleExtraPattern   = regexp.MustCompile(`([A-Za-z\s&]+)\s+R\s*([\d\s,.]+)`)
)

// MotorVehicles extracts the specified vehicles from the motor section.
// Vehicles are parsed once, independently of the generic section loop; the
// assembler mirrors them into the motor section's items afterwards.
func (e *Extractor) MotorVehicles() []model.Vehicle {
	motorText, ok := LocateSection(e.text, "MOTOR SPECIFIED SECTION", []string{"AGRICULTURE POLICY WORDING", "SCHEDULE OF STANDARD"})
	if !ok {
		return nil
	}

	var vehicles []model.Vehicle
	for _, block := range splitBefore(motorText, vehicleBlockStart) {
		if len(block) < minVehicleBlockLen {
			continue
		}
		if v := parseVehicleBlock(block); v.Description != nil {
			vehicles = append(vehicles, v)
		}
	}
	return vehicles
}

// parseVehicleBlock parses a single vehicle record
func parseVehicleBlock(block string) model.Vehicle {
	vehicle := model.Vehicle{
		Extras:           []model.VehicleExtra{},
		AdditionalPerils: []model.AdditionalPeril{},
	}

	if m := registrationPattern.FindStringSubmatch(block); m != nil {
		vehicle.RegistrationNumber = normalize.Registration(m[1])
	}
	if m := vinPattern.FindStringSubmatch(block); m != nil {
		vin := m[1]
		vehicle.VINNumber = &vin
	}
	if m := enginePattern.FindStringSubmatch(block); m != nil {
		engine := m[1]
		vehicle.EngineNumber = &engine
	}

	if m := vehicleDescPattern.FindStringSubmatch(block); m != nil {
		desc := strings.TrimSpace(m[1])
		vehicle.Description = &desc

		parsed := normalize.Vehicle(desc)
		vehicle.Year = parsed.Year
		vehicle.Make = parsed.Make
		vehicle.Model = parsed.Model
	}

	switch {
	case strings.Contains(block, "Comprehensive"):
		cover := "COMPREHENSIVE"
		vehicle.TypeOfCover = &cover
	case strings.Contains(block, "Third Party, Fire and Theft"):
		cover := "THIRD_PARTY_FIRE_THEFT"
		vehicle.TypeOfCover = &cover
	case strings.Contains(block, "Third Party"):
		cover := "THIRD_PARTY_ONLY"
		vehicle.TypeOfCover = &cover
	}

	switch {
	case strings.Contains(block, "Private/Business"):
		use := "PRIVATE/BUSINESS"
		vehicle.DescriptionOfUse = &use
	case strings.Contains(block, "Agricultural only"):
		use := "AGRICULTURAL"
		vehicle.DescriptionOfUse = &use
	}

	// Sum insured may be numeric, text-based ("Agreed Value") or both
	if m := vehicleSumPattern.FindStringSubmatch(block); m != nil {
		sum := normalize.SumInsured(m[1])
		vehicle.SumInsured = sum.Value
		vehicle.SumInsuredText = sum.Text
		if sum.IsTextBased {
			t := true
			vehicle.SumInsuredIsTextBase = &t
		}
		if sum.Basis != nil {
			vehicle.BasisOfValuation = sum.Basis
		}
	}

	// A bare valuation label elsewhere in the block still counts
	if vehicle.SumInsuredIsTextBase == nil {
		lower := strings.ToLower(block)
		for _, label := range valuationLabels {
			if !strings.Contains(lower, strings.ToLower(label)) {
				continue
			}
			t := true
			vehicle.SumInsuredIsTextBase = &t
			value := label
			vehicle.SumInsuredText = &value
			vehicle.BasisOfValuation = normalize.SumInsured(label).Basis
			break
		}
	}

	if m := vehiclePremiumPattern.FindStringSubmatch(block); m != nil {
		vehicle.Premium = normalize.Currency(m[1])
	}
	if m := vehicleSasriaPattern.FindStringSubmatch(block); m != nil {
		vehicle.SasriaPremium = normalize.Currency(m[1])
	}

	if m := additionalNotesBlock.FindStringSubmatch(block); m != nil {
		for _, extra := range vehicleExtraPattern.FindAllStringSubmatch(m[1], -1) {
			vehicle.Extras = append(vehicle.Extras, model.VehicleExtra{
				Description: strings.TrimSpace(extra[1]),
				Value:       normalize.Currency(extra[2]),
			})
		}
	}

	return vehicle
}
