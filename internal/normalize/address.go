package normalize

import (
	"regexp"
	"strings"

	"github.com/jgreyling/polsched/internal/model"
)

// saProvinces are matched case-insensitively as substrings of address lines
var saProvinces = []string{
	"gauteng", "western cape", "eastern cape", "northern cape",
	"free state", "kwazulu-natal", "kzn", "mpumalanga", "limpopo",
	"north west", "nw",
}

var postalCodePattern = regexp.MustCompile(`\b(\d{4})\b`)

const defaultCountry = "South Africa"

// Address parses a multi-line address block into components.
//
// A 4-digit postal code is pulled from the first line that carries one, a
// province line is recognized by substring match, and the remaining non-empty
// lines fill line1/line2/city/line3 positionally. FullAddress keeps the
// original lines verbatim, comma-joined.
func Address(text string) model.Address {
	addr := model.Address{Country: defaultCountry}

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return addr
	}

	full := strings.Join(lines, ", ")
	addr.FullAddress = &full

	for i, line := range lines {
		if m := postalCodePattern.FindStringSubmatch(line); m != nil {
			code := m[1]
			addr.PostalCode = &code
			lines[i] = strings.TrimSpace(postalCodePattern.ReplaceAllString(line, ""))
			break
		}
	}

	for i, line := range lines {
		lower := strings.ToLower(line)
		matched := false
		for _, province := range saProvinces {
			if strings.Contains(lower, province) {
				value := line
				addr.ProvinceState = &value
				lines[i] = ""
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}

	var remaining []string
	for _, line := range lines {
		if line != "" {
			remaining = append(remaining, line)
		}
	}

	if len(remaining) >= 1 {
		addr.Line1 = &remaining[0]
	}
	if len(remaining) >= 2 {
		addr.Line2 = &remaining[1]
	}
	if len(remaining) >= 3 {
		addr.City = &remaining[2]
	}
	if len(remaining) >= 4 {
		addr.Line3 = &remaining[3]
	}

	return addr
}
