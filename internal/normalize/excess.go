package normalize

import (
	"regexp"
	"strconv"
)

var (
	excessPercentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	excessMinPattern     = regexp.MustCompile(`(?i)(?:minimum|min)\s*R?\s*([\d,\s]+(?:\.\d{2})?)`)
	excessMaxPattern     = regexp.MustCompile(`(?i)(?:maximum|max)\s*R?\s*([\d,\s]+(?:\.\d{2})?)`)
	excessFixedPattern   = regexp.MustCompile(`R\s*([\d,\s]+(?:\.\d{2})?)`)
)

// ExcessSpec is a parsed excess/deductible specification such as
// "10% minimum R2,500" or a plain "R5,000" fixed amount.
type ExcessSpec struct {
	PercentageOfClaim *float64
	MinimumAmount     *float64
	MaximumAmount     *float64
	FixedAmount       *float64
	Description       string
}

// Excess parses an excess specification. A rand amount with no percentage is
// treated as a fixed excess.
func Excess(text string) ExcessSpec {
	result := ExcessSpec{Description: text}
	if text == "" {
		return result
	}

	if m := excessPercentPattern.FindStringSubmatch(text); m != nil {
		if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
			result.PercentageOfClaim = &pct
		}
	}
	if m := excessMinPattern.FindStringSubmatch(text); m != nil {
		result.MinimumAmount = Currency(m[1])
	}
	if m := excessMaxPattern.FindStringSubmatch(text); m != nil {
		result.MaximumAmount = Currency(m[1])
	}
	if result.PercentageOfClaim == nil {
		if m := excessFixedPattern.FindStringSubmatch(text); m != nil {
			result.FixedAmount = Currency(m[1])
		}
	}
	return result
}
