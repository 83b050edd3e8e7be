package normalize

import (
	"regexp"
	"strings"

	"github.com/jgreyling/polsched/internal/model"
)

// textBasedSumInsured is the fixed vocabulary of valuation phrases that mark
// a sum insured as text-based rather than a plain amount
var textBasedSumInsured = []string{
	"agreed value",
	"retail value",
	"market value",
	"replacement value",
	"trade value",
	"book value",
	"invoice value",
	"new replacement",
	"as per valuation",
	"as valued",
	"to be advised",
	"tba",
	"n/a",
}

var currencyMarkedAmount = regexp.MustCompile(`R\s*([\d\s,.]+)`)

// SumInsuredResult classifies a sum insured value along two independent axes:
// the text-based valuation label and the embedded numeric amount. Both may be
// set at once ("Agreed Value R500,000"); both absent is also valid.
type SumInsuredResult struct {
	Value       *float64
	Text        *string
	IsTextBased bool
	Basis       *model.ValuationBasis
}

// SumInsured parses a sum insured value that may be numeric, text-based, or a
// combination of the two.
func SumInsured(value string) SumInsuredResult {
	var result SumInsuredResult

	clean := strings.TrimSpace(value)
	if clean == "" {
		return result
	}
	lower := strings.ToLower(clean)

	for _, phrase := range textBasedSumInsured {
		if strings.Contains(lower, phrase) {
			result.IsTextBased = true
			result.Text = &clean
			result.Basis = inferBasis(lower)
			break
		}
	}

	// A currency-marked number is extracted even when the value is text-based
	if m := currencyMarkedAmount.FindStringSubmatch(clean); m != nil {
		result.Value = Currency(m[1])
	} else if !result.IsTextBased {
		// No R symbol but might still be plain numeric
		result.Value = Currency(clean)
	}

	return result
}

// inferBasis maps a valuation phrase onto the basis enum. Trade and book
// value are both treated as market value.
func inferBasis(lower string) *model.ValuationBasis {
	var basis model.ValuationBasis
	switch {
	case strings.Contains(lower, "agreed"):
		basis = model.BasisAgreedValue
	case strings.Contains(lower, "retail"):
		basis = model.BasisRetailValue
	case strings.Contains(lower, "market"):
		basis = model.BasisMarketValue
	case strings.Contains(lower, "replacement"):
		basis = model.BasisReplacementValue
	case strings.Contains(lower, "trade"):
		basis = model.BasisMarketValue
	case strings.Contains(lower, "book"):
		basis = model.BasisMarketValue
	default:
		return nil
	}
	return &basis
}
