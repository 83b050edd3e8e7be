package llm

import (
	"regexp"

	"github.com/jgreyling/polsched/internal/normalize"
)

// amountPattern matches rand amounts the way schedules print them:
// "R 1 234.56", "R1,234.56", "R 500"
var amountPattern = regexp.MustCompile(`R\s*[\d][\d\s,]*(?:\.\d{1,2})?`)

// ExtractAmounts pulls all rand amounts out of free text, deduplicated
func ExtractAmounts(text string) []float64 {
	seen := map[float64]struct{}{}
	var amounts []float64

	for _, match := range amountPattern.FindAllString(text, -1) {
		value := normalize.Currency(match)
		if value == nil {
			continue
		}
		if _, dup := seen[*value]; dup {
			continue
		}
		seen[*value] = struct{}{}
		amounts = append(amounts, *value)
	}

	return amounts
}
