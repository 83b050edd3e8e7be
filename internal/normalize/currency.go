// Package normalize converts raw schedule substrings into canonical typed
// values. Every normalizer is a total function: garbage in, typed absence out.
package normalize

import (
	"strconv"
	"strings"
	"unicode"
)

// currencyPlaceholders are the sentinel tokens insurers print when an amount
// has not been supplied. They parse to nil, never to zero.
var currencyPlaceholders = map[string]struct{}{
	"":    {},
	"-":   {},
	"r-":  {},
	"r -": {},
	"n/a": {},
	"tba": {},
}

// Currency parses a currency string to an amount.
//
// Handles "R 1 943.22", "R1,943.22", "1943.22" and parenthesized negatives
// like "(500.00)". Placeholder tokens and anything unparseable return nil.
func Currency(value string) *float64 {
	v := strings.TrimSpace(value)
	if _, ok := currencyPlaceholders[strings.ToLower(v)]; ok {
		return nil
	}

	negative := strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")")
	if negative {
		v = v[1 : len(v)-1]
	}

	// Strip currency symbols, interior whitespace, thousands separators and
	// stray percent signs
	v = strings.Map(func(r rune) rune {
		switch r {
		case 'R', '$', '€', '£', '¥', ',', '%':
			return -1
		}
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, v)

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	if negative {
		f = -f
	}
	return &f
}
