package normalize

import (
	"strings"
	"time"
)

// dateLayouts are tried in order; the first layout that consumes the whole
// input wins. Day-first numeric layouts come before anything ambiguous
// because the source schedules use the day/month/year convention.
var dateLayouts = []string{
	"2/1/2006",      // 01/03/2025
	"2-1-2006",      // 01-03-2025
	"2006/1/2",      // 2025/03/01
	"2006-1-2",      // 2025-03-01
	"2 January 2006", // 01 March 2025
	"2 Jan 2006",     // 01 Mar 2025
	"January 2, 2006", // March 01, 2025
	"Jan 2, 2006",     // Mar 01, 2025
}

var datePlaceholders = map[string]struct{}{
	"":    {},
	"-":   {},
	"tba": {},
	"n/a": {},
}

// Date parses the date formats found on schedules into canonical YYYY-MM-DD.
// Calendar validity is enforced: "31/02/2025" matches no layout and returns
// nil. Placeholders and unrecognized input also return nil, never a default.
func Date(value string) *string {
	v := strings.TrimSpace(value)
	if _, ok := datePlaceholders[strings.ToLower(v)]; ok {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}
