package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/normalize"
)

// maxEndorsementTextLen caps the verbatim wording carried per endorsement
const maxEndorsementTextLen = 500

// minEndorsementBlockLen filters the fragments left over from block splitting
const minEndorsementBlockLen = 50

var (
	endorsementBlockStart = regexp.MustCompile(`ENDORSEMENT FORMING PART|GENERAL EXCEPTION|GENERAL EXCLUSION`)
	endorsementNamePattern = regexp.MustCompile(`^([A-Z][A-Z\s\-]+)(?:\n|:)`)
	endorsementDatePattern = regexp.MustCompile(`(?i)(?:EFFECT|effective)\s+(?:FROM\s+)?(\d{2}\s+\w+\s+\d{4}|\d{2}/\d{2}/\d{4})`)
)

// GeneralEndorsements extracts the policy-level endorsement blocks
func (e *Extractor) GeneralEndorsements() []model.Endorsement {
	endorsements := []model.Endorsement{}

	section, ok := LocateSection(e.text, "GENERAL ENDORSEMENTS", []string{"FIRE SECTION", "PREMIUM SUMMARY"})
	if !ok {
		return endorsements
	}

	for _, block := range splitBefore(section, endorsementBlockStart) {
		if len(block) <= minEndorsementBlockLen {
			continue
		}
		m := endorsementNamePattern.FindStringSubmatchIndex(block)
		if m == nil {
			continue
		}

		endo := model.Endorsement{
			EndorsementName: strings.TrimSpace(block[m[2]:m[3]]),
			EndorsementText: truncateRunes(normalize.CleanText(block[m[1]:]), maxEndorsementTextLen),
		}
		if d := endorsementDatePattern.FindStringSubmatch(block); d != nil {
			endo.EffectiveDate = normalize.Date(d[1])
		}
		endorsements = append(endorsements, endo)
	}

	return endorsements
}

// fapCategoryPattern recognizes the peril category headers that group
// first-amount-payable rows
var (
	fapCategoryPattern = regexp.MustCompile(`(?i)^(Fire|Motor|Theft|Glass|Money|Goods|Business|Combined|Electronic)`)
	fapEntryPattern    = regexp.MustCompile(`(.+?)\s+(\d+)%\s+R\s*([\d\s,.]+)\s+(.+)?`)
)

// FirstAmountsPayable extracts the excess schedule keyed by peril category
func (e *Extractor) FirstAmountsPayable() map[string][]model.FirstAmountEntry {
	fap := map[string][]model.FirstAmountEntry{}

	section, ok := LocateSection(e.text, "SCHEDULE OF STANDARD FIRST AMOUNTS", []string{"DISCLOSURE NOTICE", "Sasria SOC"})
	if !ok {
		return fap
	}

	var category string
	var entries []model.FirstAmountEntry

	flush := func() {
		if category != "" && len(entries) > 0 {
			fap[category] = entries
		}
	}

	for _, line := range strings.Split(section, "\n") {
		if m := fapCategoryPattern.FindStringSubmatch(line); m != nil {
			flush()
			category = m[1]
			entries = nil
			continue
		}
		if category == "" {
			continue
		}
		m := fapEntryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		entry := model.FirstAmountEntry{
			Description:   strings.TrimSpace(m[1]),
			MinimumAmount: normalize.Currency(m[3]),
		}
		if pct, err := strconv.ParseFloat(m[2], 64); err == nil {
			entry.PercentageOfClaim = &pct
		}
		// The trailing text sometimes carries a cap ("maximum R 50 000.00")
		if m[4] != "" {
			entry.MaximumAmount = normalize.Excess(m[4]).MaximumAmount
		}
		entries = append(entries, entry)
	}
	flush()

	return fap
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
