package extract

import (
	"regexp"
	"strings"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/normalize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// sectionMarkers maps each line-of-business header to its section type.
// Both the detail and the summary forms of the motor header map to the same
// type; the assembler merges the resulting duplicate sections.
var sectionMarkers = []struct {
	Header string
	Type   model.SectionType
}{
	{"FIRE SECTION", model.SectionFire},
	{"GOODS IN TRANSIT SECTION", model.SectionGoodsInTransit},
	{"BUSINESS ALL RISKS SECTION", model.SectionBusinessAllRisks},
	{"ACCIDENTAL DAMAGE SECTION", model.SectionAccidentalDamage},
	{"COMBINED LIABILITY SECTION", model.SectionCombinedLiability},
	{"MOTOR SPECIFIED SECTION", model.SectionMotorSpecified},
	{"MOTOR SPECIFIED SUMMARY", model.SectionMotorSpecified},
}

// sectionEndMarkers are every known "next section" header; the locator
// minimizes over them because template section order varies
var sectionEndMarkers = []string{
	"FIRE SECTION", "GOODS IN TRANSIT", "BUSINESS ALL RISKS",
	"ACCIDENTAL DAMAGE", "COMBINED LIABILITY", "MOTOR SPECIFIED",
	"GENERAL ENDORSEMENTS", "SCHEDULE OF STANDARD",
}

var (
	effectiveDatePattern  = regexp.MustCompile(`Effective Date\s+(\d{1,2}\s+\w+\s+\d{4}|\d{2}/\d{2}/\d{4})`)
	physicalLocationBlock = regexp.MustCompile(`(?s)Physical Location\s+(.+?)(?:Total|Construction|Details|\z)`)
	sectionPremiumPattern = regexp.MustCompile(`Total Section Premium\s+R\s*([\d\s,.]+)`)
	retroactiveDatePattern = regexp.MustCompile(`Retroactive Date\s+(\d{2}/\d{2}/\d{4})`)
)

var englishTitle = cases.Title(language.English)

// Section extracts one line-of-business section by header. ok is false when
// the header does not occur in the document.
func (e *Extractor) Section(header string, sectionType model.SectionType) (model.Section, bool) {
	text, ok := LocateSection(e.text, header, sectionEndMarkers)
	if !ok {
		return model.Section{}, false
	}

	section := model.Section{
		SectionType:         sectionType,
		SectionName:         englishTitle.String(strings.ToLower(strings.ReplaceAll(header, " SECTION", ""))),
		Items:               []model.Item{},
		AdditionalPerils:    []model.AdditionalPeril{},
		SectionEndorsements: []string{},
	}

	if m := effectiveDatePattern.FindStringSubmatch(text); m != nil {
		section.EffectiveDate = normalize.Date(m[1])
	}

	if m := physicalLocationBlock.FindStringSubmatch(text); m != nil {
		if addr := normalize.CleanText(m[1]); addr != "" {
			section.RiskAddress = &addr
		}
	}

	if m := sectionPremiumPattern.FindStringSubmatch(text); m != nil {
		section.TotalSectionPremium = normalize.Currency(m[1])
	}

	switch sectionType {
	case model.SectionFire:
		section.Items = fireItems(text)
	case model.SectionGoodsInTransit:
		section.Items = transitItems(text)
	case model.SectionBusinessAllRisks:
		section.Items = allRisksItems(text)
	case model.SectionCombinedLiability:
		section.Items = liabilityItems(text)
		if m := retroactiveDatePattern.FindStringSubmatch(text); m != nil {
			section.SectionSpecificData = map[string]any{
				"retroactive_date": normalize.Date(m[1]),
				"basis_of_cover":   "Claims Made",
			}
		}
	}

	section.AdditionalPerils = additionalPerils(text)

	return section, true
}

var (
	fireItemPattern = regexp.MustCompile(`(?i)(Buildings as defined|Stock as defined|Miscellaneous Items as defined)\s+(?:R\s*)?([\d\s,.]+)\s+(?:R\s*)?([\d\s,.]+)\s*\n([^\n]+)`)
	fireRowPattern  = regexp.MustCompile(`([A-Z][^R\n]+?)\s+(\d)\s+R\s*([\d\s,.]+)\s+R\s*([\d\s,.]+)`)
)

// fireItems scans the fire section for insured item rows. Two patterns run:
// the named-category form and the simpler column-referenced table row.
func fireItems(text string) []model.Item {
	items := []model.Item{}

	for _, m := range fireItemPattern.FindAllStringSubmatch(text, -1) {
		category := m[1]
		item := model.Item{
			Category:    &category,
			Description: strings.TrimSpace(m[4]),
			Premium:     normalize.Currency(m[3]),
		}
		applySumInsured(&item, normalize.SumInsured(m[2]))
		items = append(items, item)
	}

	for _, m := range fireRowPattern.FindAllStringSubmatch(text, -1) {
		desc := strings.TrimSpace(m[1])
		if len(desc) <= 5 || hasItemDescription(items, desc) {
			continue
		}
		ref := m[2]
		item := model.Item{
			Description:     desc,
			ColumnReference: &ref,
			Premium:         normalize.Currency(m[3]),
		}
		applySumInsured(&item, normalize.SumInsured(m[4]))
		items = append(items, item)
	}

	return items
}

var transitAmountsPattern = regexp.MustCompile(`R\s*([\d\s,.]+)\s+R\s*([\d\s,.]+)\s*(\n|Sasria)`)

func transitItems(text string) []model.Item {
	items := []model.Item{}

	if m := transitAmountsPattern.FindStringSubmatch(text); m != nil {
		item := model.Item{
			Description: "Goods in Transit",
			Premium:     normalize.Currency(m[2]),
		}
		applySumInsured(&item, normalize.SumInsured(m[1]))

		if strings.Contains(strings.ToLower(text), "livestock") {
			note := "Including Livestock"
			item.AdditionalNotes = &note
		}

		items = append(items, item)
	}

	return items
}

var (
	allRisksBlockStart    = regexp.MustCompile(`Description\s+Sum Insured|Make:|Model:|Serial number`)
	allRisksDescPattern   = regexp.MustCompile(`(\d+\s*KVA[^\n]+|VSD[^\n]+)`)
	allRisksAmountPattern = regexp.MustCompile(`R\s*([\d\s,.]+)`)
	serialNumberPattern   = regexp.MustCompile(`Serial number/IMEI number:\s*([^\n]+)`)
)

// valuationLabels are checked verbatim inside all-risks and vehicle blocks
// where the basis appears on its own line rather than a labelled field
var valuationLabels = []string{"Agreed Value", "Retail Value", "Market Value", "Replacement Value"}

func allRisksItems(text string) []model.Item {
	items := []model.Item{}

	for _, block := range splitBefore(text, allRisksBlockStart) {
		if !strings.Contains(block, "R") {
			continue
		}
		if !strings.Contains(block, "KVA") && !strings.Contains(block, "Generator") && !strings.Contains(block, "VSD") {
			continue
		}

		var item model.Item

		if m := allRisksDescPattern.FindStringSubmatch(block); m != nil {
			item.Description = strings.TrimSpace(m[1])
		}

		amounts := allRisksAmountPattern.FindAllStringSubmatch(block, -1)
		if len(amounts) >= 2 {
			applySumInsured(&item, normalize.SumInsured("R "+amounts[0][1]))
			item.Premium = normalize.Currency(amounts[1][1])
		}

		// A valuation label elsewhere in the block overrides the numeric axis
		if item.SumInsuredIsTextBase == nil {
			applyValuationLabel(&item, block)
		}

		if m := serialNumberPattern.FindStringSubmatch(block); m != nil {
			serial := strings.TrimSpace(m[1])
			item.SerialNumber = &serial
		}

		// Partial matches on free text produce descriptionless noise; drop it
		if item.Description != "" {
			items = append(items, item)
		}
	}

	return items
}

var publicLiabilityPattern = regexp.MustCompile(`Public Liability[^\n]*\n[^\n]*R\s*([\d\s,.]+)\s+R\s*([\d\s,.]+)`)

func liabilityItems(text string) []model.Item {
	items := []model.Item{}

	if m := publicLiabilityPattern.FindStringSubmatch(text); m != nil {
		item := model.Item{
			Description: "Public Liability",
			Premium:     normalize.Currency(m[2]),
		}
		applySumInsured(&item, normalize.SumInsured(m[1]))
		items = append(items, item)
	}

	return items
}

var perilRowPattern = regexp.MustCompile(`([A-Za-z\s\-()]+)\s+(Yes|No)\s*(?:R\s*([\d\s,.]+))?`)

// perilTableHeaders is the fixed header vocabulary filtered out of the
// Yes/No perils scan so column headings are not mistaken for perils
var perilTableHeaders = map[string]struct{}{
	"Description":        {},
	"Limit of Indemnity": {},
	"Premium":            {},
}

// additionalPerils scans a Yes/No extensions table for covered perils
func additionalPerils(text string) []model.AdditionalPeril {
	perils := []model.AdditionalPeril{}

	for _, m := range perilRowPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if len(name) <= 5 {
			continue
		}
		if _, header := perilTableHeaders[name]; header {
			continue
		}

		peril := model.AdditionalPeril{PerilName: name}
		if b := normalize.Boolean(m[2]); b != nil {
			peril.IsIncluded = *b
		}
		if m[3] != "" {
			peril.LimitOfIndemnity = normalize.Currency(m[3])
		}
		perils = append(perils, peril)
	}

	return perils
}

// applySumInsured copies a sum insured classification onto an item. The
// text-based flag serializes as null rather than false when unset, matching
// the record contract.
func applySumInsured(item *model.Item, sum normalize.SumInsuredResult) {
	item.SumInsured = sum.Value
	item.SumInsuredText = sum.Text
	if sum.IsTextBased {
		t := true
		item.SumInsuredIsTextBase = &t
	}
	item.BasisOfValuation = sum.Basis
}

// applyValuationLabel sets the text axis from a bare valuation label found
// anywhere in the block
func applyValuationLabel(item *model.Item, block string) {
	lower := strings.ToLower(block)
	for _, label := range valuationLabels {
		if !strings.Contains(lower, strings.ToLower(label)) {
			continue
		}
		t := true
		item.SumInsuredIsTextBase = &t
		value := label
		item.SumInsuredText = &value
		item.BasisOfValuation = normalize.SumInsured(label).Basis
		return
	}
}

func hasItemDescription(items []model.Item, desc string) bool {
	for _, item := range items {
		if item.Description == desc {
			return true
		}
	}
	return false
}
