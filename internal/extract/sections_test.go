package extract

import (
	"strings"
	"testing"

	"github.com/jgreyling/polsched/internal/model"
)

const fireSectionText = `FIRE SECTION
Effective Date 01 March 2025
Physical Location 14 Mielie Street, Bethlehem, 9700 Total Section Premium R 1 943.22
Buildings as defined R 2 500 000.00 R 1 500.00
Main dwelling and outbuildings
Contents of dwelling 1 R 95.00 R 180 000.00
Subsidence and landslip Yes R 45.00
Malicious damage No R 120.00
`

func TestSection_Fire(t *testing.T) {
	e := New(fireSectionText+"GOODS IN TRANSIT SECTION\n", "test")

	section, ok := e.Section("FIRE SECTION", model.SectionFire)
	if !ok {
		t.Fatal("expected fire section to be found")
	}

	if section.SectionType != model.SectionFire {
		t.Errorf("section_type = %q", section.SectionType)
	}
	if section.SectionName != "Fire" {
		t.Errorf("section_name = %q", section.SectionName)
	}
	if section.EffectiveDate == nil || *section.EffectiveDate != "2025-03-01" {
		t.Errorf("effective_date = %v", section.EffectiveDate)
	}
	if section.RiskAddress == nil || *section.RiskAddress != "14 Mielie Street, Bethlehem, 9700" {
		t.Errorf("risk_address = %v", section.RiskAddress)
	}
	if section.TotalSectionPremium == nil || *section.TotalSectionPremium != 1943.22 {
		t.Errorf("total_section_premium = %v", section.TotalSectionPremium)
	}
}

func TestFireItems(t *testing.T) {
	items := fireItems(fireSectionText)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}

	buildings := items[0]
	if buildings.Category == nil || *buildings.Category != "Buildings as defined" {
		t.Errorf("category = %v", buildings.Category)
	}
	if buildings.Description != "Main dwelling and outbuildings" {
		t.Errorf("description = %q", buildings.Description)
	}
	if buildings.SumInsured == nil || *buildings.SumInsured != 2500000 {
		t.Errorf("sum_insured = %v", buildings.SumInsured)
	}
	if buildings.Premium == nil || *buildings.Premium != 1500 {
		t.Errorf("premium = %v", buildings.Premium)
	}
	if buildings.SumInsuredIsTextBase != nil {
		t.Error("numeric sum insured must leave the text-based flag null")
	}

	contents := items[1]
	if contents.Description != "Contents of dwelling" {
		t.Errorf("description = %q", contents.Description)
	}
	if contents.ColumnReference == nil || *contents.ColumnReference != "1" {
		t.Errorf("column_reference = %v", contents.ColumnReference)
	}
	if contents.Premium == nil || *contents.Premium != 95 {
		t.Errorf("premium = %v", contents.Premium)
	}
	if contents.SumInsured == nil || *contents.SumInsured != 180000 {
		t.Errorf("sum_insured = %v", contents.SumInsured)
	}
}

func TestTransitItems(t *testing.T) {
	text := "GOODS IN TRANSIT SECTION\nIncluding Livestock in transit\nR 150 000.00 R 350.00\n"

	items := transitItems(text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.Description != "Goods in Transit" {
		t.Errorf("description = %q", item.Description)
	}
	if item.SumInsured == nil || *item.SumInsured != 150000 {
		t.Errorf("sum_insured = %v", item.SumInsured)
	}
	if item.Premium == nil || *item.Premium != 350 {
		t.Errorf("premium = %v", item.Premium)
	}
	if item.AdditionalNotes == nil || *item.AdditionalNotes != "Including Livestock" {
		t.Errorf("additional_notes = %v", item.AdditionalNotes)
	}
}

func TestTransitItems_NoAmounts(t *testing.T) {
	if items := transitItems("GOODS IN TRANSIT SECTION\nno table here\n"); len(items) != 0 {
		t.Errorf("expected no items, got %+v", items)
	}
}

func TestAllRisksItems(t *testing.T) {
	text := "Description Sum Insured\nSerial number/IMEI number: GEN-001234\n45 KVA Generator Set R 185 000.00 R 210.50\nAgreed Value\n"

	items := allRisksItems(text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	item := items[0]
	if !strings.HasPrefix(item.Description, "45 KVA Generator Set") {
		t.Errorf("description = %q", item.Description)
	}
	if item.SumInsured == nil || *item.SumInsured != 185000 {
		t.Errorf("sum_insured = %v", item.SumInsured)
	}
	if item.Premium == nil || *item.Premium != 210.50 {
		t.Errorf("premium = %v", item.Premium)
	}
	if item.SerialNumber == nil || *item.SerialNumber != "GEN-001234" {
		t.Errorf("serial_number = %v", item.SerialNumber)
	}
	if item.SumInsuredText == nil || *item.SumInsuredText != "Agreed Value" {
		t.Errorf("sum_insured_text = %v", item.SumInsuredText)
	}
	if item.BasisOfValuation == nil || *item.BasisOfValuation != model.BasisAgreedValue {
		t.Errorf("basis_of_valuation = %v", item.BasisOfValuation)
	}
}

func TestAllRisksItems_DescriptionlessBlocksDropped(t *testing.T) {
	// A block mentioning KVA gear without a recognizable description line is
	// splitter noise and must not produce an item
	text := "Make: KVA equipment supplier\nR 100.00 R 10.00\n"

	if items := allRisksItems(text); len(items) != 0 {
		t.Errorf("expected no items, got %+v", items)
	}
}

func TestLiabilityItems(t *testing.T) {
	text := "COMBINED LIABILITY SECTION\nPublic Liability limit of indemnity\nany one occurrence R 5 000 000.00 R 420.00\n"

	items := liabilityItems(text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Description != "Public Liability" {
		t.Errorf("description = %q", items[0].Description)
	}
	if items[0].SumInsured == nil || *items[0].SumInsured != 5000000 {
		t.Errorf("sum_insured = %v", items[0].SumInsured)
	}
	if items[0].Premium == nil || *items[0].Premium != 420 {
		t.Errorf("premium = %v", items[0].Premium)
	}
}

func TestSection_LiabilityRetroactiveDate(t *testing.T) {
	doc := "COMBINED LIABILITY SECTION\nRetroactive Date 01/03/2020\nMOTOR SPECIFIED SECTION\n"
	e := New(doc, "test")

	section, ok := e.Section("COMBINED LIABILITY SECTION", model.SectionCombinedLiability)
	if !ok {
		t.Fatal("expected section")
	}
	if section.SectionSpecificData == nil {
		t.Fatal("expected section_specific_data")
	}
	date, _ := section.SectionSpecificData["retroactive_date"].(*string)
	if date == nil || *date != "2020-03-01" {
		t.Errorf("retroactive_date = %v", date)
	}
	if basis := section.SectionSpecificData["basis_of_cover"]; basis != "Claims Made" {
		t.Errorf("basis_of_cover = %v", basis)
	}
}

func TestAdditionalPerils(t *testing.T) {
	text := "Subsidence and landslip Yes R 45.00\nMalicious damage No R 120.00\nPremium No R 1.00\n"

	perils := additionalPerils(text)
	if len(perils) != 2 {
		t.Fatalf("expected 2 perils, got %d: %+v", len(perils), perils)
	}

	if perils[0].PerilName != "Subsidence and landslip" {
		t.Errorf("peril_name = %q", perils[0].PerilName)
	}
	if !perils[0].IsIncluded {
		t.Error("expected Yes row to be included")
	}
	if perils[0].LimitOfIndemnity == nil || *perils[0].LimitOfIndemnity != 45 {
		t.Errorf("limit = %v", perils[0].LimitOfIndemnity)
	}

	if perils[1].PerilName != "Malicious damage" {
		t.Errorf("peril_name = %q", perils[1].PerilName)
	}
	if perils[1].IsIncluded {
		t.Error("expected No row to be excluded")
	}
}

func TestAdditionalPerils_ShortNamesSkipped(t *testing.T) {
	if perils := additionalPerils("Hail Yes R 10.00\n"); len(perils) != 0 {
		t.Errorf("expected short names to be skipped, got %+v", perils)
	}
}

func TestSection_AbsentHeader(t *testing.T) {
	e := New("no sections in this document", "test")
	if _, ok := e.Section("FIRE SECTION", model.SectionFire); ok {
		t.Error("expected ok=false for absent header")
	}
}
