package llm

import (
	"strings"
	"testing"

	"github.com/jgreyling/polsched/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	record := model.NewPolicyRecord("schedule.pdf")
	name := "Acme Boerdery CC"
	record.Policyholder.Name = &name
	total := 4663.22
	record.PremiumSummary.TotalPremium = &total
	record.PremiumSummary.PremiumFrequency = "MONTHLY"
	premium := 1943.22
	record.Sections = []model.Section{{
		SectionName:         "Fire",
		TotalSectionPremium: &premium,
		Items:               []model.Item{{Description: "Buildings"}},
	}}

	prompt := BuildPrompt(*record)

	for _, want := range []string{
		"Acme Boerdery CC",
		"R 4663.22 MONTHLY",
		"Fire: 1 items, premium R 1943.22",
		"MUST ONLY state amounts",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_MissingFields(t *testing.T) {
	prompt := BuildPrompt(*model.NewPolicyRecord("x"))
	if !strings.Contains(prompt, "(not found)") {
		t.Error("expected missing fields to be marked as not found")
	}
}

func TestRecordAmounts(t *testing.T) {
	record := model.NewPolicyRecord("x")
	total := 4663.22
	record.PremiumSummary.TotalPremium = &total
	sum := 2500000.0
	premium := 1500.0
	record.Sections = []model.Section{{
		Items: []model.Item{{SumInsured: &sum, Premium: &premium}},
	}}
	sasria := 25.0
	record.MotorSection = &model.MotorSection{Vehicles: []model.Vehicle{{SasriaPremium: &sasria}}}

	amounts := RecordAmounts(*record)

	for _, want := range []float64{4663.22, 2500000, 1500, 25} {
		if _, ok := amounts[want]; !ok {
			t.Errorf("amounts missing %v", want)
		}
	}
	if len(amounts) != 4 {
		t.Errorf("expected 4 amounts, got %v", amounts)
	}
}

func TestExtractAmounts(t *testing.T) {
	text := "Cover of R 2 500 000.00 at a premium of R1,943.22. R 2 500 000.00 again."

	amounts := ExtractAmounts(text)
	if len(amounts) != 2 {
		t.Fatalf("expected 2 deduplicated amounts, got %v", amounts)
	}
	if amounts[0] != 2500000 || amounts[1] != 1943.22 {
		t.Errorf("unexpected amounts %v", amounts)
	}
}

func TestVerifyFacts(t *testing.T) {
	record := premiumRecord(4663.22)

	if err := VerifyFacts("Total of R 4 663.22 per month.", record); err != nil {
		t.Errorf("expected known amount to pass, got %v", err)
	}
	if err := VerifyFacts("No figures at all here.", record); err != nil {
		t.Errorf("expected amount-free summary to pass, got %v", err)
	}
	if err := VerifyFacts("Total of R 5 000.00 per month.", record); err == nil {
		t.Error("expected fabricated amount to fail")
	}
}
