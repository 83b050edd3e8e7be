package normalize

import "testing"

func TestExcess_PercentWithMinimum(t *testing.T) {
	e := Excess("10% minimum R2,500")

	if e.PercentageOfClaim == nil || *e.PercentageOfClaim != 10 {
		t.Errorf("expected 10%%, got %v", e.PercentageOfClaim)
	}
	if e.MinimumAmount == nil || *e.MinimumAmount != 2500 {
		t.Errorf("expected minimum 2500, got %v", e.MinimumAmount)
	}
	if e.FixedAmount != nil {
		t.Errorf("expected no fixed amount, got %v", *e.FixedAmount)
	}
}

func TestExcess_FixedAmount(t *testing.T) {
	e := Excess("R5,000")

	if e.PercentageOfClaim != nil {
		t.Errorf("expected no percentage, got %v", *e.PercentageOfClaim)
	}
	if e.FixedAmount == nil || *e.FixedAmount != 5000 {
		t.Errorf("expected fixed 5000, got %v", e.FixedAmount)
	}
}

func TestExcess_PercentOnly(t *testing.T) {
	e := Excess("5% of claim")

	if e.PercentageOfClaim == nil || *e.PercentageOfClaim != 5 {
		t.Errorf("expected 5%%, got %v", e.PercentageOfClaim)
	}
	if e.MinimumAmount != nil || e.MaximumAmount != nil || e.FixedAmount != nil {
		t.Errorf("expected only percentage, got %+v", e)
	}
}

func TestExcess_Empty(t *testing.T) {
	e := Excess("")

	if e.PercentageOfClaim != nil || e.MinimumAmount != nil || e.FixedAmount != nil {
		t.Errorf("expected empty result, got %+v", e)
	}
}

func TestBoolean(t *testing.T) {
	trueInputs := []string{"Yes", "y", "TRUE", "1", "✓", "x"}
	for _, input := range trueInputs {
		got := Boolean(input)
		if got == nil || !*got {
			t.Errorf("Boolean(%q) should be true", input)
		}
	}

	falseInputs := []string{"No", "n", "false", "0", ""}
	for _, input := range falseInputs {
		got := Boolean(input)
		if got == nil || *got {
			t.Errorf("Boolean(%q) should be false", input)
		}
	}

	if got := Boolean("maybe"); got != nil {
		t.Errorf("Boolean(maybe) = %v, want nil", *got)
	}
}
