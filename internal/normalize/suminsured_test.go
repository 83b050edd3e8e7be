package normalize

import (
	"testing"

	"github.com/jgreyling/polsched/internal/model"
)

func TestSumInsured_NumericOnly(t *testing.T) {
	result := SumInsured("R 150,000")

	if result.Value == nil || *result.Value != 150000 {
		t.Errorf("expected value 150000, got %v", result.Value)
	}
	if result.IsTextBased {
		t.Error("plain amount should not be text-based")
	}
	if result.Basis != nil {
		t.Errorf("expected nil basis, got %v", *result.Basis)
	}
}

func TestSumInsured_TextOnly(t *testing.T) {
	tests := []struct {
		input string
		basis model.ValuationBasis
	}{
		{"Agreed Value", model.BasisAgreedValue},
		{"Retail Value", model.BasisRetailValue},
		{"Market Value", model.BasisMarketValue},
		{"Replacement Value", model.BasisReplacementValue},
		{"Trade Value", model.BasisMarketValue},
		{"Book Value", model.BasisMarketValue},
	}

	for _, tt := range tests {
		result := SumInsured(tt.input)
		if !result.IsTextBased {
			t.Errorf("SumInsured(%q): expected text-based", tt.input)
			continue
		}
		if result.Value != nil {
			t.Errorf("SumInsured(%q): expected nil value, got %v", tt.input, *result.Value)
		}
		if result.Basis == nil || *result.Basis != tt.basis {
			t.Errorf("SumInsured(%q): expected basis %s, got %v", tt.input, tt.basis, result.Basis)
		}
		if result.Text == nil || *result.Text != tt.input {
			t.Errorf("SumInsured(%q): expected text retained", tt.input)
		}
	}
}

func TestSumInsured_Combined(t *testing.T) {
	result := SumInsured("Agreed Value R 1,250,000")

	if !result.IsTextBased {
		t.Error("expected text-based")
	}
	if result.Value == nil || *result.Value != 1250000 {
		t.Errorf("expected value 1250000, got %v", result.Value)
	}
	if result.Basis == nil || *result.Basis != model.BasisAgreedValue {
		t.Errorf("expected AGREED_VALUE, got %v", result.Basis)
	}
}

func TestSumInsured_TBA(t *testing.T) {
	result := SumInsured("TBA")

	if !result.IsTextBased {
		t.Error("TBA is in the text vocabulary, expected text-based")
	}
	if result.Value != nil {
		t.Errorf("expected nil value, got %v", *result.Value)
	}
	if result.Basis != nil {
		t.Errorf("TBA carries no valuation basis, got %v", *result.Basis)
	}
}

func TestSumInsured_Empty(t *testing.T) {
	result := SumInsured("")

	if result.IsTextBased || result.Value != nil || result.Text != nil || result.Basis != nil {
		t.Errorf("expected zero result for empty input, got %+v", result)
	}
}
