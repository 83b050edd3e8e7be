package normalize

import "testing"

func TestCurrency_Formats(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"R 1 943.22", 1943.22},
		{"R1,943.22", 1943.22},
		{"1943.22", 1943.22},
		{"R500000", 500000},
		{"R 1,250,000", 1250000},
		{"(500.00)", -500.00},
		{"(R 500.00)", -500.00},
		{"  R 12.50  ", 12.50},
	}

	for _, tt := range tests {
		got := Currency(tt.input)
		if got == nil {
			t.Errorf("Currency(%q) = nil, want %v", tt.input, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("Currency(%q) = %v, want %v", tt.input, *got, tt.want)
		}
	}
}

func TestCurrency_Placeholders(t *testing.T) {
	placeholders := []string{"-", "R-", "R -", "", "N/A", "n/a", "TBA", "tba"}

	for _, input := range placeholders {
		if got := Currency(input); got != nil {
			t.Errorf("Currency(%q) = %v, want nil", input, *got)
		}
	}
}

func TestCurrency_Garbage(t *testing.T) {
	garbage := []string{"abc", "R abc", "1.2.3", "Buildings as defined"}

	for _, input := range garbage {
		if got := Currency(input); got != nil {
			t.Errorf("Currency(%q) = %v, want nil", input, *got)
		}
	}
}
