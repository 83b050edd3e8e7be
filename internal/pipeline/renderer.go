package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jgreyling/polsched/internal/model"
)

// Renderer writes extraction output. JSON is the machine artifact; the
// summary is a quick human sanity check and goes to whatever writer the
// caller hands in.
type Renderer struct {
	pretty bool
}

// NewRenderer creates a new renderer
func NewRenderer(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// RenderJSON writes the record to path. "" or "-" writes to stdout.
func (r *Renderer) RenderJSON(record *model.PolicyRecord, path string) error {
	var data []byte
	var err error
	if r.pretty {
		data, err = json.MarshalIndent(record, "", "  ")
	} else {
		data, err = json.Marshal(record)
	}
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteSummary writes a human-readable digest of one extraction result
func (r *Renderer) WriteSummary(w io.Writer, result *Result) {
	record := result.Record

	fmt.Fprintf(w, "\n=== EXTRACTION SUMMARY ===\n")
	fmt.Fprintf(w, "\nSource: %s\n", result.SourcePath)
	fmt.Fprintf(w, "Policy Number: %s\n", orNA(record.PolicyDetails.PolicyNumber))
	fmt.Fprintf(w, "Insurer: %s\n", orNA(record.PolicyDetails.InsurerName))
	fmt.Fprintf(w, "Policy Type: %s\n", orNA(record.PolicyDetails.PolicyType))
	fmt.Fprintf(w, "Policyholder: %s\n", orNA(record.Policyholder.Name))

	fmt.Fprintf(w, "\nSections Extracted: %d\n", len(record.Sections))
	for _, section := range record.Sections {
		fmt.Fprintf(w, "  - %s: %d items, Premium: %s\n",
			section.SectionName, len(section.Items), orAmount(section.TotalSectionPremium))
	}

	if record.MotorSection != nil {
		fmt.Fprintf(w, "\nMotor Vehicles: %d\n", len(record.MotorSection.Vehicles))
	}
	if record.PremiumSummary.TotalPremium != nil {
		fmt.Fprintf(w, "\nTotal Premium: %s %s\n",
			orAmount(record.PremiumSummary.TotalPremium), record.PremiumSummary.PremiumFrequency)
	}
	if len(record.RiskAddresses) > 0 {
		fmt.Fprintf(w, "\nRisk Addresses: %d\n", len(record.RiskAddresses))
		for _, addr := range record.RiskAddresses {
			fmt.Fprintf(w, "  - %s: %s\n", addr.AddressID, addr.FullAddress)
		}
	}

	if len(result.Validation.Errors) > 0 {
		fmt.Fprintf(w, "\nValidation Errors: %d\n", len(result.Validation.Errors))
		for _, e := range result.Validation.Errors {
			fmt.Fprintf(w, "  ✗ %s\n", e)
		}
	}
	if len(result.Validation.Warnings) > 0 {
		fmt.Fprintf(w, "\nValidation Warnings: %d\n", len(result.Validation.Warnings))
		for _, warn := range result.Validation.Warnings {
			fmt.Fprintf(w, "  ! %s\n", warn)
		}
	}

	fmt.Fprintf(w, "\n==============================\n")
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func orAmount(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return fmt.Sprintf("R %.2f", *f)
}
