// Package validate checks extracted policy records for structural problems
// before they are handed downstream. Validation never mutates the record.
package validate

import (
	"fmt"
	"strings"

	"github.com/jgreyling/polsched/internal/model"
)

// Result holds the outcome of a structural validation pass.
// Errors make the record invalid; warnings flag fields worth a human look.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validator runs structural checks against a policy record
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate applies all structural checks and returns the aggregated result
func (v *Validator) Validate(record *model.PolicyRecord) Result {
	result := Result{
		Errors:   []string{},
		Warnings: []string{},
	}

	v.checkPolicyDetails(record, &result)
	v.checkPolicyholder(record, &result)
	v.checkSections(record, &result)
	v.checkMotorSection(record, &result)
	v.checkPremiumSummary(record, &result)

	result.Valid = len(result.Errors) == 0
	return result
}

func (v *Validator) checkPolicyDetails(record *model.PolicyRecord, result *Result) {
	if record.PolicyDetails.PolicyNumber == nil || *record.PolicyDetails.PolicyNumber == "" {
		result.Errors = append(result.Errors, "missing policy_details.policy_number")
	}
	if record.PolicyDetails.InsurerName == nil || *record.PolicyDetails.InsurerName == "" {
		result.Warnings = append(result.Warnings, "missing policy_details.insurer_name")
	}
}

func (v *Validator) checkPolicyholder(record *model.PolicyRecord, result *Result) {
	if record.Policyholder.Name == nil || *record.Policyholder.Name == "" {
		result.Errors = append(result.Errors, "missing policyholder.name")
	}
}

func (v *Validator) checkSections(record *model.PolicyRecord, result *Result) {
	for i, section := range record.Sections {
		path := fmt.Sprintf("sections[%d]", i)

		if section.SectionType == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("missing %s.section_type", path))
		}
		if section.SectionName == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("missing %s.section_name", path))
		}

		for j, item := range section.Items {
			itemPath := fmt.Sprintf("%s.items[%d]", path, j)

			if item.Description == "" && item.Category == nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("no description at %s", itemPath))
			}
			if item.SumInsured == nil && item.SumInsuredText == nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("no sum insured at %s", itemPath))
			}
		}
	}
}

func (v *Validator) checkMotorSection(record *model.PolicyRecord, result *Result) {
	if record.MotorSection == nil {
		return
	}
	for i, vehicle := range record.MotorSection.Vehicles {
		path := fmt.Sprintf("motor_section.vehicles[%d]", i)

		if vehicle.Description == nil || *vehicle.Description == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("no description at %s", path))
		}
		if msg := checkVIN(vehicle.VINNumber); msg != "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s at %s.vin_number", msg, path))
		}
	}
}

func (v *Validator) checkPremiumSummary(record *model.PolicyRecord, result *Result) {
	if record.PremiumSummary.TotalPremium == nil {
		result.Warnings = append(result.Warnings, "missing premium_summary.total_premium")
	}
}

// checkVIN reports why a VIN looks wrong, or "" when it is acceptable.
// "TBA" is a legitimate placeholder on new registrations and passes.
func checkVIN(vin *string) string {
	if vin == nil {
		return ""
	}
	value := strings.ToUpper(strings.TrimSpace(*vin))
	if value == "" || value == "TBA" {
		return ""
	}
	if len(value) != 17 {
		return fmt.Sprintf("invalid VIN length %d", len(value))
	}
	// VINs never contain I, O or Q
	for _, r := range value {
		valid := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !valid || r == 'I' || r == 'O' || r == 'Q' {
			return fmt.Sprintf("invalid VIN character %q", r)
		}
	}
	return ""
}
