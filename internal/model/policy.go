package model

import "time"

// ExtractionVersion is stamped into every record's metadata
const ExtractionVersion = "1.0.0"

// PolicyRecord is the root of one extraction run.
// Fields that were not found in the source serialize as explicit null so the
// downstream validator can distinguish "not applicable" from "not extracted".
type PolicyRecord struct {
	Metadata            ExtractionMetadata            `json:"extraction_metadata"`
	PolicyDetails       PolicyDetails                 `json:"policy_details"`
	Policyholder        Policyholder                  `json:"policyholder"`
	Broker              *Broker                       `json:"broker"`
	PremiumSummary      PremiumSummary                `json:"premium_summary"`
	RiskAddresses       []RiskAddress                 `json:"risk_addresses"`
	Sections            []Section                     `json:"sections"`
	MotorSection        *MotorSection                 `json:"motor_section"`
	GeneralEndorsements []Endorsement                 `json:"general_endorsements"`
	GeneralExclusions   []string                      `json:"general_exclusions"`
	FirstAmountsPayable map[string][]FirstAmountEntry `json:"first_amounts_payable"`
	SpecialConditions   []string                      `json:"special_conditions"`
	Warranties          []string                      `json:"warranties"`
}

// NewPolicyRecord returns an empty record with all collections initialized,
// so absent sections render as [] / {} rather than disappearing from output.
func NewPolicyRecord(sourceDocument string) *PolicyRecord {
	return &PolicyRecord{
		Metadata: ExtractionMetadata{
			ExtractedAt:       time.Now().UTC().Format(time.RFC3339),
			SourceDocument:    sourceDocument,
			ExtractionVersion: ExtractionVersion,
		},
		RiskAddresses:       []RiskAddress{},
		Sections:            []Section{},
		GeneralEndorsements: []Endorsement{},
		GeneralExclusions:   []string{},
		FirstAmountsPayable: map[string][]FirstAmountEntry{},
		SpecialConditions:   []string{},
		Warranties:          []string{},
	}
}

// ExtractionMetadata describes the run that produced the record
type ExtractionMetadata struct {
	ExtractedAt       string   `json:"extracted_at"`
	SourceDocument    string   `json:"source_document"`
	ExtractionVersion string   `json:"extraction_version"`
	ConfidenceScore   *float64 `json:"confidence_score"`
}

// PolicyDetails holds the header fields of the schedule
type PolicyDetails struct {
	InsurerName              *string          `json:"insurer_name"`
	PolicyNumber             *string          `json:"policy_number"`
	PolicyType               *string          `json:"policy_type"`
	InceptionDate            *string          `json:"inception_date"`
	RenewalDate              *string          `json:"renewal_date"`
	TransactionEffectiveDate *string          `json:"transaction_effective_date"`
	TransactionReason        *string          `json:"transaction_reason"`
	EndorsementDescription   *string          `json:"endorsement_description"`
	TerritorialLimits        *string          `json:"territorial_limits"`
	PrintDate                *string          `json:"print_date"`
	PeriodOfInsurance        *InsurancePeriod `json:"period_of_insurance,omitempty"`
}

// InsurancePeriod is a from/to date range in ISO form
type InsurancePeriod struct {
	FromDate *string `json:"from_date"`
	ToDate   *string `json:"to_date"`
}

// Policyholder is the insured party
type Policyholder struct {
	Name                      *string        `json:"name"`
	BusinessDescription       *string        `json:"business_description"`
	VATNumber                 *string        `json:"vat_number"`
	CompanyRegistrationNumber *string        `json:"company_registration_number"`
	PhysicalAddress           *Address       `json:"physical_address,omitempty"`
	PostalAddress             *Address       `json:"postal_address,omitempty"`
	ContactDetails            ContactDetails `json:"contact_details"`
}

// ContactDetails holds phone/fax/email fields shared by parties on the schedule
type ContactDetails struct {
	WorkPhone *string `json:"work_phone"`
	HomePhone *string `json:"home_phone"`
	CellPhone *string `json:"cell_phone"`
	Fax       *string `json:"fax"`
	Email     *string `json:"email"`
}

// Broker is the intermediary; nil when the schedule carries no broker block
type Broker struct {
	CompanyName               *string `json:"company_name"`
	Branch                    *string `json:"branch"`
	BrokerName                *string `json:"broker_name"`
	CompanyRegistrationNumber *string `json:"company_registration_number"`
	VATNumber                 *string `json:"vat_number"`
	FSPNumber                 *string `json:"fsp_number"`
	ContactPhone              *string `json:"contact_phone"`
	Fax                       *string `json:"fax"`
	Email                     *string `json:"email"`
}

// PremiumSummary aggregates the schedule's premium table
type PremiumSummary struct {
	Currency         string           `json:"currency"`
	PremiumFrequency string           `json:"premium_frequency"`
	SectionPremiums  []SectionPremium `json:"section_premiums"`
	Subtotal         *float64         `json:"subtotal"`
	SasriaTotal      *float64         `json:"sasria_total"`
	BrokerFee        *float64         `json:"broker_fee"`
	TotalPremium     *float64         `json:"total_premium"`
	VATInclusive     bool             `json:"vat_inclusive"`
	BrokerCommission BrokerCommission `json:"broker_commission"`
}

// SectionPremium is one row of the premium summary table
type SectionPremium struct {
	SectionName   string   `json:"section_name"`
	IsSelected    bool     `json:"is_selected"`
	PremiumAmount *float64 `json:"premium_amount"`
}

// BrokerCommission holds the commission disclosure figures
type BrokerCommission struct {
	TotalAmount         *float64 `json:"total_amount,omitempty"`
	MotorRatePercent    *float64 `json:"motor_rate_percent,omitempty"`
	NonMotorRatePercent *float64 `json:"non_motor_rate_percent,omitempty"`
}

// Endorsement is a general policy endorsement block
type Endorsement struct {
	EndorsementName string  `json:"endorsement_name"`
	EndorsementText string  `json:"endorsement_text"`
	EffectiveDate   *string `json:"effective_date"`
}

// FirstAmountEntry is one excess/deductible row under a peril category
type FirstAmountEntry struct {
	Description       string   `json:"description"`
	PercentageOfClaim *float64 `json:"percentage_of_claim"`
	MinimumAmount     *float64 `json:"minimum_amount"`
	MaximumAmount     *float64 `json:"maximum_amount"`
}
