package model

// SectionType identifies a line of business on the schedule
type SectionType string

const (
	SectionFire              SectionType = "FIRE"
	SectionGoodsInTransit    SectionType = "GOODS_IN_TRANSIT"
	SectionBusinessAllRisks  SectionType = "BUSINESS_ALL_RISKS"
	SectionAccidentalDamage  SectionType = "ACCIDENTAL_DAMAGE"
	SectionCombinedLiability SectionType = "COMBINED_LIABILITY"
	SectionMotorSpecified    SectionType = "MOTOR_SPECIFIED"
)

// ValuationBasis is how an insured item's value is determined when the sum
// insured is expressed as text rather than a fixed amount
type ValuationBasis string

const (
	BasisAgreedValue      ValuationBasis = "AGREED_VALUE"
	BasisRetailValue      ValuationBasis = "RETAIL_VALUE"
	BasisMarketValue      ValuationBasis = "MARKET_VALUE"
	BasisReplacementValue ValuationBasis = "REPLACEMENT_VALUE"
)

// Section is one extracted line-of-business block.
// At most one Section of a given type survives assembly; duplicates found in
// the source are merged by appending their items.
type Section struct {
	SectionType         SectionType       `json:"section_type"`
	SectionName         string            `json:"section_name"`
	EffectiveDate       *string           `json:"effective_date"`
	RiskAddress         *string           `json:"risk_address"`
	TotalSectionPremium *float64          `json:"total_section_premium"`
	Items               []Item            `json:"items"`
	AdditionalPerils    []AdditionalPeril `json:"additional_perils"`
	SectionEndorsements []string          `json:"section_endorsements"`
	SectionSpecificData map[string]any    `json:"section_specific_data,omitempty"`
}

// Item is a single insured entry within a section.
// A numeric sum insured and a text valuation label may coexist ("Agreed Value
// R500,000"); absence of both is valid.
type Item struct {
	Category             *string         `json:"category,omitempty"`
	Description          string          `json:"description"`
	ColumnReference      *string         `json:"column_reference,omitempty"`
	SumInsured           *float64        `json:"sum_insured"`
	SumInsuredText       *string         `json:"sum_insured_text"`
	SumInsuredIsTextBase *bool           `json:"sum_insured_is_text_based"`
	BasisOfValuation     *ValuationBasis `json:"basis_of_valuation"`
	Premium              *float64        `json:"premium"`
	SerialNumber         *string         `json:"serial_number,omitempty"`
	AdditionalNotes      *string         `json:"additional_notes,omitempty"`
}

// AdditionalPeril is one row of a Yes/No extensions table
type AdditionalPeril struct {
	PerilName        string   `json:"peril_name"`
	IsIncluded       bool     `json:"is_included"`
	LimitOfIndemnity *float64 `json:"limit_of_indemnity"`
}

// RiskAddress is a deduplicated physical location covered by one or more
// sections. Ids are addr_1, addr_2, ... in discovery order, stable per run.
type RiskAddress struct {
	AddressID          string        `json:"address_id"`
	FullAddress        string        `json:"full_address"`
	ApplicableSections []SectionType `json:"applicable_sections"`
}

// MotorSection carries the specified vehicles; nil when no motor cover exists
type MotorSection struct {
	Vehicles []Vehicle `json:"vehicles"`
}

// Vehicle is one specified motor item
type Vehicle struct {
	Description          *string         `json:"description"`
	Year                 *int            `json:"year"`
	Make                 *string         `json:"make"`
	Model                *string         `json:"model"`
	RegistrationNumber   *string         `json:"registration_number"`
	VINNumber            *string         `json:"vin_number"`
	EngineNumber         *string         `json:"engine_number"`
	DescriptionOfUse     *string         `json:"description_of_use"`
	TypeOfCover          *string         `json:"type_of_cover"`
	SumInsured           *float64        `json:"sum_insured"`
	SumInsuredText       *string         `json:"sum_insured_text"`
	SumInsuredIsTextBase *bool           `json:"sum_insured_is_text_based"`
	BasisOfValuation     *ValuationBasis `json:"basis_of_valuation"`
	Premium              *float64        `json:"premium"`
	SasriaPremium        *float64        `json:"sasria_premium"`
	Extras               []VehicleExtra  `json:"extras"`
	AdditionalPerils     []AdditionalPeril `json:"additional_perils"`
}

// VehicleExtra is a fitted accessory listed under a vehicle's notes
type VehicleExtra struct {
	Description string   `json:"description"`
	Value       *float64 `json:"value"`
}

// VehicleItem converts a vehicle into the generic item shape used when the
// motor section mirrors its vehicles into Section.Items
func (v Vehicle) VehicleItem() Item {
	item := Item{
		SumInsured:           v.SumInsured,
		SumInsuredText:       v.SumInsuredText,
		SumInsuredIsTextBase: v.SumInsuredIsTextBase,
		BasisOfValuation:     v.BasisOfValuation,
		Premium:              v.Premium,
	}
	if v.Description != nil {
		item.Description = *v.Description
	}
	return item
}
