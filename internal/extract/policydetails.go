package extract

import (
	"regexp"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/normalize"
)

var insurancePeriodPattern = regexp.MustCompile(`(?i)Period of insurance\s*(?:From\s*)?(\d{2}/\d{2}/\d{4})\s*to\s*(\d{2}/\d{2}/\d{4})`)

// PolicyDetails extracts the policy header section
func (e *Extractor) PolicyDetails() model.PolicyDetails {
	var details model.PolicyDetails

	section, ok := LocateSection(e.text, "POLICY DETAILS", []string{"BROKER DETAILS", "PREMIUM"})
	if !ok {
		return details
	}

	details.InsurerName = optString(FieldValue(section, "Insurer"))
	details.PolicyNumber = optString(FieldValue(section, "Policy number"))
	details.PolicyType = optString(FieldValue(section, "Type of policy"))
	details.InceptionDate = normalize.Date(FieldValue(section, "Inception date"))
	details.RenewalDate = normalize.Date(FieldValue(section, "Renewal date"))
	details.TransactionEffectiveDate = normalize.Date(FieldValue(section, "Transaction effective date"))
	details.TransactionReason = optString(FieldValue(section, "Transaction reason"))
	details.EndorsementDescription = optString(FieldValue(section, "Endorsement Description"))
	details.TerritorialLimits = optString(FieldValue(section, "Territorial Limits"))
	details.PrintDate = normalize.Date(FieldValue(section, "Print date"))

	if m := insurancePeriodPattern.FindStringSubmatch(section); m != nil {
		details.PeriodOfInsurance = &model.InsurancePeriod{
			FromDate: normalize.Date(m[1]),
			ToDate:   normalize.Date(m[2]),
		}
	}

	return details
}

// Broker extracts the broker details section; nil when the schedule has none
func (e *Extractor) Broker() *model.Broker {
	section, ok := LocateSection(e.text, "BROKER DETAILS", []string{"INSURER DETAILS", "PREMIUM"})
	if !ok {
		return nil
	}

	fsp := FieldValue(section, "Licence Number")
	if fsp == "" {
		fsp = FieldValue(section, "FSB/FSP number")
	}

	return &model.Broker{
		CompanyName:               optString(FieldValue(section, "Company")),
		Branch:                    optString(FieldValue(section, "Branch")),
		BrokerName:                optString(FieldValue(section, "Broker")),
		CompanyRegistrationNumber: optString(FieldValue(section, "Company registration number")),
		VATNumber:                 optString(FieldValue(section, "VAT number")),
		FSPNumber:                 optString(fsp),
		ContactPhone:              optString(FieldValue(section, "Business")),
		Fax:                       optString(FieldValue(section, "Fax")),
		Email:                     optString(FieldValue(section, "Email")),
	}
}
