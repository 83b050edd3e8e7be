package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/normalize"
)

// premiumSummaryRows are the line-of-business rows scanned for in the
// premium summary table
var premiumSummaryRows = []string{
	"Fire", "Goods in Transit", "Business All Risks", "Accidental damage",
	"Combined liability", "Motor specified", "Theft", "Money", "Glass",
}

var (
	subtotalPattern      = regexp.MustCompile(`Sub\s*Total\s+R?\s*([\d\s,.]+)`)
	sasriaTotalPattern   = regexp.MustCompile(`Sasria\s+R?\s*([\d\s,.]+)`)
	brokerFeePattern     = regexp.MustCompile(`Broker Fee\s+R?\s*([\d\s,.]+)`)
	grandTotalPattern    = regexp.MustCompile(`TOTAL\s+R?\s*([\d\s,.]+)`)
	commissionPattern    = regexp.MustCompile(`broker commission of R\s*([\d\s,.]+)`)
	motorRatePattern     = regexp.MustCompile(`motor classes is (\d+(?:\.\d+)?)\s*%`)
	nonMotorRatePattern  = regexp.MustCompile(`non-motor classes is (\d+(?:\.\d+)?)\s*%`)
)

// PremiumSummary extracts the premium summary table. The premium frequency
// defaults to the policy type discovered earlier, which is why the assembler
// runs policy details first.
func (e *Extractor) PremiumSummary(policyType *string) model.PremiumSummary {
	// PremiumFrequency is a non-null field; when the schedule never states
	// a policy type the record carries MONTHLY rather than an empty string.
	summary := model.PremiumSummary{
		Currency:         "ZAR",
		PremiumFrequency: "MONTHLY",
		SectionPremiums:  []model.SectionPremium{},
		VATInclusive:     true,
	}
	if policyType != nil && *policyType != "" {
		summary.PremiumFrequency = *policyType
	}

	section, ok := LocateSection(e.text, "PREMIUM SUMMARY", []string{"GENERAL ENDORSEMENTS", "FIRE SECTION"})
	if !ok {
		return summary
	}

	for _, row := range premiumSummaryRows {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(row) + `\s+(Yes|No)\s+R\s*([\d\s,.]+)`)
		if m := pattern.FindStringSubmatch(section); m != nil {
			summary.SectionPremiums = append(summary.SectionPremiums, model.SectionPremium{
				SectionName:   row,
				IsSelected:    strings.EqualFold(m[1], "yes"),
				PremiumAmount: normalize.Currency(m[2]),
			})
		}
	}

	if m := subtotalPattern.FindStringSubmatch(section); m != nil {
		summary.Subtotal = normalize.Currency(m[1])
	}
	if m := sasriaTotalPattern.FindStringSubmatch(section); m != nil {
		summary.SasriaTotal = normalize.Currency(m[1])
	}
	if m := brokerFeePattern.FindStringSubmatch(section); m != nil {
		summary.BrokerFee = normalize.Currency(m[1])
	}
	if m := grandTotalPattern.FindStringSubmatch(section); m != nil {
		summary.TotalPremium = normalize.Currency(m[1])
	}

	if m := commissionPattern.FindStringSubmatch(section); m != nil {
		summary.BrokerCommission.TotalAmount = normalize.Currency(m[1])
	}
	if m := motorRatePattern.FindStringSubmatch(section); m != nil {
		if rate, err := strconv.ParseFloat(m[1], 64); err == nil {
			summary.BrokerCommission.MotorRatePercent = &rate
		}
	}
	if m := nonMotorRatePattern.FindStringSubmatch(section); m != nil {
		if rate, err := strconv.ParseFloat(m[1], 64); err == nil {
			summary.BrokerCommission.NonMotorRatePercent = &rate
		}
	}

	return summary
}
