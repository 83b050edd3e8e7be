package extract

import (
	"fmt"

	"github.com/jgreyling/polsched/internal/model"
)

// Extractor turns one schedule's flattened text into a PolicyRecord. It is
// stateless apart from the input text; runs on identical input produce
// identical records (up to the extraction timestamp).
type Extractor struct {
	text       string
	sourceName string
}

// New creates an extractor over in-memory schedule text. sourceName is kept
// as metadata only and never influences parsing.
func New(text, sourceName string) *Extractor {
	return &Extractor{text: text, sourceName: sourceName}
}

// ExtractAll runs every section extractor in dependency order and folds the
// results into a single record. Policyholder and policy details run before
// the premium summary because the summary's frequency defaults to the policy
// type discovered there.
func (e *Extractor) ExtractAll() *model.PolicyRecord {
	record := model.NewPolicyRecord(e.sourceName)

	record.Policyholder = e.Policyholder()
	record.PolicyDetails = e.PolicyDetails()
	record.Broker = e.Broker()
	record.PremiumSummary = e.PremiumSummary(record.PolicyDetails.PolicyType)

	for _, marker := range sectionMarkers {
		section, ok := e.Section(marker.Header, marker.Type)
		if !ok {
			continue
		}
		mergeSection(record, section)
		if section.RiskAddress != nil {
			addRiskAddress(record, *section.RiskAddress, section.SectionType)
		}
	}

	// Vehicles are parsed once and mirrored into the motor section's items
	if vehicles := e.MotorVehicles(); len(vehicles) > 0 {
		record.MotorSection = &model.MotorSection{Vehicles: vehicles}
		for i := range record.Sections {
			if record.Sections[i].SectionType != model.SectionMotorSpecified {
				continue
			}
			items := make([]model.Item, 0, len(vehicles))
			for _, v := range vehicles {
				items = append(items, v.VehicleItem())
			}
			record.Sections[i].Items = items
		}
	}

	record.GeneralEndorsements = e.GeneralEndorsements()
	record.FirstAmountsPayable = e.FirstAmountsPayable()

	return record
}

// mergeSection appends a section to the record, or merges its items into an
// existing section of the same type. Templates that print a line of business
// twice (a detail block followed by a summary block) collapse to one section.
func mergeSection(record *model.PolicyRecord, section model.Section) {
	for i := range record.Sections {
		if record.Sections[i].SectionType == section.SectionType {
			record.Sections[i].Items = append(record.Sections[i].Items, section.Items...)
			return
		}
	}
	record.Sections = append(record.Sections, section)
}

// addRiskAddress deduplicates risk addresses by exact string equality. A
// repeated address accumulates section types; a new one gets the next
// addr_<n> identifier, stable within a run.
func addRiskAddress(record *model.PolicyRecord, address string, sectionType model.SectionType) {
	for i := range record.RiskAddresses {
		if record.RiskAddresses[i].FullAddress != address {
			continue
		}
		for _, existing := range record.RiskAddresses[i].ApplicableSections {
			if existing == sectionType {
				return
			}
		}
		record.RiskAddresses[i].ApplicableSections = append(record.RiskAddresses[i].ApplicableSections, sectionType)
		return
	}

	record.RiskAddresses = append(record.RiskAddresses, model.RiskAddress{
		AddressID:          fmt.Sprintf("addr_%d", len(record.RiskAddresses)+1),
		FullAddress:        address,
		ApplicableSections: []model.SectionType{sectionType},
	})
}
