package extract

import (
	"regexp"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/normalize"
)

var (
	physicalAddressBlock = regexp.MustCompile(`(?is)Physical address\s*(.+?)(?:Postal address|Contact details|\z)`)
	postalAddressBlock   = regexp.MustCompile(`(?is)Postal address\s*(.+?)(?:Contact details|Work|\z)`)
)

// Policyholder extracts the policyholder details section
func (e *Extractor) Policyholder() model.Policyholder {
	var holder model.Policyholder

	section, ok := LocateSection(e.text, "POLICYHOLDER DETAILS", []string{"POLICY DETAILS", "BROKER DETAILS"})
	if !ok {
		return holder
	}

	holder.Name = optString(FieldValue(section, "Policyholder"))
	holder.BusinessDescription = optString(FieldValue(section, "Business description"))
	holder.VATNumber = optString(FieldValue(section, "Vat number"))
	holder.CompanyRegistrationNumber = optString(FieldValue(section, "Company registration number"))

	if m := physicalAddressBlock.FindStringSubmatch(section); m != nil {
		addr := normalize.Address(m[1])
		holder.PhysicalAddress = &addr
	}
	if m := postalAddressBlock.FindStringSubmatch(section); m != nil {
		addr := normalize.Address(m[1])
		holder.PostalAddress = &addr
	}

	holder.ContactDetails = model.ContactDetails{
		WorkPhone: optString(FieldValue(section, "Work")),
		HomePhone: optString(FieldValue(section, "Home")),
		CellPhone: optString(FieldValue(section, "Cell")),
		Fax:       optString(FieldValue(section, "Fax")),
		Email:     optString(FieldValue(section, "Email")),
	}

	return holder
}
