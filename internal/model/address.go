package model

// Address is a normalized postal or physical address.
// FullAddress retains the verbatim source lines, comma-joined, before any
// component stripping.
type Address struct {
	Line1         *string `json:"line1"`
	Line2         *string `json:"line2"`
	Line3         *string `json:"line3"`
	City          *string `json:"city"`
	ProvinceState *string `json:"province_state"`
	PostalCode    *string `json:"postal_code"`
	Country       string  `json:"country"`
	FullAddress   *string `json:"full_address"`
}
