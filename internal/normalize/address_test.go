package normalize

import "testing"

func TestAddress_Full(t *testing.T) {
	addr := Address("14 Mielie Street\nIndustrial Park\nBethlehem\n9700\nFree State")

	if addr.PostalCode == nil || *addr.PostalCode != "9700" {
		t.Errorf("expected postal code 9700, got %v", addr.PostalCode)
	}
	if addr.ProvinceState == nil || *addr.ProvinceState != "Free State" {
		t.Errorf("expected province Free State, got %v", addr.ProvinceState)
	}
	if addr.Line1 == nil || *addr.Line1 != "14 Mielie Street" {
		t.Errorf("expected line1 '14 Mielie Street', got %v", addr.Line1)
	}
	if addr.Line2 == nil || *addr.Line2 != "Industrial Park" {
		t.Errorf("expected line2 'Industrial Park', got %v", addr.Line2)
	}
	if addr.City == nil || *addr.City != "Bethlehem" {
		t.Errorf("expected city Bethlehem, got %v", addr.City)
	}
	if addr.Country != "South Africa" {
		t.Errorf("expected default country, got %q", addr.Country)
	}

	// Full address keeps the pre-strip lines verbatim
	want := "14 Mielie Street, Industrial Park, Bethlehem, 9700, Free State"
	if addr.FullAddress == nil || *addr.FullAddress != want {
		t.Errorf("expected full address %q, got %v", want, addr.FullAddress)
	}
}

func TestAddress_PostalCodeInline(t *testing.T) {
	addr := Address("Plot 5 Vaalbank\nMiddelburg 1050\nMpumalanga")

	if addr.PostalCode == nil || *addr.PostalCode != "1050" {
		t.Errorf("expected postal code 1050, got %v", addr.PostalCode)
	}
	// Postal code is removed from its line; the rest of the line survives
	if addr.Line2 == nil || *addr.Line2 != "Middelburg" {
		t.Errorf("expected line2 'Middelburg', got %v", addr.Line2)
	}
	if addr.ProvinceState == nil || *addr.ProvinceState != "Mpumalanga" {
		t.Errorf("expected province Mpumalanga, got %v", addr.ProvinceState)
	}
}

func TestAddress_Empty(t *testing.T) {
	addr := Address("")

	if addr.FullAddress != nil || addr.Line1 != nil || addr.PostalCode != nil {
		t.Errorf("expected empty result, got %+v", addr)
	}
	if addr.Country != "South Africa" {
		t.Errorf("country default missing, got %q", addr.Country)
	}
}
