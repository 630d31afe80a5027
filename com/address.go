package com

import (
	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/enums"
)

var addressNames = struct {
	street              bo4e.Name
	houseNumber         bo4e.Name
	houseNumberAddition bo4e.Name
	postalCode          bo4e.Name
	city                bo4e.Name
	district            bo4e.Name
	poBox               bo4e.Name
	countryCode         bo4e.Name
}{
	street:              bo4e.Name{German: "strasse", English: "street"},
	houseNumber:         bo4e.Name{German: "hausnummer", English: "houseNumber"},
	houseNumberAddition: bo4e.Name{German: "hausnummernzusatz", English: "houseNumberAddition"},
	postalCode:          bo4e.Name{German: "postleitzahl", English: "postalCode"},
	city:                bo4e.Name{German: "ort", English: "city"},
	district:            bo4e.Name{German: "ortsteil", English: "district"},
	poBox:               bo4e.Name{German: "postfach", English: "poBox"},
	countryCode:         bo4e.Name{German: "landescode", English: "countryCode"},
}

// Address (Adresse) is a postal address. Street address and PO box are
// mutually exclusive in practice but not enforced on the wire.
type Address struct {
	bo4e.Meta

	Street              *string
	HouseNumber         *string
	HouseNumberAddition *string
	PostalCode          *string
	City                *string
	District            *string
	POBox               *string
	CountryCode         *enums.Country
}

func (a *Address) TypeName() bo4e.Name {
	return bo4e.Name{German: "Adresse", English: "Address"}
}

func (a *Address) EncodeFields(e *bo4e.Encoder) {
	e.Str(addressNames.street, a.Street)
	e.Str(addressNames.houseNumber, a.HouseNumber)
	e.Str(addressNames.houseNumberAddition, a.HouseNumberAddition)
	e.Str(addressNames.postalCode, a.PostalCode)
	e.Str(addressNames.city, a.City)
	e.Str(addressNames.district, a.District)
	e.Str(addressNames.poBox, a.POBox)
	bo4e.EncodeEnum(e, addressNames.countryCode, a.CountryCode)
}

func (a *Address) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case addressNames.street.German, addressNames.street.English:
		return d.Str(&a.Street)
	case addressNames.houseNumber.German, addressNames.houseNumber.English:
		return d.Str(&a.HouseNumber)
	case addressNames.houseNumberAddition.German, addressNames.houseNumberAddition.English:
		return d.Str(&a.HouseNumberAddition)
	case addressNames.postalCode.German, addressNames.postalCode.English:
		return d.Str(&a.PostalCode)
	case addressNames.city.German, addressNames.city.English:
		return d.Str(&a.City)
	case addressNames.district.German, addressNames.district.English:
		return d.Str(&a.District)
	case addressNames.poBox.German, addressNames.poBox.English:
		return d.Str(&a.POBox)
	case addressNames.countryCode.German, addressNames.countryCode.English:
		return bo4e.ReadEnum(d, enums.ParseCountry, &a.CountryCode)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(Address) })
}
