package bo

import (
	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/com"
	"github.com/voltmesh/bo4e-go/enums"
)

var businessPartnerNames = struct {
	partnerID                bo4e.Name
	name1                    bo4e.Name
	name2                    bo4e.Name
	name3                    bo4e.Name
	roles                    bo4e.Name
	commercialRegisterNumber bo4e.Name
	taxID                    bo4e.Name
	vatID                    bo4e.Name
	address                  bo4e.Name
}{
	partnerID: bo4e.Name{German: "geschaeftspartnerId", English: "partnerId"},
	// The numbered name lines are identical in both conventions.
	name1:                    bo4e.Name{German: "name1", English: "name1"},
	name2:                    bo4e.Name{German: "name2", English: "name2"},
	name3:                    bo4e.Name{German: "name3", English: "name3"},
	roles:                    bo4e.Name{German: "geschaeftspartnerrollen", English: "roles"},
	commercialRegisterNumber: bo4e.Name{German: "handelsregisternummer", English: "commercialRegisterNumber"},
	taxID:                    bo4e.Name{German: "steuernummer", English: "taxId"},
	vatID:                    bo4e.Name{German: "umsatzsteuerId", English: "vatId"},
	address:                  bo4e.Name{German: "adresse", English: "address"},
}

// BusinessPartner (Geschaeftspartner) is a person or organization
// taking part in the market. Name1 holds the primary name, Name2 and
// Name3 the continuation lines.
type BusinessPartner struct {
	bo4e.Meta

	PartnerID                *string
	Name1                    *string
	Name2                    *string
	Name3                    *string
	Roles                    []enums.BusinessPartnerRole
	CommercialRegisterNumber *string
	TaxID                    *string
	VatID                    *string
	Address                  *com.Address
}

func (b *BusinessPartner) TypeName() bo4e.Name {
	return bo4e.Name{German: "Geschaeftspartner", English: "BusinessPartner"}
}

func (b *BusinessPartner) EncodeFields(e *bo4e.Encoder) {
	e.Str(businessPartnerNames.partnerID, b.PartnerID)
	e.Str(businessPartnerNames.name1, b.Name1)
	e.Str(businessPartnerNames.name2, b.Name2)
	e.Str(businessPartnerNames.name3, b.Name3)
	bo4e.EncodeEnumList(e, businessPartnerNames.roles, b.Roles)
	e.Str(businessPartnerNames.commercialRegisterNumber, b.CommercialRegisterNumber)
	e.Str(businessPartnerNames.taxID, b.TaxID)
	e.Str(businessPartnerNames.vatID, b.VatID)
	bo4e.EncodeStruct(e, businessPartnerNames.address, b.Address)
}

func (b *BusinessPartner) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case businessPartnerNames.partnerID.German, businessPartnerNames.partnerID.English:
		return d.Str(&b.PartnerID)
	case businessPartnerNames.name1.German:
		return d.Str(&b.Name1)
	case businessPartnerNames.name2.German:
		return d.Str(&b.Name2)
	case businessPartnerNames.name3.German:
		return d.Str(&b.Name3)
	case businessPartnerNames.roles.German, businessPartnerNames.roles.English:
		return bo4e.ReadEnumList(d, enums.ParseBusinessPartnerRole, &b.Roles)
	case businessPartnerNames.commercialRegisterNumber.German, businessPartnerNames.commercialRegisterNumber.English:
		return d.Str(&b.CommercialRegisterNumber)
	case businessPartnerNames.taxID.German, businessPartnerNames.taxID.English:
		return d.Str(&b.TaxID)
	case businessPartnerNames.vatID.German, businessPartnerNames.vatID.English:
		return d.Str(&b.VatID)
	case businessPartnerNames.address.German, businessPartnerNames.address.English:
		return bo4e.ReadStruct(d, &b.Address)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(BusinessPartner) })
}
