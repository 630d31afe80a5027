package com

import (
	"github.com/shopspring/decimal"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/enums"
)

var priceNames = struct {
	value         bo4e.Name
	unit          bo4e.Name
	referenceUnit bo4e.Name
	priceType     bo4e.Name
	status        bo4e.Name
	tiers         bo4e.Name
}{
	value:         bo4e.Name{German: "wert", English: "value"},
	unit:          bo4e.Name{German: "einheit", English: "unit"},
	referenceUnit: bo4e.Name{German: "bezugsgroesse", English: "referenceUnit"},
	priceType:     bo4e.Name{German: "preistyp", English: "priceType"},
	status:        bo4e.Name{German: "status", English: "status"},
	tiers:         bo4e.Name{German: "preisstaffeln", English: "priceTiers"},
}

// Price (Preis) is a price per reference unit, e.g. ct/kWh. Unit is the
// currency-bearing unit of the value, ReferenceUnit the quantity it is
// charged per. Tiered prices carry their steps in Tiers.
type Price struct {
	bo4e.Meta

	Value         *decimal.Decimal
	Unit          *enums.Unit
	ReferenceUnit *enums.Unit
	PriceType     *enums.PriceType
	Status        *enums.PriceStatus
	Tiers         []PriceTier
}

func (p *Price) TypeName() bo4e.Name {
	return bo4e.Name{German: "Preis", English: "Price"}
}

func (p *Price) EncodeFields(e *bo4e.Encoder) {
	e.Dec(priceNames.value, p.Value)
	bo4e.EncodeEnum(e, priceNames.unit, p.Unit)
	bo4e.EncodeEnum(e, priceNames.referenceUnit, p.ReferenceUnit)
	bo4e.EncodeEnum(e, priceNames.priceType, p.PriceType)
	bo4e.EncodeEnum(e, priceNames.status, p.Status)
	bo4e.EncodeStructList[PriceTier](e, priceNames.tiers, p.Tiers)
}

func (p *Price) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case priceNames.value.German, priceNames.value.English:
		return d.Dec(&p.Value)
	case priceNames.unit.German, priceNames.unit.English:
		return bo4e.ReadEnum(d, enums.ParseUnit, &p.Unit)
	case priceNames.referenceUnit.German, priceNames.referenceUnit.English:
		return bo4e.ReadEnum(d, enums.ParseUnit, &p.ReferenceUnit)
	case priceNames.priceType.German, priceNames.priceType.English:
		return bo4e.ReadEnum(d, enums.ParsePriceType, &p.PriceType)
	case priceNames.status.German, priceNames.status.English:
		return bo4e.ReadEnum(d, enums.ParsePriceStatus, &p.Status)
	case priceNames.tiers.German, priceNames.tiers.English:
		return bo4e.ReadStructList[PriceTier](d, &p.Tiers)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(Price) })
}
