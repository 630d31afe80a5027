package com

import (
	"github.com/shopspring/decimal"

	bo4e "github.com/voltmesh/bo4e-go"
)

var priceTierNames = struct {
	tierNumber bo4e.Name
	lowerLimit bo4e.Name
	upperLimit bo4e.Name
	unitPrice  bo4e.Name
	articleID  bo4e.Name
}{
	tierNumber: bo4e.Name{German: "staffelnummer", English: "tierNumber"},
	lowerLimit: bo4e.Name{German: "staffelgrenzeVon", English: "lowerLimit"},
	upperLimit: bo4e.Name{German: "staffelgrenzeBis", English: "upperLimit"},
	unitPrice:  bo4e.Name{German: "einheitspreis", English: "unitPrice"},
	articleID:  bo4e.Name{German: "artikelId", English: "articleId"},
}

// PriceTier (Preisstaffel) is one step of a volume-dependent price. The
// limits describe the consumption band the unit price applies to; an
// open-ended top tier leaves UpperLimit absent.
type PriceTier struct {
	bo4e.Meta

	TierNumber *int
	LowerLimit *decimal.Decimal
	UpperLimit *decimal.Decimal
	UnitPrice  *decimal.Decimal
	ArticleID  *string
}

func (p *PriceTier) TypeName() bo4e.Name {
	return bo4e.Name{German: "Preisstaffel", English: "PriceTier"}
}

func (p *PriceTier) EncodeFields(e *bo4e.Encoder) {
	e.Int(priceTierNames.tierNumber, p.TierNumber)
	e.Dec(priceTierNames.lowerLimit, p.LowerLimit)
	e.Dec(priceTierNames.upperLimit, p.UpperLimit)
	e.Dec(priceTierNames.unitPrice, p.UnitPrice)
	e.Str(priceTierNames.articleID, p.ArticleID)
}

func (p *PriceTier) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case priceTierNames.tierNumber.German, priceTierNames.tierNumber.English:
		return d.Int(&p.TierNumber)
	case priceTierNames.lowerLimit.German, priceTierNames.lowerLimit.English:
		return d.Dec(&p.LowerLimit)
	case priceTierNames.upperLimit.German, priceTierNames.upperLimit.English:
		return d.Dec(&p.UpperLimit)
	case priceTierNames.unitPrice.German, priceTierNames.unitPrice.English:
		return d.Dec(&p.UnitPrice)
	case priceTierNames.articleID.German, priceTierNames.articleID.English:
		return d.Str(&p.ArticleID)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(PriceTier) })
}
