package com

import (
	"github.com/shopspring/decimal"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/enums"
)

var amountNames = struct {
	value    bo4e.Name
	currency bo4e.Name
}{
	value:    bo4e.Name{German: "wert", English: "value"},
	currency: bo4e.Name{German: "waehrung", English: "currency"},
}

// Amount (Betrag) is a monetary value with its currency. The value is
// kept as a decimal so wire literals like 19.99 survive round-trips
// without binary-float rounding.
type Amount struct {
	bo4e.Meta

	Value    *decimal.Decimal
	Currency *enums.Currency
}

func (a *Amount) TypeName() bo4e.Name {
	return bo4e.Name{German: "Betrag", English: "Amount"}
}

func (a *Amount) EncodeFields(e *bo4e.Encoder) {
	e.Dec(amountNames.value, a.Value)
	bo4e.EncodeEnum(e, amountNames.currency, a.Currency)
}

func (a *Amount) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case amountNames.value.German, amountNames.value.English:
		return d.Dec(&a.Value)
	case amountNames.currency.German, amountNames.currency.English:
		return bo4e.ReadEnum(d, enums.ParseCurrency, &a.Currency)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(Amount) })
}
