package com

import (
	"time"

	"github.com/shopspring/decimal"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/enums"
)

var invoicePositionNames = struct {
	positionNumber    bo4e.Name
	positionText      bo4e.Name
	deliveryStart     bo4e.Name
	deliveryEnd       bo4e.Name
	quantity          bo4e.Name
	unit              bo4e.Name
	timeBasedQuantity bo4e.Name
	timeUnit          bo4e.Name
	unitPrice         bo4e.Name
	totalPrice        bo4e.Name
	taxAmount         bo4e.Name
	articleNumber     bo4e.Name
	articleID         bo4e.Name
}{
	positionNumber:    bo4e.Name{German: "positionsnummer", English: "positionNumber"},
	positionText:      bo4e.Name{German: "positionstext", English: "positionText"},
	deliveryStart:     bo4e.Name{German: "lieferungVon", English: "deliveryStart"},
	deliveryEnd:       bo4e.Name{German: "lieferungBis", English: "deliveryEnd"},
	quantity:          bo4e.Name{German: "menge", English: "quantity"},
	unit:              bo4e.Name{German: "einheit", English: "unit"},
	timeBasedQuantity: bo4e.Name{German: "zeitbezogeneMenge", English: "timeBasedQuantity"},
	timeUnit:          bo4e.Name{German: "zeiteinheit", English: "timeUnit"},
	unitPrice:         bo4e.Name{German: "einzelpreis", English: "unitPrice"},
	totalPrice:        bo4e.Name{German: "gesamtpreis", English: "totalPrice"},
	taxAmount:         bo4e.Name{German: "steuerbetrag", English: "taxAmount"},
	articleNumber:     bo4e.Name{German: "artikelnummer", English: "articleNumber"},
	articleID:         bo4e.Name{German: "artikelId", English: "articleId"},
}

// InvoicePosition (Rechnungsposition) is one line item of an invoice.
// Monetary and quantity values are decimals; TotalPrice is the already
// computed product and not rederived here.
type InvoicePosition struct {
	bo4e.Meta

	PositionNumber    *int
	PositionText      *string
	DeliveryStart     *time.Time
	DeliveryEnd       *time.Time
	Quantity          *decimal.Decimal
	Unit              *enums.Unit
	TimeBasedQuantity *decimal.Decimal
	TimeUnit          *enums.Unit
	UnitPrice         *decimal.Decimal
	TotalPrice        *decimal.Decimal
	TaxAmount         *decimal.Decimal
	ArticleNumber     *string
	ArticleID         *string
}

func (p *InvoicePosition) TypeName() bo4e.Name {
	return bo4e.Name{German: "Rechnungsposition", English: "InvoicePosition"}
}

func (p *InvoicePosition) EncodeFields(e *bo4e.Encoder) {
	e.Int(invoicePositionNames.positionNumber, p.PositionNumber)
	e.Str(invoicePositionNames.positionText, p.PositionText)
	e.Time(invoicePositionNames.deliveryStart, p.DeliveryStart)
	e.Time(invoicePositionNames.deliveryEnd, p.DeliveryEnd)
	e.Dec(invoicePositionNames.quantity, p.Quantity)
	bo4e.EncodeEnum(e, invoicePositionNames.unit, p.Unit)
	e.Dec(invoicePositionNames.timeBasedQuantity, p.TimeBasedQuantity)
	bo4e.EncodeEnum(e, invoicePositionNames.timeUnit, p.TimeUnit)
	e.Dec(invoicePositionNames.unitPrice, p.UnitPrice)
	e.Dec(invoicePositionNames.totalPrice, p.TotalPrice)
	e.Dec(invoicePositionNames.taxAmount, p.TaxAmount)
	e.Str(invoicePositionNames.articleNumber, p.ArticleNumber)
	e.Str(invoicePositionNames.articleID, p.ArticleID)
}

func (p *InvoicePosition) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case invoicePositionNames.positionNumber.German, invoicePositionNames.positionNumber.English:
		return d.Int(&p.PositionNumber)
	case invoicePositionNames.positionText.German, invoicePositionNames.positionText.English:
		return d.Str(&p.PositionText)
	case invoicePositionNames.deliveryStart.German, invoicePositionNames.deliveryStart.English:
		return d.Time(&p.DeliveryStart)
	case invoicePositionNames.deliveryEnd.German, invoicePositionNames.deliveryEnd.English:
		return d.Time(&p.DeliveryEnd)
	case invoicePositionNames.quantity.German, invoicePositionNames.quantity.English:
		return d.Dec(&p.Quantity)
	case invoicePositionNames.unit.German, invoicePositionNames.unit.English:
		return bo4e.ReadEnum(d, enums.ParseUnit, &p.Unit)
	case invoicePositionNames.timeBasedQuantity.German, invoicePositionNames.timeBasedQuantity.English:
		return d.Dec(&p.TimeBasedQuantity)
	case invoicePositionNames.timeUnit.German, invoicePositionNames.timeUnit.English:
		return bo4e.ReadEnum(d, enums.ParseUnit, &p.TimeUnit)
	case invoicePositionNames.unitPrice.German, invoicePositionNames.unitPrice.English:
		return d.Dec(&p.UnitPrice)
	case invoicePositionNames.totalPrice.German, invoicePositionNames.totalPrice.English:
		return d.Dec(&p.TotalPrice)
	case invoicePositionNames.taxAmount.German, invoicePositionNames.taxAmount.English:
		return d.Dec(&p.TaxAmount)
	case invoicePositionNames.articleNumber.German, invoicePositionNames.articleNumber.English:
		return d.Str(&p.ArticleNumber)
	case invoicePositionNames.articleID.German, invoicePositionNames.articleID.English:
		return d.Str(&p.ArticleID)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(InvoicePosition) })
}
