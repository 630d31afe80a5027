package bo

import (
	"time"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/com"
	"github.com/voltmesh/bo4e-go/enums"
)

var invoiceNames = struct {
	invoiceNumber bo4e.Name
	invoiceType   bo4e.Name
	status        bo4e.Name
	invoiceDate   bo4e.Name
	dueDate       bo4e.Name
	billingPeriod bo4e.Name
	recipient     bo4e.Name
	netAmount     bo4e.Name
	taxAmount     bo4e.Name
	grossAmount   bo4e.Name
	positions     bo4e.Name
}{
	invoiceNumber: bo4e.Name{German: "rechnungsnummer", English: "invoiceNumber"},
	invoiceType:   bo4e.Name{German: "rechnungstyp", English: "invoiceType"},
	status:        bo4e.Name{German: "status", English: "status"},
	invoiceDate:   bo4e.Name{German: "rechnungsdatum", English: "invoiceDate"},
	dueDate:       bo4e.Name{German: "faelligkeitsdatum", English: "dueDate"},
	billingPeriod: bo4e.Name{German: "abrechnungszeitraum", English: "billingPeriod"},
	recipient:     bo4e.Name{German: "rechnungsempfaenger", English: "recipient"},
	netAmount:     bo4e.Name{German: "nettobetrag", English: "netAmount"},
	taxAmount:     bo4e.Name{German: "steuerbetrag", English: "taxAmount"},
	grossAmount:   bo4e.Name{German: "bruttobetrag", English: "grossAmount"},
	positions:     bo4e.Name{German: "rechnungspositionen", English: "positions"},
}

// Invoice (Rechnung) is a bill exchanged between market partners. The
// invoice and due dates are calendar dates without a time component;
// the totals are carried as Amount components.
type Invoice struct {
	bo4e.Meta

	InvoiceNumber *string
	InvoiceType   *enums.InvoiceType
	Status        *enums.InvoiceStatus
	InvoiceDate   *time.Time
	DueDate       *time.Time
	BillingPeriod *com.TimePeriod
	Recipient     *BusinessPartner
	NetAmount     *com.Amount
	TaxAmount     *com.Amount
	GrossAmount   *com.Amount
	Positions     []com.InvoicePosition
}

func (i *Invoice) TypeName() bo4e.Name {
	return bo4e.Name{German: "Rechnung", English: "Invoice"}
}

func (i *Invoice) EncodeFields(e *bo4e.Encoder) {
	e.Str(invoiceNames.invoiceNumber, i.InvoiceNumber)
	bo4e.EncodeEnum(e, invoiceNames.invoiceType, i.InvoiceType)
	bo4e.EncodeEnum(e, invoiceNames.status, i.Status)
	e.Date(invoiceNames.invoiceDate, i.InvoiceDate)
	e.Date(invoiceNames.dueDate, i.DueDate)
	bo4e.EncodeStruct(e, invoiceNames.billingPeriod, i.BillingPeriod)
	bo4e.EncodeStruct(e, invoiceNames.recipient, i.Recipient)
	bo4e.EncodeStruct(e, invoiceNames.netAmount, i.NetAmount)
	bo4e.EncodeStruct(e, invoiceNames.taxAmount, i.TaxAmount)
	bo4e.EncodeStruct(e, invoiceNames.grossAmount, i.GrossAmount)
	bo4e.EncodeStructList[com.InvoicePosition](e, invoiceNames.positions, i.Positions)
}

func (i *Invoice) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case invoiceNames.invoiceNumber.German, invoiceNames.invoiceNumber.English:
		return d.Str(&i.InvoiceNumber)
	case invoiceNames.invoiceType.German, invoiceNames.invoiceType.English:
		return bo4e.ReadEnum(d, enums.ParseInvoiceType, &i.InvoiceType)
	case invoiceNames.status.German:
		return bo4e.ReadEnum(d, enums.ParseInvoiceStatus, &i.Status)
	case invoiceNames.invoiceDate.German, invoiceNames.invoiceDate.English:
		return d.Date(&i.InvoiceDate)
	case invoiceNames.dueDate.German, invoiceNames.dueDate.English:
		return d.Date(&i.DueDate)
	case invoiceNames.billingPeriod.German, invoiceNames.billingPeriod.English:
		return bo4e.ReadStruct(d, &i.BillingPeriod)
	case invoiceNames.recipient.German, invoiceNames.recipient.English:
		return bo4e.ReadStruct(d, &i.Recipient)
	case invoiceNames.netAmount.German, invoiceNames.netAmount.English:
		return bo4e.ReadStruct(d, &i.NetAmount)
	case invoiceNames.taxAmount.German, invoiceNames.taxAmount.English:
		return bo4e.ReadStruct(d, &i.TaxAmount)
	case invoiceNames.grossAmount.German, invoiceNames.grossAmount.English:
		return bo4e.ReadStruct(d, &i.GrossAmount)
	case invoiceNames.positions.German, invoiceNames.positions.English:
		return bo4e.ReadStructList[com.InvoicePosition](d, &i.Positions)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(Invoice) })
}
