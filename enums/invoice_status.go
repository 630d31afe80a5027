package enums

// InvoiceStatus (Rechnungsstatus) is the processing state of an
// invoice.
type InvoiceStatus string

const (
	InvoiceStatusUnchecked         InvoiceStatus = "UNGEPRUEFT"
	InvoiceStatusCheckedOK         InvoiceStatus = "GEPRUEFT_OK"
	InvoiceStatusCheckedWithErrors InvoiceStatus = "GEPRUEFT_FEHLERHAFT"
	InvoiceStatusBooked            InvoiceStatus = "GEBUCHT"
	InvoiceStatusPaid              InvoiceStatus = "BEZAHLT"
)

var invoiceStatuses = tokenSet(
	InvoiceStatusUnchecked,
	InvoiceStatusCheckedOK,
	InvoiceStatusCheckedWithErrors,
	InvoiceStatusBooked,
	InvoiceStatusPaid,
)

// ParseInvoiceStatus validates a wire token against the fixed set.
func ParseInvoiceStatus(token string) (InvoiceStatus, error) {
	return parse("InvoiceStatus", invoiceStatuses, token)
}
