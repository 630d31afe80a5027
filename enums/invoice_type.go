package enums

// InvoiceType (Rechnungstyp) classifies the kind of invoice exchanged
// between market partners.
type InvoiceType string

const (
	InvoiceTypeEndCustomer            InvoiceType = "ENDKUNDENRECHNUNG"
	InvoiceTypeNetworkUsage           InvoiceType = "NETZNUTZUNGSRECHNUNG"
	InvoiceTypeSurplusDeficit         InvoiceType = "MEHRMINDERMENGENRECHNUNG"
	InvoiceTypeMeteringPointOperation InvoiceType = "MESSSTELLENBETRIEBSRECHNUNG"
	InvoiceTypeProcurement            InvoiceType = "BESCHAFFUNGSRECHNUNG"
	InvoiceTypeBalancingEnergy        InvoiceType = "AUSGLEICHSENERGIERECHNUNG"
	InvoiceTypeFinal                  InvoiceType = "ABSCHLUSSRECHNUNG"
	InvoiceTypeInstalment             InvoiceType = "ABSCHLAGSRECHNUNG"
	InvoiceTypePeriodic               InvoiceType = "TURNUSRECHNUNG"
	InvoiceTypeMonthly                InvoiceType = "MONATSRECHNUNG"
	InvoiceTypeInterim                InvoiceType = "ZWISCHENRECHNUNG"
	InvoiceTypeIntegrated13th         InvoiceType = "INTEGRIERTE_13TE_RECHNUNG"
	InvoiceTypeAdditional13th         InvoiceType = "ZUSAETZLICHE_13TE_RECHNUNG"
)

var invoiceTypes = tokenSet(
	InvoiceTypeEndCustomer,
	InvoiceTypeNetworkUsage,
	InvoiceTypeSurplusDeficit,
	InvoiceTypeMeteringPointOperation,
	InvoiceTypeProcurement,
	InvoiceTypeBalancingEnergy,
	InvoiceTypeFinal,
	InvoiceTypeInstalment,
	InvoiceTypePeriodic,
	InvoiceTypeMonthly,
	InvoiceTypeInterim,
	InvoiceTypeIntegrated13th,
	InvoiceTypeAdditional13th,
)

// ParseInvoiceType validates a wire token against the fixed set.
func ParseInvoiceType(token string) (InvoiceType, error) {
	return parse("InvoiceType", invoiceTypes, token)
}
