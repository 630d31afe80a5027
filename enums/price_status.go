package enums

// PriceStatus (Preisstatus) marks whether a price is still
// provisional.
type PriceStatus string

const (
	PriceStatusPreliminary PriceStatus = "VORLAEUFIG"
	PriceStatusFinal       PriceStatus = "ENDGUELTIG"
)

var priceStatuses = tokenSet(PriceStatusPreliminary, PriceStatusFinal)

// ParsePriceStatus validates a wire token against the fixed set.
func ParsePriceStatus(token string) (PriceStatus, error) {
	return parse("PriceStatus", priceStatuses, token)
}
