package enums

// PriceType (Preistyp) classifies the kind of price.
type PriceType string

const (
	PriceTypeBasePrice                PriceType = "GRUNDPREIS"
	PriceTypeWorkingPriceSingleTariff PriceType = "ARBEITSPREIS_EINTARIF"
	PriceTypeWorkingPriceHighTariff   PriceType = "ARBEITSPREIS_HT"
	PriceTypeWorkingPriceLowTariff    PriceType = "ARBEITSPREIS_NT"
	PriceTypeCapacityPrice            PriceType = "LEISTUNGSPREIS"
	PriceTypeMeteringPrice            PriceType = "MESSPREIS"
	PriceTypeReadingFee               PriceType = "ENTGELT_ABLESUNG"
	PriceTypeBillingFee               PriceType = "ENTGELT_ABRECHNUNG"
	PriceTypeMeteringOperatorFee      PriceType = "ENTGELT_MSB"
	PriceTypeCommission               PriceType = "PROVISION"
)

var priceTypes = tokenSet(
	PriceTypeBasePrice,
	PriceTypeWorkingPriceSingleTariff,
	PriceTypeWorkingPriceHighTariff,
	PriceTypeWorkingPriceLowTariff,
	PriceTypeCapacityPrice,
	PriceTypeMeteringPrice,
	PriceTypeReadingFee,
	PriceTypeBillingFee,
	PriceTypeMeteringOperatorFee,
	PriceTypeCommission,
)

// ParsePriceType validates a wire token against the fixed set.
func ParsePriceType(token string) (PriceType, error) {
	return parse("PriceType", priceTypes, token)
}
