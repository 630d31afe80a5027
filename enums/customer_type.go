package enums

// CustomerType (Kundentyp) classifies the customer of a market
// location.
type CustomerType string

const (
	CustomerTypeCommercial           CustomerType = "GEWERBE"
	CustomerTypePrivate              CustomerType = "PRIVAT"
	CustomerTypeFarmer               CustomerType = "LANDWIRT"
	CustomerTypeOther                CustomerType = "SONSTIGE"
	CustomerTypeHousehold            CustomerType = "HAUSHALT"
	CustomerTypeDirectHeating        CustomerType = "DIREKTHEIZUNG"
	CustomerTypeSharedFacilities     CustomerType = "GEMEINSCHAFT_MFH"
	CustomerTypeChurch               CustomerType = "KIRCHE"
	CustomerTypeCombinedHeatPower    CustomerType = "KWK"
	CustomerTypeChargingStation      CustomerType = "LADESAEULE"
	CustomerTypePublicLighting       CustomerType = "BELEUCHTUNG_OEFFENTLICH"
	CustomerTypeStreetLighting       CustomerType = "BELEUCHTUNG_STRASSE"
	CustomerTypeStorageHeating       CustomerType = "SPEICHERHEIZUNG"
	CustomerTypeInterruptibleDevice  CustomerType = "UNTERBR_EINRICHTUNG"
	CustomerTypeHeatPump             CustomerType = "WAERMEPUMPE"
)

var customerTypes = tokenSet(
	CustomerTypeCommercial,
	CustomerTypePrivate,
	CustomerTypeFarmer,
	CustomerTypeOther,
	CustomerTypeHousehold,
	CustomerTypeDirectHeating,
	CustomerTypeSharedFacilities,
	CustomerTypeChurch,
	CustomerTypeCombinedHeatPower,
	CustomerTypeChargingStation,
	CustomerTypePublicLighting,
	CustomerTypeStreetLighting,
	CustomerTypeStorageHeating,
	CustomerTypeInterruptibleDevice,
	CustomerTypeHeatPump,
)

// ParseCustomerType validates a wire token against the fixed set.
func ParseCustomerType(token string) (CustomerType, error) {
	return parse("CustomerType", customerTypes, token)
}
