package enums

// DeviceCategory (Geraeteklasse) classifies additional hardware at a
// metering location.
type DeviceCategory string

const (
	DeviceCategoryTransformer            DeviceCategory = "WANDLER"
	DeviceCategoryCommunicationDevice    DeviceCategory = "KOMMUNIKATIONSEINRICHTUNG"
	DeviceCategoryTechnicalControlDevice DeviceCategory = "TECHNISCHE_STEUEREINRICHTUNG"
	DeviceCategoryVolumeConverter        DeviceCategory = "MENGENUMWERTER"
	DeviceCategorySmartMeterGateway      DeviceCategory = "SMARTMETER_GATEWAY"
	DeviceCategoryControlBox             DeviceCategory = "STEUERBOX"
	DeviceCategoryMeteringDevice         DeviceCategory = "ZAEHLEINRICHTUNG"
)

var deviceCategories = tokenSet(
	DeviceCategoryTransformer,
	DeviceCategoryCommunicationDevice,
	DeviceCategoryTechnicalControlDevice,
	DeviceCategoryVolumeConverter,
	DeviceCategorySmartMeterGateway,
	DeviceCategoryControlBox,
	DeviceCategoryMeteringDevice,
)

// ParseDeviceCategory validates a wire token against the fixed set.
func ParseDeviceCategory(token string) (DeviceCategory, error) {
	return parse("DeviceCategory", deviceCategories, token)
}
