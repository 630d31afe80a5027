package enums

// DeviceType (Geraetetyp) lists the billable device types that can be
// attached to a metering location as hardware.
type DeviceType string

const (
	DeviceTypeMultiplexSystem                  DeviceType = "MULTIPLEXANLAGE"
	DeviceTypeFlatRateSystem                   DeviceType = "PAUSCHALANLAGE"
	DeviceTypeAmplifierSystem                  DeviceType = "VERSTAERKERANLAGE"
	DeviceTypeSummationDevice                  DeviceType = "SUMMATIONSGERAET"
	DeviceTypePulseGenerator                   DeviceType = "IMPULSGEBER"
	DeviceTypeVolumeConverter                  DeviceType = "MENGENUMWERTER"
	DeviceTypeCurrentTransformer               DeviceType = "STROMWANDLER"
	DeviceTypeVoltageTransformer               DeviceType = "SPANNUNGSWANDLER"
	DeviceTypeCombinedMeasuringTransformer     DeviceType = "KOMBIMESSWANDLER"
	DeviceTypeBlockCurrentTransformer          DeviceType = "BLOCKSTROMWANDLER"
	DeviceTypeDataLogger                       DeviceType = "DATENLOGGER"
	DeviceTypeCommunicationConnection          DeviceType = "KOMMUNIKATIONSANSCHLUSS"
	DeviceTypeModem                            DeviceType = "MODEM"
	DeviceTypeTelecommunicationEquipment       DeviceType = "TELEKOMMUNIKATIONSEINRICHTUNG"
	DeviceTypeModernMeasuringDevice            DeviceType = "MODERNE_MESSEINRICHTUNG"
	DeviceTypeIntelligentMeasuringSystem       DeviceType = "INTELLIGENTES_MESSYSTEM"
	DeviceTypeControlDevice                    DeviceType = "STEUEREINRICHTUNG"
	DeviceTypeTariffSwitchingDevice            DeviceType = "TARIFSCHALTGERAET"
	DeviceTypeRippleControlReceiver            DeviceType = "RUNDSTEUEREMPFAENGER"
	DeviceTypeOptionalAdditionalMeteringDevice DeviceType = "OPTIONALE_ZUS_ZAEHLEINRICHTUNG"
	DeviceTypeMeasuringTransformerSetImsMme    DeviceType = "MESSWANDLERSATZ_IMS_MME"
	DeviceTypeCombinedTransformerSetImsMme     DeviceType = "KOMBIMESSWANDLER_IMS_MME"
	DeviceTypeTariffSwitchingDeviceImsMme      DeviceType = "TARIFSCHALTGERAET_IMS_MME"
	DeviceTypeRippleControlReceiverImsMme      DeviceType = "RUNDSTEUEREMPFAENGER_IMS_MME"
	DeviceTypeTemperatureCompensation          DeviceType = "TEMPERATUR_KOMPENSATION"
	DeviceTypeMaximumDemandIndicator           DeviceType = "HOECHSTBELASTUNGS_ANZEIGER"
	DeviceTypeOtherDevice                      DeviceType = "SONSTIGES_GERAET"
	DeviceTypeEdl21                            DeviceType = "EDL_21"
	DeviceTypeEdl40MeterAttachment             DeviceType = "EDL_40_ZAEHLERAUFSATZ"
	DeviceTypeEdl40                            DeviceType = "EDL_40"
	DeviceTypeTelephoneConnection              DeviceType = "TELEFONANSCHLUSS"
	DeviceTypeModemGsm                         DeviceType = "MODEM_GSM"
	DeviceTypeModemGprs                        DeviceType = "MODEM_GPRS"
	DeviceTypeModemRadio                       DeviceType = "MODEM_FUNK"
	DeviceTypeModemGsmWithoutLoadProfile       DeviceType = "MODEM_GSM_O_LG"
	DeviceTypeModemGsmWithLoadProfile          DeviceType = "MODEM_GSM_M_LG"
	DeviceTypeModemLandline                    DeviceType = "MODEM_FESTNETZ"
	DeviceTypeModemGprsWithLoadProfile         DeviceType = "MODEM_GPRS_M_LG"
	DeviceTypePlcCommunication                 DeviceType = "PLC_KOM"
	DeviceTypeEthernetCommunication            DeviceType = "ETHERNET_KOM"
	DeviceTypeDslCommunication                 DeviceType = "DSL_KOM"
	DeviceTypeLteCommunication                 DeviceType = "LTE_KOM"
	DeviceTypeCompactVolumeConverter           DeviceType = "KOMPAKT_MU"
	DeviceTypeSystemVolumeConverter            DeviceType = "SYSTEM_MU"
	DeviceTypeTemperatureVolumeConverter       DeviceType = "TEMPERATUR_MU"
	DeviceTypeStateVolumeConverter             DeviceType = "ZUSTANDS_MU"
)

var deviceTypes = tokenSet(
	DeviceTypeMultiplexSystem,
	DeviceTypeFlatRateSystem,
	DeviceTypeAmplifierSystem,
	DeviceTypeSummationDevice,
	DeviceTypePulseGenerator,
	DeviceTypeVolumeConverter,
	DeviceTypeCurrentTransformer,
	DeviceTypeVoltageTransformer,
	DeviceTypeCombinedMeasuringTransformer,
	DeviceTypeBlockCurrentTransformer,
	DeviceTypeDataLogger,
	DeviceTypeCommunicationConnection,
	DeviceTypeModem,
	DeviceTypeTelecommunicationEquipment,
	DeviceTypeModernMeasuringDevice,
	DeviceTypeIntelligentMeasuringSystem,
	DeviceTypeControlDevice,
	DeviceTypeTariffSwitchingDevice,
	DeviceTypeRippleControlReceiver,
	DeviceTypeOptionalAdditionalMeteringDevice,
	DeviceTypeMeasuringTransformerSetImsMme,
	DeviceTypeCombinedTransformerSetImsMme,
	DeviceTypeTariffSwitchingDeviceImsMme,
	DeviceTypeRippleControlReceiverImsMme,
	DeviceTypeTemperatureCompensation,
	DeviceTypeMaximumDemandIndicator,
	DeviceTypeOtherDevice,
	DeviceTypeEdl21,
	DeviceTypeEdl40MeterAttachment,
	DeviceTypeEdl40,
	DeviceTypeTelephoneConnection,
	DeviceTypeModemGsm,
	DeviceTypeModemGprs,
	DeviceTypeModemRadio,
	DeviceTypeModemGsmWithoutLoadProfile,
	DeviceTypeModemGsmWithLoadProfile,
	DeviceTypeModemLandline,
	DeviceTypeModemGprsWithLoadProfile,
	DeviceTypePlcCommunication,
	DeviceTypeEthernetCommunication,
	DeviceTypeDslCommunication,
	DeviceTypeLteCommunication,
	DeviceTypeCompactVolumeConverter,
	DeviceTypeSystemVolumeConverter,
	DeviceTypeTemperatureVolumeConverter,
	DeviceTypeStateVolumeConverter,
)

// ParseDeviceType validates a wire token against the fixed set.
func ParseDeviceType(token string) (DeviceType, error) {
	return parse("DeviceType", deviceTypes, token)
}
