package enums

// MeterType (Zaehlertyp) classifies the metering device.
type MeterType string

const (
	// Three-phase rotating meter (Drehstromzaehler)
	MeterTypeThreePhaseRotatingMeter MeterType = "DREHSTROMZAEHLER"
	// Bellows gas meter (Balgengaszaehler)
	MeterTypeBellowsGasMeter MeterType = "BALGENGASZAEHLER"
	// Rotary piston gas meter (Drehkolbengaszaehler)
	MeterTypeRotaryPistonGasMeter MeterType = "DREHKOLBENZAEHLER"
	// Power measuring meter (Leistungszaehler)
	MeterTypePowerMeter MeterType = "LEISTUNGSZAEHLER"
	// Maximum demand meter (Maximumzaehler)
	MeterTypeMaximumDemandMeter MeterType = "MAXIMUMZAEHLER"
	// Turbine wheel gas meter (Turbinenradgaszaehler)
	MeterTypeTurbineWheelGasMeter MeterType = "TURBINENRADGASZAEHLER"
	// Ultrasonic gas meter (Ultraschallgaszaehler)
	MeterTypeUltrasonicGasMeter MeterType = "ULTRASCHALLGASZAEHLER"
	// Single-phase alternating current meter (Wechselstromzaehler)
	MeterTypeSinglePhaseAlternatingMeter MeterType = "WECHSELSTROMZAEHLER"
	// Modern measuring device (Moderne Messeinrichtung)
	MeterTypeModernMeasuringDevice MeterType = "MODERNE_MESSEINRICHTUNG"
	// Intelligent measuring system / smart meter (Intelligentes Messsystem)
	MeterTypeIntelligentMeasuringSystem MeterType = "INTELLIGENTES_MESSSYSTEM"
	// Electronic meter (Elektronischer Zaehler)
	MeterTypeElectronicMeter MeterType = "ELEKTRONISCHER_ZAEHLER"
	// Vortex gas meter (Wirbelgaszaehler)
	MeterTypeVortexGasMeter MeterType = "WIRBELGASZAEHLER"
	// Water meter (Wasserzaehler)
	MeterTypeWaterMeter MeterType = "WASSERZAEHLER"
)

var meterTypes = tokenSet(
	MeterTypeThreePhaseRotatingMeter,
	MeterTypeBellowsGasMeter,
	MeterTypeRotaryPistonGasMeter,
	MeterTypePowerMeter,
	MeterTypeMaximumDemandMeter,
	MeterTypeTurbineWheelGasMeter,
	MeterTypeUltrasonicGasMeter,
	MeterTypeSinglePhaseAlternatingMeter,
	MeterTypeModernMeasuringDevice,
	MeterTypeIntelligentMeasuringSystem,
	MeterTypeElectronicMeter,
	MeterTypeVortexGasMeter,
	MeterTypeWaterMeter,
)

// ParseMeterType validates a wire token against the fixed set.
func ParseMeterType(token string) (MeterType, error) {
	return parse("MeterType", meterTypes, token)
}
