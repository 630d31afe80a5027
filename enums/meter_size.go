package enums

// MeterSize (Zaehlergroesse) is the size classification of gas meters.
type MeterSize string

const (
	MeterSizeG2Komma5 MeterSize = "G2KOMMA5"
	MeterSizeG4       MeterSize = "G4"
	MeterSizeG6       MeterSize = "G6"
	MeterSizeG10      MeterSize = "G10"
	MeterSizeG16      MeterSize = "G16"
	MeterSizeG25      MeterSize = "G25"
	MeterSizeG40      MeterSize = "G40"
	MeterSizeG65      MeterSize = "G65"
	MeterSizeG100     MeterSize = "G100"
	MeterSizeG160     MeterSize = "G160"
	MeterSizeG250     MeterSize = "G250"
	MeterSizeG400     MeterSize = "G400"
	MeterSizeG650     MeterSize = "G650"
	MeterSizeG1000    MeterSize = "G1000"
	MeterSizeG1600    MeterSize = "G1600"
	MeterSizeG2500    MeterSize = "G2500"
	MeterSizeG4000    MeterSize = "G4000"
	MeterSizeG6500    MeterSize = "G6500"
	MeterSizeG10000   MeterSize = "G10000"
	MeterSizeG12500   MeterSize = "G12500"
	MeterSizeG16000   MeterSize = "G16000"
)

var meterSizes = tokenSet(
	MeterSizeG2Komma5, MeterSizeG4, MeterSizeG6, MeterSizeG10,
	MeterSizeG16, MeterSizeG25, MeterSizeG40, MeterSizeG65,
	MeterSizeG100, MeterSizeG160, MeterSizeG250, MeterSizeG400,
	MeterSizeG650, MeterSizeG1000, MeterSizeG1600, MeterSizeG2500,
	MeterSizeG4000, MeterSizeG6500, MeterSizeG10000, MeterSizeG12500,
	MeterSizeG16000,
)

// ParseMeterSize validates a wire token against the fixed set.
func ParseMeterSize(token string) (MeterSize, error) {
	return parse("MeterSize", meterSizes, token)
}
