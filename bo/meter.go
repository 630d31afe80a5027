package bo

import (
	"time"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/com"
	"github.com/voltmesh/bo4e-go/enums"
)

var meterNames = struct {
	meterNumber           bo4e.Name
	division              bo4e.Name
	meterType             bo4e.Name
	meterSize             bo4e.Name
	registers             bo4e.Name
	location              bo4e.Name
	hardware              bo4e.Name
	marketLocationID      bo4e.Name
	meteringLocationID    bo4e.Name
	ownership             bo4e.Name
	manufacturer          bo4e.Name
	manufacturingYear     bo4e.Name
	installationDate      bo4e.Name
	removalDate           bo4e.Name
	calibrationDate       bo4e.Name
	calibrationExpiryDate bo4e.Name
}{
	meterNumber:           bo4e.Name{German: "zaehlernummer", English: "meterNumber"},
	division:              bo4e.Name{German: "sparte", English: "division"},
	meterType:             bo4e.Name{German: "zaehlertyp", English: "meterType"},
	meterSize:             bo4e.Name{German: "zaehlergroesse", English: "meterSize"},
	registers:             bo4e.Name{German: "zaehlwerke", English: "registers"},
	location:              bo4e.Name{German: "standort", English: "location"},
	hardware:              bo4e.Name{German: "geraeteeigenschaften", English: "hardware"},
	marketLocationID:      bo4e.Name{German: "marktlokationsId", English: "marketLocationId"},
	meteringLocationID:    bo4e.Name{German: "messlokationsId", English: "meteringLocationId"},
	ownership:             bo4e.Name{German: "eigentumsverhaeltnis", English: "ownership"},
	manufacturer:          bo4e.Name{German: "hersteller", English: "manufacturer"},
	manufacturingYear:     bo4e.Name{German: "herstellungsjahr", English: "manufacturingYear"},
	installationDate:      bo4e.Name{German: "einbaudatum", English: "installationDate"},
	removalDate:           bo4e.Name{German: "ausbaudatum", English: "removalDate"},
	calibrationDate:       bo4e.Name{German: "eichdatum", English: "calibrationDate"},
	calibrationExpiryDate: bo4e.Name{German: "eichablaufdatum", English: "calibrationExpiryDate"},
}

// Meter (Zaehler) is a physical metering device with its registers and
// installation data.
type Meter struct {
	bo4e.Meta

	MeterNumber           *string
	Division              *enums.Division
	MeterType             *enums.MeterType
	MeterSize             *enums.MeterSize
	Registers             []com.MeterRegister
	Location              *com.Address
	Hardware              []com.Hardware
	MarketLocationID      *string
	MeteringLocationID    *string
	Ownership             *string
	Manufacturer          *string
	ManufacturingYear     *int
	InstallationDate      *time.Time
	RemovalDate           *time.Time
	CalibrationDate       *time.Time
	CalibrationExpiryDate *time.Time
}

func (m *Meter) TypeName() bo4e.Name {
	return bo4e.Name{German: "Zaehler", English: "Meter"}
}

func (m *Meter) EncodeFields(e *bo4e.Encoder) {
	e.Str(meterNames.meterNumber, m.MeterNumber)
	bo4e.EncodeEnum(e, meterNames.division, m.Division)
	bo4e.EncodeEnum(e, meterNames.meterType, m.MeterType)
	bo4e.EncodeEnum(e, meterNames.meterSize, m.MeterSize)
	bo4e.EncodeStructList[com.MeterRegister](e, meterNames.registers, m.Registers)
	bo4e.EncodeStruct(e, meterNames.location, m.Location)
	bo4e.EncodeStructList[com.Hardware](e, meterNames.hardware, m.Hardware)
	e.Str(meterNames.marketLocationID, m.MarketLocationID)
	e.Str(meterNames.meteringLocationID, m.MeteringLocationID)
	e.Str(meterNames.ownership, m.Ownership)
	e.Str(meterNames.manufacturer, m.Manufacturer)
	e.Int(meterNames.manufacturingYear, m.ManufacturingYear)
	e.Time(meterNames.installationDate, m.InstallationDate)
	e.Time(meterNames.removalDate, m.RemovalDate)
	e.Time(meterNames.calibrationDate, m.CalibrationDate)
	e.Time(meterNames.calibrationExpiryDate, m.CalibrationExpiryDate)
}

func (m *Meter) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case meterNames.meterNumber.German, meterNames.meterNumber.English:
		return d.Str(&m.MeterNumber)
	case meterNames.division.German, meterNames.division.English:
		return bo4e.ReadEnum(d, enums.ParseDivision, &m.Division)
	case meterNames.meterType.German, meterNames.meterType.English:
		return bo4e.ReadEnum(d, enums.ParseMeterType, &m.MeterType)
	case meterNames.meterSize.German, meterNames.meterSize.English:
		return bo4e.ReadEnum(d, enums.ParseMeterSize, &m.MeterSize)
	case meterNames.registers.German, meterNames.registers.English:
		return bo4e.ReadStructList[com.MeterRegister](d, &m.Registers)
	case meterNames.location.German, meterNames.location.English:
		return bo4e.ReadStruct(d, &m.Location)
	case meterNames.hardware.German, meterNames.hardware.English:
		return bo4e.ReadStructList[com.Hardware](d, &m.Hardware)
	case meterNames.marketLocationID.German, meterNames.marketLocationID.English:
		return d.Str(&m.MarketLocationID)
	case meterNames.meteringLocationID.German, meterNames.meteringLocationID.English:
		return d.Str(&m.MeteringLocationID)
	case meterNames.ownership.German, meterNames.ownership.English:
		return d.Str(&m.Ownership)
	case meterNames.manufacturer.German, meterNames.manufacturer.English:
		return d.Str(&m.Manufacturer)
	case meterNames.manufacturingYear.German, meterNames.manufacturingYear.English:
		return d.Int(&m.ManufacturingYear)
	case meterNames.installationDate.German, meterNames.installationDate.English:
		return d.Time(&m.InstallationDate)
	case meterNames.removalDate.German, meterNames.removalDate.English:
		return d.Time(&m.RemovalDate)
	case meterNames.calibrationDate.German, meterNames.calibrationDate.English:
		return d.Time(&m.CalibrationDate)
	case meterNames.calibrationExpiryDate.German, meterNames.calibrationExpiryDate.English:
		return d.Time(&m.CalibrationExpiryDate)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(Meter) })
}
