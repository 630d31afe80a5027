package bo

import (
	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/com"
	"github.com/voltmesh/bo4e-go/enums"
)

var meteringLocationNames = struct {
	meteringLocationID   bo4e.Name
	division             bo4e.Name
	address              bo4e.Name
	coordinates          bo4e.Name
	meteringOperatorCode bo4e.Name
	networkOperatorCode  bo4e.Name
	gridArea             bo4e.Name
	description          bo4e.Name
	hardware             bo4e.Name
	meterIDs             bo4e.Name
	marketLocationIDs    bo4e.Name
}{
	meteringLocationID:   bo4e.Name{German: "messlokationsId", English: "meteringLocationId"},
	division:             bo4e.Name{German: "sparte", English: "division"},
	address:              bo4e.Name{German: "adresse", English: "address"},
	coordinates:          bo4e.Name{German: "koordinaten", English: "coordinates"},
	meteringOperatorCode: bo4e.Name{German: "messstellenbetreiberCodenummer", English: "meteringOperatorCode"},
	networkOperatorCode:  bo4e.Name{German: "netzbetreiberCodenummer", English: "networkOperatorCode"},
	gridArea:             bo4e.Name{German: "netzbereich", English: "gridArea"},
	description:          bo4e.Name{German: "beschreibung", English: "description"},
	hardware:             bo4e.Name{German: "geraete", English: "hardware"},
	meterIDs:             bo4e.Name{German: "zaehlerIds", English: "meterIds"},
	marketLocationIDs:    bo4e.Name{German: "marktlokationsIds", English: "marketLocationIds"},
}

// MeteringLocation (Messlokation) is the physical point where energy is
// measured, identified by its 33-character MeLo-ID. It links the
// installed meters to the market locations they serve.
type MeteringLocation struct {
	bo4e.Meta

	MeteringLocationID   *string
	Division             *enums.Division
	Address              *com.Address
	Coordinates          *com.GeoCoordinates
	MeteringOperatorCode *string
	NetworkOperatorCode  *string
	GridArea             *string
	Description          *string
	Hardware             []com.Hardware
	MeterIDs             []string
	MarketLocationIDs    []string
}

func (m *MeteringLocation) TypeName() bo4e.Name {
	return bo4e.Name{German: "Messlokation", English: "MeteringLocation"}
}

func (m *MeteringLocation) EncodeFields(e *bo4e.Encoder) {
	e.Str(meteringLocationNames.meteringLocationID, m.MeteringLocationID)
	bo4e.EncodeEnum(e, meteringLocationNames.division, m.Division)
	bo4e.EncodeStruct(e, meteringLocationNames.address, m.Address)
	bo4e.EncodeStruct(e, meteringLocationNames.coordinates, m.Coordinates)
	e.Str(meteringLocationNames.meteringOperatorCode, m.MeteringOperatorCode)
	e.Str(meteringLocationNames.networkOperatorCode, m.NetworkOperatorCode)
	e.Str(meteringLocationNames.gridArea, m.GridArea)
	e.Str(meteringLocationNames.description, m.Description)
	bo4e.EncodeStructList[com.Hardware](e, meteringLocationNames.hardware, m.Hardware)
	e.StrList(meteringLocationNames.meterIDs, m.MeterIDs)
	e.StrList(meteringLocationNames.marketLocationIDs, m.MarketLocationIDs)
}

func (m *MeteringLocation) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case meteringLocationNames.meteringLocationID.German, meteringLocationNames.meteringLocationID.English:
		return d.Str(&m.MeteringLocationID)
	case meteringLocationNames.division.German, meteringLocationNames.division.English:
		return bo4e.ReadEnum(d, enums.ParseDivision, &m.Division)
	case meteringLocationNames.address.German, meteringLocationNames.address.English:
		return bo4e.ReadStruct(d, &m.Address)
	case meteringLocationNames.coordinates.German, meteringLocationNames.coordinates.English:
		return bo4e.ReadStruct(d, &m.Coordinates)
	case meteringLocationNames.meteringOperatorCode.German, meteringLocationNames.meteringOperatorCode.English:
		return d.Str(&m.MeteringOperatorCode)
	case meteringLocationNames.networkOperatorCode.German, meteringLocationNames.networkOperatorCode.English:
		return d.Str(&m.NetworkOperatorCode)
	case meteringLocationNames.gridArea.German, meteringLocationNames.gridArea.English:
		return d.Str(&m.GridArea)
	case meteringLocationNames.description.German, meteringLocationNames.description.English:
		return d.Str(&m.Description)
	case meteringLocationNames.hardware.German, meteringLocationNames.hardware.English:
		return bo4e.ReadStructList[com.Hardware](d, &m.Hardware)
	case meteringLocationNames.meterIDs.German, meteringLocationNames.meterIDs.English:
		return d.StrList(&m.MeterIDs)
	case meteringLocationNames.marketLocationIDs.German, meteringLocationNames.marketLocationIDs.English:
		return d.StrList(&m.MarketLocationIDs)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(MeteringLocation) })
}
