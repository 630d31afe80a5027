package bo

import (
	"time"

	"github.com/shopspring/decimal"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/com"
	"github.com/voltmesh/bo4e-go/enums"
)

var marketLocationNames = struct {
	marketLocationID         bo4e.Name
	division                 bo4e.Name
	energyDirection          bo4e.Name
	customerType             bo4e.Name
	address                  bo4e.Name
	annualConsumption        bo4e.Name
	supplyStart              bo4e.Name
	supplyEnd                bo4e.Name
	networkOperatorCode      bo4e.Name
	basicSupplierCode        bo4e.Name
	transmissionOperatorCode bo4e.Name
	gridLevel                bo4e.Name
	networkArea              bo4e.Name
	balancingArea            bo4e.Name
	meteringLocationIDs      bo4e.Name
	isControllableResource   bo4e.Name
}{
	marketLocationID:         bo4e.Name{German: "marktlokationsId", English: "marketLocationId"},
	division:                 bo4e.Name{German: "sparte", English: "division"},
	energyDirection:          bo4e.Name{German: "energierichtung", English: "energyDirection"},
	customerType:             bo4e.Name{German: "kundentyp", English: "customerType"},
	address:                  bo4e.Name{German: "adresse", English: "address"},
	annualConsumption:        bo4e.Name{German: "jahresverbrauchsprognose", English: "annualConsumption"},
	supplyStart:              bo4e.Name{German: "lieferbeginn", English: "supplyStart"},
	supplyEnd:                bo4e.Name{German: "lieferende", English: "supplyEnd"},
	networkOperatorCode:      bo4e.Name{German: "netzbetreiberCodenummer", English: "networkOperatorCode"},
	basicSupplierCode:        bo4e.Name{German: "grundversorgerCodenummer", English: "basicSupplierCode"},
	transmissionOperatorCode: bo4e.Name{German: "uebertragungsnetzbetreiberCodenummer", English: "transmissionOperatorCode"},
	gridLevel:                bo4e.Name{German: "netzebene", English: "gridLevel"},
	networkArea:              bo4e.Name{German: "netzgebiet", English: "networkArea"},
	balancingArea:            bo4e.Name{German: "bilanzierungsgebiet", English: "balancingArea"},
	meteringLocationIDs:      bo4e.Name{German: "messlokationsIds", English: "meteringLocationIds"},
	isControllableResource:   bo4e.Name{German: "istSteuerbareRessource", English: "isControllableResource"},
}

// MarketLocation (Marktlokation) is the point at which energy is
// commercially delivered or taken, identified by its eleven-digit
// MaLo-ID.
type MarketLocation struct {
	bo4e.Meta

	MarketLocationID         *string
	Division                 *enums.Division
	EnergyDirection          *enums.EnergyDirection
	CustomerType             *enums.CustomerType
	Address                  *com.Address
	AnnualConsumption        *decimal.Decimal
	SupplyStart              *time.Time
	SupplyEnd                *time.Time
	NetworkOperatorCode      *string
	BasicSupplierCode        *string
	TransmissionOperatorCode *string
	GridLevel                *string
	NetworkArea              *string
	BalancingArea            *string
	MeteringLocationIDs      []string
	IsControllableResource   *bool
}

func (m *MarketLocation) TypeName() bo4e.Name {
	return bo4e.Name{German: "Marktlokation", English: "MarketLocation"}
}

func (m *MarketLocation) EncodeFields(e *bo4e.Encoder) {
	e.Str(marketLocationNames.marketLocationID, m.MarketLocationID)
	bo4e.EncodeEnum(e, marketLocationNames.division, m.Division)
	bo4e.EncodeEnum(e, marketLocationNames.energyDirection, m.EnergyDirection)
	bo4e.EncodeEnum(e, marketLocationNames.customerType, m.CustomerType)
	bo4e.EncodeStruct(e, marketLocationNames.address, m.Address)
	e.Dec(marketLocationNames.annualConsumption, m.AnnualConsumption)
	e.Time(marketLocationNames.supplyStart, m.SupplyStart)
	e.Time(marketLocationNames.supplyEnd, m.SupplyEnd)
	e.Str(marketLocationNames.networkOperatorCode, m.NetworkOperatorCode)
	e.Str(marketLocationNames.basicSupplierCode, m.BasicSupplierCode)
	e.Str(marketLocationNames.transmissionOperatorCode, m.TransmissionOperatorCode)
	e.Str(marketLocationNames.gridLevel, m.GridLevel)
	e.Str(marketLocationNames.networkArea, m.NetworkArea)
	e.Str(marketLocationNames.balancingArea, m.BalancingArea)
	e.StrList(marketLocationNames.meteringLocationIDs, m.MeteringLocationIDs)
	e.Bool(marketLocationNames.isControllableResource, m.IsControllableResource)
}

func (m *MarketLocation) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case marketLocationNames.marketLocationID.German, marketLocationNames.marketLocationID.English:
		return d.Str(&m.MarketLocationID)
	case marketLocationNames.division.German, marketLocationNames.division.English:
		return bo4e.ReadEnum(d, enums.ParseDivision, &m.Division)
	case marketLocationNames.energyDirection.German, marketLocationNames.energyDirection.English:
		return bo4e.ReadEnum(d, enums.ParseEnergyDirection, &m.EnergyDirection)
	case marketLocationNames.customerType.German, marketLocationNames.customerType.English:
		return bo4e.ReadEnum(d, enums.ParseCustomerType, &m.CustomerType)
	case marketLocationNames.address.German, marketLocationNames.address.English:
		return bo4e.ReadStruct(d, &m.Address)
	case marketLocationNames.annualConsumption.German, marketLocationNames.annualConsumption.English:
		return d.Dec(&m.AnnualConsumption)
	case marketLocationNames.supplyStart.German, marketLocationNames.supplyStart.English:
		return d.Time(&m.SupplyStart)
	case marketLocationNames.supplyEnd.German, marketLocationNames.supplyEnd.English:
		return d.Time(&m.SupplyEnd)
	case marketLocationNames.networkOperatorCode.German, marketLocationNames.networkOperatorCode.English:
		return d.Str(&m.NetworkOperatorCode)
	case marketLocationNames.basicSupplierCode.German, marketLocationNames.basicSupplierCode.English:
		return d.Str(&m.BasicSupplierCode)
	case marketLocationNames.transmissionOperatorCode.German, marketLocationNames.transmissionOperatorCode.English:
		return d.Str(&m.TransmissionOperatorCode)
	case marketLocationNames.gridLevel.German, marketLocationNames.gridLevel.English:
		return d.Str(&m.GridLevel)
	case marketLocationNames.networkArea.German, marketLocationNames.networkArea.English:
		return d.Str(&m.NetworkArea)
	case marketLocationNames.balancingArea.German, marketLocationNames.balancingArea.English:
		return d.Str(&m.BalancingArea)
	case marketLocationNames.meteringLocationIDs.German, marketLocationNames.meteringLocationIDs.English:
		return d.StrList(&m.MeteringLocationIDs)
	case marketLocationNames.isControllableResource.German, marketLocationNames.isControllableResource.English:
		return d.Bool(&m.IsControllableResource)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(MarketLocation) })
}
