package com

import (
	"github.com/shopspring/decimal"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/enums"
)

var meterRegisterNames = struct {
	registerID       bo4e.Name
	obisCode         bo4e.Name
	registerType     bo4e.Name
	energyDirection  bo4e.Name
	unit             bo4e.Name
	decimalPlaces    bo4e.Name
	transformerRatio bo4e.Name
	description      bo4e.Name
}{
	registerID:       bo4e.Name{German: "zaehlwerkskennung", English: "registerId"},
	obisCode:         bo4e.Name{German: "obisKennzahl", English: "obisCode"},
	registerType:     bo4e.Name{German: "registerart", English: "registerType"},
	energyDirection:  bo4e.Name{German: "energierichtung", English: "energyDirection"},
	unit:             bo4e.Name{German: "einheit", English: "unit"},
	decimalPlaces:    bo4e.Name{German: "nachkommastellen", English: "decimalPlaces"},
	transformerRatio: bo4e.Name{German: "wandlerfaktor", English: "transformerRatio"},
	description:      bo4e.Name{German: "bezeichnung", English: "description"},
}

// MeterRegister (Zaehlwerk) is one register of a meter, identified by
// its OBIS code. Readings taken through a transformer are multiplied by
// TransformerRatio.
type MeterRegister struct {
	bo4e.Meta

	RegisterID       *string
	OBISCode         *string
	RegisterType     *enums.RegisterType
	EnergyDirection  *enums.EnergyDirection
	Unit             *enums.Unit
	DecimalPlaces    *int
	TransformerRatio *decimal.Decimal
	Description      *string
}

func (m *MeterRegister) TypeName() bo4e.Name {
	return bo4e.Name{German: "Zaehlwerk", English: "MeterRegister"}
}

func (m *MeterRegister) EncodeFields(e *bo4e.Encoder) {
	e.Str(meterRegisterNames.registerID, m.RegisterID)
	e.Str(meterRegisterNames.obisCode, m.OBISCode)
	bo4e.EncodeEnum(e, meterRegisterNames.registerType, m.RegisterType)
	bo4e.EncodeEnum(e, meterRegisterNames.energyDirection, m.EnergyDirection)
	bo4e.EncodeEnum(e, meterRegisterNames.unit, m.Unit)
	e.Int(meterRegisterNames.decimalPlaces, m.DecimalPlaces)
	e.Dec(meterRegisterNames.transformerRatio, m.TransformerRatio)
	e.Str(meterRegisterNames.description, m.Description)
}

func (m *MeterRegister) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case meterRegisterNames.registerID.German, meterRegisterNames.registerID.English:
		return d.Str(&m.RegisterID)
	case meterRegisterNames.obisCode.German, meterRegisterNames.obisCode.English:
		return d.Str(&m.OBISCode)
	case meterRegisterNames.registerType.German, meterRegisterNames.registerType.English:
		return bo4e.ReadEnum(d, enums.ParseRegisterType, &m.RegisterType)
	case meterRegisterNames.energyDirection.German, meterRegisterNames.energyDirection.English:
		return bo4e.ReadEnum(d, enums.ParseEnergyDirection, &m.EnergyDirection)
	case meterRegisterNames.unit.German, meterRegisterNames.unit.English:
		return bo4e.ReadEnum(d, enums.ParseUnit, &m.Unit)
	case meterRegisterNames.decimalPlaces.German, meterRegisterNames.decimalPlaces.English:
		return d.Int(&m.DecimalPlaces)
	case meterRegisterNames.transformerRatio.German, meterRegisterNames.transformerRatio.English:
		return d.Dec(&m.TransformerRatio)
	case meterRegisterNames.description.German, meterRegisterNames.description.English:
		return d.Str(&m.Description)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(MeterRegister) })
}
