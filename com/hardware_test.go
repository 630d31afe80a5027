package com

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/enums"
)

func TestHardwareBothConventions(t *testing.T) {
	cat := enums.DeviceCategorySmartMeterGateway
	typ := enums.DeviceTypeModernMeasuringDevice
	h := &Hardware{
		DeviceNumber:   strp("SMGW-0001"),
		Description:    strp("Smart Meter Gateway"),
		DeviceCategory: &cat,
		DeviceType:     &typ,
	}

	german, err := bo4e.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, `{"geraetenummer":"SMGW-0001","bezeichnung":"Smart Meter Gateway","geraeteklasse":"SMARTMETER_GATEWAY","geraetetyp":"MODERNE_MESSEINRICHTUNG"}`, string(german))

	english, err := bo4e.MarshalEnglish(h)
	require.NoError(t, err)
	assert.Equal(t, `{"deviceNumber":"SMGW-0001","description":"Smart Meter Gateway","deviceCategory":"SMARTMETER_GATEWAY","deviceType":"MODERNE_MESSEINRICHTUNG"}`, string(english))

	var fromGerman, fromEnglish Hardware
	require.NoError(t, bo4e.Unmarshal(german, &fromGerman))
	require.NoError(t, bo4e.Unmarshal(english, &fromEnglish))
	assert.Equal(t, fromGerman, fromEnglish)
	assert.Equal(t, h, &fromGerman)
}

func TestHardwareTypeNameInvariant(t *testing.T) {
	// "Hardware" is the type name under both conventions.
	var h Hardware
	assert.Equal(t, bo4e.Name{German: "Hardware", English: "Hardware"}, h.TypeName())

	o, ok := bo4e.NewByType("Hardware")
	require.True(t, ok)
	assert.IsType(t, &Hardware{}, o)
}

func TestHardwareUnknownDeviceType(t *testing.T) {
	var h Hardware
	err := bo4e.Unmarshal([]byte(`{"geraetetyp":"DAMPFMASCHINE"}`), &h)

	var unknown *bo4e.UnknownEnumError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "DeviceType", unknown.Enum)
	assert.Equal(t, "geraetetyp", unknown.Field)
}
