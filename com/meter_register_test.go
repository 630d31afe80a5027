package com

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/enums"
)

func TestMeterRegisterGermanWireNames(t *testing.T) {
	rt := enums.RegisterTypeSingleTariff
	m := &MeterRegister{
		RegisterID:   strp("ZW-1"),
		OBISCode:     strp("1-0:1.8.0"),
		RegisterType: &rt,
		Description:  strp("Wirkarbeit Bezug"),
	}

	data, err := bo4e.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zaehlwerkskennung":"ZW-1","obisKennzahl":"1-0:1.8.0","registerart":"EINTARIF","bezeichnung":"Wirkarbeit Bezug"}`, string(data))

	var decoded MeterRegister
	require.NoError(t, bo4e.Unmarshal(data, &decoded))
	assert.Equal(t, m, &decoded)
}
