package bo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/com"
	"github.com/voltmesh/bo4e-go/enums"
)

func strp(s string) *string { return &s }

func TestMeterNestedRoundTrip(t *testing.T) {
	div := enums.DivisionElectricity
	mt := enums.MeterTypeElectronicMeter
	rt := enums.RegisterTypeDoubleTariff
	unit := enums.UnitKilowattHour
	year := 2017
	installed := time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC)

	m := &Meter{
		Meta:        bo4e.NewMeta("Zaehler").WithVersion("202401.0.1"),
		MeterNumber: strp("1EMH0001"),
		Division:    &div,
		MeterType:   &mt,
		Registers: []com.MeterRegister{
			{OBISCode: strp("1-0:1.8.1"), RegisterType: &rt, Unit: &unit},
			{OBISCode: strp("1-0:1.8.2"), RegisterType: &rt, Unit: &unit},
		},
		Location: &com.Address{
			Street:     strp("Werkstrasse"),
			PostalCode: strp("45127"),
			City:       strp("Essen"),
		},
		MarketLocationID:  strp("51238696781"),
		ManufacturingYear: &year,
		InstallationDate:  &installed,
	}

	data, err := bo4e.Marshal(m)
	require.NoError(t, err)

	var decoded Meter
	require.NoError(t, bo4e.Unmarshal(data, &decoded))
	assert.Equal(t, m, &decoded)

	// Installation data carries full timestamps, not calendar dates.
	assert.Contains(t, string(data), `"einbaudatum":"2018-02-01T00:00:00Z"`)
	assert.Contains(t, string(data), `"marktlokationsId":"51238696781"`)
}

func TestMeterLifecycleTimestamps(t *testing.T) {
	doc := `{
		"zaehlernummer":"1EMH0002",
		"marktlokationsId":"51238696781",
		"messlokationsId":"DE0001112223334445556667778889990",
		"einbaudatum":"2020-06-15T10:30:00Z",
		"eichablaufdatum":"2028-12-31T23:00:00Z"
	}`

	var m Meter
	require.NoError(t, bo4e.Unmarshal([]byte(doc), &m))
	require.NotNil(t, m.MarketLocationID)
	assert.Equal(t, "51238696781", *m.MarketLocationID)
	require.NotNil(t, m.MeteringLocationID)
	assert.Equal(t, "DE0001112223334445556667778889990", *m.MeteringLocationID)
	require.NotNil(t, m.InstallationDate)
	assert.Equal(t, time.Date(2020, 6, 15, 10, 30, 0, 0, time.UTC), *m.InstallationDate)
	require.NotNil(t, m.CalibrationExpiryDate)
	assert.Equal(t, time.Date(2028, 12, 31, 23, 0, 0, 0, time.UTC), *m.CalibrationExpiryDate)
}

func TestContractRecursivePartner(t *testing.T) {
	ct := enums.ContractTypeEnergySupply
	status := enums.ContractStatusActive
	signed := time.Date(2023, 11, 20, 9, 0, 0, 0, time.UTC)
	c := &Contract{
		ContractNumber: strp("V-2024-001"),
		ContractType:   &ct,
		Status:         &status,
		SigningDate:    &signed,
		ContractPartner: &BusinessPartner{
			Name1: strp("Netze Musterstadt GmbH"),
			Roles: []enums.BusinessPartnerRole{enums.BusinessPartnerRoleGridOperator},
		},
	}

	data, err := bo4e.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unterzeichnungsdatum":"2023-11-20T09:00:00Z"`)
	assert.Contains(t, string(data), `"vertragspartner":{"name1":"Netze Musterstadt GmbH","geschaeftspartnerrollen":["NETZBETREIBER"]}`)

	var decoded Contract
	require.NoError(t, bo4e.Unmarshal(data, &decoded))
	assert.Equal(t, c, &decoded)
}

func TestMarketLocationListsAndBool(t *testing.T) {
	doc := `{
		"marktlokationsId":"51238696781",
		"energierichtung":"AUSSP",
		"messlokationsIds":["DE0001112223334445556667778889990","DE0009998887776665554443332221110"],
		"istSteuerbareRessource":true
	}`

	var m MarketLocation
	require.NoError(t, bo4e.Unmarshal([]byte(doc), &m))
	require.NotNil(t, m.MarketLocationID)
	assert.Equal(t, "51238696781", *m.MarketLocationID)
	require.NotNil(t, m.EnergyDirection)
	assert.Equal(t, enums.EnergyDirectionFeedOut, *m.EnergyDirection)
	assert.Len(t, m.MeteringLocationIDs, 2)
	require.NotNil(t, m.IsControllableResource)
	assert.True(t, *m.IsControllableResource)
}
