package bo4e_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/bo"
	"github.com/voltmesh/bo4e-go/com"
	"github.com/voltmesh/bo4e-go/enums"
)

func dec(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func testInvoice() *bo.Invoice {
	return &bo.Invoice{
		Meta:          bo4e.NewMeta("Rechnung").WithVersion("202401.0.1").WithID("inv-4711"),
		InvoiceNumber: ptr("RE-2024-0042"),
		InvoiceType:   ptr(enums.InvoiceTypePeriodic),
		Status:        ptr(enums.InvoiceStatusUnchecked),
		InvoiceDate:   ptr(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)),
		DueDate:       ptr(time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC)),
		BillingPeriod: &com.TimePeriod{
			Start: ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			End:   ptr(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		},
		Recipient: &bo.BusinessPartner{
			PartnerID: ptr("GP-1001"),
			Name1:     ptr("Stadtwerke Musterstadt GmbH"),
			Roles:     []enums.BusinessPartnerRole{enums.BusinessPartnerRoleCustomer},
			Address: &com.Address{
				Street:      ptr("Rathausplatz"),
				HouseNumber: ptr("1"),
				PostalCode:  ptr("12345"),
				City:        ptr("Musterstadt"),
				CountryCode: ptr(enums.CountryGermany),
			},
		},
		NetAmount:   &com.Amount{Value: dec("1234.56"), Currency: ptr(enums.CurrencyEUR)},
		TaxAmount:   &com.Amount{Value: dec("234.57"), Currency: ptr(enums.CurrencyEUR)},
		GrossAmount: &com.Amount{Value: dec("1469.13"), Currency: ptr(enums.CurrencyEUR)},
		Positions: []com.InvoicePosition{
			{
				PositionNumber: ptr(1),
				PositionText:   ptr("Arbeitspreis März"),
				DeliveryStart:  ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
				DeliveryEnd:    ptr(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
				Quantity:       dec("3456.7"),
				Unit:           ptr(enums.UnitKilowattHour),
				UnitPrice:      dec("0.3179"),
				TotalPrice:     dec("1098.88"),
			},
			{
				PositionNumber: ptr(2),
				PositionText:   ptr("Grundpreis"),
				Quantity:       dec("1"),
				Unit:           ptr(enums.UnitMonth),
				UnitPrice:      dec("135.68"),
				TotalPrice:     dec("135.68"),
			},
		},
	}
}

func testMeter() *bo.Meter {
	return &bo.Meter{
		Meta:        bo4e.NewMeta("Zaehler"),
		MeterNumber: ptr("1APZ0001"),
		Division:    ptr(enums.DivisionElectricity),
		MeterType:   ptr(enums.MeterTypeModernMeasuringDevice),
		Registers: []com.MeterRegister{
			{
				OBISCode:        ptr("1-0:1.8.0"),
				RegisterType:    ptr(enums.RegisterTypeSingleTariff),
				EnergyDirection: ptr(enums.EnergyDirectionFeedOut),
				Unit:            ptr(enums.UnitKilowattHour),
				DecimalPlaces:   ptr(1),
			},
		},
		Location: &com.Address{
			Street:      ptr("Musterstrasse"),
			HouseNumber: ptr("12"),
			PostalCode:  ptr("86150"),
			City:        ptr("Augsburg"),
			CountryCode: ptr(enums.CountryGermany),
		},
		Manufacturer:      ptr("Iskra"),
		ManufacturingYear: ptr(2019),
		InstallationDate:  ptr(time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)),
	}
}

func TestRoundTripInvoice(t *testing.T) {
	inv := testInvoice()

	data, err := bo4e.Marshal(inv)
	require.NoError(t, err)

	var decoded bo.Invoice
	require.NoError(t, bo4e.Unmarshal(data, &decoded))
	assert.Equal(t, inv, &decoded)

	again, err := bo4e.Marshal(&decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestRoundTripMeterBothConventions(t *testing.T) {
	m := testMeter()

	german, err := bo4e.Marshal(m)
	require.NoError(t, err)
	english, err := bo4e.MarshalEnglish(m)
	require.NoError(t, err)
	assert.NotEqual(t, string(german), string(english))

	var fromGerman, fromEnglish bo.Meter
	require.NoError(t, bo4e.Unmarshal(german, &fromGerman))
	require.NoError(t, bo4e.Unmarshal(english, &fromEnglish))

	// The convention is a write-time concern only.
	assert.Equal(t, fromGerman, fromEnglish)
	assert.Equal(t, m, &fromGerman)
}

func TestRoundTripAcceleratedPath(t *testing.T) {
	inv := testInvoice()

	data, err := bo4e.Marshal(inv)
	require.NoError(t, err)

	var decoded bo.Invoice
	require.NoError(t, bo4e.UnmarshalOwned(append([]byte(nil), data...), &decoded))
	assert.Equal(t, inv, &decoded)
}

func TestRoundTripDecimalFidelity(t *testing.T) {
	data, err := bo4e.Marshal(testInvoice())
	require.NoError(t, err)

	// Monetary literals survive without binary-float rounding.
	assert.Contains(t, string(data), `"nettobetrag":{"wert":1234.56`)
	assert.Contains(t, string(data), `"einzelpreis":0.3179`)
}

func TestRoundTripAllAbsent(t *testing.T) {
	var m bo.Meter
	data, err := bo4e.Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	var decoded bo.Meter
	require.NoError(t, bo4e.Unmarshal(data, &decoded))
	assert.Equal(t, m, decoded)
}

func TestRoundTripPrettyIsReparseable(t *testing.T) {
	inv := testInvoice()
	pretty, err := bo4e.MarshalWith(inv, bo4e.Options{Pretty: true})
	require.NoError(t, err)

	var decoded bo.Invoice
	require.NoError(t, bo4e.Unmarshal(pretty, &decoded))
	assert.Equal(t, inv, &decoded)

	// Pretty only changes whitespace.
	compact, err := bo4e.Marshal(&decoded)
	require.NoError(t, err)
	fromPretty, err := bo4e.Marshal(inv)
	require.NoError(t, err)
	assert.Equal(t, string(fromPretty), string(compact))
}
