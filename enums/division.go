package enums

// Division (Sparte) is the energy sector a business object belongs to.
type Division string

const (
	DivisionElectricity       Division = "STROM"
	DivisionGas               Division = "GAS"
	DivisionDistrictHeating   Division = "FERNWAERME"
	DivisionLocalHeating      Division = "NAHWAERME"
	DivisionWater             Division = "WASSER"
	DivisionWastewater        Division = "ABWASSER"
	DivisionElectricityAndGas Division = "STROM_UND_GAS"
)

var divisions = tokenSet(
	DivisionElectricity,
	DivisionGas,
	DivisionDistrictHeating,
	DivisionLocalHeating,
	DivisionWater,
	DivisionWastewater,
	DivisionElectricityAndGas,
)

// ParseDivision validates a wire token against the fixed set.
func ParseDivision(token string) (Division, error) {
	return parse("Division", divisions, token)
}

// GermanName returns the human-readable German name.
func (d Division) GermanName() string {
	switch d {
	case DivisionElectricity:
		return "Strom"
	case DivisionGas:
		return "Gas"
	case DivisionDistrictHeating:
		return "Fernwaerme"
	case DivisionLocalHeating:
		return "Nahwaerme"
	case DivisionWater:
		return "Wasser"
	case DivisionWastewater:
		return "Abwasser"
	case DivisionElectricityAndGas:
		return "Strom und Gas"
	}
	return string(d)
}
