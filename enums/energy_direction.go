package enums

// EnergyDirection (Energierichtung) distinguishes consumption from
// production.
type EnergyDirection string

const (
	// Feed-out: energy taken from the grid (Ausspeisung)
	EnergyDirectionFeedOut EnergyDirection = "AUSSP"
	// Feed-in: energy delivered into the grid (Einspeisung)
	EnergyDirectionFeedIn EnergyDirection = "EINSP"
)

var energyDirections = tokenSet(EnergyDirectionFeedOut, EnergyDirectionFeedIn)

// ParseEnergyDirection validates a wire token against the fixed set.
func ParseEnergyDirection(token string) (EnergyDirection, error) {
	return parse("EnergyDirection", energyDirections, token)
}
