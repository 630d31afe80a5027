package enums

// RegisterType (Tarifart) is the tariff classification of a meter
// register.
type RegisterType string

const (
	RegisterTypeSingleTariff RegisterType = "EINTARIF"
	RegisterTypeDoubleTariff RegisterType = "ZWEITARIF"
	RegisterTypeMultiTariff  RegisterType = "MEHRTARIF"
)

var registerTypes = tokenSet(
	RegisterTypeSingleTariff,
	RegisterTypeDoubleTariff,
	RegisterTypeMultiTariff,
)

// ParseRegisterType validates a wire token against the fixed set.
func ParseRegisterType(token string) (RegisterType, error) {
	return parse("RegisterType", registerTypes, token)
}
