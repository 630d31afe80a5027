package enums

// Country (Landescode) is an ISO 3166-1 alpha-2 country code. The set
// covers the European market area.
type Country string

const (
	CountryGermany       Country = "DE"
	CountryAustria       Country = "AT"
	CountrySwitzerland   Country = "CH"
	CountryNetherlands   Country = "NL"
	CountryBelgium       Country = "BE"
	CountryFrance        Country = "FR"
	CountryLuxembourg    Country = "LU"
	CountryPoland        Country = "PL"
	CountryCzechRepublic Country = "CZ"
	CountryDenmark       Country = "DK"
	CountryItaly         Country = "IT"
	CountrySpain         Country = "ES"
	CountryUnitedKingdom Country = "GB"
	CountrySweden        Country = "SE"
	CountryNorway        Country = "NO"
	CountryFinland       Country = "FI"
	CountryPortugal      Country = "PT"
	CountryGreece        Country = "GR"
	CountryIreland       Country = "IE"
	CountryHungary       Country = "HU"
	CountrySlovakia      Country = "SK"
	CountrySlovenia      Country = "SI"
	CountryCroatia       Country = "HR"
	CountryRomania       Country = "RO"
	CountryBulgaria      Country = "BG"
	CountryEstonia       Country = "EE"
	CountryLatvia        Country = "LV"
	CountryLithuania     Country = "LT"
	CountryCyprus        Country = "CY"
	CountryMalta         Country = "MT"
	CountryLiechtenstein Country = "LI"
	CountryIceland       Country = "IS"
)

var countries = tokenSet(
	CountryGermany, CountryAustria, CountrySwitzerland, CountryNetherlands,
	CountryBelgium, CountryFrance, CountryLuxembourg, CountryPoland,
	CountryCzechRepublic, CountryDenmark, CountryItaly, CountrySpain,
	CountryUnitedKingdom, CountrySweden, CountryNorway, CountryFinland,
	CountryPortugal, CountryGreece, CountryIreland, CountryHungary,
	CountrySlovakia, CountrySlovenia, CountryCroatia, CountryRomania,
	CountryBulgaria, CountryEstonia, CountryLatvia, CountryLithuania,
	CountryCyprus, CountryMalta, CountryLiechtenstein, CountryIceland,
)

// ParseCountry validates a wire token against the fixed set.
func ParseCountry(token string) (Country, error) {
	return parse("Country", countries, token)
}
