package enums

// Currency (Waehrung) is an ISO 4217 currency code.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyCHF Currency = "CHF"
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
	CurrencyDKK Currency = "DKK"
	CurrencySEK Currency = "SEK"
	CurrencyNOK Currency = "NOK"
	CurrencyPLN Currency = "PLN"
	CurrencyCZK Currency = "CZK"
	CurrencyHUF Currency = "HUF"
	CurrencyRON Currency = "RON"
	CurrencyBGN Currency = "BGN"
	CurrencyISK Currency = "ISK"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyCNY Currency = "CNY"
	CurrencyTRY Currency = "TRY"
)

var currencies = tokenSet(
	CurrencyEUR, CurrencyCHF, CurrencyGBP, CurrencyUSD, CurrencyJPY,
	CurrencyDKK, CurrencySEK, CurrencyNOK, CurrencyPLN, CurrencyCZK,
	CurrencyHUF, CurrencyRON, CurrencyBGN, CurrencyISK, CurrencyCAD,
	CurrencyAUD, CurrencyCNY, CurrencyTRY,
)

// ParseCurrency validates a wire token against the fixed set.
func ParseCurrency(token string) (Currency, error) {
	return parse("Currency", currencies, token)
}
