package enums

// Unit (Einheit) is a unit of measurement used on quantities and
// prices.
type Unit string

const (
	UnitWatt               Unit = "W"
	UnitKilowatt           Unit = "KW"
	UnitMegawatt           Unit = "MW"
	UnitWattHour           Unit = "WH"
	UnitKilowattHour       Unit = "KWH"
	UnitMegawattHour       Unit = "MWH"
	UnitVar                Unit = "VAR"
	UnitKilovar            Unit = "KVAR"
	UnitVarHour            Unit = "VARH"
	UnitKilovarHour        Unit = "KVARH"
	UnitCubicMeter         Unit = "KUBIKMETER"
	UnitPiece              Unit = "STUECK"
	UnitSecond             Unit = "SEKUNDE"
	UnitMinute             Unit = "MINUTE"
	UnitHour               Unit = "STUNDE"
	UnitQuarterHour        Unit = "VIERTEL_STUNDE"
	UnitDay                Unit = "TAG"
	UnitWeek               Unit = "WOCHE"
	UnitMonth              Unit = "MONAT"
	UnitQuarter            Unit = "QUARTAL"
	UnitHalfYear           Unit = "HALBJAHR"
	UnitYear               Unit = "JAHR"
	UnitPercent            Unit = "PROZENT"
	UnitKilowattHourKelvin Unit = "KWHK"
)

var units = tokenSet(
	UnitWatt, UnitKilowatt, UnitMegawatt,
	UnitWattHour, UnitKilowattHour, UnitMegawattHour,
	UnitVar, UnitKilovar, UnitVarHour, UnitKilovarHour,
	UnitCubicMeter, UnitPiece,
	UnitSecond, UnitMinute, UnitHour, UnitQuarterHour,
	UnitDay, UnitWeek, UnitMonth, UnitQuarter, UnitHalfYear, UnitYear,
	UnitPercent, UnitKilowattHourKelvin,
)

// ParseUnit validates a wire token against the fixed set.
func ParseUnit(token string) (Unit, error) {
	return parse("Unit", units, token)
}
