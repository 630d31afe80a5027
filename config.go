package bo4e

// Convention selects the field-naming convention used when encoding.
// Decoding is convention-agnostic and ignores this setting.
type Convention uint8

const (
	// German emits the domain-native BO4E field names (default).
	German Convention = iota
	// English emits the English field names.
	English
)

func (c Convention) String() string {
	switch c {
	case German:
		return "german"
	case English:
		return "english"
	}
	return "unknown"
}

// Options parameterize encoding. The zero value means compact German
// output, which is the BO4E standard form. Pretty only affects
// whitespace; it never changes field selection or value semantics.
type Options struct {
	Convention Convention
	Pretty     bool
}
