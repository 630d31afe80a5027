// Package enums contains the BO4E enumerations. Each enumeration is a
// typed string whose value is its fixed wire token (uppercase with
// underscores, as defined by the standard); tokens are identical under
// both naming conventions and are never translated. The ParseX
// functions validate a wire token against the closed set and fail with
// a bo4e.UnknownEnumError for anything outside it — unknown enum tokens
// are never silently mapped to a default variant.
package enums

import bo4e "github.com/voltmesh/bo4e-go"

func tokenSet[E ~string](tokens ...E) map[E]struct{} {
	set := make(map[E]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func parse[E ~string](enum string, set map[E]struct{}, token string) (E, error) {
	v := E(token)
	if _, ok := set[v]; !ok {
		return "", &bo4e.UnknownEnumError{Enum: enum, Token: token}
	}
	return v, nil
}
