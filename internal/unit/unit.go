// Package unit defines the weight units the service converts between and the
// registry that resolves wire tokens to them.
package unit

import "fmt"

// Unit identifies a supported weight unit. Its value is the wire token used
// in requests and responses.
type Unit string

const (
	Gram     Unit = "gram"
	Kilogram Unit = "kilo"
	Ton      Unit = "ton"
	Pound    Unit = "lb"
)

// units holds the registry in declaration order. The order is part of the
// error message contract, so new units go at the end.
var units = []Unit{Gram, Kilogram, Ton, Pound}

// gramsPer maps each unit to the mass of one unit in grams. The pound entry
// is the avoirdupois pound, exact by definition. The map is never written
// after package initialization.
var gramsPer = map[Unit]float64{
	Gram:     1,
	Kilogram: 1_000,
	Ton:      1_000_000,
	Pound:    453.59237,
}

// Parse resolves a wire token to its Unit. Matching is exact and
// case-sensitive; any other token, including the empty string, fails with
// *UnrecognizedUnitError carrying the token as received.
func Parse(token string) (Unit, error) {
	u := Unit(token)
	if _, ok := gramsPer[u]; !ok {
		return "", &UnrecognizedUnitError{Token: token}
	}
	return u, nil
}

// Units returns the supported units in registry order.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// Valid reports whether u is a registered unit.
func (u Unit) Valid() bool {
	_, ok := gramsPer[u]
	return ok
}

// Factor returns the mass of one u in grams. It returns 0 for values outside
// the registry; callers that accept externally built Units check Valid first.
func (u Unit) Factor() float64 {
	return gramsPer[u]
}

// String returns the wire token.
func (u Unit) String() string {
	return string(u)
}

// UnrecognizedUnitError reports a token that does not name a registered unit.
type UnrecognizedUnitError struct {
	Token string
}

func (e *UnrecognizedUnitError) Error() string {
	return fmt.Sprintf("cannot process unit '%s': use either 'gram', 'kilo', 'ton', or 'lb'", e.Token)
}
