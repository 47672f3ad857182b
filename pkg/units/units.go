// Package units defines the supported measurement units, the families they
// belong to, and the per-family conversion formulas.
//
// Every family is a closed world: conversions exist only for the directed
// pairs listed in that family's table. Anything else, including converting a
// unit to itself, is reported as ErrUnsupportedConversion.
package units

import "github.com/cockroachdb/errors"

// Family identifies a closed set of mutually convertible units.
type Family string

const (
	Distance    Family = "distance"
	Weight      Family = "weight"
	Temperature Family = "temperature"
)

// Unit is a unit symbol such as "km" or "F".
type Unit string

const (
	Kilometer Unit = "km"
	Mile      Unit = "mi"
	Meter     Unit = "m"

	Gram  Unit = "g"
	Ounce Unit = "oz"
	Pound Unit = "lb"

	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Kelvin     Unit = "K"
)

// Families lists the supported families in classification order.
var Families = []Family{Distance, Weight, Temperature}

var members = map[Family][]Unit{
	Distance:    {Kilometer, Mile, Meter},
	Weight:      {Gram, Ounce, Pound},
	Temperature: {Celsius, Fahrenheit, Kelvin},
}

// Members returns the units belonging to f, or nil for an unknown family.
func Members(f Family) []Unit {
	us := members[f]
	if us == nil {
		return nil
	}
	out := make([]Unit, len(us))
	copy(out, us)
	return out
}

// Classify returns the family u belongs to.
func Classify(u Unit) (Family, error) {
	for _, f := range Families {
		for _, m := range members[f] {
			if m == u {
				return f, nil
			}
		}
	}
	return "", errors.Mark(errors.Newf("unknown unit: %q", string(u)), ErrUnknownUnit)
}

// ParseFamily validates a declared conversion type.
func ParseFamily(s string) (Family, error) {
	f := Family(s)
	if _, ok := members[f]; !ok {
		return "", errors.Mark(errors.Newf("unknown type %q", s), ErrUnknownType)
	}
	return f, nil
}
