package convert

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/dkoosis/convert/pkg/units"
)

// Equal is the Larger value reported when both sides match.
const Equal = "equal"

// Comparison is the outcome of comparing two quantities.
type Comparison struct {
	Family units.Family `json:"type"`
	Value1 float64      `json:"value1"`
	Unit1  units.Unit   `json:"unit1"`
	Value2 float64      `json:"value2"`
	Unit2  units.Unit   `json:"unit2"`

	// Converted2 is Value2 expressed in Unit1 at the configured precision.
	Converted2 float64 `json:"converted2"`

	Larger     string  `json:"larger"`
	Difference float64 `json:"difference"`
	Equal      bool    `json:"equal"`
}

// Compare reports which of two same-family quantities is larger and by how
// much, measured in unit1.
//
// Equality is exact: Equal is set only when value1 matches the converted
// value2, so a Difference that rounds to zero can still come with Equal false.
func (c *Converter) Compare(value1 float64, unit1 units.Unit, value2 float64, unit2 units.Unit) (Comparison, error) {
	if err := checkFinite(value1); err != nil {
		return Comparison{}, err
	}
	if err := checkFinite(value2); err != nil {
		return Comparison{}, err
	}

	fam1, err := units.Classify(unit1)
	if err != nil {
		return Comparison{}, err
	}
	fam2, err := units.Classify(unit2)
	if err != nil {
		return Comparison{}, err
	}
	if fam1 != fam2 {
		return Comparison{}, errors.Mark(
			errors.Newf("cannot compare %s (%s) with %s (%s)", unit1, fam1, unit2, fam2),
			units.ErrIncompatibleFamilies)
	}

	converted := value2
	if unit1 != unit2 {
		converted, err = c.Convert(string(fam1), value2, unit2, unit1)
		if err != nil {
			return Comparison{}, err
		}
	}

	cmp := Comparison{
		Family:     fam1,
		Value1:     value1,
		Unit1:      unit1,
		Value2:     value2,
		Unit2:      unit2,
		Converted2: converted,
		Difference: c.Round(math.Abs(value1 - converted)),
	}
	switch {
	case value1 > converted:
		cmp.Larger = Describe(value1, unit1)
	case value1 < converted:
		cmp.Larger = Describe(value2, unit2)
	default:
		cmp.Larger = Equal
		cmp.Equal = true
	}
	return cmp, nil
}

// Describe formats a quantity as "<value> <unit>" using the shortest exact
// decimal form of value.
func Describe(v float64, u units.Unit) string {
	return FormatValue(v) + " " + string(u)
}

// FormatValue formats v with the fewest digits that read back to the same value.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
