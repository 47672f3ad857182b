// Package convert routes conversion requests to the unit converters, applies
// the configured rounding precision, and compares quantities across units of
// the same family.
//
// A Converter is built once from Settings and never changes afterwards, so a
// single value can serve every request in the process.
package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dkoosis/convert/pkg/units"
)

// Settings holds the values a Converter needs from configuration.
type Settings struct {
	Precision   int
	Temperature TemperatureDefaults
}

// TemperatureDefaults are the units used when a temperature request omits them.
type TemperatureDefaults struct {
	From units.Unit
	To   units.Unit
}

// DefaultSettings returns two decimal places and Celsius to Fahrenheit.
func DefaultSettings() Settings {
	return Settings{
		Precision:   2,
		Temperature: TemperatureDefaults{From: units.Celsius, To: units.Fahrenheit},
	}
}

// Converter converts and compares values at a fixed precision.
type Converter struct {
	settings Settings
}

// New creates a Converter. Negative precision is treated as zero.
func New(s Settings) *Converter {
	if s.Precision < 0 {
		s.Precision = 0
	}
	return &Converter{settings: s}
}

// Precision returns the number of decimal places applied to results.
func (c *Converter) Precision() int {
	return c.settings.Precision
}

// Conversion describes a completed conversion.
type Conversion struct {
	Family units.Family `json:"type"`
	Value  float64      `json:"value"`
	From   units.Unit   `json:"from"`
	To     units.Unit   `json:"to"`
	Result float64      `json:"result"`
}

// Convert converts value from one unit to another within family and rounds
// the result. Empty temperature units fall back to the configured defaults.
func (c *Converter) Convert(family string, value float64, from, to units.Unit) (float64, error) {
	conv, err := c.Resolve(family, value, from, to)
	if err != nil {
		return 0, err
	}
	return conv.Result, nil
}

// ConvertString is Convert for a value given as text.
func (c *Converter) ConvertString(family, value string, from, to units.Unit) (float64, error) {
	v, err := ParseValue(value)
	if err != nil {
		return 0, err
	}
	return c.Convert(family, v, from, to)
}

// Resolve performs a conversion and reports the request as it was actually
// executed, default units included.
func (c *Converter) Resolve(family string, value float64, from, to units.Unit) (Conversion, error) {
	if err := checkFinite(value); err != nil {
		return Conversion{}, err
	}
	f, err := units.ParseFamily(family)
	if err != nil {
		return Conversion{}, err
	}
	if f == units.Temperature {
		if from == "" {
			from = c.settings.Temperature.From
		}
		if to == "" {
			to = c.settings.Temperature.To
		}
	}
	raw, err := units.Convert(f, value, from, to)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{
		Family: f,
		Value:  value,
		From:   from,
		To:     to,
		Result: c.Round(raw),
	}, nil
}

// Round rounds v half away from zero at the configured precision.
func (c *Converter) Round(v float64) float64 {
	return Round(v, c.settings.Precision)
}

// Round rounds v half away from zero to precision decimal places.
func Round(v float64, precision int) float64 {
	m := math.Pow(10, float64(precision))
	return math.Round(v*m) / m
}

// ParseValue reads a finite number from text. Surrounding whitespace is ignored.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Mark(errors.Newf("invalid numeric value %q", s), units.ErrInvalidValue)
	}
	if err := checkFinite(v); err != nil {
		return 0, errors.Mark(errors.Newf("invalid numeric value %q", s), units.ErrInvalidValue)
	}
	return v, nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Mark(errors.Newf("invalid numeric value %v", v), units.ErrInvalidValue)
	}
	return nil
}
