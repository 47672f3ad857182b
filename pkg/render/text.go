package render

import (
	"strings"

	"github.com/dkoosis/convert/pkg/convert"
)

// Text renders results as plain lines with no ANSI codes, suitable for pipes
// and scripts.
type Text struct{}

// NewText creates a plain text renderer.
func NewText() *Text {
	return &Text{}
}

// RenderConversion prints the bare result.
func (x *Text) RenderConversion(c convert.Conversion) string {
	return convert.FormatValue(c.Result) + "\n"
}

// RenderComparison prints either an equality line or the larger side
// followed by the difference in the first unit.
func (x *Text) RenderComparison(c convert.Comparison) string {
	var sb strings.Builder
	if c.Equal {
		sb.WriteString(convert.Describe(c.Value1, c.Unit1))
		sb.WriteString(" equals ")
		sb.WriteString(convert.Describe(c.Value2, c.Unit2))
		sb.WriteString("\n")
		return sb.String()
	}
	sb.WriteString(c.Larger + " is larger\n")
	sb.WriteString("Difference: " + convert.Describe(c.Difference, c.Unit1) + "\n")
	return sb.String()
}
