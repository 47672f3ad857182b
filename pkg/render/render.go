// Package render provides output renderers for conversion and comparison results.
package render

import "github.com/dkoosis/convert/pkg/convert"

// Renderer converts results to formatted output.
type Renderer interface {
	RenderConversion(c convert.Conversion) string
	RenderComparison(c convert.Comparison) string
}

// Output modes accepted by New.
const (
	ModeTerminal = "terminal"
	ModeText     = "text"
	ModeJSON     = "json"
)

// New returns the renderer for mode. Unknown modes fall back to plain text.
func New(mode string, theme Theme, width int) Renderer {
	switch mode {
	case ModeJSON:
		return NewJSON()
	case ModeTerminal:
		return NewTerminal(theme, width)
	default:
		return NewText()
	}
}
