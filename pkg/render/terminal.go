package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/convert/pkg/convert"
	"github.com/dkoosis/convert/pkg/units"
)

// Terminal renders results as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// RenderConversion formats a conversion as a titled "value → result" line.
func (t *Terminal) RenderConversion(c convert.Conversion) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(familyTitle(c.Family)))
	sb.WriteString("\n  ")
	sb.WriteString(t.theme.Muted.Render(convert.Describe(c.Value, c.From)))
	sb.WriteString(" " + t.theme.Icons.Arrow + " ")
	sb.WriteString(t.theme.Success.Render(convert.Describe(c.Result, c.To)))
	sb.WriteString("\n")
	return t.clip(sb.String())
}

// RenderComparison formats a comparison as an aligned label/value block.
func (t *Terminal) RenderComparison(c convert.Comparison) string {
	type row struct {
		label string
		value string
		style func(...string) string
	}

	second := convert.Describe(c.Value2, c.Unit2)
	if c.Unit1 != c.Unit2 {
		second += t.theme.Muted.Render("  (" + convert.Describe(c.Converted2, c.Unit1) + ")")
	}
	rows := []row{
		{t.theme.Icons.Bullet + " first", convert.Describe(c.Value1, c.Unit1), t.theme.Primary.Render},
		{t.theme.Icons.Bullet + " second", second, t.theme.Primary.Render},
	}
	if c.Equal {
		rows = append(rows, row{t.theme.Icons.Equal + " result", "equal", t.theme.Success.Render})
	} else {
		rows = append(rows, row{t.theme.Icons.Larger + " larger", c.Larger, t.theme.Warning.Render})
	}
	rows = append(rows, row{t.theme.Icons.Bullet + " difference", convert.Describe(c.Difference, c.Unit1), t.theme.Primary.Render})

	maxLabel := 0
	for _, r := range rows {
		if w := visualWidth(r.label); w > maxLabel {
			maxLabel = w
		}
	}

	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(familyTitle(c.Family) + " comparison"))
	sb.WriteString("\n")
	for _, r := range rows {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(padRight(r.label, maxLabel)))
		sb.WriteString("  ")
		sb.WriteString(r.style(r.value))
		sb.WriteString("\n")
	}
	return t.clip(sb.String())
}

// clip truncates each line to the terminal width, skipping ANSI sequences.
func (t *Terminal) clip(s string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > t.width {
			lines[i] = lipgloss.NewStyle().MaxWidth(t.width).Render(line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// familyTitle returns the display title for a family, e.g. "Temperature".
// cases.Caser is not safe for concurrent use, so one is built per call.
func familyTitle(f units.Family) string {
	return cases.Title(language.English).String(string(f))
}

// visualWidth returns the display width of a string in terminal cells.
func visualWidth(s string) int {
	return runewidth.StringWidth(s)
}

func padRight(s string, width int) string {
	w := visualWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
