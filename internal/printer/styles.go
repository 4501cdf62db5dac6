package printer

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	mutedColor     = lipgloss.Color("#666666")
)

// labelWidth aligns "label:" columns in text output.
const labelWidth = 7

// styles renders the parts of text output. Every function is the identity
// when color is off.
type styles struct {
	name  func(...string) string
	label func(...string) string
	value func(...string) string
}

func plain(strs ...string) string { return strings.Join(strs, " ") }

// newStyles builds styles bound to w. The renderer inspects w itself, so
// output to a pipe or buffer carries no escape codes even with color on.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		return styles{name: plain, label: plain, value: plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		name:  r.NewStyle().Bold(true).Foreground(primaryColor).Render,
		label: r.NewStyle().Foreground(mutedColor).Render,
		value: r.NewStyle().Foreground(secondaryColor).Render,
	}
}
