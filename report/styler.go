package report

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Styler decorates report fragments. Styling carries no meaning beyond visual grouping.
type Styler interface {
	Inverse(s string) string
	Red(s string) string
	Green(s string) string
	Yellow(s string) string
	Blue(s string) string
	Rainbow(s string) string
}

// NewStyler picks ANSI styling when out is a terminal and styling was not
// disabled, and plain text otherwise.
func NewStyler(out io.Writer, disabled bool) Styler {
	if disabled {
		return PlainStyler{}
	}
	f, ok := out.(*os.File)
	if !ok {
		return PlainStyler{}
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return PlainStyler{}
	}
	return NewANSIStyler()
}

// PlainStyler leaves text untouched
type PlainStyler struct{}

func (PlainStyler) Inverse(s string) string { return s }
func (PlainStyler) Red(s string) string     { return s }
func (PlainStyler) Green(s string) string   { return s }
func (PlainStyler) Yellow(s string) string  { return s }
func (PlainStyler) Blue(s string) string    { return s }
func (PlainStyler) Rainbow(s string) string { return s }

// ANSIStyler renders with terminal escape sequences
type ANSIStyler struct {
	inverse *color.Color
	red     *color.Color
	green   *color.Color
	yellow  *color.Color
	blue    *color.Color
	rainbow []*color.Color
}

func NewANSIStyler() *ANSIStyler {
	// EnableColor overrides fatih/color's own NoColor detection; NewStyler already decided.
	enabled := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		c.EnableColor()
		return c
	}
	return &ANSIStyler{
		inverse: enabled(color.FgWhite, color.ReverseVideo),
		red:     enabled(color.FgRed),
		green:   enabled(color.FgGreen),
		yellow:  enabled(color.FgYellow),
		blue:    enabled(color.FgBlue),
		rainbow: []*color.Color{
			enabled(color.FgRed),
			enabled(color.FgYellow),
			enabled(color.FgGreen),
			enabled(color.FgBlue),
			enabled(color.FgMagenta),
		},
	}
}

func (a *ANSIStyler) Inverse(s string) string { return a.inverse.Sprint(s) }
func (a *ANSIStyler) Red(s string) string     { return a.red.Sprint(s) }
func (a *ANSIStyler) Green(s string) string   { return a.green.Sprint(s) }
func (a *ANSIStyler) Yellow(s string) string  { return a.yellow.Sprint(s) }
func (a *ANSIStyler) Blue(s string) string    { return a.blue.Sprint(s) }

// Rainbow cycles colors letter by letter; whitespace is left unstyled and does not advance the cycle.
func (a *ANSIStyler) Rainbow(s string) string {
	var b strings.Builder
	i := 0
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(a.rainbow[i%len(a.rainbow)].Sprint(string(r)))
		i++
	}
	return b.String()
}
