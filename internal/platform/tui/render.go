package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boom/internal/core"
)

// ansiCodes maps core colors to terminal color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrick:         "130",
	core.ColorGold:          "220",
	core.ColorPink:          "213",
	core.ColorLaser:         "229",
}

// Palette holds one lipgloss style per core color. SSH sessions build
// theirs from the session renderer so colors follow the client terminal.
type Palette map[core.Color]lipgloss.Style

// NewPalette creates the palette for r, or for the default renderer if r
// is nil.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{core.ColorDefault: r.NewStyle()}
	for c, code := range ansiCodes {
		p[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

var defaultPalette = NewPalette(nil)

// RenderScreen converts a Screen buffer to a styled string with the
// default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a Screen buffer to a styled string. Runs of cells sharing
// a color are styled together.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	flush := func(c core.Color) {
		if run.Len() == 0 {
			return
		}
		style, ok := p[c]
		if !ok {
			style = p[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
		run.Reset()
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush(current)
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(current)
	}
	return sb.String()
}
