package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-boom/internal/core"
)

func plainPalette() Palette {
	return NewPalette(lipgloss.NewRenderer(io.Discard))
}

func TestPaletteCoversEveryColor(t *testing.T) {
	p := NewPalette(nil)
	for c := core.ColorDefault; c < core.NumColors; c++ {
		_, ok := p[c]
		assert.True(t, ok, "color %d", c)
	}
}

func TestPaletteRenderPlain(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColored(0, 0, "██", core.ColorGray)
	s.DrawTextColored(2, 0, "P1", core.ColorBrightCyan)
	s.DrawTextColored(0, 2, "So", core.ColorRed)

	assert.Equal(t, s.String(), plainPalette().Render(s))
}

func TestPaletteRenderEmptyScreen(t *testing.T) {
	s := core.NewScreen(0, 2)
	assert.Equal(t, "\n", plainPalette().Render(s))
}
