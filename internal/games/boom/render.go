package boom

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/games/boom/sim"
)

const (
	tileWidth = 2 // screen columns per maze column
	hudHeight = 2 // status line + separator
	footerH   = 2 // letters and bombs
	extraWord = "EXTRA"
)

// glyph is the look of one kind: text for a single tile and its color.
type glyph struct {
	text  string
	color core.Color
}

var enemyGlyphs = map[sim.Kind]glyph{
	sim.KindSoldier:  {"So", core.ColorWhite},
	sim.KindSarge:    {"Sg", core.ColorBrightWhite},
	sim.KindLizzy:    {"Lz", core.ColorGreen},
	sim.KindTaur:     {"Ta", core.ColorOrange},
	sim.KindGunner:   {"Gu", core.ColorBlue},
	sim.KindThing:    {"Th", core.ColorMagenta},
	sim.KindGhost:    {"Gh", core.ColorBrightWhite},
	sim.KindSmoulder: {"Sm", core.ColorRed},
	sim.KindSkully:   {"Sk", core.ColorGray},
	sim.KindGiggler:  {"Gi", core.ColorBrightMagenta},
	sim.KindHead:     {"HH", core.ColorBrightRed},
}

var bulletGlyphs = map[sim.Kind]glyph{
	sim.KindShot:      {"•", core.ColorWhite},
	sim.KindFireball:  {"*", core.ColorOrange},
	sim.KindMGShot:    {"·", core.ColorBrightWhite},
	sim.KindLightbolt: {"z", core.ColorBrightYellow},
	sim.KindFlame:     {"^", core.ColorRed},
	sim.KindPlasma:    {"o", core.ColorBrightCyan},
	sim.KindMagma:     {"@", core.ColorOrange},
	sim.KindMissile:   {"!", core.ColorBrightRed},
}

var bonusGlyphs = map[sim.Kind]glyph{
	sim.KindLightboltBonus:    {"/\\", core.ColorBrightYellow},
	sim.KindSkullBonus:        {"xx", core.ColorBrightWhite},
	sim.KindBombCapacityBonus: {"B+", core.ColorBrightBlue},
	sim.KindFastBombBonus:     {"F!", core.ColorBrightBlue},
	sim.KindBombRadiusBonus:   {"R+", core.ColorBrightBlue},
	sim.KindHeartBonus:        {"<3", core.ColorRed},
	sim.KindFullHeartBonus:    {"<3", core.ColorBrightRed},
	sim.KindShieldBonus:       {"[]", core.ColorBrightCyan},
	sim.KindFastBonus:         {">>", core.ColorBrightGreen},
}

// wallStyles gives the solid and breakable wall colors of each level style.
var wallStyles = [][2]core.Color{
	{core.ColorGray, core.ColorBrick},
	{core.ColorBlue, core.ColorCyan},
	{core.ColorRed, core.ColorOrange},
	{core.ColorGreen, core.ColorBrightGreen},
}

var playerColors = [3]core.Color{core.ColorDefault, core.ColorBrightGreen, core.ColorBrightCyan}

// layer orders drawing: later layers cover earlier ones.
func layer(e *sim.Entity) int {
	switch e.Kind.Category() {
	case sim.CategoryTeleporter, sim.CategoryCoin, sim.CategoryBonus, sim.CategoryExtraLetter:
		return 0
	case sim.CategorySolidWall, sim.CategoryBreakableWall:
		return 1
	case sim.CategoryBomb:
		return 2
	case sim.CategoryLaser, sim.CategoryFlash:
		return 3
	case sim.CategoryEnemy:
		return 4
	case sim.CategoryPlayer:
		return 5
	}
	return 6
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	m := g.session.Maze()
	if m == nil {
		dst.DrawTextCentered(dst.Height()/2, "No maze loaded", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, "Press R to retry", core.ColorGray)
		return
	}

	mazeW := m.Cols() * tileWidth
	mazeH := m.Rows()
	if dst.Width() < mazeW || dst.Height() < mazeH+hudHeight+footerH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", mazeW, mazeH+hudHeight+footerH), core.ColorGray)
		return
	}

	offsetX := (dst.Width() - mazeW) / 2
	offsetY := hudHeight

	g.renderHUD(dst)

	if g.session.State() != StateStartScreen {
		g.renderMaze(dst, m, offsetX, offsetY)
	}
	g.renderFooter(dst, offsetX, offsetY+mazeH)

	g.renderOverlay(dst, offsetX, offsetY, mazeW, mazeH)
}

// renderHUD draws the status line and its separator.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	left := g.playerStatus(1)
	dst.DrawTextColored(0, 0, left, playerColors[1])

	mid := fmt.Sprintf("LEVEL %d/%d  TIME %3d", min(s.LevelIndex()+1, s.LevelCount()), s.LevelCount(), max(int(s.TimeLeft()), 0))
	color := core.ColorDefault
	if m := s.Maze(); m != nil && m.HurryingUp() {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored((dst.Width()-len(mid))/2, 0, mid, color)

	if s.TwoPlayers() {
		right := g.playerStatus(2)
		dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, playerColors[2])
	}

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) playerStatus(slot int) string {
	p := g.session.Player(slot)
	return fmt.Sprintf("P%d x%d HP%2d %07d", slot, p.Lives(), p.Health(), g.hud.scores[slot-1].value())
}

func (g *Game) renderMaze(dst *core.Screen, m *sim.Maze, offsetX, offsetY int) {
	entities := m.Entities()
	sort.SliceStable(entities, func(i, j int) bool {
		return layer(entities[i]) < layer(entities[j])
	})

	for _, e := range entities {
		gl, ok := g.glyphFor(e)
		if !ok {
			continue
		}
		pos, size := e.Position(), e.Size()
		x := offsetX + int(math.Round(pos.Col*tileWidth))
		y := offsetY + int(math.Round(pos.Row))

		// Projectiles and other sub-tile entities draw a single glyph at their center.
		if size.Row < 1 || size.Col < 1 {
			c := e.Rect().Center()
			x = offsetX + int(math.Round(c.Col*tileWidth-0.5))
			y = offsetY + int(math.Floor(c.Row))
			dst.DrawTextColored(x, y, gl.text, gl.color)
			continue
		}

		rows, cols := int(math.Round(size.Row)), int(math.Round(size.Col))
		for r := range rows {
			for c := range cols {
				dst.DrawTextColored(x+c*tileWidth, y+r, gl.text, gl.color)
			}
		}
	}
}

// glyphFor picks the look of an entity. Blinking entities return false on
// their hidden frames; some kinds are never drawn.
func (g *Game) glyphFor(e *sim.Entity) (glyph, bool) {
	blinkOff := (g.tick/4)%2 == 1
	style := wallStyles[g.session.Level().Style%len(wallStyles)]

	switch e.Kind.Category() {
	case sim.CategorySolidWall:
		return glyph{"██", style[0]}, true
	case sim.CategoryBreakableWall:
		if e.IsRemoving() {
			return glyph{"░░", style[1]}, true
		}
		return glyph{"▒▒", style[1]}, true
	case sim.CategoryCoin:
		if e.IsRemoving() && blinkOff {
			return glyph{}, false
		}
		return glyph{"$$", core.ColorGold}, true
	case sim.CategoryTeleporter:
		if e.Reloading() {
			return glyph{"<>", core.ColorGray}, true
		}
		return glyph{"<>", core.ColorBrightMagenta}, true
	case sim.CategoryBomb:
		fuse := int(math.Ceil(e.Fuse()))
		return glyph{fmt.Sprintf("●%d", min(fuse, 9)), core.ColorBrightWhite}, true
	case sim.CategoryLaser:
		switch e.Orientation() {
		case sim.OrientationVertical:
			return glyph{"║║", core.ColorLaser}, true
		case sim.OrientationHorizontal:
			return glyph{"══", core.ColorLaser}, true
		}
		return glyph{"╬╬", core.ColorBrightRed}, true
	case sim.CategoryFlash:
		return glyph{"**", core.ColorBrightWhite}, true
	case sim.CategoryPlayer:
		if e.Shielded() && blinkOff {
			return glyph{}, false
		}
		return glyph{fmt.Sprintf("P%d", e.Slot()), playerColors[e.Slot()%len(playerColors)]}, true
	case sim.CategoryEnemy:
		gl := enemyGlyphs[e.Kind]
		if e.IsRemoving() && blinkOff {
			return glyph{}, false
		}
		if e.Alien() {
			return glyph{"%%", core.ColorPink}, true
		}
		if e.Enraged() {
			gl.color = core.ColorBrightRed
		}
		return gl, true
	case sim.CategoryBullet:
		gl, ok := bulletGlyphs[e.Kind]
		return gl, ok
	case sim.CategoryBonus:
		if e.IsRemoving() && blinkOff {
			return glyph{}, false
		}
		gl, ok := bonusGlyphs[e.Kind]
		return gl, ok
	case sim.CategoryExtraLetter:
		return glyph{string(extraWord[e.LetterID()]) + " ", core.ColorPink}, true
	}
	return glyph{}, false
}

// renderFooter shows the EXTRA letters and bomb stock of each player.
func (g *Game) renderFooter(dst *core.Screen, x, y int) {
	for slot := 1; slot <= 2; slot++ {
		if slot == 2 && !g.session.TwoPlayers() {
			return
		}
		p := g.session.Player(slot)
		var b strings.Builder
		fmt.Fprintf(&b, "P%d ", slot)
		letters := p.Letters()
		for i, got := range letters {
			if got {
				b.WriteByte(extraWord[i])
			} else {
				b.WriteByte('_')
			}
		}
		fmt.Fprintf(&b, "  bombs %d/%d  radius %d", p.BombCapacity()-p.BombCount(), p.BombCapacity(), p.BombRadius())
		if p.FastBomb() {
			b.WriteString("  fast fuse")
		}
		if p.Fast() {
			b.WriteString("  speed")
		}
		dst.DrawTextColored(x, y+slot-1, b.String(), playerColors[slot])
	}
}

// renderOverlay draws the screen banners over the maze.
func (g *Game) renderOverlay(dst *core.Screen, x, y, w, h int) {
	s := g.session
	mid := y + h/2

	switch {
	case g.failed:
		box(dst, x, mid, w, "Cannot load maze", "Press R to retry", core.ColorRed)
	case s.State() == StateStartScreen:
		box(dst, x, mid, w, fmt.Sprintf("LEVEL %d", s.LevelIndex()+1), "Get ready!", core.ColorBrightYellow)
	case s.State() == StateWon:
		box(dst, x, mid, w, "You Win!", fmt.Sprintf("Final Score: %d  -  Press R", s.Score()), core.ColorBrightYellow)
	case s.Over():
		box(dst, x, mid, w, "Game Over", fmt.Sprintf("Final Score: %d  -  Press R", s.Score()), core.ColorBrightRed)
	case g.paused:
		box(dst, x, mid, w, "Paused", "Press P to continue", core.ColorDefault)
	case g.hud.banner.visible():
		b := &g.hud.banner
		bx := x + (w-len(b.text))/2 + int(b.offset*float32(w))
		if bx < x+w {
			text := b.text
			if over := bx + len(text) - (x + w); over > 0 {
				text = text[:len(text)-over]
			}
			dst.DrawTextColored(bx, mid, text, b.color)
		}
	}
}

func box(dst *core.Screen, x, y, w int, title, hint string, c core.Color) {
	bw := max(len([]rune(title)), len([]rune(hint))) + 4
	bx := x + (w-bw)/2
	dst.FillRect(bx, y-2, bw, 5, ' ', core.ColorDefault)
	dst.DrawBox(bx, y-2, bw, 5, c)
	dst.DrawTextColored(bx+(bw-len([]rune(title)))/2, y-1, title, c)
	dst.DrawTextColored(bx+(bw-len([]rune(hint)))/2, y, hint, core.ColorGray)
}
