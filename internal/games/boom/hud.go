package boom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/events"
	"github.com/vovakirdan/tui-boom/internal/games/boom/sim"
)

// HUD animation timings, in seconds.
const (
	scoreRollTime   = 0.6
	bannerSlideTime = 0.35
	bannerShowTime  = 2.5
)

// counter rolls a displayed number toward its target.
type counter struct {
	shown  float32
	target int
	tween  *gween.Tween
}

func (c *counter) set(v int) {
	if v == c.target {
		return
	}
	c.target = v
	c.tween = gween.New(c.shown, float32(v), scoreRollTime, ease.OutQuad)
}

func (c *counter) update(dt float64) {
	if c.tween == nil {
		return
	}
	val, done := c.tween.Update(float32(dt))
	c.shown = val
	if done {
		c.shown = float32(c.target)
		c.tween = nil
	}
}

func (c *counter) value() int {
	return int(c.shown + 0.5)
}

// banner is a message sliding in from the right edge of the maze.
type banner struct {
	text   string
	color  core.Color
	slide  *gween.Tween
	offset float32 // 1 = fully off screen, 0 = in place
	ttl    core.Timer
}

func (b *banner) show(text string, color core.Color) {
	b.text = text
	b.color = color
	b.offset = 1
	b.slide = gween.New(1, 0, bannerSlideTime, ease.OutCubic)
	b.ttl = core.NewCountDown()
	b.ttl.Start(bannerShowTime)
}

func (b *banner) update(dt float64) {
	if b.slide != nil {
		val, done := b.slide.Update(float32(dt))
		b.offset = val
		if done {
			b.slide = nil
		}
	}
	if b.ttl.Update(dt) {
		b.ttl.Reset()
		b.text = ""
	}
}

func (b *banner) visible() bool {
	return b.text != ""
}

// hud follows the session and its current maze to animate the status line.
type hud struct {
	session *Session
	scores  [2]counter
	banner  banner
}

func newHUD(s *Session) *hud {
	h := &hud{session: s}
	s.SubscribeFunc(h.onSession)
	return h
}

func (h *hud) onSession(e events.Event) {
	switch e.(type) {
	case *sim.StartScreenEvent:
		h.banner = banner{}
		h.session.Maze().SubscribeFunc(h.onMaze)
	case *sim.BonusScreenEvent:
		h.banner.show("MAZE CLEARED", core.ColorBrightGreen)
	case *sim.GameEndEvent:
		if h.session.State() == StateWon {
			h.banner.show("YOU WIN", core.ColorBrightYellow)
		}
	}
}

func (h *hud) onMaze(e events.Event) {
	switch ev := e.(type) {
	case *sim.HurryUpEvent:
		h.banner.show("HURRY UP!", core.ColorBrightRed)
	case *sim.ExtraGameEvent:
		h.banner.show("EXTRA GAME", core.ColorBrightMagenta)
	case *sim.ExtraLifeEvent:
		if ev.Entity.Slot() == 2 {
			h.banner.show("EXTRA LIFE P2", core.ColorBrightCyan)
		} else {
			h.banner.show("EXTRA LIFE P1", core.ColorBrightCyan)
		}
	case *sim.MazeFailedEvent:
		h.banner.show("GAME OVER", core.ColorRed)
	}
}

func (h *hud) update(dt float64) {
	for i := range h.scores {
		if p := h.session.Player(i + 1); p != nil {
			h.scores[i].set(p.Score())
		}
		h.scores[i].update(dt)
	}
	h.banner.update(dt)
}
