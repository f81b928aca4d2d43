package boom

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boom/internal/config"
	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/games/boom/sim"
	"github.com/vovakirdan/tui-boom/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "boom"

// Package-level settings applied on the next Reset.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	forceTwoPlayers    bool
	selectedStartLevel int
	logger             = log.Default().WithPrefix("boom")
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetTwoPlayers forces a two player game regardless of the config file.
func SetTwoPlayers(on bool) {
	forceTwoPlayers = on
}

// SetStartLevel sets the starting level (1-based). 0 means start from the first.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetLogger replaces the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Options selects how the next Reset builds a session.
type Options struct {
	ConfigPath string
	Difficulty config.DifficultyPreset
	TwoPlayers bool
	StartLevel int // 1-based, 0 starts from the first level
}

func packageOptions() Options {
	return Options{
		ConfigPath: configPath,
		Difficulty: difficultyPreset,
		TwoPlayers: forceTwoPlayers,
		StartLevel: selectedStartLevel,
	}
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	opts    *Options // nil reads the package-level settings
	cfg     config.BoomConfig

	session  *Session
	controls [2]playerControl
	hud      *hud

	tick   uint64
	paused bool
	failed bool // the level list could not be loaded
}

// New creates a boom game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// NewWithOptions creates a game that ignores the package-level settings.
// Each SSH session gets its own.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: &opts}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Boom" }

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	opts := packageOptions()
	if g.opts != nil {
		opts = *g.opts
	}

	cfg, err := config.LoadBoom(opts.ConfigPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultBoomConfig()
	}
	if opts.Difficulty != "" {
		config.ApplyBoomPreset(&cfg, opts.Difficulty)
	}
	if opts.TwoPlayers {
		cfg.Players.TwoPlayers = true
	}
	g.cfg = cfg

	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	levels := make([]Level, len(cfg.Levels))
	for i, l := range cfg.Levels {
		levels[i] = Level{
			Maze:  l.Maze,
			Style: l.Style,
			Time:  difficulty.LevelTime(l.Time, i),
		}
	}

	first := 0
	if opts.StartLevel > 0 && opts.StartLevel <= len(levels) {
		first = opts.StartLevel - 1
	}

	g.session = NewSession(SessionConfig{
		Levels:     levels,
		FirstLevel: first,
		TwoPlayers: cfg.Players.TwoPlayers,
		Lives:      cfg.Players.Lives,
		StartDelay: cfg.Round.StartScreenDelay,
		BonusDelay: cfg.Round.BonusScreenDelay,
		Seed:       runtime.Seed,
		Logger:     logger,
	})
	g.hud = newHUD(g.session)
	g.controls = [2]playerControl{}
	g.tick = 0
	g.paused = false
	g.failed = false

	if err := g.session.Start(); err != nil {
		logger.Error("cannot start game", "err", err)
		g.failed = true
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++

	over := g.failed || g.session.Over()
	if over && (in.Any(core.ActionRestart) || in.Any(core.ActionConfirm)) {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.runtime.Seed + int64(g.tick),
		})
		return core.StepResult{State: g.State()}
	}
	if over {
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionPause) && g.session.State() == StateRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionConfirm) {
		if err := g.session.Skip(); err != nil {
			g.fail(err)
			return core.StepResult{State: g.State()}
		}
	}

	dt := g.runtime.TickDelay()
	running := g.session.State() == StateRunning
	for i := range g.controls {
		slot := i + 1
		frame := in.Player(core.PlayerID(slot))
		if !running {
			g.controls[i].release(g.session.Player(slot))
			continue
		}
		g.controls[i].update(frame, g.session.Player(slot), dt, g.cfg.Controls)
	}

	if err := g.session.Update(dt); err != nil {
		g.fail(err)
	}
	g.hud.update(dt)

	return core.StepResult{State: g.State()}
}

func (g *Game) fail(err error) {
	logger.Error("session stopped", "err", err)
	g.failed = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.failed || g.session.Over(),
		Paused:   g.paused,
	}
}

// DrainRounds reports the mazes finished since the last call.
func (g *Game) DrainRounds() []registry.RoundResult {
	if g.session == nil {
		return nil
	}
	return g.session.DrainResults()
}

// playerControl turns terminal key presses into the held-key model of the
// simulation. Terminals report presses and repeats but no releases, so a
// direction is held for a while after its last press and a refused bomb is
// retried for a short window.
type playerControl struct {
	direction core.Direction
	held      core.Timer
	bombing   core.Timer
}

var moves = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

func (c *playerControl) update(in core.InputFrame, p *sim.Entity, dt float64, cfg config.ControlsConfig) {
	if p == nil || !p.Attached() || p.IsRemoving() {
		c.release(p)
		return
	}

	pressed := core.NoDirection
	for _, a := range moves {
		if in.Has(a) {
			pressed = a.Direction()
		}
	}
	if pressed != core.NoDirection {
		c.direction = pressed
		c.held = core.NewCountDown()
		c.held.Start(cfg.HoldSeconds)
	} else if c.held.Update(dt) {
		c.held.Reset()
		c.direction = core.NoDirection
	}
	p.SetWantedDirection(c.direction)

	if in.Has(core.ActionBomb) {
		c.bombing = core.NewCountUp()
		c.bombing.Start(cfg.BombRetrySeconds)
	}
	if c.bombing.Active() {
		if p.DropBomb() || c.bombing.Update(dt) {
			c.bombing.Reset()
		}
	}
}

func (c *playerControl) release(p *sim.Entity) {
	c.direction = core.NoDirection
	c.held.Reset()
	c.bombing.Reset()
	if p != nil && p.Attached() {
		p.SetWantedDirection(core.NoDirection)
	}
}
