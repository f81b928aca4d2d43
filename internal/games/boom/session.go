package boom

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/events"
	"github.com/vovakirdan/tui-boom/internal/games/boom/sim"
	"github.com/vovakirdan/tui-boom/internal/registry"
)

// SessionState is the screen a session is showing.
type SessionState int

const (
	StateMenu SessionState = iota
	StateStartScreen
	StateRunning
	StateBonusScreen
	StateWon
)

func (s SessionState) String() string {
	switch s {
	case StateStartScreen:
		return "start screen"
	case StateRunning:
		return "running"
	case StateBonusScreen:
		return "bonus screen"
	case StateWon:
		return "won"
	}
	return "menu"
}

// Session defaults, in seconds.
const (
	DefaultStartScreenDelay = 2.0
	DefaultBonusScreenDelay = 2.0
)

// ErrSessionState is returned when Start is called while a maze is shown.
var ErrSessionState = errors.New("boom: session cannot start in this state")

// SessionConfig configures a Session.
type SessionConfig struct {
	Levels     []Level
	FirstLevel int
	TwoPlayers bool
	Lives      int
	StartDelay float64
	BonusDelay float64
	Seed       int64
	Logger     *log.Logger
}

// Session drives a whole game: it loads each level's maze, keeps the players
// between mazes and switches screens on timers. Observers subscribe through
// the embedded Publisher.
type Session struct {
	events.Publisher

	cfg     SessionConfig
	players [2]*sim.Entity
	state   SessionState

	maze    *sim.Maze
	level   Level
	solved  int
	time    float64
	elapsed float64

	startTimer core.Timer
	endTimer   core.Timer

	rng     *rand.Rand
	logger  *log.Logger
	results []registry.RoundResult
}

// NewSession creates a session waiting in the menu state.
func NewSession(cfg SessionConfig) *Session {
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultLevels()
	}
	if cfg.Lives <= 0 {
		cfg.Lives = sim.PlayerLives
	}
	if cfg.StartDelay <= 0 {
		cfg.StartDelay = DefaultStartScreenDelay
	}
	if cfg.BonusDelay <= 0 {
		cfg.BonusDelay = DefaultBonusScreenDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default().WithPrefix("boom")
	}

	s := &Session{
		cfg:        cfg,
		solved:     max(cfg.FirstLevel, 0),
		startTimer: core.NewCountUp(),
		endTimer:   core.NewCountUp(),
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		logger:     cfg.Logger,
	}
	for i := range s.players {
		p := sim.NewPlayer(i + 1)
		p.SetLives(cfg.Lives)
		s.players[i] = p
	}
	if !cfg.TwoPlayers {
		s.players[1].SetLives(0)
	}
	return s
}

// State returns the current screen.
func (s *Session) State() SessionState { return s.state }

// Maze returns the current maze, nil before the first Start.
func (s *Session) Maze() *sim.Maze { return s.maze }

// Level returns the level being played.
func (s *Session) Level() Level { return s.level }

// LevelIndex returns the zero-based index of the current level.
func (s *Session) LevelIndex() int { return s.solved }

// LevelCount returns the length of the level list.
func (s *Session) LevelCount() int { return len(s.cfg.Levels) }

// TimeLeft returns the seconds left before hurry-up.
func (s *Session) TimeLeft() float64 { return s.time }

// Player returns the player in slot 1 or 2.
func (s *Session) Player(slot int) *sim.Entity {
	if slot < 1 || slot > len(s.players) {
		return nil
	}
	return s.players[slot-1]
}

// TwoPlayers reports whether the second player takes part.
func (s *Session) TwoPlayers() bool { return s.cfg.TwoPlayers }

// Score returns the combined score of both players.
func (s *Session) Score() int {
	total := 0
	for _, p := range s.players {
		total += p.Score()
	}
	return total
}

// Over reports whether the game ended, lost or won.
func (s *Session) Over() bool {
	return s.state == StateWon || (s.state == StateMenu && s.maze != nil)
}

// DrainResults returns the rounds finished since the last call.
func (s *Session) DrainResults() []registry.RoundResult {
	out := s.results
	s.results = nil
	return out
}

// Start shows the start screen of the next level. The maze begins once the
// start screen delay elapsed. When no level is left the session is won.
func (s *Session) Start() error {
	if s.state != StateMenu && s.state != StateBonusScreen {
		return fmt.Errorf("%w: %s", ErrSessionState, s.state)
	}

	if s.solved >= len(s.cfg.Levels) {
		s.state = StateWon
		s.logger.Info("all mazes solved", "score", s.Score())
		s.Publish(&sim.GameEndEvent{})
		return nil
	}

	level := s.cfg.Levels[s.solved]
	m, err := LoadMaze(level.Maze,
		sim.WithRand(rand.New(rand.NewSource(s.rng.Int63()))),
		sim.WithLogger(s.logger.WithPrefix("maze")),
	)
	if err != nil {
		return fmt.Errorf("boom: start level %d: %w", s.solved+1, err)
	}

	for _, p := range s.players {
		if p.Lives() == 0 {
			continue
		}
		if err := m.AddPlayer(p); err != nil {
			s.logger.Warn("player left out", "slot", p.Slot(), "maze", level.Maze, "err", err)
		}
	}

	s.maze = m
	s.level = level
	s.time = level.Time
	s.elapsed = 0
	s.state = StateStartScreen
	s.startTimer.Restart(s.cfg.StartDelay)
	s.logger.Debug("start screen", "level", s.solved+1, "maze", level.Maze)
	s.Publish(&sim.StartScreenEvent{})
	return nil
}

func (s *Session) startMaze() {
	s.state = StateRunning
	s.Publish(&sim.MazeStartEvent{})
}

func (s *Session) endMaze(success bool) {
	s.results = append(s.results, registry.RoundResult{
		Name:    s.level.Maze,
		Solved:  success,
		Seconds: s.elapsed,
		Score:   s.Score(),
	})

	if !success {
		s.state = StateMenu
		s.logger.Info("game over", "level", s.solved+1, "score", s.Score())
		s.Publish(&sim.GameEndEvent{})
		return
	}

	s.state = StateBonusScreen
	s.endTimer.Restart(s.cfg.BonusDelay)
	s.Publish(&sim.MazeEndEvent{})

	s.solved++
	s.Publish(&sim.BonusScreenEvent{})
}

// Skip cuts the start or bonus screen short. It does nothing on other screens.
func (s *Session) Skip() error {
	switch s.state {
	case StateStartScreen:
		s.startTimer.Reset()
		s.startMaze()
	case StateBonusScreen:
		s.endTimer.Reset()
		return s.Start()
	}
	return nil
}

// Update forwards the session by dt seconds.
func (s *Session) Update(dt float64) error {
	switch s.state {
	case StateStartScreen:
		if s.startTimer.Update(dt) {
			s.startTimer.Reset()
			s.startMaze()
		}
		return nil
	case StateBonusScreen:
		if s.endTimer.Update(dt) {
			s.endTimer.Reset()
			return s.Start()
		}
		return nil
	case StateRunning:
	default:
		return nil
	}

	s.maze.Update(dt)
	s.elapsed += dt

	if s.maze.Ended() {
		s.endMaze(s.maze.State() == sim.StateSolved)
		return nil
	}

	s.time -= dt
	if int(s.time) <= int(sim.HurryUpDelay) {
		s.maze.HurryUp()
	}
	return nil
}
