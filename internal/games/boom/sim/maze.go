package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/events"
)

// State is the outcome of a maze.
type State int

const (
	StateRunning State = iota
	StateFailed
	StateSolved
)

func (s State) String() string {
	switch s {
	case StateFailed:
		return "failed"
	case StateSolved:
		return "solved"
	}
	return "running"
}

// Maze timings, in seconds.
const (
	EndDelay       = 2.0
	GameOverDelay  = 4.0
	ExtraGameDelay = 30.0
	HurryUpDelay   = 30.0
)

// ErrNoSpawn is returned when a player has no spawn point left in a maze.
var ErrNoSpawn = errors.New("sim: no spawn point for player")

// Option configures a Maze.
type Option func(*Maze)

// WithRand sets the random source used by enemies, bonus drops and letters.
func WithRand(r *rand.Rand) Option {
	return func(m *Maze) {
		m.rng = r
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *log.Logger) Option {
	return func(m *Maze) {
		m.logger = l
	}
}

// Maze owns every entity of one level and drives the level outcome.
// Observers subscribe through the embedded Publisher.
type Maze struct {
	events.Publisher

	rows, cols int
	state      State

	entities []*Entity
	index    map[EntityID]*Entity
	nextID   EntityID
	spawns   map[int]core.Vector

	endTimer       core.Timer
	extraGameTimer core.Timer
	hurryUpTimer   core.Timer

	rng    *rand.Rand
	logger *log.Logger
}

// NewMaze creates an empty maze of rows x cols tiles.
func NewMaze(rows, cols int, opts ...Option) *Maze {
	m := &Maze{
		rows:           rows,
		cols:           cols,
		index:          make(map[EntityID]*Entity),
		spawns:         make(map[int]core.Vector),
		endTimer:       core.NewCountUp(),
		extraGameTimer: core.NewCountUp(),
		hurryUpTimer:   core.NewCountUp(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(1))
	}
	if m.logger == nil {
		m.logger = log.Default().WithPrefix("maze")
	}
	return m
}

// Rows returns the number of tile rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of tile columns.
func (m *Maze) Cols() int { return m.cols }

// State returns the current outcome.
func (m *Maze) State() State { return m.state }

// Rand exposes the maze random source.
func (m *Maze) Rand() *rand.Rand { return m.rng }

// Entities returns a snapshot of the entities in insertion order.
func (m *Maze) Entities() []*Entity {
	out := make([]*Entity, len(m.entities))
	copy(out, m.entities)
	return out
}

// Entity looks up an attached entity by ID.
func (m *Maze) Entity(id EntityID) *Entity {
	return m.index[id]
}

// Spawn returns the unused spawn point of a player slot.
func (m *Maze) Spawn(slot int) (core.Vector, bool) {
	p, ok := m.spawns[slot]
	return p, ok
}

// SetSpawn places the spawn point of a player slot.
func (m *Maze) SetSpawn(slot int, pos core.Vector) {
	m.spawns[slot] = pos
}

func (m *Maze) insert(e *Entity) {
	m.nextID++
	e.ID = m.nextID
	e.maze = m
	m.entities = append(m.entities, e)
	m.index[e.ID] = e
}

// AddEntity registers e and publishes NewEntityEvent. Entities outside the
// maze are still added, with a warning.
func (m *Maze) AddEntity(e *Entity) {
	if !m.IsInside(e.Rect()) {
		m.logger.Warn("entity out of bounds", "entity", e.String(), "rows", m.rows, "cols", m.cols)
	}
	m.insert(e)
	m.Publish(&NewEntityEvent{entityEvent(e)})
}

// RemoveEntity detaches e and publishes RemovedEntityEvent.
func (m *Maze) RemoveEntity(e *Entity) {
	if m.index[e.ID] != e {
		return
	}
	delete(m.index, e.ID)
	for i, other := range m.entities {
		if other == e {
			m.entities = append(m.entities[:i], m.entities[i+1:]...)
			break
		}
	}
	m.Publish(&RemovedEntityEvent{entityEvent(e)})
}

// AddPlayer places a player on its slot's spawn point, which is consumed.
func (m *Maze) AddPlayer(p *Entity) error {
	if p.player == nil {
		return fmt.Errorf("sim: add player: %s is not a player", p.Kind)
	}
	pos, ok := m.spawns[p.player.slot]
	if !ok {
		m.logger.Warn("no spawn point", "slot", p.player.slot)
		return fmt.Errorf("%w: slot %d", ErrNoSpawn, p.player.slot)
	}
	delete(m.spawns, p.player.slot)

	p.registerMaze(m, pos)
	m.AddEntity(p)
	m.AddEntity(m.newFlash(pos))
	return nil
}

// Collisions returns the attached entities whose rectangle strictly overlaps
// rect and that pass filter (nil accepts all), in insertion order.
func (m *Maze) Collisions(rect core.Rect, filter func(*Entity) bool) []*Entity {
	var out []*Entity
	for _, e := range m.entities {
		if filter != nil && !filter(e) {
			continue
		}
		if rect.Intersects(e.rect) {
			out = append(out, e)
		}
	}
	return out
}

func (m *Maze) collides(rect core.Rect, filter func(*Entity) bool) bool {
	for _, e := range m.entities {
		if (filter == nil || filter(e)) && rect.Intersects(e.rect) {
			return true
		}
	}
	return false
}

func inCategories(set CategorySet) func(*Entity) bool {
	return func(e *Entity) bool { return e.Is(set) }
}

// Bounds is the rectangle covering the whole maze.
func (m *Maze) Bounds() core.Rect {
	return core.NewRect(core.Vector{}, core.V(float64(m.rows), float64(m.cols)))
}

// IsInside reports whether rect lies within the maze, edges included.
func (m *Maze) IsInside(rect core.Rect) bool {
	return m.Bounds().Contains(rect)
}

// Count returns the number of attached entities in the categories.
func (m *Maze) Count(set CategorySet) int {
	n := 0
	for _, e := range m.entities {
		if e.Is(set) {
			n++
		}
	}
	return n
}

// PlayerCount returns the number of players in the maze.
func (m *Maze) PlayerCount() int {
	return m.Count(Categories(CategoryPlayer))
}

// HurryUp starts the hurry-up countdown once. Enemies get enraged when it ends.
func (m *Maze) HurryUp() {
	if m.hurryUpTimer.Active() {
		return
	}
	m.hurryUpTimer.Start(HurryUpDelay)
	m.Publish(&HurryUpEvent{})
}

// HurryingUp reports whether HurryUp was called.
func (m *Maze) HurryingUp() bool {
	return m.hurryUpTimer.Active()
}

// ExtraGameLeft returns the seconds left in an active extra game, or 0.
func (m *Maze) ExtraGameLeft() float64 {
	t := &m.extraGameTimer
	if !t.Active() || t.Total() == core.Forever {
		return 0
	}
	return t.Total() - t.Current()
}

// Ended reports whether the end delay after a failure or success elapsed.
func (m *Maze) Ended() bool {
	return m.endTimer.Done()
}

// Update advances every entity by dt and then the maze state machine.
func (m *Maze) Update(dt float64) {
	for _, e := range m.Entities() {
		if m.index[e.ID] != e {
			continue
		}
		e.Update(dt)
	}

	m.Publish(&ForwardTimeEvent{Delay: dt})

	if m.extraGameTimer.Update(dt) {
		m.extraGameTimer.Restart(core.Forever)
		for _, e := range m.Entities() {
			switch e.Kind.Category() {
			case CategoryEnemy:
				e.setExtraGame(false)
			case CategoryExtraLetter:
				if m.index[e.ID] == e {
					e.remove()
				}
			}
		}
	}

	if m.hurryUpTimer.Update(dt) {
		for _, e := range m.entities {
			if e.enemy != nil {
				e.enemy.enraged = true
			}
		}
	}

	// The outcome is latched once the end timer runs.
	if m.endTimer.Active() {
		m.endTimer.Update(dt)
		return
	}

	players, enemies, coins := 0, 0, 0
	for _, e := range m.entities {
		switch e.Kind.Category() {
		case CategoryPlayer:
			players++
		case CategoryEnemy:
			enemies++
		case CategoryCoin:
			if !e.IsRemoving() {
				coins++
			}
		}
	}

	if players == 0 {
		m.state = StateFailed
		m.endTimer.Start(GameOverDelay)
		m.Publish(&MazeFailedEvent{})
		return
	}

	if enemies == 0 {
		m.state = StateSolved
		m.endTimer.Start(EndDelay)
		m.Publish(&MazeSolvedEvent{})
		return
	}

	if coins == 0 && !m.extraGameTimer.Active() {
		m.extraGameTimer.Start(ExtraGameDelay)
		m.Publish(&ExtraGameEvent{})
		for _, e := range m.entities {
			if e.enemy != nil && !e.IsRemoving() {
				e.setExtraGame(true)
			}
		}
	}
}
