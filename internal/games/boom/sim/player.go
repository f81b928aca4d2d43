package sim

import (
	"github.com/vovakirdan/tui-boom/internal/core"
)

// Player constants.
const (
	playerHealth       = 16
	PlayerLives        = 3
	playerBombCapacity = 5
	playerBombRadius   = 2
	bombingDelay       = 0.2
	newLifeShield      = 5.0
	hitShield          = 1.0

	// A bomb cannot be dropped while the step is strictly inside this window,
	// where it is unclear which tile the player stands on. From the upper
	// bound on, the bomb goes to the tile being entered.
	bombStepLow  = 0.6
	bombStepHigh = 0.8

	// LetterCount is the number of letters in EXTRA.
	LetterCount = 5
)

type playerState struct {
	slot  int
	lives int
	score int

	bombCapacity int
	bombRadius   int
	bombCount    int
	fastBomb     bool

	fast      core.Timer
	shield    core.Timer
	bombTimer core.Timer

	letters [LetterCount]bool
}

func newPlayerState() *playerState {
	return &playerState{
		lives:        PlayerLives,
		bombCapacity: playerBombCapacity,
		bombRadius:   playerBombRadius,
		fast:         core.NewCountDown(),
		shield:       core.NewCountDown(),
		bombTimer:    core.NewCountUp(),
	}
}

// NewPlayer creates a player for slot 1 or 2. It lives outside any maze
// until Maze.AddPlayer places it.
func NewPlayer(slot int) *Entity {
	e := newEntity(nil, KindPlayer, core.Vector{})
	e.player.slot = slot
	return e
}

// Slot returns the player slot, 0 for non-players.
func (e *Entity) Slot() int {
	if e.player == nil {
		return 0
	}
	return e.player.slot
}

// Lives returns the remaining lives.
func (e *Entity) Lives() int {
	if e.player == nil {
		return 0
	}
	return e.player.lives
}

// SetLives overrides the remaining lives, used when a game starts.
func (e *Entity) SetLives(n int) {
	if e.player != nil {
		e.player.lives = n
	}
}

// Score returns the player's accumulated score.
func (e *Entity) Score() int {
	if e.player == nil {
		return 0
	}
	return e.player.score
}

// BombCapacity returns how many bombs the player may have at once.
func (e *Entity) BombCapacity() int {
	if e.player == nil {
		return 0
	}
	return e.player.bombCapacity
}

// BombCount returns the player's bombs currently in the maze.
func (e *Entity) BombCount() int {
	if e.player == nil {
		return 0
	}
	return e.player.bombCount
}

// BombRadius returns the radius of the player's next bomb.
func (e *Entity) BombRadius() int {
	if e.player == nil {
		return 0
	}
	return e.player.bombRadius
}

// FastBomb reports whether the player's bombs use the short fuse.
func (e *Entity) FastBomb() bool {
	return e.player != nil && e.player.fastBomb
}

// Shielded reports whether the player ignores hits.
func (e *Entity) Shielded() bool {
	return e.player != nil && e.player.shield.Active()
}

// Fast reports whether the speed bonus is running.
func (e *Entity) Fast() bool {
	return e.player != nil && e.player.fast.Active()
}

// Letters returns which letters of EXTRA the player holds.
func (e *Entity) Letters() [LetterCount]bool {
	if e.player == nil {
		return [LetterCount]bool{}
	}
	return e.player.letters
}

// SetWantedDirection records the direction the player wants to go. The
// current move finishes first. NoDirection stops at the next tile.
func (e *Entity) SetWantedDirection(d core.Direction) {
	if e.motion != nil {
		e.motion.wanted = d
	}
}

// WantedDirection returns the last requested direction.
func (e *Entity) WantedDirection() core.Direction {
	if e.motion == nil {
		return core.NoDirection
	}
	return e.motion.wanted
}

// registerMaze moves the player to a new maze. Subscribers of the previous
// maze are dropped.
func (e *Entity) registerMaze(m *Maze, pos core.Vector) {
	e.maze = m
	e.setPosition(pos)
	e.resetPlayer()
}

func (e *Entity) resetPlayer() {
	e.Reset()

	p := e.player
	e.motion.speed = playerSpeed
	p.fast.Reset()
	p.shield.Reset()
	p.bombTimer.Reset()
	p.bombCount = 0
	e.motion.resetMovement(e.position)
}

func (e *Entity) newLife() {
	p := e.player
	e.health = playerHealth
	e.motion.speed = playerSpeed
	p.bombCapacity = playerBombCapacity
	p.bombRadius = playerBombRadius
	p.fastBomb = false
	p.fast.Reset()
	p.shield.Restart(newLifeShield)

	e.removing.Reset()
}

func (e *Entity) removePlayer() {
	e.player.lives--
	if e.player.lives <= 0 {
		e.player.lives = 0
		e.removeBase()
	} else {
		e.newLife()
	}
	e.Publish(&LifeLossEvent{entityEvent(e)})
}

// DropBomb places a bomb on the player's tile when allowed.
func (e *Entity) DropBomb() bool {
	p := e.player
	mv := e.motion
	if p == nil || e.maze == nil {
		return false
	}
	if e.removing.Active() || p.bombCount >= p.bombCapacity || p.bombTimer.Active() {
		return false
	}
	if mv.step > bombStepLow && mv.step < bombStepHigh {
		return false
	}

	pos := mv.prevPos
	if mv.hasNext && mv.step >= bombStepHigh {
		pos = mv.nextPos
	}

	if e.maze.collides(collisionRect(pos, e.size), inCategories(Categories(CategoryBomb))) {
		return false
	}

	e.maze.AddEntity(e.maze.newBomb(e, pos))
	p.bombCount++
	p.bombTimer.Start(bombingDelay)
	return true
}

func (e *Entity) addLetter(id int) {
	p := e.player
	p.letters[id] = true

	all := true
	for _, got := range p.letters {
		all = all && got
	}
	if all {
		p.letters = [LetterCount]bool{}
		p.lives++
		e.maze.Publish(&ExtraLifeEvent{entityEvent(e)})
	}
	e.Publish(&PlayerDetailsEvent{entityEvent(e)})
}

func (e *Entity) addScore(score int) {
	e.player.score += score
	e.Publish(&PlayerDetailsEvent{entityEvent(e)})
}

func (e *Entity) hitPlayer(d Damage) bool {
	if e.player.shield.Active() {
		return false
	}
	if !e.hitBase(d) {
		return false
	}
	if e.health > 0 {
		e.player.shield.Start(hitShield)
		e.Publish(&NoiseEvent{entityEvent(e)})
	}
	return true
}

func (e *Entity) updatePlayer(dt float64) {
	e.updateMoving(dt)

	p := e.player
	if p.shield.Update(dt) {
		p.shield.Reset()
		e.Publish(&PlayerDetailsEvent{entityEvent(e)})
	}
	if p.fast.Update(dt) {
		p.fast.Reset()
		e.motion.speed = playerSpeed
		e.Publish(&PlayerDetailsEvent{entityEvent(e)})
	}
	if p.bombTimer.Update(dt) {
		p.bombTimer.Reset()
	}
}
