package sim

import (
	"math"

	"github.com/vovakirdan/tui-boom/internal/core"
)

const (
	bombTimeout     = 5.0
	fastBombTimeout = 2.0

	laserDelay  = 0.15
	laserDamage = 13
	// laserUseStrength scales laser damage by distance from the bomb when set.
	laserUseStrength = false
)

// Orientation is the shape of a laser segment.
type Orientation int

const (
	OrientationCenter Orientation = iota
	OrientationVertical
	OrientationHorizontal
)

type bombState struct {
	owner  EntityID
	radius int
	timer  core.Timer
}

type laserState struct {
	owner       EntityID
	orientation Orientation
	strength    float64
	damage      int
}

func (m *Maze) newBomb(owner *Entity, pos core.Vector) *Entity {
	e := newEntity(m, KindBomb, pos)
	timeout := bombTimeout
	if owner.player.fastBomb {
		timeout = fastBombTimeout
	}
	e.bomb = &bombState{
		owner:  owner.ID,
		radius: owner.player.bombRadius,
		timer:  core.NewCountDown(),
	}
	e.bomb.timer.Start(timeout)
	return e
}

// Fuse returns the seconds before a bomb explodes.
func (e *Entity) Fuse() float64 {
	if e.bomb == nil {
		return 0
	}
	return e.bomb.timer.Current()
}

// Radius returns the explosion radius of a bomb, in tiles.
func (e *Entity) Radius() int {
	if e.bomb == nil {
		return 0
	}
	return e.bomb.radius
}

func (e *Entity) updateBomb(dt float64) {
	if e.removing.Active() {
		e.updateBase(dt)
		return
	}

	if e.bomb.timer.Update(dt) {
		e.StartRemoving()
		e.updateBase(-e.bomb.timer.Current())
		return
	}

	e.forwardTime(dt)
}

// explode releases the owner's bomb slot and fires the lasers.
func (e *Entity) explode() {
	if owner := e.maze.Entity(e.bomb.owner); owner != nil && owner.player != nil {
		owner.player.bombCount--
	}
	e.maze.generateLasers(e)
}

func (m *Maze) newLaser(owner EntityID, pos core.Vector, strength float64, o Orientation) *Entity {
	e := newEntity(m, KindLaser, pos)
	damage := laserDamage
	if laserUseStrength {
		damage = int(laserDamage * strength)
	}
	e.laser = &laserState{
		owner:       owner,
		orientation: o,
		strength:    strength,
		damage:      damage,
	}
	e.removing.Start(laserDelay)
	return e
}

// generateLasers places the explosion of bomb b: one laser on the bomb tile,
// then up to radius lasers in each direction. Solid walls and the maze edge
// stop a branch; a breakable wall stops it too and is only reached at
// distance one.
func (m *Maze) generateLasers(b *Entity) {
	owner := b.bomb.owner
	m.AddEntity(m.newLaser(owner, b.position, 1, OrientationCenter))

	solid := inCategories(Categories(CategorySolidWall))
	breakable := inCategories(Categories(CategoryBreakableWall))

	for _, dir := range []core.Direction{core.Up, core.Down, core.Right, core.Left} {
		orientation := OrientationHorizontal
		if dir.Vertical() {
			orientation = OrientationVertical
		}

		pos := b.position
		for dist := 1; dist <= b.bomb.radius; dist++ {
			pos = pos.Add(dir.Vector())
			rect := core.NewRect(pos, b.size)

			if !m.IsInside(rect) || m.collides(rect, solid) {
				break
			}

			alpha := float64(dist) / float64(b.bomb.radius)
			strength := 0.5*alpha + (1 - alpha)

			if m.collides(rect, breakable) {
				if dist == 1 {
					m.AddEntity(m.newLaser(owner, pos, strength, orientation))
				}
				break
			}

			m.AddEntity(m.newLaser(owner, pos, strength, orientation))
		}
	}
}

// Orientation returns the shape of a laser.
func (e *Entity) Orientation() Orientation {
	if e.laser == nil {
		return OrientationCenter
	}
	return e.laser.orientation
}

// Strength returns the distance attenuation of a laser, in (0.5, 1].
func (e *Entity) Strength() float64 {
	if e.laser == nil {
		return 0
	}
	return e.laser.strength
}

func (e *Entity) updateLaser(dt float64) {
	e.updateBase(dt)
	if e.removing.Done() {
		return
	}

	decay := math.Abs(e.removing.Current() - laserDelay/2)
	s := 1 - 2/laserDelay*decay

	switch e.laser.orientation {
	case OrientationCenter:
		e.setSize(core.V(s, s))
	case OrientationHorizontal:
		e.setSize(core.V(s, 1))
	default:
		e.setSize(core.V(1, s))
	}

	d := Damage{
		Source:     e.ID,
		SourceKind: KindLaser,
		Credit:     e.laser.owner,
		Amount:     e.laser.damage,
		Type:       DamageBombs,
	}
	for _, other := range e.maze.Collisions(e.rect, nil) {
		other.Hit(d)
	}
}
