package sim

import (
	"github.com/vovakirdan/tui-boom/internal/core"
)

// stuckTeleportDelay is how long a mover must push against an obstacle
// before a teleporter under it fires.
const stuckTeleportDelay = 1.0

// motion is the grid movement state of players and enemies. A mover is
// either resting on a whole tile or travelling from prevPos to nextPos;
// position = prevPos + step * direction while travelling.
type motion struct {
	speed   float64
	current core.Direction
	wanted  core.Direction

	prevPos core.Vector
	nextPos core.Vector
	hasNext bool

	tryMovingSince float64
	isStillSince   float64
	step           float64
}

func newMotion(e *Entity) *motion {
	return &motion{
		speed:   e.Spec().Speed,
		prevPos: e.position,
	}
}

func (mv *motion) resetMovement(pos core.Vector) {
	mv.current = core.NoDirection
	mv.wanted = core.NoDirection
	mv.hasNext = false
	mv.prevPos = pos
	mv.step = 0
	mv.tryMovingSince = 0
}

// Direction returns the direction the entity is moving or trying to move.
func (e *Entity) Direction() core.Direction {
	if e.motion == nil {
		return core.NoDirection
	}
	return e.motion.current
}

// Speed returns the current speed in tiles per second.
func (e *Entity) Speed() float64 {
	if e.motion == nil {
		return 0
	}
	return e.motion.speed
}

// Moving reports whether the entity is between two tiles.
func (e *Entity) Moving() bool {
	return e.motion != nil && e.motion.hasNext
}

// TryingToMove reports whether the entity has a direction but has not moved
// since the last tile.
func (e *Entity) TryingToMove() bool {
	return e.motion != nil && e.motion.tryMovingSince > 0
}

func (e *Entity) blockedBy() func(*Entity) bool {
	return inCategories(walls)
}

func (e *Entity) bouncesOn() func(*Entity) bool {
	cat := Categories(e.Kind.Category())
	return func(other *Entity) bool {
		return other != e && other.Is(cat)
	}
}

func (e *Entity) updateMoving(dt float64) {
	e.updateBase(dt)
	if !e.removing.Active() {
		e.move(dt)
	}
}

func (e *Entity) updateDirection() {
	if e.enemy != nil {
		e.enemyUpdateDirection()
		return
	}
	e.motion.current = e.motion.wanted
}

func (e *Entity) move(dt float64) {
	mv := e.motion
	mv.isStillSince += dt

	if !mv.hasNext {
		e.updateDirection()
		if mv.current == core.NoDirection && mv.tryMovingSince != 0 {
			mv.tryMovingSince = 0
			e.Publish(&MovedEntityEvent{entityEvent(e)})
		}
	}

	if mv.current == core.NoDirection {
		return
	}

	mv.tryMovingSince += dt

	if !mv.hasNext && e.validNextDirection(mv.current) {
		mv.nextPos = e.position.Add(mv.current.Vector())
		mv.hasNext = true
	}

	if !mv.hasNext {
		if mv.isStillSince > stuckTeleportDelay {
			e.teleport()
		}
		e.Publish(&MovedEntityEvent{entityEvent(e)})
		return
	}

	mv.isStillSince = 0
	step := dt * mv.speed
	delta := mv.current.Vector().Scale(step)
	e.setPosition(e.position.Add(delta))
	mv.step += step

	if mv.step >= 1 {
		remaining := 0.0
		if mv.speed != 0 {
			remaining = (mv.step - 1) / mv.speed
		}
		e.setPosition(mv.nextPos)
		mv.step = 0
		mv.prevPos = e.position
		mv.hasNext = false

		e.teleport()
		e.move(remaining)
		return
	}

	bounced := e.maze.Collisions(e.rect, e.bouncesOn())
	if len(bounced) > 1 {
		e.maze.logger.Warn("more than one entity colliding at once", "entity", e.String(), "count", len(bounced))
	}
	if len(bounced) > 0 {
		e.setPosition(e.position.Sub(delta))
		mv.step -= step
		if mv.wanted != mv.current {
			e.switchDirection()
		}
	}

	e.Publish(&MovedEntityEvent{entityEvent(e)})
}

// switchDirection turns around mid-tile.
func (e *Entity) switchDirection() {
	mv := e.motion
	if mv.current == core.NoDirection {
		return
	}
	if e.enemy != nil {
		e.stopSprint()
	}
	mv.current = mv.current.Opposite()
	if mv.hasNext {
		mv.nextPos, mv.prevPos = mv.prevPos, mv.nextPos
		mv.step = 1 - mv.step
	}
}

// validNextDirection checks that the next tile is inside the maze, free of
// walls, and that a short step does not run into another mover of our kind.
func (e *Entity) validNextDirection(d core.Direction) bool {
	m := e.maze
	rect := collisionRect(e.position.Add(d.Vector()), e.size)
	if !m.IsInside(rect) || m.collides(rect, e.blockedBy()) {
		return false
	}
	probe := collisionRect(e.position.Add(d.Vector().Scale(0.1)), e.size)
	return !m.collides(probe, e.bouncesOn())
}

// teleport moves the entity to the next available teleporter when it rests
// exactly on one.
func (e *Entity) teleport() bool {
	for _, tp := range e.maze.entities {
		if tp.teleporter == nil || tp.position != e.position {
			continue
		}
		next := tp.nextTeleporter()
		if next == nil {
			return false
		}

		e.setPosition(next.position)
		e.motion.prevPos = e.position
		e.motion.isStillSince = 0

		tp.fireTeleporter()
		next.fireTeleporter()

		if e.enemy != nil {
			e.stopSprint()
		}
		return true
	}
	return false
}
