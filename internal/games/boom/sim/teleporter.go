package sim

import "github.com/vovakirdan/tui-boom/internal/core"

// teleporterReload is how long a teleporter refuses to emit after a teleport.
// Entities may still enter it meanwhile.
const teleporterReload = 0.8

type teleporterState struct {
	next   EntityID
	reload core.Timer
}

// Link sets the teleporter that follows e in its ring.
func (e *Entity) Link(next *Entity) {
	if e.teleporter == nil || next.teleporter == nil {
		return
	}
	e.teleporter.next = next.ID
}

// Reloading reports whether a teleporter is cooling down.
func (e *Entity) Reloading() bool {
	return e.teleporter != nil && e.teleporter.reload.Active()
}

// available reports whether e may receive a teleported entity.
func (e *Entity) available() bool {
	if e.teleporter.reload.Active() {
		return false
	}
	return !e.maze.collides(e.rect, inCategories(movers))
}

// nextTeleporter walks the ring from e's successor and returns the first
// available teleporter other than e, or nil.
func (e *Entity) nextTeleporter() *Entity {
	seen := map[EntityID]bool{e.ID: true}
	id := e.teleporter.next
	for id != 0 && !seen[id] {
		seen[id] = true
		cur := e.maze.Entity(id)
		if cur == nil || cur.teleporter == nil {
			return nil
		}
		if cur.available() {
			return cur
		}
		id = cur.teleporter.next
	}
	return nil
}

func (e *Entity) fireTeleporter() {
	e.maze.AddEntity(e.maze.newFlash(e.position))
	e.teleporter.reload.Restart(teleporterReload)
}

func (e *Entity) updateTeleporter(dt float64) {
	e.updateBase(dt)

	if !e.teleporter.reload.Active() {
		e.forwardTime(dt)
		return
	}
	if e.teleporter.reload.Update(dt) {
		overshoot := -e.teleporter.reload.Current()
		e.teleporter.reload.Reset()
		e.forwardTime(overshoot)
	}
}
