package sim

import "github.com/vovakirdan/tui-boom/internal/core"

type bulletState struct {
	owner     EntityID
	direction core.Vector
	facing    core.Direction
	origin    core.Vector
	distance  float64
	blocked   bool
}

func (m *Maze) newBullet(owner *Entity, k Kind, dir, pos core.Vector) *Entity {
	e := newEntity(m, k, pos)
	e.bullet = &bulletState{
		owner:     owner.ID,
		direction: dir,
		facing:    owner.Direction(),
		origin:    owner.position,
	}
	return e
}

// Heading returns the unit vector a bullet travels along.
func (e *Entity) Heading() core.Vector {
	if e.bullet == nil {
		return core.Vector{}
	}
	return e.bullet.direction
}

// Facing returns the direction the shooter faced when firing.
func (e *Entity) Facing() core.Direction {
	if e.bullet == nil {
		return e.Direction()
	}
	return e.bullet.facing
}

func (e *Entity) updateBullet(dt float64) {
	e.updateBase(dt)
	if !e.Attached() {
		return
	}

	m := e.maze
	st := e.bullet
	spec := e.Spec()

	if !st.blocked {
		e.setPosition(e.position.Add(st.direction.Scale(spec.Speed * dt)))
	}
	if !m.IsInside(e.rect) {
		st.blocked = true
	}

	st.distance = distance(e.position, st.origin)
	if st.distance > spec.Bullet.Range {
		st.blocked = true
	}

	d := Damage{
		Source:     e.ID,
		SourceKind: e.Kind,
		Amount:     spec.Bullet.Damage,
		Type:       DamageEnemies,
	}
	for _, o := range m.Collisions(e.rect, nil) {
		if o.Is(spec.Bullet.BlockedBy) && o.ID != st.owner {
			st.blocked = true
		}
		o.Hit(d)
	}

	e.Publish(&MovedEntityEvent{entityEvent(e)})

	if st.blocked && !e.removing.Active() {
		e.StartRemoving()
	}

	if spec.Bullet.Grows && !e.removing.Active() {
		minSize := spec.Size.Row
		ratio := st.distance / spec.Bullet.Range
		s := ratio + (1-ratio)*minSize
		e.setSize(core.V(s, s))
	}
}
