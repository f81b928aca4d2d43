package sim

import (
	"github.com/vovakirdan/tui-boom/internal/core"
)

// flameRange bounds both the flame bullet and the distance at which a
// ranged enemy opens fire.
const flameRange = 3.5

type enemyState struct {
	alien   bool
	enraged bool

	firing core.Timer
	reload core.Timer
	noise  core.Timer

	// lasers that already hit a turret
	hitBy map[EntityID]bool
}

func newEnemyState(e *Entity) *enemyState {
	spec := e.Spec().Enemy
	st := &enemyState{
		firing: core.NewCountUp(),
		reload: core.NewCountUp(),
		noise:  core.NewCountUp(),
	}
	if !spec.NoYell && e.maze != nil {
		st.noise.Start(e.maze.uniform(spec.YellMin, spec.YellMax))
	}
	if spec.Policy == AttackTurret {
		st.hitBy = make(map[EntityID]bool)
		st.reload.Start(spec.ReloadingDelay)
	}
	return st
}

func (m *Maze) uniform(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}

// Alien reports whether the enemy is in extra-game mode.
func (e *Entity) Alien() bool {
	return e.enemy != nil && e.enemy.alien
}

// Enraged reports whether the enemy runs at double speed after hurry-up.
func (e *Entity) Enraged() bool {
	return e.enemy != nil && e.enemy.enraged
}

// Firing reports whether the enemy is in the middle of an attack.
func (e *Entity) Firing() bool {
	return e.enemy != nil && e.enemy.firing.Active()
}

// attackPolicy pairs how an enemy looks for a player with how it attacks.
type attackPolicy struct {
	seek   func(e *Entity, d core.Direction) (float64, bool)
	attack func(e *Entity, distance float64)
}

func policyFor(p AttackPolicy) attackPolicy {
	switch p {
	case AttackMelee:
		return attackPolicy{seek: seekAdjacent, attack: charge}
	case AttackSprint:
		return attackPolicy{seek: seekPlayer, attack: sprint}
	case AttackRanged:
		return attackPolicy{seek: seekPlayer, attack: shootInRange}
	case AttackTurret:
		return attackPolicy{seek: seekPlayer, attack: func(e *Entity, _ float64) { e.fireMissiles() }}
	}
	return attackPolicy{seek: seekPlayer, attack: shoot}
}

func (e *Entity) policy() attackPolicy {
	return policyFor(e.Spec().Enemy.Policy)
}

// seekPlayer scans tile by tile from the enemy along d. It stops at walls
// and at the maze edge. The distance is in tiles; when the player shares the
// first tile it is the signed offset, negative when the player lies ahead.
func seekPlayer(e *Entity, d core.Direction) (float64, bool) {
	m := e.maze
	dist := -1.0
	var target *Entity
	pos := e.position
	rect := collisionRect(pos, unit)

	for target == nil && m.IsInside(rect) {
		dist++
		for _, o := range m.Collisions(rect, nil) {
			if o.player != nil && !o.IsRemoving() {
				target = o
				break
			}
			if o.Is(walls) {
				return 0, false
			}
		}
		pos = pos.Add(d.Vector())
		rect = collisionRect(pos, unit)
	}

	if target == nil {
		return 0, false
	}
	if dist > 0 {
		return dist, true
	}
	return -target.position.Sub(e.position).Dot(d.Vector()), true
}

// seekAdjacent only sees players within one tile, and never behind.
func seekAdjacent(e *Entity, d core.Direction) (float64, bool) {
	dist, ok := seekPlayer(e, d)
	if !ok || dist > 1 {
		return 0, false
	}
	if cur := e.motion.current; cur != core.NoDirection && d == cur.Opposite() {
		return 0, false
	}
	return dist, true
}

func shoot(e *Entity, _ float64) {
	spec := e.Spec().Enemy
	if spec.Bullet == KindNone {
		return
	}

	dir := e.motion.current
	if dir == core.NoDirection {
		dir = core.Down
	}
	v := dir.Vector()
	e.maze.AddEntity(e.maze.newBullet(e, spec.Bullet, v, e.position.Add(v.Scale(0.5))))

	st := e.enemy
	st.firing.Restart(spec.FiringDelay)
	st.reload.Start(spec.ReloadingDelay)
	e.motion.speed = 0
}

func shootInRange(e *Entity, distance float64) {
	if distance <= flameRange {
		shoot(e, distance)
	}
}

// charge turns to face a player on the same tile. The damage itself comes
// from contact.
func charge(e *Entity, distance float64) {
	if distance >= 1 {
		return
	}
	if distance > 0 {
		e.switchDirection()
	}
	spec := e.Spec().Enemy
	e.enemy.firing.Restart(spec.FiringDelay)
	e.enemy.reload.Start(spec.ReloadingDelay)
	e.yell()
}

func sprint(e *Entity, _ float64) {
	spec := e.Spec().Enemy
	e.enemy.firing.Restart(spec.FiringDelay)
	e.enemy.reload.Start(spec.ReloadingDelay)
	e.motion.speed = spec.SprintSpeed
	e.yell()
}

// stopSprint ends a sprint attack, if any.
func (e *Entity) stopSprint() {
	if e.Spec().Enemy.Policy != AttackSprint || !e.enemy.firing.Active() {
		return
	}
	e.enemy.firing.Reset()
	e.motion.speed = e.Spec().Speed
}

func (e *Entity) yell() {
	e.Publish(&NoiseEvent{entityEvent(e)})
	spec := e.Spec().Enemy
	if spec.NoYell {
		return
	}
	e.enemy.noise.Restart(e.maze.uniform(spec.YellMin, spec.YellMax))
}

func (e *Entity) setExtraGame(active bool) {
	if e.Spec().Enemy.Policy == AttackTurret {
		return
	}
	st := e.enemy
	st.alien = active
	st.firing.Reset()
	st.reload.Reset()
	e.motion.speed = e.Spec().Speed
}

func (e *Entity) enemyUpdateDirection() {
	mv := e.motion
	spec := e.Spec().Enemy

	if spec.Policy == AttackSprint && e.enemy.firing.Active() && mv.current != core.NoDirection {
		if e.validNextDirection(mv.current) {
			return
		}
		e.stopSprint()
	}

	var plausible []core.Direction
	for _, d := range core.Directions {
		if e.validNextDirection(d) {
			plausible = append(plausible, d)
		}
	}
	if len(plausible) == 0 {
		return
	}

	if spec.Chase {
		seek := e.policy().seek
		best, bestDist, found := core.NoDirection, 0.0, false
		for _, d := range plausible {
			if dist, ok := seek(e, d); ok && (!found || bestDist > dist) {
				best, bestDist, found = d, dist, true
			}
		}
		if found && bestDist != 0 {
			mv.current = best
			return
		}
	}

	if !spec.Erratic && len(plausible) > 1 && mv.current != core.NoDirection {
		opposite := mv.current.Opposite()
		for i, d := range plausible {
			if d == opposite {
				plausible = append(plausible[:i], plausible[i+1:]...)
				break
			}
		}
	}

	mv.current = plausible[e.maze.rng.Intn(len(plausible))]
}

func (e *Entity) contactDamage() {
	d := Damage{
		Source:     e.ID,
		SourceKind: e.Kind,
		Amount:     e.Spec().Enemy.Damage,
		Type:       DamageEnemies,
	}
	for _, o := range e.maze.Collisions(e.rect, nil) {
		o.Hit(d)
	}
}

func (e *Entity) updateEnemy(dt float64) {
	st := e.enemy
	if st.enraged && !e.removing.Active() {
		dt *= 2
	}

	e.updateMoving(dt)
	if e.removing.Active() {
		return
	}

	if st.noise.Update(dt) {
		e.yell()
	}
	if st.firing.Update(dt) {
		st.firing.Reset()
		e.motion.speed = e.Spec().Speed
	}
	if st.reload.Update(dt) {
		st.reload.Reset()
	}

	e.contactDamage()

	if st.alien || e.motion.current == core.NoDirection {
		return
	}

	p := e.policy()
	if dist, ok := p.seek(e, e.motion.current); ok && !st.reload.Active() {
		p.attack(e, dist)
	}
}

// Turret eye offsets from the top-left corner.
var (
	leftEye  = core.V(0.7, 0.6)
	rightEye = core.V(0.7, 1.4)
)

func (e *Entity) hitTurret(d Damage) bool {
	if d.SourceKind != KindLaser || e.enemy.hitBy[d.Source] {
		return false
	}
	e.enemy.hitBy[d.Source] = true
	e.yell()
	return e.hitBase(d)
}

// updateTurret drives the stationary boss: contact damage, then one volley
// when reloaded, a second one halfway through the firing window and a last
// one when it closes.
func (e *Entity) updateTurret(dt float64) {
	e.updateBase(dt)
	if e.removing.Active() {
		return
	}

	st := e.enemy
	spec := e.Spec().Enemy
	if st.enraged {
		dt *= 2
	}

	e.contactDamage()

	if st.firing.Update(dt) {
		e.fireMissiles()
		st.firing.Reset()
	}
	if st.reload.Update(dt) {
		st.reload.Reset()
	}

	if st.firing.Active() {
		half := st.firing.Total() / 2
		if st.firing.Current() > half && st.firing.Current()-dt < half {
			e.fireMissiles()
		}
	}

	if !st.reload.Active() {
		st.reload.Start(spec.ReloadingDelay)
		st.firing.Restart(spec.FiringDelay)
		e.fireMissiles()
	}
}

// fireMissiles aims one missile per eye at the nearest live player in scope.
func (e *Entity) fireMissiles() {
	spec := e.Spec().Enemy
	var players []*Entity
	for _, o := range e.maze.entities {
		if o.player != nil && !o.IsRemoving() {
			players = append(players, o)
		}
	}
	if len(players) == 0 {
		return
	}

	for _, offset := range []core.Vector{leftEye, rightEye} {
		eye := e.position.Add(offset)
		var aim core.Vector
		nearest := -1.0
		for _, p := range players {
			diff := p.position.Sub(eye)
			if d := diff.Len(); nearest < 0 || d < nearest {
				nearest = d
				aim = diff.Normalize()
			}
		}
		if nearest < spec.Scope {
			e.maze.AddEntity(e.maze.newBullet(e, spec.Bullet, aim, eye))
		}
	}
}
