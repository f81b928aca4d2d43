package sim

import (
	"sort"

	"github.com/vovakirdan/tui-boom/internal/core"
)

// Bonus and letter constants.
const (
	// bonusDropRate is the chance that a destroyed breakable wall leaves a bonus.
	bonusDropRate = 0.1
	// bonusLifetime is how long a bonus waits before it starts blinking out.
	bonusLifetime = 7.0

	maxBombCapacity = 8
	maxBombRadius   = 4
	heartHealth     = 2
	shieldDuration  = 23.0
	fastDuration    = 20.0

	letterDelay = 2.0
)

var isPlayer = inCategories(Categories(CategoryPlayer))

func (e *Entity) updateCoin(dt float64) {
	e.updateBase(dt)
	if e.removing.Active() {
		return
	}

	found := e.maze.Collisions(e.rect, isPlayer)
	if len(found) == 0 {
		return
	}
	ids := make([]EntityID, 0, len(found))
	for _, p := range found {
		ids = append(ids, p.ID)
	}
	e.setCollectors(ids)
	e.StartRemoving()
}

// dropBonus may leave a weighted random bonus where a breakable wall stood.
func (e *Entity) dropBonus() {
	m := e.maze
	if m.rng.Float64() > bonusDropRate {
		return
	}
	if k := m.pickBonus(); k != KindNone {
		m.AddEntity(newEntity(m, k, e.position))
	}
}

func (m *Maze) pickBonus() Kind {
	kinds := BonusKinds()
	total := 0.0
	for _, k := range kinds {
		total += SpecOf(k).BonusRate
	}
	r := m.rng.Float64() * total
	for _, k := range kinds {
		r -= SpecOf(k).BonusRate
		if r < 0 {
			return k
		}
	}
	if len(kinds) == 0 {
		return KindNone
	}
	return kinds[len(kinds)-1]
}

type removerState struct {
	walls []EntityID
	next  int
}

// newWallRemover breaks every breakable wall, one per tick, starting from
// the top-left corner.
func (m *Maze) newWallRemover(pos core.Vector) *Entity {
	e := newEntity(m, KindWallRemover, pos)

	var found []*Entity
	for _, w := range m.entities {
		if w.Kind == KindBreakableWall {
			found = append(found, w)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		pi, pj := found[i].position, found[j].position
		return pi.Row+pi.Col < pj.Row+pj.Col
	})

	st := &removerState{walls: make([]EntityID, len(found))}
	for i, w := range found {
		st.walls[i] = w.ID
	}
	e.remover = st
	return e
}

func (e *Entity) updateRemover(dt float64) {
	e.updateBase(dt)

	st := e.remover
	for st.next < len(st.walls) {
		w := e.maze.Entity(st.walls[st.next])
		if w == nil || w.IsRemoving() {
			st.next++
			continue
		}
		w.setCollectors(e.collectors)
		w.StartRemoving()
		return
	}
	e.removeBase()
}

type bonusState struct {
	timer core.Timer
}

func newBonusState() *bonusState {
	st := &bonusState{timer: core.NewCountUp()}
	st.timer.Start(bonusLifetime)
	return st
}

func (e *Entity) updateBonus(dt float64) {
	e.updateBase(dt)
	if !e.Attached() {
		return
	}

	if e.bonus.timer.Update(dt) {
		e.bonus.timer.Reset()
		e.StartRemoving()
	}

	if found := e.maze.Collisions(e.rect, isPlayer); len(found) > 0 {
		e.catchBonus(found[0])
	}
}

func (e *Entity) catchBonus(p *Entity) {
	e.Publish(&NoiseEvent{entityEvent(e)})
	e.addCollector(p.ID)
	e.removeBase()

	m := e.maze
	ps := p.player
	details := func() { p.Publish(&PlayerDetailsEvent{entityEvent(p)}) }

	switch e.Kind {
	case KindLightboltBonus:
		remover := m.newWallRemover(e.position)
		remover.addCollector(p.ID)
		m.AddEntity(remover)
	case KindSkullBonus:
		for _, o := range m.Entities() {
			if o.enemy != nil && !o.IsRemoving() {
				o.addCollector(p.ID)
				o.StartRemoving()
			}
		}
	case KindBombCapacityBonus:
		if ps.bombCapacity < maxBombCapacity {
			ps.bombCapacity++
			details()
		}
	case KindFastBombBonus:
		if !ps.fastBomb {
			ps.fastBomb = true
			details()
		}
	case KindBombRadiusBonus:
		if ps.bombRadius < maxBombRadius {
			ps.bombRadius++
			details()
		}
	case KindHeartBonus:
		if p.health < playerHealth {
			p.health = min(playerHealth, p.health+heartHealth)
			details()
		}
	case KindFullHeartBonus:
		if p.health < playerHealth {
			p.health = playerHealth
			details()
		}
	case KindShieldBonus:
		ps.shield.Restart(shieldDuration)
		details()
	case KindFastBonus:
		ps.fast.Restart(fastDuration)
		p.motion.speed = playerSpeed * 2
		details()
	}
}

type letterState struct {
	id    int
	timer core.Timer
}

func newLetterState(m *Maze) *letterState {
	st := &letterState{timer: core.NewCountDown()}
	if m != nil {
		st.id = m.rng.Intn(LetterCount)
	}
	st.timer.Start(letterDelay)
	return st
}

func (m *Maze) newExtraLetter(pos core.Vector) *Entity {
	return newEntity(m, KindExtraLetter, pos)
}

// LetterID returns the index in EXTRA currently shown by a letter.
func (e *Entity) LetterID() int {
	if e.letter == nil {
		return 0
	}
	return e.letter.id
}

func (e *Entity) updateLetter(dt float64) {
	e.updateBase(dt)
	if !e.Attached() {
		return
	}

	if found := e.maze.Collisions(e.rect, isPlayer); len(found) > 0 {
		e.catchLetter(found[0])
		return
	}

	if e.letter.timer.Update(dt) {
		e.letter.timer.Restart(letterDelay)
		e.letter.id = (e.letter.id + 1) % LetterCount
	}

	e.forwardTime(dt)
}

func (e *Entity) catchLetter(p *Entity) {
	e.Publish(&NoiseEvent{entityEvent(e)})
	p.addLetter(e.letter.id)
	e.addCollector(p.ID)
	e.removeBase()
}

// BonusLeft returns the seconds before a bonus starts blinking out.
func (e *Entity) BonusLeft() float64 {
	if e.bonus == nil || !e.bonus.timer.Active() {
		return 0
	}
	return e.bonus.timer.Total() - e.bonus.timer.Current()
}
