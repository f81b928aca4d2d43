package sim

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/events"
)

// EntityID identifies an entity inside one maze. Zero means "none".
type EntityID uint64

// Entity is anything that lives in a maze. Kind selects which of the
// optional state blocks are set and how Update, Hit and removal behave.
//
// Observers subscribe through the embedded Publisher.
type Entity struct {
	events.Publisher

	ID   EntityID
	Kind Kind

	maze     *Maze
	position core.Vector
	size     core.Vector
	rect     core.Rect
	health   int
	removing core.Timer

	// players credited when this entity pays its score
	collectors []EntityID

	motion     *motion
	player     *playerState
	enemy      *enemyState
	bomb       *bombState
	laser      *laserState
	bullet     *bulletState
	bonus      *bonusState
	teleporter *teleporterState
	letter     *letterState
	remover    *removerState
}

func newEntity(m *Maze, k Kind, pos core.Vector) *Entity {
	spec := SpecOf(k)
	e := &Entity{
		Kind:     k,
		maze:     m,
		position: pos,
		size:     spec.Size,
		health:   spec.Health,
		removing: core.NewCountDown(),
	}
	e.updateRect()

	switch k.Category() {
	case CategoryPlayer:
		e.motion = newMotion(e)
		e.player = newPlayerState()
	case CategoryEnemy:
		e.motion = newMotion(e)
		e.enemy = newEnemyState(e)
	case CategoryBonus:
		e.bonus = newBonusState()
	case CategoryTeleporter:
		e.teleporter = &teleporterState{reload: core.NewCountDown()}
	case CategoryExtraLetter:
		e.letter = newLetterState(m)
	case CategoryFlash:
		e.removing.Start(spec.RemovingDelay)
	}
	return e
}

// collisionRect centers a fractional size inside the whole tiles it occupies.
func collisionRect(pos, size core.Vector) core.Rect {
	offset := size.Ceil().Sub(size).Scale(0.5)
	return core.NewRect(pos.Add(offset), size)
}

func (e *Entity) updateRect() {
	e.rect = collisionRect(e.position, e.size)
}

// Spec returns the constants of the entity's kind.
func (e *Entity) Spec() *Spec {
	return SpecOf(e.Kind)
}

// Is reports whether the entity belongs to one of the categories.
func (e *Entity) Is(set CategorySet) bool {
	return set.Has(e.Kind.Category())
}

// Maze returns the maze the entity belongs to, nil for a fresh player.
func (e *Entity) Maze() *Maze {
	return e.maze
}

// Position is the top-left corner of the entity's tile area.
func (e *Entity) Position() core.Vector {
	return e.position
}

func (e *Entity) setPosition(p core.Vector) {
	e.position = p
	e.updateRect()
}

// Size is the collision size.
func (e *Entity) Size() core.Vector {
	return e.size
}

func (e *Entity) setSize(s core.Vector) {
	e.size = s
	e.updateRect()
}

// Rect is the collision rectangle.
func (e *Entity) Rect() core.Rect {
	return e.rect
}

// Health returns the remaining health.
func (e *Entity) Health() int {
	return e.health
}

// IsRemoving reports whether the entity is playing its removal phase.
func (e *Entity) IsRemoving() bool {
	return e.removing.Active()
}

// RemovingLeft returns the seconds left before removal.
func (e *Entity) RemovingLeft() float64 {
	return e.removing.Current()
}

// Attached reports whether the entity is still registered in its maze.
func (e *Entity) Attached() bool {
	return e.maze != nil && e.maze.Entity(e.ID) == e
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s#%d at %v", e.Kind, e.ID, e.rect.Pos)
}

// Update advances the entity by dt seconds.
func (e *Entity) Update(dt float64) {
	switch e.Kind.Category() {
	case CategoryCoin:
		e.updateCoin(dt)
	case CategoryTeleporter:
		e.updateTeleporter(dt)
	case CategoryBomb:
		e.updateBomb(dt)
	case CategoryLaser:
		e.updateLaser(dt)
	case CategoryWallRemover:
		e.updateRemover(dt)
	case CategoryPlayer:
		e.updatePlayer(dt)
	case CategoryEnemy:
		if e.Spec().Enemy.Policy == AttackTurret {
			e.updateTurret(dt)
		} else {
			e.updateEnemy(dt)
		}
	case CategoryBullet:
		e.updateBullet(dt)
	case CategoryBonus:
		e.updateBonus(dt)
	case CategoryExtraLetter:
		e.updateLetter(dt)
	default:
		e.updateBase(dt)
	}
}

// updateBase runs the removal phase shared by every kind.
func (e *Entity) updateBase(dt float64) {
	if !e.removing.Active() {
		return
	}
	if e.removing.Update(dt) {
		e.remove()
		return
	}
	e.Publish(&RemovingEntityEvent{entityEvent(e)})
}

// Hit applies damage. It returns false when the entity ignores it.
func (e *Entity) Hit(d Damage) bool {
	switch e.Kind.Category() {
	case CategoryPlayer:
		return e.hitPlayer(d)
	case CategoryEnemy:
		if e.Spec().Enemy.Policy == AttackTurret {
			return e.hitTurret(d)
		}
	}
	return e.hitBase(d)
}

func (e *Entity) hitBase(d Damage) bool {
	if e.removing.Active() {
		return false
	}
	if !e.Spec().Vulnerable.Has(d.Type) {
		return false
	}
	if d.SourceKind == KindLaser && d.Credit != 0 {
		e.addCollector(d.Credit)
	}

	e.health = max(0, e.health-d.Amount)
	e.Publish(&HitEntityEvent{entityEvent(e)})

	if e.health == 0 {
		e.StartRemoving()
	}
	return true
}

func (e *Entity) addCollector(id EntityID) {
	if !slices.Contains(e.collectors, id) {
		e.collectors = append(e.collectors, id)
	}
}

func (e *Entity) setCollectors(ids []EntityID) {
	e.collectors = slices.Clone(ids)
}

// StartRemoving enters the removal phase. Zero-delay kinds leave the maze on
// their next update.
func (e *Entity) StartRemoving() {
	spec := e.Spec()
	e.removing.Start(spec.RemovingDelay)
	e.Publish(&StartRemovingEvent{entityEvent(e)})

	if !spec.ScoreOnRemove {
		e.generateScore()
	}

	if e.Kind.Category() == CategoryBomb {
		e.explode()
	}
}

// remove detaches the entity, with per-kind side effects.
func (e *Entity) remove() {
	switch e.Kind.Category() {
	case CategoryPlayer:
		e.removePlayer()
		return
	case CategoryBreakableWall:
		e.dropBonus()
	}

	e.removeBase()

	if e.Kind.Category() == CategoryEnemy && e.enemy.alien {
		e.maze.AddEntity(e.maze.newExtraLetter(e.position))
	}
}

func (e *Entity) removeBase() {
	if e.Attached() {
		e.maze.RemoveEntity(e)
	}
	if e.Spec().ScoreOnRemove {
		e.generateScore()
	}
}

func (e *Entity) generateScore() {
	score := e.Spec().Score
	if score == 0 || len(e.collectors) == 0 || e.maze == nil {
		return
	}

	paid := false
	for _, id := range e.collectors {
		if p := e.maze.Entity(id); p != nil && p.player != nil {
			p.addScore(score)
			paid = true
		}
	}
	if paid {
		e.maze.Publish(&ScoreEvent{entityEvent(e)})
	}
}

func (e *Entity) forwardTime(dt float64) {
	e.Publish(&ForwardTimeEvent{Delay: dt})
}

// Flash is short lived, created on teleports and spawns.
func (m *Maze) newFlash(pos core.Vector) *Entity {
	return newEntity(m, KindFlash, pos)
}

func distance(a, b core.Vector) float64 {
	return math.Hypot(a.Row-b.Row, a.Col-b.Col)
}
