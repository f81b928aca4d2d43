// Package sim is the boom entity simulation: a rectangular maze of walls,
// pickups, bombs, players, enemies and projectiles advanced in fixed ticks.
//
// Every entity is a single Entity value tagged with a Kind. Per-kind constants
// live in one table (see Spec) and per-kind behavior is dispatched on the
// kind's Category. All mutation happens inside Maze.Update or through the
// player control methods, on one goroutine.
package sim

import (
	"math"

	"github.com/vovakirdan/tui-boom/internal/core"
)

// Kind identifies a concrete entity type.
type Kind int

const (
	KindNone Kind = iota
	KindSolidWall
	KindBreakableWall
	KindCoin
	KindTeleporter
	KindBomb
	KindLaser
	KindFlash
	KindWallRemover
	KindPlayer

	KindSoldier
	KindSarge
	KindLizzy
	KindTaur
	KindGunner
	KindThing
	KindGhost
	KindSmoulder
	KindSkully
	KindGiggler
	KindHead

	KindShot
	KindFireball
	KindMGShot
	KindLightbolt
	KindFlame
	KindPlasma
	KindMagma
	KindMissile

	KindLightboltBonus
	KindSkullBonus
	KindBombCapacityBonus
	KindFastBombBonus
	KindBombRadiusBonus
	KindHeartBonus
	KindFullHeartBonus
	KindShieldBonus
	KindFastBonus

	KindExtraLetter

	kindCount
)

// Category groups kinds that share behavior.
type Category int

const (
	CategoryNone Category = iota
	CategorySolidWall
	CategoryBreakableWall
	CategoryCoin
	CategoryTeleporter
	CategoryBomb
	CategoryLaser
	CategoryFlash
	CategoryWallRemover
	CategoryPlayer
	CategoryEnemy
	CategoryBullet
	CategoryBonus
	CategoryExtraLetter
)

// CategorySet is a bit set of categories.
type CategorySet uint32

// Categories builds a set.
func Categories(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s |= 1 << uint(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return s&(1<<uint(c)) != 0
}

var (
	walls   = Categories(CategorySolidWall, CategoryBreakableWall)
	movers  = Categories(CategoryPlayer, CategoryEnemy)
	pawns   = Categories(CategorySolidWall, CategoryBreakableWall, CategoryEnemy, CategoryPlayer)
	targets = Categories(CategoryEnemy, CategoryPlayer)
)

// AttackPolicy selects how an enemy looks for players and attacks them.
type AttackPolicy int

const (
	AttackShoot  AttackPolicy = iota // fire the kind's bullet along the current direction
	AttackMelee                      // charge at very short range and rely on contact damage
	AttackSprint                     // accelerate toward the player until blocked
	AttackRanged                     // fire only when the player is within bullet range
	AttackTurret                     // stationary, fires from two eyes at the nearest player
)

// EnemySpec holds the constants specific to enemies.
type EnemySpec struct {
	Erratic        bool // may turn around at any tile
	Chase          bool // prefers directions where a player is seen
	Damage         int
	Bullet         Kind
	FiringDelay    float64
	ReloadingDelay float64
	YellMin        float64
	YellMax        float64
	NoYell         bool
	Policy         AttackPolicy
	SprintSpeed    float64
	Scope          float64
}

// BulletSpec holds the constants specific to bullets.
type BulletSpec struct {
	Damage    int
	Range     float64
	BlockedBy CategorySet
	Grows     bool
}

// Spec is the constant description of a kind.
type Spec struct {
	Name          string
	Tag           rune
	Category      Category
	Health        int
	Size          core.Vector
	Speed         float64
	Vulnerable    DamageSet
	RemovingDelay float64
	Score         int
	ScoreOnRemove bool
	BonusRate     float64
	Enemy         *EnemySpec
	Bullet        *BulletSpec
}

const (
	playerSpeed = 4.0
	enemySpeed  = 2.0
	bulletSpeed = 5.0

	enemyRemovingDelay  = 2.0
	bulletRemovingDelay = 0.25
	bonusRemovingDelay  = 3.0
)

var unit = core.V(1, 1)

func enemy(name string, tag rune, score int, mod func(*Spec, *EnemySpec)) Spec {
	e := &EnemySpec{
		Damage:         1,
		FiringDelay:    0.15,
		ReloadingDelay: 1.0,
		YellMin:        7,
		YellMax:        40,
	}
	s := Spec{
		Name:          name,
		Tag:           tag,
		Category:      CategoryEnemy,
		Size:          unit,
		Speed:         enemySpeed,
		Vulnerable:    DamageSetOf(DamageBombs),
		RemovingDelay: enemyRemovingDelay,
		Score:         score,
		Enemy:         e,
	}
	if mod != nil {
		mod(&s, e)
	}
	return s
}

func bullet(name string, speed float64, damage int, size float64, mod func(*Spec, *BulletSpec)) Spec {
	b := &BulletSpec{Damage: damage, Range: math.Inf(1), BlockedBy: pawns}
	s := Spec{
		Name:          name,
		Category:      CategoryBullet,
		Size:          core.V(size, size),
		Speed:         speed,
		RemovingDelay: bulletRemovingDelay,
		Bullet:        b,
	}
	if mod != nil {
		mod(&s, b)
	}
	return s
}

func bonus(name string, rate float64) Spec {
	return Spec{
		Name:          name,
		Category:      CategoryBonus,
		Size:          unit,
		RemovingDelay: bonusRemovingDelay,
		Score:         Score50,
		ScoreOnRemove: true,
		BonusRate:     rate,
	}
}

var specs = [kindCount]Spec{
	KindNone:          {Name: "none", Size: unit},
	KindSolidWall:     {Name: "solid wall", Tag: 'S', Category: CategorySolidWall, Size: unit},
	KindBreakableWall: {Name: "breakable wall", Tag: 'B', Category: CategoryBreakableWall, Size: unit, Vulnerable: DamageSetOf(DamageBombs), RemovingDelay: 0.5, Score: Score10},
	KindCoin:          {Name: "coin", Tag: 'C', Category: CategoryCoin, Size: unit, RemovingDelay: 1.5, Score: Score150},
	KindTeleporter:    {Name: "teleporter", Tag: 'T', Category: CategoryTeleporter, Size: unit},
	KindBomb:          {Name: "bomb", Category: CategoryBomb, Size: unit, Vulnerable: DamageSetOf(DamageBombs)},
	KindLaser:         {Name: "laser", Category: CategoryLaser, Size: unit, RemovingDelay: laserDelay},
	KindFlash:         {Name: "flash", Category: CategoryFlash, Size: unit, RemovingDelay: 0.3},
	KindWallRemover:   {Name: "wall remover", Category: CategoryWallRemover, Size: unit},
	KindPlayer: {
		Name:          "player",
		Category:      CategoryPlayer,
		Health:        playerHealth,
		Size:          unit,
		Speed:         playerSpeed,
		Vulnerable:    DamageSetOf(DamageBombs, DamageEnemies),
		RemovingDelay: 5.0,
	},

	KindSoldier: enemy("soldier", '0', Score200, func(_ *Spec, e *EnemySpec) {
		e.Erratic = true
		e.Bullet = KindShot
	}),
	KindSarge: enemy("sarge", '1', Score300, func(_ *Spec, e *EnemySpec) {
		e.Erratic = true
		e.ReloadingDelay = 0.75
		e.Bullet = KindShot
	}),
	KindLizzy: enemy("lizzy", '2', Score400, func(_ *Spec, e *EnemySpec) {
		e.FiringDelay = 0.2
		e.ReloadingDelay = 1.0
		e.Bullet = KindFireball
	}),
	KindTaur: enemy("taur", '3', Score500, func(s *Spec, e *EnemySpec) {
		s.Speed = 4.0
		e.Chase = true
		e.Damage = 2
		e.FiringDelay = 0.2
		e.ReloadingDelay = 0.4
		e.NoYell = true
		e.Policy = AttackMelee
	}),
	KindGunner: enemy("gunner", '4', Score600, func(_ *Spec, e *EnemySpec) {
		e.ReloadingDelay = 0.125
		e.Bullet = KindMGShot
	}),
	KindThing: enemy("thing", '5', Score700, func(_ *Spec, e *EnemySpec) {
		e.Chase = true
		e.Damage = 2
		e.FiringDelay = 0.25
		e.Bullet = KindLightbolt
	}),
	KindGhost: enemy("ghost", '6', Score800, func(_ *Spec, e *EnemySpec) {
		e.Chase = true
		e.Damage = 2
		e.FiringDelay = math.Inf(1)
		e.ReloadingDelay = 1.5
		e.NoYell = true
		e.Policy = AttackSprint
		e.SprintSpeed = 7.0
	}),
	KindSmoulder: enemy("smoulder", '7', Score900, func(_ *Spec, e *EnemySpec) {
		e.Chase = true
		e.Damage = 2
		e.FiringDelay = 0.5
		e.ReloadingDelay = 0.2
		e.Bullet = KindFlame
		e.Policy = AttackRanged
	}),
	KindSkully: enemy("skully", '8', Score1K, func(_ *Spec, e *EnemySpec) {
		e.Chase = true
		e.Damage = 2
		e.ReloadingDelay = 0.15
		e.Bullet = KindPlasma
	}),
	KindGiggler: enemy("giggler", '9', Score1K, func(s *Spec, e *EnemySpec) {
		s.Speed = 4.0
		e.Chase = true
		e.Damage = 4
		e.FiringDelay = 0.5
		e.ReloadingDelay = 1.2
		e.Bullet = KindMagma
	}),
	KindHead: enemy("head", 'H', Score5K, func(s *Spec, e *EnemySpec) {
		s.Size = core.V(3, 3)
		s.Speed = 0
		s.Health = 200
		s.ScoreOnRemove = true
		e.Damage = 20
		e.ReloadingDelay = 3.6
		e.FiringDelay = 1.2
		e.Scope = 9
		e.NoYell = true
		e.Bullet = KindMissile
		e.Policy = AttackTurret
	}),

	KindShot:      bullet("shot", bulletSpeed, 1, 0.25, nil),
	KindFireball:  bullet("fireball", 4.0, 2, 0.4, nil),
	KindMGShot:    bullet("mg shot", 7.0, 1, 0.3, nil),
	KindLightbolt: bullet("lightbolt", bulletSpeed, 2, 0.4, nil),
	KindFlame: bullet("flame", 3.0, 2, 0.4, func(s *Spec, b *BulletSpec) {
		s.RemovingDelay = 0.5
		b.Range = flameRange
		b.Grows = true
	}),
	KindPlasma: bullet("plasma", 7.0, 3, 0.4, nil),
	KindMagma:  bullet("magma", bulletSpeed, 4, 0.8, nil),
	KindMissile: bullet("missile", 3.5, 4, 0.6, func(_ *Spec, b *BulletSpec) {
		b.BlockedBy = targets
	}),

	KindLightboltBonus:    bonus("lightbolt bonus", 0.05),
	KindSkullBonus:        bonus("skull bonus", 0.03),
	KindBombCapacityBonus: bonus("bomb capacity bonus", 0.15),
	KindFastBombBonus:     bonus("fast bomb bonus", 0.1),
	KindBombRadiusBonus:   bonus("bomb radius bonus", 0.15),
	KindHeartBonus:        bonus("heart bonus", 0.15),
	KindFullHeartBonus:    bonus("full heart bonus", 0.1),
	KindShieldBonus:       bonus("shield bonus", 0.15),
	KindFastBonus:         bonus("fast bonus", 0.15),

	KindExtraLetter: {Name: "extra letter", Category: CategoryExtraLetter, Size: unit, Score: Score100, ScoreOnRemove: true},
}

// SpecOf returns the constants of a kind.
func SpecOf(k Kind) *Spec {
	if k <= KindNone || k >= kindCount {
		return &specs[KindNone]
	}
	return &specs[k]
}

// Category returns the behavior group of k.
func (k Kind) Category() Category {
	return SpecOf(k).Category
}

func (k Kind) String() string {
	return SpecOf(k).Name
}

// Kinds lists every concrete kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// BonusKinds lists the kinds a breakable wall may drop.
func BonusKinds() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if k.Category() == CategoryBonus {
			out = append(out, k)
		}
	}
	return out
}
