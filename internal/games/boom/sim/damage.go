package sim

// DamageType classifies what caused a hit.
type DamageType int

const (
	DamageBombs   DamageType = iota + 1 // lasers of an exploding bomb
	DamageEnemies                       // enemy contact and bullets
)

// DamageSet is a bit set of damage types.
type DamageSet uint8

// DamageSetOf builds a set.
func DamageSetOf(ts ...DamageType) DamageSet {
	var s DamageSet
	for _, t := range ts {
		s |= 1 << uint(t)
	}
	return s
}

// Has reports whether t is in the set.
func (s DamageSet) Has(t DamageType) bool {
	return s&(1<<uint(t)) != 0
}

// Damage describes one hit. Credit names the player to reward when the hit
// comes from one of their lasers, or zero.
type Damage struct {
	Source     EntityID
	SourceKind Kind
	Credit     EntityID
	Amount     int
	Type       DamageType
}

// Score values awarded by entities.
const (
	Score0    = 0
	Score10   = 10
	Score50   = 50
	Score100  = 100
	Score150  = 150
	Score200  = 200
	Score300  = 300
	Score400  = 400
	Score500  = 500
	Score600  = 600
	Score700  = 700
	Score800  = 800
	Score900  = 900
	Score1K   = 1000
	Score5K   = 5000
	Score100K = 100000
)
