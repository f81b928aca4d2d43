package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/core"
)

func TestSoldierShootsPlayerInSight(t *testing.T) {
	m := parseMaze(t,
		"S|S|S|S|S|S|S",
		"S|X| | | |0|S",
		"S|S|S|S|S|S|S",
	)
	p := spawnPlayer(t, m, 1)
	soldier := entitiesOf(m, KindSoldier)[0]

	m.Update(0.05)

	assert.Equal(t, core.Left, soldier.Direction(), "only way out")
	require.Equal(t, 1, countKind(m, KindShot))
	assert.True(t, soldier.Firing())
	assert.Zero(t, soldier.Speed(), "stands still while firing")

	shot := entitiesOf(m, KindShot)[0]
	assert.Equal(t, core.V(0, -1), shot.Heading())

	tick(m, 0.05, 20)
	assert.Less(t, p.Health(), playerHealth)
}

func TestEnemyDoesNotSeeThroughWalls(t *testing.T) {
	m := parseMaze(t,
		"S|S|S|S|S|S|S",
		"S|X| |B| |0|S",
		"S|S|S|S|S|S|S",
	)
	spawnPlayer(t, m, 1)
	soldier := entitiesOf(m, KindSoldier)[0]

	_, seen := seekPlayer(soldier, core.Left)
	assert.False(t, seen)

	m.Update(0.05)
	assert.Zero(t, countKind(m, KindShot))
}

func TestSeekPlayerDistance(t *testing.T) {
	m := parseMaze(t,
		"X| | |0",
	)
	p := spawnPlayer(t, m, 1)
	soldier := entitiesOf(m, KindSoldier)[0]

	dist, ok := seekPlayer(soldier, core.Left)
	require.True(t, ok)
	assert.Equal(t, 3.0, dist)

	_, ok = seekPlayer(soldier, core.Right)
	assert.False(t, ok)

	// Sharing a tile gives the signed offset, negative when the player is ahead.
	p.setPosition(core.V(0, 2.5))
	dist, ok = seekPlayer(soldier, core.Left)
	require.True(t, ok)
	assert.InDelta(t, -0.5, dist, 1e-9)

	_, ok = seekAdjacent(soldier, core.Left)
	assert.True(t, ok)
}

func TestEnemyContactDamage(t *testing.T) {
	m := parseMaze(t,
		"S|S|S|S",
		"S|X|3|S",
		"S|S|S|S",
	)
	p := spawnPlayer(t, m, 1)
	taur := entitiesOf(m, KindTaur)[0]
	taur.setPosition(p.Position().Add(core.V(0, 0.5)))

	taur.contactDamage()
	assert.Equal(t, playerHealth-SpecOf(KindTaur).Enemy.Damage, p.Health())
	assert.True(t, p.Shielded())
}

func TestEnemyChoosesPlausibleDirection(t *testing.T) {
	m := parseMaze(t,
		"S|S|S",
		"S|0| ",
		"S| |S",
	)
	soldier := entitiesOf(m, KindSoldier)[0]

	for i := 0; i < 20; i++ {
		soldier.motion.current = core.NoDirection
		soldier.enemyUpdateDirection()
		assert.Contains(t, []core.Direction{core.Down, core.Right}, soldier.Direction())
	}
}

func TestEnemyKeepsGoingWhenNotErratic(t *testing.T) {
	m := parseMaze(t,
		" | | ",
		" |2| ",
		" | | ",
	)
	lizzy := entitiesOf(m, KindLizzy)[0]
	for i := 0; i < 20; i++ {
		lizzy.motion.current = core.Right
		lizzy.enemyUpdateDirection()
		assert.NotEqual(t, core.Left, lizzy.Direction(), "does not turn back")
	}
}

func TestEnemyKilledByLaserPaysOwner(t *testing.T) {
	m := parseMaze(t,
		"X| | |0",
	)
	p := spawnPlayer(t, m, 1)
	soldier := entitiesOf(m, KindSoldier)[0]
	r := record(&m.Publisher)

	ok := soldier.Hit(Damage{Source: 99, SourceKind: KindLaser, Credit: p.ID, Amount: laserDamage, Type: DamageBombs})
	require.True(t, ok)
	assert.True(t, soldier.IsRemoving())
	assert.Equal(t, Score200, p.Score())
	assert.Equal(t, 1, countOf[*ScoreEvent](r))

	assert.False(t, soldier.Hit(Damage{Amount: 1, Type: DamageEnemies}), "already removing")
}

func TestEnragedEnemyRunsTwiceAsFast(t *testing.T) {
	m := parseMaze(t,
		"S|S|S|S|S|S|S|S",
		"S|0| | | | | |S",
		"S|S|S|S|S|S|S|S",
	)
	soldier := entitiesOf(m, KindSoldier)[0]
	soldier.enemy.enraged = true

	soldier.Update(0.1)
	assert.Equal(t, core.Right, soldier.Direction())
	assert.InDelta(t, 1.4, soldier.Position().Col, 1e-9)
}

func TestHurryUpEnragesEnemies(t *testing.T) {
	m := parseMaze(t,
		"X| | | | |0",
	)
	spawnPlayer(t, m, 1)
	soldier := entitiesOf(m, KindSoldier)[0]
	r := record(&m.Publisher)

	m.HurryUp()
	m.HurryUp()
	assert.True(t, m.HurryingUp())
	assert.Equal(t, 1, countOf[*HurryUpEvent](r))

	m.hurryUpTimer.Update(HurryUpDelay - 0.01)
	m.Update(0.02)
	assert.True(t, soldier.Enraged())
}

func TestTurretOnlyHurtOnceByEachLaser(t *testing.T) {
	m := parseMaze(t,
		"X| | | | ",
		" | | | | ",
		" |H| | | ",
		" | | | | ",
		" | | | | ",
	)
	spawnPlayer(t, m, 1)
	head := entitiesOf(m, KindHead)[0]
	require.Equal(t, 200, head.Health())

	laser := Damage{Source: 42, SourceKind: KindLaser, Amount: laserDamage, Type: DamageBombs}
	assert.True(t, head.Hit(laser))
	assert.False(t, head.Hit(laser), "same laser again")
	assert.Equal(t, 200-laserDamage, head.Health())

	laser.Source = 43
	assert.True(t, head.Hit(laser))
	assert.False(t, head.Hit(Damage{Source: 44, SourceKind: KindShot, Amount: 1, Type: DamageBombs}), "only lasers")
}

func TestTurretFiresMissilesAtNearestPlayer(t *testing.T) {
	m := parseMaze(t,
		" | | | | ",
		" | | | | ",
		" |H| | | ",
		" | | | | ",
		" | | | |X",
	)
	spawnPlayer(t, m, 1)
	head := entitiesOf(m, KindHead)[0]
	head.enemy.reload.Reset()

	head.Update(0.01)
	missiles := entitiesOf(m, KindMissile)
	require.Len(t, missiles, 2, "one per eye")
	for _, mis := range missiles {
		h := mis.Heading()
		assert.InDelta(t, 1.0, h.Len(), 1e-9)
		assert.Greater(t, h.Row, 0.0)
		assert.Greater(t, h.Col, 0.0)
	}
	assert.True(t, head.Firing())
}

func TestTurretIgnoresPlayersOutOfScope(t *testing.T) {
	row := " | | | | | | | | | | | | | | "
	rows := []string{row, row, row, row, row, row, row, row, row, row, row, row, row, " | | | | | | | | | | | | | |X"}
	rows[0] = "H" + row[1:]
	m := parseMaze(t, rows...)
	spawnPlayer(t, m, 1)
	head := entitiesOf(m, KindHead)[0]

	head.fireMissiles()
	assert.Zero(t, countKind(m, KindMissile))
}

func TestAlienEnemyDropsLetter(t *testing.T) {
	m := parseMaze(t,
		"X| | |0",
	)
	spawnPlayer(t, m, 1)
	soldier := entitiesOf(m, KindSoldier)[0]
	soldier.setExtraGame(true)
	assert.True(t, soldier.Alien())

	soldier.Hit(Damage{Amount: laserDamage, Type: DamageBombs})
	soldier.Update(SpecOf(KindSoldier).RemovingDelay)

	assert.False(t, soldier.Attached())
	letters := entitiesOf(m, KindExtraLetter)
	require.Len(t, letters, 1)
	assert.Equal(t, soldier.Position(), letters[0].Position())
}
