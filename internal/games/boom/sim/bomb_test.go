package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boom/internal/core"
)

func laserPositions(m *Maze) []core.Vector {
	var out []core.Vector
	for _, l := range entitiesOf(m, KindLaser) {
		out = append(out, l.Position())
	}
	return out
}

func TestExplosionCross(t *testing.T) {
	m := parseMaze(t,
		" | | | | ",
		" | | | | ",
		" | |X| | ",
		" | | | | ",
		" | | | | ",
	)
	p := spawnPlayer(t, m, 1)

	require.True(t, p.DropBomb())
	bombs := entitiesOf(m, KindBomb)
	require.Len(t, bombs, 1)
	assert.Equal(t, core.V(2, 2), bombs[0].Position())
	assert.Equal(t, 2, bombs[0].Radius())
	assert.Equal(t, 1, p.BombCount())

	bombs[0].StartRemoving()

	assert.Equal(t, 0, p.BombCount())
	assert.ElementsMatch(t, []core.Vector{
		core.V(2, 2),
		core.V(1, 2), core.V(0, 2),
		core.V(3, 2), core.V(4, 2),
		core.V(2, 3), core.V(2, 4),
		core.V(2, 1), core.V(2, 0),
	}, laserPositions(m))

	for _, l := range entitiesOf(m, KindLaser) {
		switch {
		case l.Position() == core.V(2, 2):
			assert.Equal(t, OrientationCenter, l.Orientation())
			assert.Equal(t, 1.0, l.Strength())
		case l.Position().Col == 2:
			assert.Equal(t, OrientationVertical, l.Orientation())
		default:
			assert.Equal(t, OrientationHorizontal, l.Orientation())
		}
		assert.Greater(t, l.Strength(), 0.5-1e-9)
		assert.Equal(t, laserDamage, l.laser.damage)
	}
}

func TestExplosionStopsAtWalls(t *testing.T) {
	m := parseMaze(t,
		" | | | | ",
		" | |S| | ",
		" |B|X| |B",
		" | | | | ",
		" | | | | ",
	)
	p := spawnPlayer(t, m, 1)
	require.True(t, p.DropBomb())
	entitiesOf(m, KindBomb)[0].StartRemoving()

	assert.ElementsMatch(t, []core.Vector{
		core.V(2, 2),
		core.V(2, 1),
		core.V(2, 3),
		core.V(3, 2), core.V(4, 2),
	}, laserPositions(m))

	m.Update(0.05)

	var near, far *Entity
	for _, w := range entitiesOf(m, KindBreakableWall) {
		if w.Position() == core.V(2, 1) {
			near = w
		} else {
			far = w
		}
	}
	require.NotNil(t, near)
	require.NotNil(t, far)
	assert.True(t, near.IsRemoving())
	assert.False(t, far.IsRemoving())
	assert.Equal(t, Score10, p.Score(), "breakable wall credits the bomb owner")
}

func TestBombFuse(t *testing.T) {
	m := parseMaze(t,
		" | | | | ",
		" | | | | ",
		" | |X| | ",
		" | | | | ",
		" | | | | ",
	)
	p := spawnPlayer(t, m, 1)
	require.True(t, p.DropBomb())
	bomb := entitiesOf(m, KindBomb)[0]
	assert.Equal(t, bombTimeout, bomb.Fuse())

	tick(m, 0.5, 9)
	assert.True(t, bomb.Attached())
	assert.Zero(t, countKind(m, KindLaser))

	m.Update(0.5)
	assert.False(t, bomb.Attached(), "bomb leaves the maze on the tick it explodes")
	assert.Equal(t, 9, countKind(m, KindLaser))
	assert.Zero(t, p.BombCount())

	m.Update(0.05)
	assert.Equal(t, playerHealth-laserDamage, p.Health())
	assert.True(t, p.Shielded())

	tick(m, 0.05, 4)
	assert.Zero(t, countKind(m, KindLaser))
}

func TestFastBombFuse(t *testing.T) {
	m := parseMaze(t, "X| | ")
	p := spawnPlayer(t, m, 1)
	p.player.fastBomb = true
	require.True(t, p.DropBomb())
	assert.Equal(t, fastBombTimeout, entitiesOf(m, KindBomb)[0].Fuse())
}

func TestChainReaction(t *testing.T) {
	m := parseMaze(t,
		" | | | | ",
		" | | | | ",
		" | | | | ",
		" | | | | ",
		" | | | |X",
	)
	p := spawnPlayer(t, m, 1)

	first := m.newBomb(p, core.V(0, 0))
	second := m.newBomb(p, core.V(0, 1))
	m.AddEntity(first)
	m.AddEntity(second)
	p.player.bombCount = 2

	first.StartRemoving()
	assert.Len(t, entitiesOf(m, KindLaser), 5)
	assert.False(t, second.IsRemoving())

	m.Update(0.05)
	assert.False(t, first.Attached())
	assert.True(t, second.IsRemoving(), "a laser sets off the neighbouring bomb")
	assert.Equal(t, 11, countKind(m, KindLaser))
	assert.Zero(t, p.BombCount())

	m.Update(0.05)
	assert.Zero(t, countKind(m, KindBomb))
}

func TestLaserIgnoresSolidWalls(t *testing.T) {
	m := parseMaze(t, "S| |X")
	p := spawnPlayer(t, m, 1)
	wall := entitiesOf(m, KindSolidWall)[0]

	m.AddEntity(m.newLaser(p.ID, wall.Position(), 1, OrientationCenter))
	m.Update(0.05)

	assert.True(t, wall.Attached())
	assert.False(t, wall.IsRemoving())
}

func TestLaserStrengthFallsWithDistance(t *testing.T) {
	for radius := 1; radius <= 4; radius++ {
		m := parseMaze(t, " | | | |X| | | | ")
		p := spawnPlayer(t, m, 1)
		p.player.bombRadius = radius
		require.True(t, p.DropBomb())
		entitiesOf(m, KindBomb)[0].StartRemoving()

		strength := map[int]float64{}
		for _, l := range entitiesOf(m, KindLaser) {
			dist := int(math.Abs(l.Position().Col - 4))
			strength[dist] = l.Strength()
		}
		require.Len(t, strength, radius+1, "radius %d", radius)

		assert.Equal(t, 1.0, strength[0], "radius %d", radius)
		assert.InDelta(t, 0.5, strength[radius], 1e-9, "radius %d", radius)
		for d := 1; d <= radius; d++ {
			assert.Less(t, strength[d], strength[d-1], "radius %d dist %d", radius, d)
		}
		if radius > 1 {
			assert.Greater(t, strength[1], strength[radius], "radius %d", radius)
		}
	}
}

func TestExplosionReachesOnlyNearBreakableWall(t *testing.T) {
	m := parseMaze(t, "S|B|B|X| |S")
	p := spawnPlayer(t, m, 1)
	p.player.bombRadius = 3
	require.True(t, p.DropBomb())
	entitiesOf(m, KindBomb)[0].StartRemoving()

	assert.ElementsMatch(t, []core.Vector{
		core.V(0, 3),
		core.V(0, 2),
		core.V(0, 4),
	}, laserPositions(m))

	m.Update(0.05)

	for _, w := range entitiesOf(m, KindBreakableWall) {
		switch w.Position() {
		case core.V(0, 2):
			assert.True(t, w.IsRemoving(), "near wall")
		case core.V(0, 1):
			assert.False(t, w.IsRemoving(), "far wall")
		}
	}
	assert.Len(t, entitiesOf(m, KindBreakableWall), 2)
}

func TestTriggeredBombLeavesOnNextUpdate(t *testing.T) {
	m := parseMaze(t, "X| | ")
	p := spawnPlayer(t, m, 1)
	bomb := m.newBomb(p, core.V(0, 2))
	m.AddEntity(bomb)
	p.player.bombCount = 1

	bomb.Hit(Damage{Amount: laserDamage, Type: DamageBombs})
	require.True(t, bomb.IsRemoving())
	assert.True(t, bomb.Attached(), "still in the maze after the hit")

	m.Update(0.01)
	assert.False(t, bomb.Attached())
}
