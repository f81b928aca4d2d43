package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTags(t *testing.T) {
	cases := map[rune]Kind{
		'S': KindSolidWall,
		'B': KindBreakableWall,
		'C': KindCoin,
		'T': KindTeleporter,
		'0': KindSoldier,
		'9': KindGiggler,
		'H': KindHead,
	}
	for tag, want := range cases {
		got, ok := DefaultTags().Lookup(tag)
		assert.True(t, ok, "tag %q", tag)
		assert.Equal(t, want, got, "tag %q", tag)
	}

	_, ok := DefaultTags().Lookup('X')
	assert.False(t, ok, "spawn letters are not entity tags")
}

func TestRegisterRejectsReservedTags(t *testing.T) {
	r := NewTagRegistry()
	for _, tag := range []rune{Void, Separator, '\n', '\t', 'X', 'Y'} {
		err := r.Register(tag, KindCoin)
		assert.ErrorIs(t, err, ErrInvalidTag, "tag %q", tag)
	}
	assert.Empty(t, r.Tags())
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewTagRegistry()
	require.NoError(t, r.Register('c', KindCoin))
	assert.ErrorIs(t, r.Register('c', KindSolidWall), ErrDuplicateTag)

	k, ok := r.Lookup('c')
	require.True(t, ok)
	assert.Equal(t, KindCoin, k)
}

func TestTagsSorted(t *testing.T) {
	r := NewTagRegistry()
	require.NoError(t, r.Register('z', KindCoin))
	require.NoError(t, r.Register('a', KindSolidWall))
	require.NoError(t, r.Register('m', KindTeleporter))
	assert.Equal(t, []rune{'a', 'm', 'z'}, r.Tags())
}

func TestSpawnTag(t *testing.T) {
	assert.Equal(t, 'X', SpawnTag(1))
	assert.Equal(t, 'Y', SpawnTag(2))
	assert.Equal(t, Void, SpawnTag(3))
}

func TestKindTable(t *testing.T) {
	for _, k := range Kinds() {
		spec := SpecOf(k)
		assert.NotEmpty(t, spec.Name, "kind %d", k)
		assert.NotEqual(t, CategoryNone, spec.Category, "kind %s", k)
		switch spec.Category {
		case CategoryEnemy:
			assert.NotNil(t, spec.Enemy, "kind %s", k)
		case CategoryBullet:
			assert.NotNil(t, spec.Bullet, "kind %s", k)
		}
	}
	assert.Len(t, BonusKinds(), 9)
	assert.Equal(t, "none", SpecOf(kindCount).Name)
}
