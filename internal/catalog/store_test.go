package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroedit/internal/catalog"
	"heroedit/internal/entities/hero"
	"heroedit/internal/errors"
)

func TestBundledCreatures(t *testing.T) {
	store, err := catalog.New()
	require.NoError(t, err)

	creatures, err := store.Creatures("sod")
	require.NoError(t, err)

	id, ok := creatures.ID("Pikeman")
	require.True(t, ok)
	assert.Equal(t, uint32(1), id)

	name, ok := creatures.Name(14)
	require.True(t, ok)
	assert.Equal(t, "Archangel", name)

	canonical, ok := creatures.Resolve("azure dragon")
	require.True(t, ok)
	assert.Equal(t, "Azure Dragon", canonical)
}

func TestCreatureVersionScoping(t *testing.T) {
	store, err := catalog.New()
	require.NoError(t, err)

	// Sharpshooter arrived with the ab expansion.
	roe, err := store.Creatures("roe")
	require.NoError(t, err)
	_, ok := roe.ID("Sharpshooter")
	assert.False(t, ok)

	ab, err := store.Creatures("ab")
	require.NoError(t, err)
	_, ok = ab.ID("Sharpshooter")
	assert.True(t, ok)
}

func TestArtifactVersionScoping(t *testing.T) {
	store, err := catalog.New()
	require.NoError(t, err)

	roe, err := store.Artifacts("roe", "")
	require.NoError(t, err)
	_, ok := roe.Identity("Angelic Alliance")
	assert.False(t, ok, "combination artifacts arrived with sod")

	sod, err := store.Artifacts("sod", "")
	require.NoError(t, err)
	identity, ok := sod.Identity("Angelic Alliance")
	require.True(t, ok)
	assert.Equal(t, uint64(130), identity)
}

func TestScrollIdentity(t *testing.T) {
	store, err := catalog.New()
	require.NoError(t, err)

	scrollID, err := store.ScrollID("sod")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), scrollID)

	scrolls, err := store.Artifacts("sod", catalog.CategoryScroll)
	require.NoError(t, err)

	identity, ok := scrolls.Identity("Spell Scroll (Fireball)")
	require.True(t, ok)
	// Spell 20 in the high 4 bytes, the shared scroll id in the low 4.
	assert.Equal(t, uint64(20)<<32|uint64(scrollID), identity)
	assert.True(t, scrolls.IsScroll("Spell Scroll (Fireball)"))

	name, ok := scrolls.Name(identity)
	require.True(t, ok)
	assert.Equal(t, "Spell Scroll (Fireball)", name)
}

func TestCategoryFiltering(t *testing.T) {
	store, err := catalog.New()
	require.NoError(t, err)

	t.Run("inventory excludes worn-only artifacts", func(t *testing.T) {
		inv, err := store.Artifacts("sod", catalog.CategoryInventory)
		require.NoError(t, err)
		_, ok := inv.Identity("The Grail")
		assert.False(t, ok)
		_, ok = inv.Identity("Speculum")
		assert.True(t, ok)
	})

	t.Run("unfiltered includes worn-only artifacts", func(t *testing.T) {
		all, err := store.Artifacts("sod", "")
		require.NoError(t, err)
		_, ok := all.Identity("The Grail")
		assert.True(t, ok)
	})

	t.Run("slot category restricts to primary slot", func(t *testing.T) {
		helms, err := store.Artifacts("sod", "helm")
		require.NoError(t, err)
		_, ok := helms.Identity("Skull Helmet")
		assert.True(t, ok)
		_, ok = helms.Identity("Rib Cage")
		assert.False(t, ok)
		// Combination artifacts appear under their primary slot only.
		_, ok = helms.Identity("Angelic Alliance")
		assert.False(t, ok)
		weapons, err := store.Artifacts("sod", "weapon")
		require.NoError(t, err)
		_, ok = weapons.Identity("Angelic Alliance")
		assert.True(t, ok)
	})
}

func TestArtifactSlots(t *testing.T) {
	store, err := catalog.New()
	require.NoError(t, err)

	slots, err := store.ArtifactSlots("sod")
	require.NoError(t, err)

	assert.Equal(t, []hero.Category{"weapon", "helm", "neck", "armor", "shield", "feet"},
		slots["Angelic Alliance"])
	assert.Equal(t, []hero.Category{"side", "side", "side", "side", "side"},
		slots["Statue of Legion"])
	assert.Equal(t, []hero.Category{"helm"}, slots["Skull Helmet"])
	_, ok := slots["The Grail"]
	assert.False(t, ok, "worn-only artifacts occupy no slots")
}

func TestArtifactStats(t *testing.T) {
	store, err := catalog.New()
	require.NoError(t, err)

	stats, err := store.ArtifactStats("sod")
	require.NoError(t, err)
	assert.Equal(t, hero.StatDeltas{21, 21, 21, 21}, stats["Angelic Alliance"])
	assert.Equal(t, hero.StatDeltas{0, 0, 10, -2}, stats["Titan's Cuirass"])
}

func TestUnknownVersion(t *testing.T) {
	store, err := catalog.New()
	require.NoError(t, err)

	_, err = store.Creatures("hota")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestNewFromBytesRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no versions", "versions: []\nscroll_id: 1"},
		{"no scroll id", "versions: [roe]"},
		{"creature id zero", `
versions: [roe]
scroll_id: 1
creatures:
  - {name: Ghost, id: 0, since: roe}
`},
		{"creature unknown version", `
versions: [roe]
scroll_id: 1
creatures:
  - {name: Pikeman, id: 1, since: wog}
`},
		{"scroll with wrong id", `
versions: [roe]
scroll_id: 1
artifacts:
  - {name: Spell Scroll (Haste), id: 7, spell: 53, since: roe, slots: [side]}
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.NewFromBytes([]byte(tc.data))
			require.Error(t, err)
		})
	}
}
