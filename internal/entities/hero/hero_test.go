package hero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroedit/internal/entities/hero"
)

func TestSlotNameCategory(t *testing.T) {
	tests := []struct {
		slot     hero.SlotName
		expected hero.Category
	}{
		{hero.SlotHelm, "helm"},
		{hero.SlotNeck, "neck"},
		{hero.SlotLeftHand, hero.CategoryHand},
		{hero.SlotRightHand, hero.CategoryHand},
		{hero.SlotSide1, hero.CategorySide},
		{hero.SlotSide5, hero.CategorySide},
		{hero.SlotFeet, "feet"},
	}
	for _, tc := range tests {
		t.Run(string(tc.slot), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.slot.Category())
		})
	}
}

func TestAllSlotNamesOrder(t *testing.T) {
	names := hero.AllSlotNames()
	require.Len(t, names, 14)
	assert.Equal(t, hero.SlotHelm, names[0])
	assert.Equal(t, hero.SlotSide5, names[13])

	// Two hand slots and five side slots share their categories.
	counts := make(map[hero.Category]int)
	for _, name := range names {
		counts[name.Category()]++
	}
	assert.Equal(t, 2, counts[hero.CategoryHand])
	assert.Equal(t, 5, counts[hero.CategorySide])
}

func TestSlotNameFromString(t *testing.T) {
	slot, ok := hero.SlotNameFromString("side3")
	require.True(t, ok)
	assert.Equal(t, hero.SlotSide3, slot)

	_, ok = hero.SlotNameFromString("pocket")
	assert.False(t, ok)
}

func TestEnsureBaseStats(t *testing.T) {
	stats := map[string]hero.StatDeltas{
		"Sword of Judgement": {5, 5, 5, 5},
		"Rib Cage":           {0, 0, 2, 0},
	}

	h := &hero.Hero{
		Worn:  hero.NewWornArtifacts(),
		Stats: hero.StatDeltas{10, 8, 9, 4},
	}
	h.Worn[hero.SlotWeapon] = "Sword of Judgement"
	h.Worn[hero.SlotArmor] = "Rib Cage"

	h.EnsureBaseStats(stats)
	assert.Equal(t, hero.StatDeltas{5, 3, 2, -1}, h.BaseStats)
	assert.True(t, h.HasBaseStats)

	// A second call must not re-derive against the already-known baseline.
	h.Stats = hero.StatDeltas{99, 99, 99, 99}
	h.EnsureBaseStats(stats)
	assert.Equal(t, hero.StatDeltas{5, 3, 2, -1}, h.BaseStats)
}

func TestByteRegion(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	region := hero.NewByteRegion(raw)

	// The region snapshots its input.
	raw[0] = 99
	assert.Equal(t, []byte{1, 2, 3, 4}, region.Original())

	cur := region.CloneCurrent()
	cur[1] = 42
	require.NoError(t, region.SetCurrent(cur))
	assert.Equal(t, []byte{1, 42, 3, 4}, region.Current())
	assert.Equal(t, []byte{1, 2, 3, 4}, region.Original())

	err := region.SetCurrent([]byte{1, 2})
	require.Error(t, err)
}

func TestWornArtifactsClone(t *testing.T) {
	worn := hero.NewWornArtifacts()
	worn[hero.SlotHelm] = "Skull Helmet"

	clone := worn.Clone()
	clone[hero.SlotHelm] = "Helm of Chaos"
	assert.Equal(t, "Skull Helmet", worn[hero.SlotHelm])
}

func TestInventoryClone(t *testing.T) {
	inv := hero.NewInventory()
	require.Len(t, inv, hero.InventorySize)
	inv[0] = "Speculum"

	clone := inv.Clone()
	clone[0] = "Spyglass"
	assert.Equal(t, "Speculum", inv[0])
}
