package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroedit/internal/codec"
	"heroedit/internal/entities/hero"
)

func TestDecodeArmy(t *testing.T) {
	layout := testLayout(t)
	creatures := testCreatures()

	buf := emptyRegion(layout)
	putU32At(buf, layout.ArmyTypes, 1)
	putU32At(buf, layout.ArmyCounts, 50)
	putU32At(buf, layout.ArmyTypes+4, 5)
	putU32At(buf, layout.ArmyCounts+4, 1)
	// Slot 3 has a type but a zero count.
	putU32At(buf, layout.ArmyTypes+8, 1)
	// Slot 4 has an id the catalog does not know.
	putU32At(buf, layout.ArmyTypes+12, 9999)
	putU32At(buf, layout.ArmyCounts+12, 7)

	army, err := codec.DecodeArmy(buf, layout, creatures)
	require.NoError(t, err)
	require.Len(t, army, hero.ArmySlotCount)

	assert.Equal(t, hero.ArmySlot{Creature: "Pikeman", Count: 50}, army[0])
	assert.Equal(t, hero.ArmySlot{Creature: "Griffin", Count: 1}, army[1])
	assert.True(t, army[2].IsEmpty())
	assert.True(t, army[3].IsEmpty())
	for i := 4; i < hero.ArmySlotCount; i++ {
		assert.True(t, army[i].IsEmpty())
	}
}

func TestArmyRoundTrip(t *testing.T) {
	layout := testLayout(t)
	creatures := testCreatures()
	orig := emptyRegion(layout)

	army := make([]hero.ArmySlot, hero.ArmySlotCount)
	army[0] = hero.ArmySlot{Creature: "Pikeman", Count: 1}
	army[3] = hero.ArmySlot{Creature: "Archangel", Count: hero.MaxCreatureCount}

	cur := append([]byte(nil), orig...)
	require.NoError(t, codec.EncodeArmy(cur, orig, layout, creatures, army))

	decoded, err := codec.DecodeArmy(cur, layout, creatures)
	require.NoError(t, err)
	assert.Equal(t, army, decoded)
}

func TestEncodeArmyKeepsOriginalBytesForUntouchedEmptySlots(t *testing.T) {
	layout := testLayout(t)
	creatures := testCreatures()

	// A never-populated slot may hold either sentinel pattern on disk;
	// both must survive an encode untouched.
	orig := emptyRegion(layout)
	fillAt(orig, layout.ArmyTypes, 4, layout.Blank)
	fillAt(orig, layout.ArmyCounts, 4, layout.Zero)
	fillAt(orig, layout.ArmyTypes+4, 4, layout.Zero)
	fillAt(orig, layout.ArmyCounts+4, 4, layout.Zero)

	cur := append([]byte(nil), orig...)
	empty := make([]hero.ArmySlot, hero.ArmySlotCount)
	require.NoError(t, codec.EncodeArmy(cur, orig, layout, creatures, empty))
	assert.Equal(t, orig, cur)
}

func TestEncodeArmyClearedSlotUsesSentinels(t *testing.T) {
	layout := testLayout(t)
	creatures := testCreatures()

	orig := emptyRegion(layout)
	putU32At(orig, layout.ArmyTypes, 5)
	putU32At(orig, layout.ArmyCounts, 10)

	cur := append([]byte(nil), orig...)
	empty := make([]hero.ArmySlot, hero.ArmySlotCount)
	require.NoError(t, codec.EncodeArmy(cur, orig, layout, creatures, empty))

	// Cleared slots get a blank type and a zero count, not the original bytes.
	want := []byte{layout.Blank, layout.Blank, layout.Blank, layout.Blank}
	assert.Equal(t, want, cur[layout.ArmyTypes:layout.ArmyTypes+4])
	want = []byte{layout.Zero, layout.Zero, layout.Zero, layout.Zero}
	assert.Equal(t, want, cur[layout.ArmyCounts:layout.ArmyCounts+4])
}

func TestEncodeArmyUnresolvableCreatureClears(t *testing.T) {
	layout := testLayout(t)
	creatures := testCreatures()

	orig := emptyRegion(layout)
	putU32At(orig, layout.ArmyTypes, 1)
	putU32At(orig, layout.ArmyCounts, 3)

	army := make([]hero.ArmySlot, hero.ArmySlotCount)
	army[0] = hero.ArmySlot{Creature: "Chimera", Count: 3}

	cur := append([]byte(nil), orig...)
	require.NoError(t, codec.EncodeArmy(cur, orig, layout, creatures, army))

	decoded, err := codec.DecodeArmy(cur, layout, creatures)
	require.NoError(t, err)
	assert.True(t, decoded[0].IsEmpty())
}

func TestEncodeArmyIdempotent(t *testing.T) {
	layout := testLayout(t)
	creatures := testCreatures()

	orig := emptyRegion(layout)
	putU32At(orig, layout.ArmyTypes+8, 14)
	putU32At(orig, layout.ArmyCounts+8, 250)

	army, err := codec.DecodeArmy(orig, layout, creatures)
	require.NoError(t, err)

	cur := append([]byte(nil), orig...)
	require.NoError(t, codec.EncodeArmy(cur, orig, layout, creatures, army))
	assert.Equal(t, orig, cur)
}

func TestDecodeArmyBounds(t *testing.T) {
	layout := testLayout(t)
	_, err := codec.DecodeArmy(make([]byte, 10), layout, testCreatures())
	require.Error(t, err)
}
