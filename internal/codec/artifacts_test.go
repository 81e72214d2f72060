package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroedit/internal/codec"
	"heroedit/internal/entities/hero"
)

func TestDecodeArtifacts(t *testing.T) {
	layout := testLayout(t)
	arts := testArtifacts()

	buf := emptyRegion(layout)
	// Narrow form: 4-byte id plus 4 blank bytes.
	putU32At(buf, layout.Artifacts[hero.SlotHelm], 20)
	fillAt(buf, layout.Artifacts[hero.SlotHelm]+4, 4, layout.Blank)
	// Wide scroll form.
	putU64At(buf, layout.Artifacts[hero.SlotSide1], 20<<32|testScrollID)
	// Unknown identity decodes to a bare slot.
	putU32At(buf, layout.Artifacts[hero.SlotNeck], 9999)
	fillAt(buf, layout.Artifacts[hero.SlotNeck]+4, 4, layout.Blank)

	worn, err := codec.DecodeArtifacts(buf, layout, arts, testScrollID)
	require.NoError(t, err)

	assert.Equal(t, "Skull Helmet", worn[hero.SlotHelm])
	assert.Equal(t, "Spell Scroll (Fireball)", worn[hero.SlotSide1])
	assert.Empty(t, worn[hero.SlotNeck])
	assert.Empty(t, worn[hero.SlotWeapon])
}

func TestArtifactsRoundTrip(t *testing.T) {
	layout := testLayout(t)
	arts := testArtifacts()
	slots := testSlotTable()

	worn := hero.NewWornArtifacts()
	worn[hero.SlotHelm] = "Skull Helmet"
	worn[hero.SlotArmor] = "Rib Cage"
	worn[hero.SlotSide2] = "Speculum"

	cur := emptyRegion(layout)
	require.NoError(t, codec.EncodeArtifacts(cur, layout, arts, slots, worn))

	decoded, err := codec.DecodeArtifacts(cur, layout, arts, testScrollID)
	require.NoError(t, err)
	assert.Equal(t, worn, decoded)
}

func TestEncodeArtifactsBareSlotIsAllBlank(t *testing.T) {
	layout := testLayout(t)

	cur := make([]byte, layout.RegionSize)
	require.NoError(t, codec.EncodeArtifacts(cur, layout, testArtifacts(), testSlotTable(), hero.NewWornArtifacts()))

	for _, slot := range hero.AllSlotNames() {
		off := layout.Artifacts[slot]
		for i := 0; i < 8; i++ {
			require.Equal(t, layout.Blank, cur[off+i], "slot %s byte %d", slot, i)
		}
	}
}

func TestEncodeArtifactsReservedCounters(t *testing.T) {
	layout := testLayout(t)
	arts := testArtifacts()
	slots := testSlotTable()

	// Stale counter values must be recomputed from scratch.
	cur := emptyRegion(layout)
	start, length := layout.ReservedBounds()
	fillAt(cur, start, length, 9)

	worn := hero.NewWornArtifacts()
	worn[hero.SlotWeapon] = "Angelic Alliance"
	worn[hero.SlotSide1] = "Speculum"
	require.NoError(t, codec.EncodeArtifacts(cur, layout, arts, slots, worn))

	// Every category past the primary weapon slot is reserved once;
	// single-slot artifacts reserve nothing.
	assert.Equal(t, byte(1), cur[layout.Reserved["helm"]])
	assert.Equal(t, byte(1), cur[layout.Reserved["neck"]])
	assert.Equal(t, byte(1), cur[layout.Reserved["armor"]])
	assert.Equal(t, byte(1), cur[layout.Reserved["shield"]])
	assert.Equal(t, byte(1), cur[layout.Reserved["feet"]])
	assert.Equal(t, byte(0), cur[layout.Reserved["weapon"]])
	assert.Equal(t, byte(0), cur[layout.Reserved[hero.CategorySide]])
	assert.Equal(t, byte(0), cur[layout.Reserved[hero.CategoryHand]])
}

func TestEncodeArtifactsScrollNarrowForm(t *testing.T) {
	layout := testLayout(t)
	arts := testArtifacts()

	worn := hero.NewWornArtifacts()
	worn[hero.SlotSide1] = "Spell Scroll (Fireball)"

	cur := emptyRegion(layout)
	require.NoError(t, codec.EncodeArtifacts(cur, layout, arts, testSlotTable(), worn))

	// Worn slots always use the narrow form, so the spell reference in the
	// high bytes is dropped.
	off := layout.Artifacts[hero.SlotSide1]
	assert.Equal(t, []byte{testScrollID, 0, 0, 0}, cur[off:off+4])
	for i := 4; i < 8; i++ {
		assert.Equal(t, layout.Blank, cur[off+i])
	}
}
