package codec_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"heroedit/internal/catalog"
	"heroedit/internal/entities/hero"
	"heroedit/internal/positions"
)

const testScrollID = 1

func testLayout(t *testing.T) positions.Layout {
	t.Helper()
	table, err := positions.New()
	require.NoError(t, err)
	layout, err := table.Get("sod")
	require.NoError(t, err)
	return layout
}

func testCreatures() *catalog.CreatureTable {
	return catalog.NewCreatureTable(map[string]uint32{
		"Pikeman":   1,
		"Griffin":   5,
		"Archangel": 14,
	})
}

func testArtifacts() *catalog.ArtifactTable {
	return catalog.NewArtifactTable(map[string]uint64{
		"Skull Helmet":            20,
		"Rib Cage":                26,
		"Speculum":                52,
		"Angelic Alliance":        130,
		"Spell Scroll (Fireball)": 20<<32 | testScrollID,
	}, "Spell Scroll (Fireball)")
}

func testSlotTable() catalog.SlotTable {
	return catalog.SlotTable{
		"Skull Helmet":            {"helm"},
		"Rib Cage":                {"armor"},
		"Speculum":                {hero.CategorySide},
		"Spell Scroll (Fireball)": {hero.CategorySide},
		"Angelic Alliance":        {"weapon", "helm", "neck", "armor", "shield", "feet"},
	}
}

// emptyRegion returns a region-sized buffer shaped like a record that never
// held anything: blank sentinels in every artifact field, zeroes elsewhere.
func emptyRegion(layout positions.Layout) []byte {
	buf := make([]byte, layout.RegionSize)
	for _, off := range layout.Artifacts {
		fillAt(buf, off, 8, layout.Blank)
	}
	for i := 0; i < hero.InventorySize; i++ {
		fillAt(buf, layout.Inventory+i*8, 8, layout.Blank)
	}
	return buf
}

func putU32At(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

func putU64At(buf []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(buf[off:], v)
}

func fillAt(buf []byte, off, n int, b byte) {
	for i := 0; i < n; i++ {
		buf[off+i] = b
	}
}
