package codec

import (
	"log/slog"

	"heroedit/internal/catalog"
	"heroedit/internal/entities/hero"
	"heroedit/internal/positions"
)

// DecodeInventory reads the 64 ordered inventory positions from buf.
func DecodeInventory(buf []byte, layout positions.Layout, arts *catalog.ArtifactTable, scrollID uint32) (hero.Inventory, error) {
	if err := checkBounds(buf, layout.Inventory, hero.InventorySize*8, "inventory"); err != nil {
		return nil, err
	}

	inv := hero.NewInventory()
	for i := 0; i < hero.InventorySize; i++ {
		off := layout.Inventory + i*8
		identity, ok := decodeItem(buf, off, layout.Blank, scrollID)
		if !ok {
			continue
		}
		name, ok := arts.Name(identity)
		if !ok {
			slog.Warn("inventory slot has unknown artifact identity, treating as empty",
				"slot", i+1, "identity", identity)
			continue
		}
		inv[i] = name
	}
	return inv, nil
}

// EncodeInventory writes the inventory list into cur in caller order. Scroll
// artifacts use the wide 8-byte identity; other artifacts the 4-byte id plus
// 4 blank bytes. A position empty both at load time and now keeps its
// original 8 bytes verbatim; a cleared position gets 4 blank bytes followed
// by 4 zero-sentinel bytes, matching the game's cleared encoding.
func EncodeInventory(cur, orig []byte, layout positions.Layout, arts *catalog.ArtifactTable, scrollID uint32, items hero.Inventory) error {
	if err := checkBounds(cur, layout.Inventory, hero.InventorySize*8, "inventory"); err != nil {
		return err
	}

	for i := 0; i < hero.InventorySize; i++ {
		off := layout.Inventory + i*8

		var name string
		if i < len(items) {
			name = items[i]
		}
		identity, ok := arts.Identity(name)

		switch {
		case ok && arts.IsScroll(name):
			putU64(cur, off, identity)
		case ok && identity != 0:
			putU32(cur, off, uint32(identity))
			fill(cur, off+4, 4, layout.Blank)
		case !originalInventoryOccupied(orig, layout, arts, scrollID, i):
			copy(cur[off:off+8], orig[off:off+8])
		default:
			fill(cur, off, 4, layout.Blank)
			fill(cur, off+4, 4, layout.Zero)
		}
	}
	return nil
}

// originalInventoryOccupied reports whether position i held a resolvable
// artifact at load time.
func originalInventoryOccupied(orig []byte, layout positions.Layout, arts *catalog.ArtifactTable, scrollID uint32, i int) bool {
	identity, ok := decodeItem(orig, layout.Inventory+i*8, layout.Blank, scrollID)
	if !ok {
		return false
	}
	_, ok = arts.Name(identity)
	return ok
}
