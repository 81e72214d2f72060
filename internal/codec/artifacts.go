package codec

import (
	"log/slog"

	"heroedit/internal/catalog"
	"heroedit/internal/entities/hero"
	"heroedit/internal/positions"
)

// decodeItem reads one artifact identity at off: nil for an all-blank field,
// the wide 8-byte value when the id is the reserved scroll id, and the
// 4-byte id otherwise.
func decodeItem(buf []byte, off int, blank byte, scrollID uint32) (uint64, bool) {
	if allBytes(buf, off, 4, blank) {
		return 0, false
	}
	id := readU32(buf, off)
	if id == scrollID {
		return readU64(buf, off), true
	}
	return uint64(id), true
}

// DecodeArtifacts reads the 14 worn-artifact slots from buf. Identities that
// do not resolve through the catalog decode to a bare slot.
func DecodeArtifacts(buf []byte, layout positions.Layout, arts *catalog.ArtifactTable, scrollID uint32) (hero.WornArtifacts, error) {
	worn := hero.NewWornArtifacts()
	for _, slot := range hero.AllSlotNames() {
		off := layout.Artifacts[slot]
		if err := checkBounds(buf, off, 8, "artifact slot"); err != nil {
			return nil, err
		}
		identity, ok := decodeItem(buf, off, layout.Blank, scrollID)
		if !ok {
			continue
		}
		name, ok := arts.Name(identity)
		if !ok {
			slog.Warn("worn slot has unknown artifact identity, treating as empty",
				"slot", slot, "identity", identity)
			continue
		}
		worn[slot] = name
	}
	return worn, nil
}

// EncodeArtifacts writes the worn-artifact slots and the reserved-capacity
// counters into cur. The counter region is scratch state recomputed from
// scratch on every encode, never diffed against the original buffer. Every
// slot field is written in the narrow form: id plus 4 blank bytes, or 8
// blank bytes when bare. For each donned combination artifact, every
// category past its primary slot bumps that category's counter.
func EncodeArtifacts(cur []byte, layout positions.Layout, arts *catalog.ArtifactTable, slots catalog.SlotTable, worn hero.WornArtifacts) error {
	resStart, resLen := layout.ReservedBounds()
	if err := checkBounds(cur, resStart, resLen, "reserved counters"); err != nil {
		return err
	}
	fill(cur, resStart, resLen, 0)

	for _, slot := range hero.AllSlotNames() {
		off := layout.Artifacts[slot]
		if err := checkBounds(cur, off, 8, "artifact slot"); err != nil {
			return err
		}

		name := worn[slot]
		identity, ok := arts.Identity(name)
		if !ok {
			fill(cur, off, 8, layout.Blank)
			continue
		}
		putU32(cur, off, uint32(identity))
		fill(cur, off+4, 4, layout.Blank)

		for _, cat := range reservedCategories(slots, name) {
			cur[layout.Reserved[cat]]++
		}
	}
	return nil
}

// reservedCategories returns the categories an artifact consumes beyond its
// primary slot.
func reservedCategories(slots catalog.SlotTable, name string) []hero.Category {
	occupied := slots[name]
	if len(occupied) < 2 {
		return nil
	}
	return occupied[1:]
}
