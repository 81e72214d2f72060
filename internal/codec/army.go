package codec

import (
	"log/slog"

	"heroedit/internal/catalog"
	"heroedit/internal/entities/hero"
	"heroedit/internal/positions"
)

// DecodeArmy reads the 7 creature army slots from buf. A zero type id, a
// zero count, or an id missing from the catalog decodes to an empty slot;
// inconsistent raw data is never an error.
func DecodeArmy(buf []byte, layout positions.Layout, creatures *catalog.CreatureTable) ([]hero.ArmySlot, error) {
	if err := checkBounds(buf, layout.ArmyTypes, hero.ArmySlotCount*4, "army types"); err != nil {
		return nil, err
	}
	if err := checkBounds(buf, layout.ArmyCounts, hero.ArmySlotCount*4, "army counts"); err != nil {
		return nil, err
	}

	slots := make([]hero.ArmySlot, hero.ArmySlotCount)
	for i := 0; i < hero.ArmySlotCount; i++ {
		id := readU32(buf, layout.ArmyTypes+i*4)
		count := readU32(buf, layout.ArmyCounts+i*4)
		if id == 0 || count == 0 {
			continue
		}
		name, ok := creatures.Name(id)
		if !ok {
			slog.Warn("army slot has unknown creature id, treating as empty",
				"slot", i+1, "id", id)
			continue
		}
		slots[i] = hero.ArmySlot{Creature: name, Count: count}
	}
	return slots, nil
}

// EncodeArmy writes the army slots into cur. A slot that is empty now and
// was empty in the original buffer keeps its original 8 bytes verbatim; the
// record encodes never-populated slots with either sentinel and the intent
// is not recoverable. A cleared or unresolvable slot gets a blank-sentinel
// type field and a zero-sentinel count field; that asymmetry matches the
// game's own cleared encoding.
func EncodeArmy(cur, orig []byte, layout positions.Layout, creatures *catalog.CreatureTable, slots []hero.ArmySlot) error {
	if err := checkBounds(cur, layout.ArmyTypes, hero.ArmySlotCount*4, "army types"); err != nil {
		return err
	}
	if err := checkBounds(cur, layout.ArmyCounts, hero.ArmySlotCount*4, "army counts"); err != nil {
		return err
	}

	for i := 0; i < hero.ArmySlotCount; i++ {
		typeOff := layout.ArmyTypes + i*4
		countOff := layout.ArmyCounts + i*4

		var slot hero.ArmySlot
		if i < len(slots) {
			slot = slots[i]
		}

		if (slot.IsEmpty() || slot.Count == 0) && !originalArmyOccupied(orig, layout, creatures, i) {
			copy(cur[typeOff:typeOff+4], orig[typeOff:typeOff+4])
			copy(cur[countOff:countOff+4], orig[countOff:countOff+4])
			continue
		}

		id, ok := creatures.ID(slot.Creature)
		if ok && slot.Count != 0 {
			putU32(cur, typeOff, id)
			putU32(cur, countOff, slot.Count)
		} else {
			fill(cur, typeOff, 4, layout.Blank)
			fill(cur, countOff, 4, layout.Zero)
		}
	}
	return nil
}

// originalArmyOccupied reports whether slot i held a resolvable creature
// stack at load time.
func originalArmyOccupied(orig []byte, layout positions.Layout, creatures *catalog.CreatureTable, i int) bool {
	id := readU32(orig, layout.ArmyTypes+i*4)
	count := readU32(orig, layout.ArmyCounts+i*4)
	if id == 0 || count == 0 {
		return false
	}
	_, ok := creatures.Name(id)
	return ok
}
