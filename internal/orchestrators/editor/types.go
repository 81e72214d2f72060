package editor

import (
	"heroedit/internal/entities/hero"
)

// LoadHeroInput defines the request for decoding a hero byte region.
type LoadHeroInput struct {
	Name    string
	Version string

	// Raw is the hero's byte region sliced out of the save file. It must
	// match the version's region size exactly.
	Raw []byte

	// Stats carries the hero's current primary attributes when the caller
	// knows them; the artifact-free baseline is derived from them.
	Stats hero.StatDeltas
}

// LoadHeroOutput defines the response for decoding a hero byte region.
type LoadHeroOutput struct {
	Hero *hero.Hero
}

// EquipInput defines the request for one worn-slot change. An empty
// Artifact clears the slot.
type EquipInput struct {
	Hero     *hero.Hero
	Slot     hero.SlotName
	Artifact string
}

// EquipOutput defines the response for one worn-slot change.
type EquipOutput struct {
	// Changed is false when the slot already held the requested artifact.
	Changed bool

	// StatsChanged reports whether derived primary attributes moved.
	StatsChanged bool
}

// SetArmyInput defines the request for replacing the army slots.
type SetArmyInput struct {
	Hero  *hero.Hero
	Slots []hero.ArmySlot
}

// SetArmyOutput defines the response for replacing the army slots.
type SetArmyOutput struct {
	Changed  bool
	Warnings []string
}

// SetInventoryInput defines the request for replacing the inventory list.
type SetInventoryInput struct {
	Hero  *hero.Hero
	Items []string
}

// SetInventoryOutput defines the response for replacing the inventory list.
type SetInventoryOutput struct {
	Changed  bool
	Warnings []string
}

// RestoreStateInput defines the request for wholesale state restoration,
// e.g. an import. Nil sections are left untouched.
type RestoreStateInput struct {
	Hero      *hero.Hero
	Worn      map[hero.SlotName]string
	Army      []hero.ArmySlot
	Inventory []string
}

// RestoreStateOutput defines the response for wholesale state restoration.
type RestoreStateOutput struct {
	Changed bool

	// Cleared lists worn slots emptied because the restored configuration
	// over-subscribed a slot category.
	Cleared []hero.SlotName

	Warnings []string
}

// SerializeHeroInput defines the request for flattening logical state back
// into bytes.
type SerializeHeroInput struct {
	Hero *hero.Hero
}

// SerializeHeroOutput defines the response for flattening logical state.
type SerializeHeroOutput struct {
	// Buffer is the revised byte region; it is also installed as the
	// hero's current buffer.
	Buffer []byte

	// ChangedRanges lists byte ranges that differ from the load-time
	// buffer, for unsaved-changes reporting.
	ChangedRanges []Range
}

// Range is a half-open byte range within the hero region.
type Range struct {
	Start int
	End   int
}
