// Package hero defines the logical hero state decoded from a savegame
// byte region: army slots, worn artifacts, inventory, and primary stats.
package hero

// ArmySlotCount is the number of creature army slots in a hero record.
const ArmySlotCount = 7

// InventorySize is the number of inventory positions in a hero record.
const InventorySize = 64

// MaxCreatureCount is the largest creature count the record can hold.
const MaxCreatureCount = 1<<32 - 1

// Primary attribute indices into stat vectors.
const (
	Attack = iota
	Defense
	Power
	Knowledge
	PrimaryAttributeCount
)

// PrimaryAttributeNames returns display names for stat vector indices.
func PrimaryAttributeNames() [PrimaryAttributeCount]string {
	return [PrimaryAttributeCount]string{"Attack", "Defense", "Power", "Knowledge"}
}

// StatDeltas is a vector of primary attribute modifiers granted by an artifact.
type StatDeltas [PrimaryAttributeCount]int

// ArmySlot is one creature stack. A zero Creature means the slot is empty;
// Count is meaningful only when Creature is set, and then 1 <= Count <= 2^32-1.
type ArmySlot struct {
	Creature string
	Count    uint32
}

// IsEmpty reports whether the slot holds no creature stack.
func (s ArmySlot) IsEmpty() bool {
	return s.Creature == ""
}

// WornArtifacts maps each worn slot to the artifact name donned there,
// with the empty string for a bare slot.
type WornArtifacts map[SlotName]string

// NewWornArtifacts returns a mapping with every slot present and bare.
func NewWornArtifacts() WornArtifacts {
	w := make(WornArtifacts, len(AllSlotNames()))
	for _, name := range AllSlotNames() {
		w[name] = ""
	}
	return w
}

// Clone returns a copy of the mapping.
func (w WornArtifacts) Clone() WornArtifacts {
	out := make(WornArtifacts, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Inventory is the ordered artifact list. Order is persisted and caller
// reorderable; the empty string marks an unused position.
type Inventory []string

// NewInventory returns an empty inventory of full size.
func NewInventory() Inventory {
	return make(Inventory, InventorySize)
}

// Clone returns a copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}

// Hero is one loaded hero record. The logical sections are derived from the
// byte region at load time, mutated in place by edits, and re-flattened into
// bytes on save; they never outlive the record.
type Hero struct {
	Name    string
	Version string
	Region  *ByteRegion

	Army      []ArmySlot
	Worn      WornArtifacts
	Inventory Inventory

	// Stats holds current primary attributes; BaseStats the artifact-free
	// baseline they are recomputed from when equipment changes.
	Stats        StatDeltas
	BaseStats    StatDeltas
	HasBaseStats bool
}

// EnsureBaseStats derives the artifact-free baseline from the current stats
// by subtracting the deltas of every donned artifact. A no-op once the
// baseline is known.
func (h *Hero) EnsureBaseStats(stats map[string]StatDeltas) {
	if h.HasBaseStats {
		return
	}
	var diff StatDeltas
	for _, name := range h.Worn {
		if d, ok := stats[name]; ok {
			for i := range diff {
				diff[i] += d[i]
			}
		}
	}
	for i := range h.BaseStats {
		h.BaseStats[i] = h.Stats[i] - diff[i]
	}
	h.HasBaseStats = true
}
