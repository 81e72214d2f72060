package hero

// SlotName identifies one of the named worn-artifact slots.
type SlotName string

// All worn-artifact slots, in the order they appear in the hero record.
const (
	SlotHelm      SlotName = "helm"
	SlotNeck      SlotName = "neck"
	SlotArmor     SlotName = "armor"
	SlotWeapon    SlotName = "weapon"
	SlotShield    SlotName = "shield"
	SlotLeftHand  SlotName = "lefthand"
	SlotRightHand SlotName = "righthand"
	SlotCloak     SlotName = "cloak"
	SlotFeet      SlotName = "feet"
	SlotSide1     SlotName = "side1"
	SlotSide2     SlotName = "side2"
	SlotSide3     SlotName = "side3"
	SlotSide4     SlotName = "side4"
	SlotSide5     SlotName = "side5"
)

// Category groups slots that share equip capacity. Both hand slots form the
// "hand" category and the five side slots form the "side" category; every
// other slot is a singleton category equal to its own name.
type Category string

// Shared slot categories.
const (
	CategoryHand Category = "hand"
	CategorySide Category = "side"
)

// String returns the string representation of the slot name.
func (s SlotName) String() string {
	return string(s)
}

// Category returns the slot category this slot contributes capacity to.
func (s SlotName) Category() Category {
	switch s {
	case SlotLeftHand, SlotRightHand:
		return CategoryHand
	case SlotSide1, SlotSide2, SlotSide3, SlotSide4, SlotSide5:
		return CategorySide
	default:
		return Category(s)
	}
}

// IsValid checks if the slot name is one of the known worn slots.
func (s SlotName) IsValid() bool {
	for _, name := range AllSlotNames() {
		if s == name {
			return true
		}
	}
	return false
}

// AllSlotNames returns every worn slot in record order. The order is load
// bearing: codecs and bulk restore walk slots in this order.
func AllSlotNames() []SlotName {
	return []SlotName{
		SlotHelm,
		SlotNeck,
		SlotArmor,
		SlotWeapon,
		SlotShield,
		SlotLeftHand,
		SlotRightHand,
		SlotCloak,
		SlotFeet,
		SlotSide1,
		SlotSide2,
		SlotSide3,
		SlotSide4,
		SlotSide5,
	}
}

// SlotNameFromString converts a string to a SlotName.
// Returns the slot and true if valid, empty slot and false if invalid.
func SlotNameFromString(s string) (SlotName, bool) {
	name := SlotName(s)
	if name.IsValid() {
		return name, true
	}
	return "", false
}
