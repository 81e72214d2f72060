// Package positions supplies version-scoped byte offsets for the hero
// record. Offsets and the two empty-sentinel byte values are configuration
// shipped with the binary, not constants derived in code; different game
// versions may lay the record out differently.
package positions

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"heroedit/internal/entities/hero"
	"heroedit/internal/errors"
)

//go:embed data/positions.yaml
var defaultData []byte

// Layout is the resolved offset table for one game version. All offsets are
// relative to the start of the hero byte region.
type Layout struct {
	// RegionSize is the hero record length in bytes.
	RegionSize int `yaml:"region_size"`

	// Blank and Zero are the two sentinel byte values the format uses for
	// logical absence. They are distinct on purpose and never normalized.
	Blank byte `yaml:"blank"`
	Zero  byte `yaml:"zero"`

	ArmyTypes  int `yaml:"army_types"`
	ArmyCounts int `yaml:"army_counts"`

	// Artifacts maps each worn slot to its 8-byte field offset.
	Artifacts map[hero.SlotName]int `yaml:"artifacts"`

	// Reserved maps each slot category to its one-byte reserved-capacity
	// counter, used by combination artifacts.
	Reserved map[hero.Category]int `yaml:"reserved"`

	// Inventory is the offset of the first of 64 8-byte inventory fields.
	Inventory int `yaml:"inventory"`
}

type fileFormat struct {
	Versions map[string]Layout `yaml:"versions"`
}

// Table resolves layouts per game version.
type Table struct {
	versions map[string]Layout
}

// New loads the bundled position tables.
func New() (*Table, error) {
	return NewFromBytes(defaultData)
}

// NewFromBytes loads position tables from raw YAML, for overrides and tests.
func NewFromBytes(data []byte) (*Table, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing position tables")
	}
	if len(f.Versions) == 0 {
		return nil, errors.Internal("position tables define no versions")
	}
	for ver, layout := range f.Versions {
		if err := layout.validate(); err != nil {
			return nil, errors.Wrapf(err, "position table for version %q", ver)
		}
	}
	return &Table{versions: f.Versions}, nil
}

// Get returns the layout for the given game version.
func (t *Table) Get(version string) (Layout, error) {
	layout, ok := t.versions[version]
	if !ok {
		return Layout{}, errors.NotFoundf("no position table for version %q", version)
	}
	return layout, nil
}

// Versions lists the versions the table knows about.
func (t *Table) Versions() []string {
	out := make([]string, 0, len(t.versions))
	for ver := range t.versions {
		out = append(out, ver)
	}
	return out
}

// A layout missing a required field is a configuration defect, fatal to the
// caller rather than recoverable.
func (l Layout) validate() error {
	if l.RegionSize <= 0 {
		return errors.Internal("region_size missing")
	}
	if l.Blank == l.Zero {
		return errors.Internal("blank and zero sentinels must differ")
	}
	for _, name := range hero.AllSlotNames() {
		off, ok := l.Artifacts[name]
		if !ok {
			return errors.Internalf("artifact offset missing for slot %q", name)
		}
		if off < 0 || off+8 > l.RegionSize {
			return errors.Internalf("artifact offset for slot %q outside region", name)
		}
	}
	categories := make(map[hero.Category]bool)
	for _, name := range hero.AllSlotNames() {
		categories[name.Category()] = true
	}
	seen := make(map[int]hero.Category, len(categories))
	minOff, maxOff := -1, -1
	for cat := range categories {
		off, ok := l.Reserved[cat]
		if !ok {
			return errors.Internalf("reserved counter missing for category %q", cat)
		}
		if off < 0 || off >= l.RegionSize {
			return errors.Internalf("reserved counter for category %q outside region", cat)
		}
		if other, dup := seen[off]; dup {
			return errors.Internalf("reserved counters for categories %q and %q share offset %d", cat, other, off)
		}
		seen[off] = cat
		if minOff < 0 || off < minOff {
			minOff = off
		}
		if off > maxOff {
			maxOff = off
		}
	}
	// Encoders zero the counter region as one contiguous range; a gapped
	// table would clobber bytes between the counters.
	if maxOff-minOff+1 != len(seen) {
		return errors.Internalf("reserved counters must be contiguous, found offsets %d..%d for %d categories",
			minOff, maxOff, len(seen))
	}
	if l.ArmyTypes < 0 || l.ArmyTypes+hero.ArmySlotCount*4 > l.RegionSize {
		return errors.Internal("army_types outside region")
	}
	if l.ArmyCounts < 0 || l.ArmyCounts+hero.ArmySlotCount*4 > l.RegionSize {
		return errors.Internal("army_counts outside region")
	}
	if l.Inventory < 0 || l.Inventory+hero.InventorySize*8 > l.RegionSize {
		return errors.Internal("inventory outside region")
	}
	return nil
}

// ReservedBounds returns the start offset and length of the contiguous
// reserved-counter region, which encoders zero before recounting.
func (l Layout) ReservedBounds() (start, length int) {
	first := true
	for _, off := range l.Reserved {
		if first || off < start {
			start = off
			first = false
		}
	}
	return start, len(l.Reserved)
}
