// Package catalog provides the version-scoped lookup tables the codecs and
// the editor resolve ids and names through: creatures, artifacts, per-artifact
// occupied slot categories, and primary attribute deltas. Different game
// versions may carry disjoint catalogs, so every query names a version.
package catalog

//go:generate mockgen -destination=mock/mock_provider.go -package=catalogmock heroedit/internal/catalog Provider

import (
	"sort"
	"strings"

	"heroedit/internal/entities/hero"
)

// Pseudo categories accepted by Artifacts besides slot categories.
const (
	// CategoryInventory selects every artifact that may sit in the
	// inventory list, which excludes worn-only artifacts.
	CategoryInventory = "inventory"

	// CategoryScroll selects spell scroll artifacts, which use the wide
	// 8-byte identity encoding.
	CategoryScroll = "scroll"
)

// Provider is the catalog contract the editor and codecs consume.
type Provider interface {
	// Creatures returns the creature id/name tables for a version.
	Creatures(version string) (*CreatureTable, error)

	// Artifacts returns artifact identity/name tables for a version,
	// filtered by category: a slot category name restricts to artifacts
	// donned into that category, CategoryInventory to inventory-capable
	// artifacts, CategoryScroll to scrolls, and "" to all artifacts.
	Artifacts(version, category string) (*ArtifactTable, error)

	// ArtifactSlots returns each artifact's occupied slot categories.
	// The first entry is the primary slot the artifact is donned into;
	// the rest are categories whose free capacity it additionally consumes.
	ArtifactSlots(version string) (SlotTable, error)

	// ArtifactStats returns primary attribute deltas per artifact name.
	ArtifactStats(version string) (StatTable, error)

	// ScrollID returns the reserved 4-byte Spell Scroll id that signals
	// the wide 8-byte identity encoding.
	ScrollID(version string) (uint32, error)
}

// SlotTable maps artifact name to its ordered occupied slot categories.
type SlotTable map[string][]hero.Category

// StatTable maps artifact name to its primary attribute deltas.
type StatTable map[string]hero.StatDeltas

// CreatureTable is a bidirectional creature id/name lookup.
type CreatureTable struct {
	ids   map[string]uint32
	names map[uint32]string
	canon map[string]string
}

// NewCreatureTable builds a table from name to id pairs.
func NewCreatureTable(entries map[string]uint32) *CreatureTable {
	t := &CreatureTable{
		ids:   make(map[string]uint32, len(entries)),
		names: make(map[uint32]string, len(entries)),
		canon: make(map[string]string, len(entries)),
	}
	for name, id := range entries {
		t.ids[name] = id
		t.names[id] = name
		t.canon[strings.ToLower(name)] = name
	}
	return t
}

// ID returns the id for a creature name.
func (t *CreatureTable) ID(name string) (uint32, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the creature name for an id.
func (t *CreatureTable) Name(id uint32) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// Resolve maps a case-insensitive name to its canonical catalog spelling.
func (t *CreatureTable) Resolve(name string) (string, bool) {
	canonical, ok := t.canon[strings.ToLower(name)]
	return canonical, ok
}

// Names returns all creature names, sorted.
func (t *CreatureTable) Names() []string {
	out := make([]string, 0, len(t.ids))
	for name := range t.ids {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ArtifactTable is a bidirectional artifact identity/name lookup. Scroll
// artifacts carry wide 8-byte identities with the spell reference embedded
// in the high bytes; all other identities fit 4 bytes.
type ArtifactTable struct {
	ids    map[string]uint64
	names  map[uint64]string
	canon  map[string]string
	scroll map[string]bool
}

// NewArtifactTable builds a table from name to identity pairs. Names listed
// in scrolls use the wide encoding.
func NewArtifactTable(entries map[string]uint64, scrolls ...string) *ArtifactTable {
	t := &ArtifactTable{
		ids:    make(map[string]uint64, len(entries)),
		names:  make(map[uint64]string, len(entries)),
		canon:  make(map[string]string, len(entries)),
		scroll: make(map[string]bool, len(scrolls)),
	}
	for name, id := range entries {
		t.ids[name] = id
		t.names[id] = name
		t.canon[strings.ToLower(name)] = name
	}
	for _, name := range scrolls {
		t.scroll[name] = true
	}
	return t
}

// Identity returns the encoded identity for an artifact name.
func (t *ArtifactTable) Identity(name string) (uint64, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the artifact name for an identity.
func (t *ArtifactTable) Name(identity uint64) (string, bool) {
	name, ok := t.names[identity]
	return name, ok
}

// Resolve maps a case-insensitive name to its canonical catalog spelling.
func (t *ArtifactTable) Resolve(name string) (string, bool) {
	canonical, ok := t.canon[strings.ToLower(name)]
	return canonical, ok
}

// IsScroll reports whether the artifact uses the wide scroll encoding.
func (t *ArtifactTable) IsScroll(name string) bool {
	return t.scroll[name]
}

// Names returns all artifact names in the table, sorted.
func (t *ArtifactTable) Names() []string {
	out := make([]string, 0, len(t.ids))
	for name := range t.ids {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
