package catalog

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"heroedit/internal/entities/hero"
	"heroedit/internal/errors"
)

//go:embed data/catalog.yaml
var defaultData []byte

type creatureEntry struct {
	Name  string `yaml:"name"`
	ID    uint32 `yaml:"id"`
	Since string `yaml:"since"`
}

type artifactEntry struct {
	Name  string `yaml:"name"`
	ID    uint32 `yaml:"id"`
	Since string `yaml:"since"`

	// Slots lists occupied slot categories, primary first. Empty for
	// artifacts that are carried but never worn.
	Slots []hero.Category `yaml:"slots,omitempty"`

	// Stats holds attack/defense/power/knowledge deltas.
	Stats *hero.StatDeltas `yaml:"stats,omitempty"`

	// Spell marks a scroll variant; the spell id is embedded in the high
	// bytes of the wide identity.
	Spell *uint32 `yaml:"spell,omitempty"`

	// Inventory is false for worn-only artifacts. Defaults to true.
	Inventory *bool `yaml:"inventory,omitempty"`
}

type fileFormat struct {
	Versions  []string        `yaml:"versions"`
	ScrollID  uint32          `yaml:"scroll_id"`
	Creatures []creatureEntry `yaml:"creatures"`
	Artifacts []artifactEntry `yaml:"artifacts"`
}

type versionData struct {
	creatures *CreatureTable
	artifacts []artifactEntry
	slots     SlotTable
	stats     StatTable
}

// Store is the yaml-backed Provider implementation. Tables are resolved once
// at construction; queries are lookups.
type Store struct {
	scrollID uint32
	versions map[string]*versionData
}

var _ Provider = (*Store)(nil)

// New loads the bundled catalog data.
func New() (*Store, error) {
	return NewFromBytes(defaultData)
}

// NewFromBytes loads catalog data from raw YAML, for overrides and tests.
func NewFromBytes(data []byte) (*Store, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing catalog data")
	}
	if len(f.Versions) == 0 {
		return nil, errors.Internal("catalog defines no versions")
	}
	if f.ScrollID == 0 {
		return nil, errors.Internal("catalog defines no scroll id")
	}

	order := make(map[string]int, len(f.Versions))
	for i, ver := range f.Versions {
		order[ver] = i
	}

	s := &Store{scrollID: f.ScrollID, versions: make(map[string]*versionData, len(f.Versions))}
	for ver, idx := range order {
		vd := &versionData{
			creatures: &CreatureTable{
				ids:   make(map[string]uint32),
				names: make(map[uint32]string),
				canon: make(map[string]string),
			},
			slots: make(SlotTable),
			stats: make(StatTable),
		}
		for _, c := range f.Creatures {
			since, ok := order[c.Since]
			if !ok {
				return nil, errors.Internalf("creature %q has unknown version %q", c.Name, c.Since)
			}
			if since > idx {
				continue
			}
			if c.ID == 0 {
				return nil, errors.Internalf("creature %q uses reserved id 0", c.Name)
			}
			vd.creatures.ids[c.Name] = c.ID
			vd.creatures.names[c.ID] = c.Name
			vd.creatures.canon[strings.ToLower(c.Name)] = c.Name
		}
		for _, a := range f.Artifacts {
			since, ok := order[a.Since]
			if !ok {
				return nil, errors.Internalf("artifact %q has unknown version %q", a.Name, a.Since)
			}
			if since > idx {
				continue
			}
			if a.Spell != nil && a.ID != f.ScrollID {
				return nil, errors.Internalf("scroll artifact %q must use the scroll id", a.Name)
			}
			vd.artifacts = append(vd.artifacts, a)
			if len(a.Slots) > 0 {
				vd.slots[a.Name] = a.Slots
			}
			if a.Stats != nil {
				vd.stats[a.Name] = *a.Stats
			}
		}
		s.versions[ver] = vd
	}
	return s, nil
}

// Creatures implements Provider.
func (s *Store) Creatures(version string) (*CreatureTable, error) {
	vd, err := s.version(version)
	if err != nil {
		return nil, err
	}
	return vd.creatures, nil
}

// Artifacts implements Provider.
func (s *Store) Artifacts(version, category string) (*ArtifactTable, error) {
	vd, err := s.version(version)
	if err != nil {
		return nil, err
	}
	t := &ArtifactTable{
		ids:    make(map[string]uint64),
		names:  make(map[uint64]string),
		canon:  make(map[string]string),
		scroll: make(map[string]bool),
	}
	for _, a := range vd.artifacts {
		if !matchesCategory(a, category) {
			continue
		}
		identity := uint64(a.ID)
		if a.Spell != nil {
			identity = uint64(*a.Spell)<<32 | uint64(a.ID)
		}
		t.ids[a.Name] = identity
		t.names[identity] = a.Name
		t.canon[strings.ToLower(a.Name)] = a.Name
		if a.Spell != nil {
			t.scroll[a.Name] = true
		}
	}
	return t, nil
}

// ArtifactSlots implements Provider.
func (s *Store) ArtifactSlots(version string) (SlotTable, error) {
	vd, err := s.version(version)
	if err != nil {
		return nil, err
	}
	return vd.slots, nil
}

// ArtifactStats implements Provider.
func (s *Store) ArtifactStats(version string) (StatTable, error) {
	vd, err := s.version(version)
	if err != nil {
		return nil, err
	}
	return vd.stats, nil
}

// ScrollID implements Provider.
func (s *Store) ScrollID(version string) (uint32, error) {
	if _, err := s.version(version); err != nil {
		return 0, err
	}
	return s.scrollID, nil
}

// Versions lists the versions the store knows about.
func (s *Store) Versions() []string {
	out := make([]string, 0, len(s.versions))
	for ver := range s.versions {
		out = append(out, ver)
	}
	return out
}

func (s *Store) version(version string) (*versionData, error) {
	vd, ok := s.versions[version]
	if !ok {
		return nil, errors.NotFoundf("no catalog for version %q", version)
	}
	return vd, nil
}

func matchesCategory(a artifactEntry, category string) bool {
	switch category {
	case "":
		return true
	case CategoryInventory:
		return a.Inventory == nil || *a.Inventory
	case CategoryScroll:
		return a.Spell != nil
	default:
		return len(a.Slots) > 0 && a.Slots[0] == hero.Category(category)
	}
}
