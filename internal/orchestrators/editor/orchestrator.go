// Package editor implements the edit transactions over a loaded hero:
// decoding, slot-validated equipment changes, army and inventory edits,
// wholesale state restoration, and re-encoding back into bytes.
package editor

//go:generate mockgen -destination=mock/mock_service.go -package=editormock heroedit/internal/orchestrators/editor Service

import (
	"context"
	"fmt"
	"log/slog"

	"heroedit/internal/catalog"
	"heroedit/internal/codec"
	"heroedit/internal/entities/hero"
	"heroedit/internal/errors"
	"heroedit/internal/positions"
	"heroedit/internal/slots"
)

// Stat values are clamped into this range after artifact deltas are applied.
const (
	statMin = 0
	statMax = 127
)

// Service defines the interface for hero edit operations.
type Service interface {
	// LoadHero decodes a hero byte region into logical state. Malformed
	// raw data resolves to empty fields, never an error.
	LoadHero(ctx context.Context, input *LoadHeroInput) (*LoadHeroOutput, error)

	// Equip changes one worn slot, all-or-nothing. A combination artifact
	// that would over-subscribe a slot category is rejected with a
	// FailedPrecondition error carrying the conflict report.
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// SetArmy replaces the army slots; invalid entries are discarded with
	// a warning while the rest proceed.
	SetArmy(ctx context.Context, input *SetArmyInput) (*SetArmyOutput, error)

	// SetInventory replaces the inventory list; invalid entries keep
	// their previous value with a warning.
	SetInventory(ctx context.Context, input *SetInventoryInput) (*SetInventoryOutput, error)

	// RestoreState restores full state in two passes: every name-valid
	// artifact is donned first, then slots in conflict with the final
	// configuration are cleared rather than failing the restore.
	RestoreState(ctx context.Context, input *RestoreStateInput) (*RestoreStateOutput, error)

	// SerializeHero flattens logical state into a revised byte buffer,
	// keeping the original bytes of untouched empty fields.
	SerializeHero(ctx context.Context, input *SerializeHeroInput) (*SerializeHeroOutput, error)
}

// Config holds the dependencies for the editor orchestrator.
type Config struct {
	Catalog   catalog.Provider
	Positions *positions.Table
	Logger    *slog.Logger
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Positions == nil {
		vb.RequiredField("Positions")
	}
	return vb.Build()
}

type orchestrator struct {
	catalog   catalog.Provider
	positions *positions.Table
	logger    *slog.Logger
}

// NewOrchestrator creates a new editor orchestrator with the provided dependencies.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &orchestrator{
		catalog:   cfg.Catalog,
		positions: cfg.Positions,
		logger:    logger,
	}, nil
}

// tables bundles every version-scoped lookup one edit operation needs,
// resolved once per call and passed explicitly (no hidden global lookup).
type tables struct {
	layout    positions.Layout
	creatures *catalog.CreatureTable
	artifacts *catalog.ArtifactTable
	slots     catalog.SlotTable
	stats     catalog.StatTable
	scrollID  uint32
}

func (o *orchestrator) tables(version string) (*tables, error) {
	layout, err := o.positions.Get(version)
	if err != nil {
		return nil, err
	}
	creatures, err := o.catalog.Creatures(version)
	if err != nil {
		return nil, err
	}
	artifacts, err := o.catalog.Artifacts(version, catalog.CategoryInventory)
	if err != nil {
		return nil, err
	}
	slotTable, err := o.catalog.ArtifactSlots(version)
	if err != nil {
		return nil, err
	}
	statTable, err := o.catalog.ArtifactStats(version)
	if err != nil {
		return nil, err
	}
	scrollID, err := o.catalog.ScrollID(version)
	if err != nil {
		return nil, err
	}
	return &tables{
		layout:    layout,
		creatures: creatures,
		artifacts: artifacts,
		slots:     slotTable,
		stats:     statTable,
		scrollID:  scrollID,
	}, nil
}

func (o *orchestrator) LoadHero(_ context.Context, input *LoadHeroInput) (*LoadHeroOutput, error) {
	if input.Version == "" {
		return nil, errors.InvalidArgument("version cannot be empty")
	}
	t, err := o.tables(input.Version)
	if err != nil {
		return nil, err
	}
	if len(input.Raw) != t.layout.RegionSize {
		return nil, errors.InvalidArgumentf("hero region is %d bytes, version %q expects %d",
			len(input.Raw), input.Version, t.layout.RegionSize)
	}

	region := hero.NewByteRegion(input.Raw)
	buf := region.Current()

	army, err := codec.DecodeArmy(buf, t.layout, t.creatures)
	if err != nil {
		return nil, errors.Wrap(err, "decoding army")
	}
	worn, err := codec.DecodeArtifacts(buf, t.layout, t.artifacts, t.scrollID)
	if err != nil {
		return nil, errors.Wrap(err, "decoding artifacts")
	}
	inv, err := codec.DecodeInventory(buf, t.layout, t.artifacts, t.scrollID)
	if err != nil {
		return nil, errors.Wrap(err, "decoding inventory")
	}

	h := &hero.Hero{
		Name:      input.Name,
		Version:   input.Version,
		Region:    region,
		Army:      army,
		Worn:      worn,
		Inventory: inv,
		Stats:     input.Stats,
	}
	h.EnsureBaseStats(t.stats)
	return &LoadHeroOutput{Hero: h}, nil
}

func (o *orchestrator) Equip(_ context.Context, input *EquipInput) (*EquipOutput, error) {
	h := input.Hero
	if h == nil {
		return nil, errors.InvalidArgument("hero cannot be nil")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown worn slot %q", input.Slot)
	}
	t, err := o.tables(h.Version)
	if err != nil {
		return nil, err
	}

	name := ""
	if input.Artifact != "" {
		// Equip candidates are scoped to artifacts donned into this
		// slot's category.
		candidates, err := o.catalog.Artifacts(h.Version, string(input.Slot.Category()))
		if err != nil {
			return nil, err
		}
		resolved, ok := candidates.Resolve(input.Artifact)
		if !ok {
			return nil, errors.InvalidArgumentf("artifact %q cannot be donned into slot %q",
				input.Artifact, input.Slot)
		}
		name = resolved
	}

	if h.Worn[input.Slot] == name {
		return &EquipOutput{}, nil
	}

	if conflict := slots.ValidateEquip(input.Slot, name, h.Worn, t.slots); conflict != nil {
		return nil, equipConflictError(conflict)
	}

	h.Worn[input.Slot] = name
	statsChanged := o.applyArtifactStats(h, t.stats)
	return &EquipOutput{Changed: true, StatsChanged: statsChanged}, nil
}

func equipConflictError(conflict *slots.Conflict) error {
	err := errors.FailedPrecondition(conflict.String()).WithMeta("artifact", conflict.Artifact)
	categories := make([]string, 0, len(conflict.Categories))
	owners := make(map[string][]string, len(conflict.Categories))
	for _, cc := range conflict.Categories {
		categories = append(categories, string(cc.Category))
		owners[string(cc.Category)] = cc.Owners
	}
	return err.WithMeta("categories", categories).WithMeta("owners", owners)
}

// applyArtifactStats recomputes current stats from the baseline plus every
// donned artifact's deltas, clamped per attribute. Reports whether anything
// moved. A hero without a known baseline is left alone.
func (o *orchestrator) applyArtifactStats(h *hero.Hero, stats catalog.StatTable) bool {
	if !h.HasBaseStats {
		return false
	}
	var diff hero.StatDeltas
	for _, slot := range hero.AllSlotNames() {
		if d, ok := stats[h.Worn[slot]]; ok {
			for i := range diff {
				diff[i] += d[i]
			}
		}
	}
	changed := false
	for i := range h.Stats {
		v := h.BaseStats[i] + diff[i]
		if v < statMin {
			v = statMin
		}
		if v > statMax {
			v = statMax
		}
		if h.Stats[i] != v {
			h.Stats[i] = v
			changed = true
		}
	}
	return changed
}

func (o *orchestrator) SetArmy(_ context.Context, input *SetArmyInput) (*SetArmyOutput, error) {
	h := input.Hero
	if h == nil {
		return nil, errors.InvalidArgument("hero cannot be nil")
	}
	t, err := o.tables(h.Version)
	if err != nil {
		return nil, err
	}

	out := &SetArmyOutput{}
	next := make([]hero.ArmySlot, hero.ArmySlotCount)
	for i := 0; i < hero.ArmySlotCount; i++ {
		var slot hero.ArmySlot
		if i < len(input.Slots) {
			slot = input.Slots[i]
		}
		if slot.IsEmpty() && slot.Count == 0 {
			continue
		}
		name, ok := t.creatures.Resolve(slot.Creature)
		if !ok || slot.Count == 0 {
			warn(o.logger, &out.Warnings, fmt.Sprintf("invalid army slot %d: %q x %d", i+1, slot.Creature, slot.Count))
			continue
		}
		next[i] = hero.ArmySlot{Creature: name, Count: slot.Count}
	}

	out.Changed = !armyEqual(h.Army, next)
	h.Army = next
	return out, nil
}

func (o *orchestrator) SetInventory(_ context.Context, input *SetInventoryInput) (*SetInventoryOutput, error) {
	h := input.Hero
	if h == nil {
		return nil, errors.InvalidArgument("hero cannot be nil")
	}
	t, err := o.tables(h.Version)
	if err != nil {
		return nil, err
	}

	out := &SetInventoryOutput{}
	out.Changed = o.applyInventory(h, t, input.Items, &out.Warnings)
	return out, nil
}

// applyInventory merges items into the hero's inventory: valid names are
// canonicalized, empty entries clear, and invalid entries keep the previous
// value with a warning.
func (o *orchestrator) applyInventory(h *hero.Hero, t *tables, items []string, warnings *[]string) bool {
	changed := false
	for i := 0; i < hero.InventorySize; i++ {
		var item string
		if i < len(items) {
			item = items[i]
		}
		next := h.Inventory[i]
		if item == "" {
			next = ""
		} else if name, ok := t.artifacts.Resolve(item); ok {
			next = name
		} else {
			warn(o.logger, warnings, fmt.Sprintf("invalid inventory item %d: %q", i+1, item))
		}
		if h.Inventory[i] != next {
			h.Inventory[i] = next
			changed = true
		}
	}
	return changed
}

func (o *orchestrator) RestoreState(ctx context.Context, input *RestoreStateInput) (*RestoreStateOutput, error) {
	h := input.Hero
	if h == nil {
		return nil, errors.InvalidArgument("hero cannot be nil")
	}
	t, err := o.tables(h.Version)
	if err != nil {
		return nil, err
	}

	out := &RestoreStateOutput{}

	if input.Worn != nil {
		wornChanged, err := o.restoreWorn(h, t, input.Worn, out)
		if err != nil {
			return nil, err
		}
		if wornChanged {
			out.Changed = true
			o.applyArtifactStats(h, t.stats)
		}
	}

	if input.Army != nil {
		armyOut, err := o.SetArmy(ctx, &SetArmyInput{Hero: h, Slots: input.Army})
		if err != nil {
			return nil, err
		}
		out.Changed = out.Changed || armyOut.Changed
		out.Warnings = append(out.Warnings, armyOut.Warnings...)
	}

	if input.Inventory != nil {
		if o.applyInventory(h, t, input.Inventory, &out.Warnings) {
			out.Changed = true
		}
	}

	return out, nil
}

// restoreWorn applies the two-pass bulk load: pass one dons every
// individually name-valid artifact without capacity checks so that mutually
// consistent saved combinations always round-trip; pass two re-validates
// each non-empty slot against the final configuration in slot order and
// clears conflicting slots, with each clear visible to later checks. A slot
// is cleared only when the deficit lies in a category its own artifact
// occupies; slots blameless for an over-subscription elsewhere are kept.
func (o *orchestrator) restoreWorn(h *hero.Hero, t *tables, restored map[hero.SlotName]string, out *RestoreStateOutput) (bool, error) {
	before := h.Worn.Clone()

	for _, slot := range hero.AllSlotNames() {
		value, present := restored[slot]
		if !present {
			continue
		}
		if value == "" {
			h.Worn[slot] = ""
			continue
		}
		candidates, err := o.catalog.Artifacts(h.Version, string(slot.Category()))
		if err != nil {
			return false, err
		}
		name, ok := candidates.Resolve(value)
		if !ok {
			warn(o.logger, &out.Warnings, fmt.Sprintf("invalid artifact for %s: %q", slot, value))
			continue
		}
		h.Worn[slot] = name
	}

	for _, slot := range hero.AllSlotNames() {
		name := h.Worn[slot]
		if name == "" {
			continue
		}
		if conflict := slots.ValidateEquip(slot, name, h.Worn, t.slots); conflict != nil {
			warn(o.logger, &out.Warnings, conflict.String())
			h.Worn[slot] = ""
			out.Cleared = append(out.Cleared, slot)
		}
	}

	for _, slot := range hero.AllSlotNames() {
		if before[slot] != h.Worn[slot] {
			return true, nil
		}
	}
	return false, nil
}

func (o *orchestrator) SerializeHero(_ context.Context, input *SerializeHeroInput) (*SerializeHeroOutput, error) {
	h := input.Hero
	if h == nil {
		return nil, errors.InvalidArgument("hero cannot be nil")
	}
	t, err := o.tables(h.Version)
	if err != nil {
		return nil, err
	}

	cur := h.Region.CloneCurrent()
	orig := h.Region.Original()

	if err := codec.EncodeArmy(cur, orig, t.layout, t.creatures, h.Army); err != nil {
		return nil, errors.Wrap(err, "encoding army")
	}
	if err := codec.EncodeArtifacts(cur, t.layout, t.artifacts, t.slots, h.Worn); err != nil {
		return nil, errors.Wrap(err, "encoding artifacts")
	}
	if err := codec.EncodeInventory(cur, orig, t.layout, t.artifacts, t.scrollID, h.Inventory); err != nil {
		return nil, errors.Wrap(err, "encoding inventory")
	}

	if err := h.Region.SetCurrent(cur); err != nil {
		return nil, err
	}
	return &SerializeHeroOutput{Buffer: cur, ChangedRanges: diffRanges(orig, cur)}, nil
}

// diffRanges lists half-open byte ranges where the two buffers differ.
func diffRanges(orig, cur []byte) []Range {
	var ranges []Range
	start := -1
	for i := range cur {
		if cur[i] != orig[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			ranges = append(ranges, Range{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		ranges = append(ranges, Range{Start: start, End: len(cur)})
	}
	return ranges
}

func armyEqual(a, b []hero.ArmySlot) bool {
	for i := 0; i < hero.ArmySlotCount; i++ {
		var sa, sb hero.ArmySlot
		if i < len(a) {
			sa = a[i]
		}
		if i < len(b) {
			sb = b[i]
		}
		if sa != sb {
			return false
		}
	}
	return true
}

func warn(logger *slog.Logger, warnings *[]string, message string) {
	logger.Warn(message)
	*warnings = append(*warnings, message)
}
