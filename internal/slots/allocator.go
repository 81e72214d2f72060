// Package slots computes equip capacity per slot category and validates
// equip changes against it. Combination artifacts consume capacity in
// categories beyond the slot they are donned into, so a single slot change
// can over-subscribe another category; validation is check-then-commit and
// never mutates worn state.
package slots

import (
	"fmt"
	"sort"
	"strings"

	"heroedit/internal/catalog"
	"heroedit/internal/entities/hero"
)

// State describes capacity per slot category for one worn configuration.
// Free counts can go negative while probing a hypothetical change; a
// negative count is a conflict.
type State struct {
	Free   map[hero.Category]int
	Owners map[hero.Category][]string
}

// Options adjusts Compute for probing a proposed change.
type Options struct {
	// ExcludeSlot leaves the artifact currently in that slot out of the
	// accounting and reserves the slot's own category for the proposal.
	ExcludeSlot hero.SlotName

	// Hypothetical consumes the reserved capacity of the proposed
	// artifact's categories past the primary; the primary slot itself is
	// accounted for by the slot assignment, not by capacity.
	Hypothetical string
}

// Compute derives the slot capacity state for a worn configuration.
func Compute(worn hero.WornArtifacts, table catalog.SlotTable, opts Options) State {
	state := State{
		Free:   make(map[hero.Category]int),
		Owners: make(map[hero.Category][]string),
	}
	for _, name := range hero.AllSlotNames() {
		state.Free[name.Category()]++
	}

	for _, slot := range hero.AllSlotNames() {
		if opts.ExcludeSlot != "" && slot == opts.ExcludeSlot {
			continue
		}
		artifact := worn[slot]
		if artifact == "" {
			continue
		}
		for _, cat := range table[artifact] {
			state.Free[cat]--
			state.addOwner(cat, artifact)
		}
	}
	if opts.ExcludeSlot != "" {
		state.Free[opts.ExcludeSlot.Category()]--
	}
	if opts.Hypothetical != "" {
		for _, cat := range reserved(table, opts.Hypothetical) {
			state.Free[cat]--
		}
	}
	return state
}

func (s State) addOwner(cat hero.Category, artifact string) {
	for _, owner := range s.Owners[cat] {
		if owner == artifact {
			return
		}
	}
	s.Owners[cat] = append(s.Owners[cat], artifact)
}

// reserved returns the categories an artifact consumes beyond its primary slot.
func reserved(table catalog.SlotTable, artifact string) []hero.Category {
	occupied := table[artifact]
	if len(occupied) < 2 {
		return nil
	}
	return occupied[1:]
}

// CategoryConflict is one over-subscribed category and the artifacts
// holding its capacity.
type CategoryConflict struct {
	Category hero.Category
	Owners   []string
}

// Conflict reports every category a proposed equip would over-subscribe.
type Conflict struct {
	Artifact   string
	Categories []CategoryConflict
}

// String renders the conflict for diagnostics, one category per line.
func (c *Conflict) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot don %s, required slot taken:", c.Artifact)
	for _, cc := range c.Categories {
		fmt.Fprintf(&b, "\n- %s (by %s)", cc.Category, strings.Join(cc.Owners, ", "))
	}
	return b.String()
}

// ValidateEquip checks whether placing artifact into slot leaves every
// category the placement touches with non-negative free capacity. Only the
// slot's own category and the artifact's occupied categories are examined:
// while re-validating a bulk-restored configuration other categories can be
// in deficit, and that deficit belongs to the slots that caused it, not to
// this one. From a consistent configuration no other category can go
// negative, so interactive equips see no difference. It returns nil on
// acceptance or the conflicting categories with their current owners.
// Neither outcome mutates worn state; on conflict the caller must not apply
// the change.
func ValidateEquip(slot hero.SlotName, artifact string, worn hero.WornArtifacts, table catalog.SlotTable) *Conflict {
	state := Compute(worn, table, Options{ExcludeSlot: slot, Hypothetical: artifact})

	relevant := map[hero.Category]bool{slot.Category(): true}
	for _, cat := range table[artifact] {
		relevant[cat] = true
	}

	var full []hero.Category
	for cat, free := range state.Free {
		if free < 0 && relevant[cat] {
			full = append(full, cat)
		}
	}
	if len(full) == 0 {
		return nil
	}
	sort.Slice(full, func(i, j int) bool { return full[i] < full[j] })

	conflict := &Conflict{Artifact: artifact}
	for _, cat := range full {
		owners := append([]string(nil), state.Owners[cat]...)
		sort.Strings(owners)
		conflict.Categories = append(conflict.Categories, CategoryConflict{Category: cat, Owners: owners})
	}
	return conflict
}
