package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"heroedit/internal/entities/hero"
	"heroedit/internal/errors"
	"heroedit/internal/orchestrators/editor"
)

var (
	equipSave     string
	equipOffset   int
	equipVersion  string
	equipSlot     string
	equipArtifact string
)

var equipCmd = &cobra.Command{
	Use:   "equip",
	Short: "Don or clear one worn artifact slot",
	Long: `Change a single worn slot and write the savegame back. Passing an empty
--artifact clears the slot. A combination artifact that would not fit is
rejected and the savegame is left untouched.`,
	RunE: runEquip,
}

func init() {
	equipCmd.Flags().StringVar(&equipSave, "save", "", "savegame path")
	equipCmd.Flags().IntVar(&equipOffset, "offset", -1, "hero record offset in the decompressed payload")
	equipCmd.Flags().StringVar(&equipVersion, "version", "", "game version (roe, ab, sod)")
	equipCmd.Flags().StringVar(&equipSlot, "slot", "", "worn slot name, e.g. helm or side3")
	equipCmd.Flags().StringVar(&equipArtifact, "artifact", "", "artifact name, empty to clear")
	_ = equipCmd.MarkFlagRequired("save")
	_ = equipCmd.MarkFlagRequired("offset")
	_ = equipCmd.MarkFlagRequired("slot")
}

func runEquip(cmd *cobra.Command, args []string) error {
	e, err := setup(equipVersion)
	if err != nil {
		return err
	}
	slot, ok := hero.SlotNameFromString(equipSlot)
	if !ok {
		return errors.InvalidArgumentf("unknown worn slot %q", equipSlot)
	}
	size, err := regionSize(e.version)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	payload, h, err := e.loadHero(ctx, equipSave, equipOffset, size)
	if err != nil {
		return err
	}

	out, err := e.service.Equip(ctx, &editor.EquipInput{
		Hero:     h,
		Slot:     slot,
		Artifact: equipArtifact,
	})
	if err != nil {
		return err
	}
	if !out.Changed {
		fmt.Println("no change")
		return nil
	}
	if err := e.saveHero(ctx, equipSave, payload, equipOffset, h); err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", slot, displayName(h.Worn[slot]))
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
