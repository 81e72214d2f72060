package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"heroedit/internal/entities/hero"
)

var (
	dumpSave    string
	dumpOffset  int
	dumpVersion string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the hero record at an offset",
	Long:  `Decode the hero byte region at the given offset and print its army, worn artifacts and inventory.`,
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpSave, "save", "", "savegame path")
	dumpCmd.Flags().IntVar(&dumpOffset, "offset", -1, "hero record offset in the decompressed payload")
	dumpCmd.Flags().StringVar(&dumpVersion, "version", "", "game version (roe, ab, sod)")
	_ = dumpCmd.MarkFlagRequired("save")
	_ = dumpCmd.MarkFlagRequired("offset")
}

func runDump(cmd *cobra.Command, args []string) error {
	e, err := setup(dumpVersion)
	if err != nil {
		return err
	}
	size, err := regionSize(e.version)
	if err != nil {
		return err
	}
	_, h, err := e.loadHero(cmd.Context(), dumpSave, dumpOffset, size)
	if err != nil {
		return err
	}

	fmt.Println("Army:")
	for i, slot := range h.Army {
		if slot.IsEmpty() {
			fmt.Printf("  %d: -\n", i+1)
			continue
		}
		fmt.Printf("  %d: %s x %d\n", i+1, slot.Creature, slot.Count)
	}

	fmt.Println("Worn:")
	for _, name := range hero.AllSlotNames() {
		value := h.Worn[name]
		if value == "" {
			value = "-"
		}
		fmt.Printf("  %-9s: %s\n", name, value)
	}

	fmt.Println("Inventory:")
	for i, item := range h.Inventory {
		if item == "" {
			continue
		}
		fmt.Printf("  %2d: %s\n", i+1, item)
	}
	return nil
}
