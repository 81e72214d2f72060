// Package main is the entry point for the heroedit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "heroedit",
	Short: "Heroes3 savegame hero editor",
	Long:  `heroedit decodes a hero record out of a Heroes3 savegame and edits its army, worn artifacts and inventory in place.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(verifyCmd)
}
