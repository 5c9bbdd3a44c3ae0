package cmd

import (
	"fmt"
	"os"

	"github.com/DSinghania13/girdervis/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "girdervis",
	Short: "Bridge Girder Internal-Force Diagram Tool",
	Long: `girdervis - Bridge Girder Internal-Force Diagram Tool

A CLI tool that reconstructs shear force and bending moment diagrams
for bridge-deck girders from a stored per-element force dataset.

This tool helps structural engineers:
  - Inspect the force dataset of a deck model
  - Render 2D SFD/BMD figures per girder (MIDAS-style hatched fill)
  - Render 3D fence diagrams for all girders in one scene
  - Preview diagrams directly in the terminal

Force values are used exactly as stored; the dataset sign convention
is never corrected or flipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   girdervis v%-45s║\n", version.Version)
		fmt.Println("  ║   Bridge Girder Internal-Force Diagram Tool               ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Reconstructs and renders shear force (SFD) and bending moment")
		fmt.Println("  (BMD) diagrams for bridge-deck girders.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Dataset inspection and component verification")
		fmt.Println("    • 2D diagrams with hatched fill and zero-crossing labels")
		fmt.Println("    • 3D multi-girder fence scenes with magnitude heat coloring")
		fmt.Println("    • Terminal ASCII previews")
		fmt.Println()
		fmt.Println("  Use 'girdervis --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
