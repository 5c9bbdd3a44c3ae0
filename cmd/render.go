package cmd

import (
	"fmt"

	"github.com/DSinghania13/girdervis/internal/girder"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render shear force and bending moment diagrams",
	Long: `Render internal-force diagrams from a bridge model file.

Subcommands:
  2d  - One girder: SFD/BMD figures in (arc-length, value) space
  3d  - Whole deck: fence diagrams for several girders in one scene

Diagram reconstruction is the same in both modes: shear is stepped per
element (start-node value), moment is linear between element endpoints.`,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

// diagramTypes resolves the --diagram flag value.
func diagramTypes(flag string) ([]girder.DiagramType, error) {
	switch flag {
	case "sfd":
		return []girder.DiagramType{girder.Shear}, nil
	case "bmd":
		return []girder.DiagramType{girder.Moment}, nil
	case "both":
		return []girder.DiagramType{girder.Shear, girder.Moment}, nil
	}
	return nil, fmt.Errorf("unknown diagram type %q (want sfd, bmd or both)", flag)
}
