package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/DSinghania13/girdervis/internal/dataset"
	"github.com/DSinghania13/girdervis/internal/girder"
	"github.com/DSinghania13/girdervis/internal/render"
	"github.com/spf13/cobra"
)

var (
	render2dModel   string
	render2dGirder  string
	render2dDiagram string
	render2dOutput  string
	render2dHatch   int
	render2dASCII   bool
)

var render2dCmd = &cobra.Command{
	Use:   "2d",
	Short: "Render 2D SFD/BMD figures for one girder",
	Long: `Reconstruct the internal-force diagrams of one girder and export
them as 2D figures in (arc-length, value) space.

The figure shows the diagram boundary with node markers, a hatched
vertical fill, zero-crossing positions and the global extrema. Force
values are plotted exactly as stored in the dataset.

Examples:
  # SFD and BMD of the central girder
  girdervis render 2d --model examples/bridge.toml --girder central

  # Only the moment diagram, with a terminal preview
  girdervis render 2d -m examples/bridge.toml -g central --diagram bmd --ascii`,
	RunE: runRender2D,
}

func init() {
	renderCmd.AddCommand(render2dCmd)

	render2dCmd.Flags().StringVarP(&render2dModel, "model", "m", "", "Bridge model file (TOML) [required]")
	render2dCmd.Flags().StringVarP(&render2dGirder, "girder", "g", "", "Girder name [required]")
	render2dCmd.Flags().StringVarP(&render2dDiagram, "diagram", "d", "both", "Diagram type: sfd, bmd or both")
	render2dCmd.Flags().StringVarP(&render2dOutput, "output", "o", ".", "Output directory")
	render2dCmd.Flags().IntVar(&render2dHatch, "hatch", render.DefaultConfig().HatchDensity, "Vertical fill lines per element")
	render2dCmd.Flags().BoolVar(&render2dASCII, "ascii", false, "Print a terminal preview of each diagram")

	render2dCmd.MarkFlagRequired("model")
	render2dCmd.MarkFlagRequired("girder")
}

func runRender2D(cmd *cobra.Command, args []string) error {
	m, err := dataset.Load(render2dModel)
	if err != nil {
		return err
	}
	g, ok := m.Girder(render2dGirder)
	if !ok {
		return fmt.Errorf("girder %q not defined in model", render2dGirder)
	}
	types, err := diagramTypes(render2dDiagram)
	if err != nil {
		return err
	}

	cfg := render.DefaultConfig()
	cfg.HatchDensity = render2dHatch

	path, err := girder.BuildPath(g.Name, m.Geometry, g.Elements)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Rendering 2D diagrams for girder %q (%.2f m, %d elements)\n",
		g.Name, path.Length(), len(path.Elements))
	fmt.Println()

	for _, typ := range types {
		fn, err := girder.BuildFunction(path, m.Forces, typ)
		if err != nil {
			return err
		}

		out := filepath.Join(render2dOutput,
			fmt.Sprintf("%s-%s.png", strings.ToLower(typ.String()), g.Name))
		if err := render.Export2D(fn, cfg, out); err != nil {
			return fmt.Errorf("export %s: %w", typ, err)
		}

		min, max := fn.Extrema()
		fmt.Printf("  %s → %s\n", typ, out)
		fmt.Printf("    MAX %.3f %s at x=%.2f m, MIN %.3f %s at x=%.2f m\n",
			max.V, typ.Unit(), max.S, min.V, typ.Unit(), min.S)
		for _, x0 := range fn.ZeroCrossings() {
			fmt.Printf("    zero crossing at x=%.2f m\n", x0)
		}

		if render2dASCII {
			fmt.Println()
			fmt.Println(render.ASCII(fn, 72, 12))
		}
		fmt.Println()
	}

	return nil
}
