package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DSinghania13/girdervis/internal/dataset"
	"github.com/DSinghania13/girdervis/internal/girder"
	"github.com/DSinghania13/girdervis/internal/render"
	"github.com/spf13/cobra"
)

var (
	render3dModel        string
	render3dGirders      []string
	render3dDiagram      string
	render3dOutput       string
	render3dHatch        int
	render3dTargetHeight float64
	render3dExpansion    float64
)

var render3dCmd = &cobra.Command{
	Use:   "3d",
	Short: "Render 3D fence diagrams for the whole deck",
	Long: `Reconstruct the internal-force diagrams of several girders and
export them as one 3D fence scene per diagram type.

All girders share one height scale and one color range per scene, so
magnitudes stay visually comparable across girders: the largest value
in the scene renders at the target height, and the blue-to-red heat
coloring is keyed on magnitude against the scene maximum.

A girder whose data is inconsistent is reported and skipped; the
remaining girders still render.

Examples:
  # Fence SFD and BMD for all girders
  girdervis render 3d --model examples/bridge.toml

  # Only two girders, wider lateral separation
  girdervis render 3d -m examples/bridge.toml -g girder-1 -g girder-5 --width-expansion 2.0`,
	RunE: runRender3D,
}

func init() {
	renderCmd.AddCommand(render3dCmd)

	defaults := render.DefaultConfig()

	render3dCmd.Flags().StringVarP(&render3dModel, "model", "m", "", "Bridge model file (TOML) [required]")
	render3dCmd.Flags().StringArrayVarP(&render3dGirders, "girder", "g", nil, "Girder name (repeatable; default all)")
	render3dCmd.Flags().StringVarP(&render3dDiagram, "diagram", "d", "both", "Diagram type: sfd, bmd or both")
	render3dCmd.Flags().StringVarP(&render3dOutput, "output", "o", ".", "Output directory")
	render3dCmd.Flags().IntVar(&render3dHatch, "hatch", defaults.HatchInterval, "Rib intervals per element")
	render3dCmd.Flags().Float64Var(&render3dTargetHeight, "target-height", defaults.TargetHeight, "Visual height of the largest magnitude (m)")
	render3dCmd.Flags().Float64Var(&render3dExpansion, "width-expansion", defaults.WidthExpansion, "Lateral expansion factor between girders")

	render3dCmd.MarkFlagRequired("model")
}

func runRender3D(cmd *cobra.Command, args []string) error {
	m, err := dataset.Load(render3dModel)
	if err != nil {
		return err
	}
	girders, err := pickGirders(m, render3dGirders)
	if err != nil {
		return err
	}
	types, err := diagramTypes(render3dDiagram)
	if err != nil {
		return err
	}

	cfg := render.DefaultConfig()
	cfg.HatchInterval = render3dHatch
	cfg.TargetHeight = render3dTargetHeight
	cfg.WidthExpansion = render3dExpansion

	// Build the paths once; a girder that fails here is skipped for every
	// diagram type, the rest of the scene still renders.
	paths := make([]*girder.Path, 0, len(girders))
	for _, g := range girders {
		p, err := girder.BuildPath(g.Name, m.Geometry, g.Elements)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping girder %q: %v\n", g.Name, err)
			continue
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no girder could be reconstructed")
	}

	for _, typ := range types {
		fns := make([]*girder.Function, 0, len(paths))
		kept := make([]*girder.Path, 0, len(paths))
		for _, p := range paths {
			fn, err := girder.BuildFunction(p, m.Forces, typ)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping %s of girder %q: %v\n", typ, p.Name, err)
				continue
			}
			fns = append(fns, fn)
			kept = append(kept, p)
		}
		if len(fns) == 0 {
			fmt.Fprintf(os.Stderr, "warning: no girder renders for %s\n", typ)
			continue
		}

		// One scale and one color range for the whole scene.
		sc := girder.Normalize(cfg.TargetHeight, fns...)
		cm := render.NewColormap(sc.MaxAbs)

		fences := make([]*render.Fence, len(fns))
		for i := range fns {
			fences[i] = render.BuildFence(kept[i], fns[i], sc, cfg)
		}

		out := filepath.Join(render3dOutput,
			fmt.Sprintf("%s-3d.png", strings.ToLower(typ.String())))
		if err := render.ExportScene(fences, cm, typ, out); err != nil {
			return fmt.Errorf("export %s scene: %w", typ, err)
		}

		fmt.Printf("  3D %s → %s\n", typ, out)
		fmt.Printf("    girders: %d | max |force|: %.3f %s | height scale: %.5f\n",
			len(fences), sc.MaxAbs, typ.Unit(), sc.Factor)
	}

	return nil
}

// pickGirders resolves the repeatable --girder flag, defaulting to every
// girder of the model in file order.
func pickGirders(m *dataset.Model, names []string) ([]dataset.Girder, error) {
	if len(names) == 0 {
		if len(m.Girders) == 0 {
			return nil, fmt.Errorf("model defines no girders")
		}
		return m.Girders, nil
	}
	out := make([]dataset.Girder, 0, len(names))
	for _, name := range names {
		g, ok := m.Girder(name)
		if !ok {
			return nil, fmt.Errorf("girder %q not defined in model", name)
		}
		out = append(out, g)
	}
	return out, nil
}
