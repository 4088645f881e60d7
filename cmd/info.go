package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/goview/pkg/analysis"
	"github.com/philipparndt/goview/pkg/modelinfo"
	"github.com/philipparndt/goview/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a model or texture file",
	Long:  "Show format, generator, mesh and triangle counts and bounds without opening a window.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printInfo(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer, path string) error {
	info, err := modelinfo.Inspect(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "File Information")
	fmt.Fprintln(w, "================")
	fmt.Fprintf(w, "File: %s\n", info.Path)
	fmt.Fprintf(w, "Format: %s (%s)\n", info.Format, info.Format.Kind())
	fmt.Fprintf(w, "Size: %d bytes\n", info.Size)
	if info.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", info.Name)
	}
	if info.Generator != "" {
		fmt.Fprintf(w, "Generator: %s\n", info.Generator)
	}

	if info.Format.Kind() == modelinfo.KindTexture {
		fmt.Fprintf(w, "Dimensions: %dx%d\n", info.Width, info.Height)
		return nil
	}

	if info.Meshes > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Model Statistics:")
		fmt.Fprintf(w, "  Meshes: %d\n", info.Meshes)
		fmt.Fprintf(w, "  Primitives: %d\n", info.Primitives)
		fmt.Fprintf(w, "  Vertices: %d\n", info.Vertices)
		fmt.Fprintf(w, "  Triangles: %d\n", info.Triangles)
	}

	if info.HasBounds() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Bounding Box:")
		fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(info.Bounds.Min))
		fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(info.Bounds.Max))
		fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(info.Bounds.Center()))
		fmt.Fprintf(w, "  Diagonal: %.6f units\n", info.Bounds.Diagonal())
	}

	if info.Format == modelinfo.FormatSTL {
		model, err := stl.Parse(path)
		if err != nil {
			return err
		}
		stats := analysis.AnalyzeTriangles(model.Triangles)

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Surface:")
		fmt.Fprintf(w, "  Area: %.6f square units\n", stats.SurfaceArea)
		fmt.Fprintf(w, "  Edges: %d\n", stats.EdgeCount)
		fmt.Fprintf(w, "  Edge length: min %.6f, max %.6f, avg %.6f\n",
			stats.MinEdgeLength, stats.MaxEdgeLength, stats.AvgEdgeLength)
	}

	return nil
}
