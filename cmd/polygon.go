package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/pkg/analysis"
	"github.com/philipparndt/gopoly/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	polySides    int
	polyRadius   float64
	polyCenterX  float64
	polyCenterY  float64
	polyRotation float64
)

var polygonCmd = &cobra.Command{
	Use:   "polygon",
	Short: "Print the vertices and measurements of a regular polygon",
	Long: `Compute the vertices and measurements of a regular polygon from its side
count, circumscribed radius, center and rotation.`,
	Args: cobra.NoArgs,
	RunE: runPolygon,
}

func init() {
	rootCmd.AddCommand(polygonCmd)

	polygonCmd.Flags().IntVarP(&polySides, "sides", "n", 3, "Number of sides (at least 3)")
	polygonCmd.Flags().Float64VarP(&polyRadius, "radius", "r", editor.DefaultRadius, "Circumscribed radius")
	polygonCmd.Flags().Float64Var(&polyCenterX, "cx", 0, "X coordinate of the center")
	polygonCmd.Flags().Float64Var(&polyCenterY, "cy", 0, "Y coordinate of the center")
	polygonCmd.Flags().Float64Var(&polyRotation, "rotation", 0, "Rotation in degrees")
}

func runPolygon(cmd *cobra.Command, _ []string) error {
	poly, err := geometry.NewRegularPolygon(polySides, polyRadius, polyCenterX, polyCenterY, geometry.Radians(polyRotation))
	if err != nil {
		return err
	}

	printPolygon(cmd.OutOrStdout(), poly)
	return nil
}

func printPolygon(w io.Writer, poly geometry.RegularPolygon) {
	result := analysis.AnalyzePolygon(poly)

	fmt.Fprintln(w, "Regular Polygon")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "Sides: %d\n", poly.Sides)
	fmt.Fprintf(w, "Radius: %.6f\n", poly.Radius)
	fmt.Fprintf(w, "Center: %s\n", analysis.FormatPoint(poly.Center))
	fmt.Fprintf(w, "Rotation: %.6f rad\n\n", poly.Rotation)

	fmt.Fprintln(w, "Vertices:")
	for i, e := range result.Edges {
		fmt.Fprintf(w, "  %d: %s\n", i, analysis.FormatPoint(e.Start))
	}

	fmt.Fprintln(w, "\nMeasurements:")
	fmt.Fprintf(w, "  Side Length: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))
	fmt.Fprintf(w, "  Perimeter: %s\n", analysis.FormatMeasurement(result.Perimeter, ""))
	fmt.Fprintf(w, "  Area: %s\n", analysis.FormatMeasurement(result.Area, "square units"))
	fmt.Fprintf(w, "  Apothem: %s\n", analysis.FormatMeasurement(result.Apothem, ""))
	fmt.Fprintf(w, "  Interior Angle: %.6f°\n", result.InteriorAngle)
	fmt.Fprintf(w, "  Bounds: %s to %s\n",
		analysis.FormatPoint(result.Bounds.Origin()),
		analysis.FormatPoint(geometry.NewPoint(result.Bounds.X+result.Bounds.Width, result.Bounds.Y+result.Bounds.Height)))
}
