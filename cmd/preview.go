package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structeng/beamreport/internal/diagram"
)

var (
	previewInput   string
	previewSpan    float64
	previewSamples int
	previewWidth   int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw the SFD and BMD as ASCII charts in the terminal",
	Long: `Compute the shear force and bending moment curves and draw them as
ASCII charts, without producing the PDF. Handy for a quick sanity check
of the input data.

Examples:
  beamreport preview
  beamreport preview --input loads.xlsx --span 12 --width 100`,
	SilenceUsage: true,
	RunE:         runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "data/Force.xlsx", "Input workbook with force records")
	previewCmd.Flags().Float64VarP(&previewSpan, "span", "L", 0, "Beam span in m (default: largest load position, rounded up)")
	previewCmd.Flags().IntVarP(&previewSamples, "samples", "n", 21, "Number of evenly spaced diagram stations")
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 72, "Chart width in characters")
}

func runPreview(cmd *cobra.Command, args []string) error {
	_, d, err := analyze(previewInput, previewSpan, previewSamples)
	if err != nil {
		return err
	}

	ra, rb := d.Beam.Reactions()
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SIMPLY SUPPORTED BEAM - DIAGRAM PREVIEW")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Span: %.2f m    R_A = %.2f kN    R_B = %.2f kN\n", d.Beam.Span, ra, rb)
	fmt.Println()

	fmt.Println(diagram.ASCIISFD(d, previewWidth))
	fmt.Println()
	fmt.Println(diagram.ASCIIBMD(d, previewWidth))
	fmt.Println()

	maxM, maxMX := d.MaxMoment()
	fmt.Print(diagram.DrawSummaryBox("KEY RESULTS", []string{
		fmt.Sprintf("Max shear:  %.2f kN", d.MaxShear()),
		fmt.Sprintf("Max moment: %.2f kN·m at %.2f m from the left support", maxM, maxMX),
	}))
	fmt.Println()
	return nil
}
