package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/structeng/beamreport/internal/diagram"
	"github.com/structeng/beamreport/internal/forcedata"
	"github.com/structeng/beamreport/internal/report"
	"github.com/structeng/beamreport/internal/statics"
)

var (
	inputPath    string
	imagePath    string
	outputPath   string
	beamSpan     float64
	sampleCount  int
	reportTitle  string
	reportAuthor string
)

var rootCmd = &cobra.Command{
	Use:   "beamreport",
	Short: "Simply Supported Beam Report Generator",
	Long: `beamreport - Beam Analysis PDF Report Generator

Reads force records for a simply supported beam from an Excel workbook,
computes the shear force diagram (SFD) and bending moment diagram (BMD)
by static equilibrium, and writes a formatted PDF engineering report
with a title page, an introduction, the recreated data table and both
diagrams as vector plots.

The input sheet has three columns below a header row:
  Position (m) | Force (kN or kN/m) | Type (point | udl)

Invoked with no arguments the tool runs the full pipeline on the fixed
paths data/Force.xlsx, images/Beam.png and output/report.pdf.

Examples:
  # One-shot batch run with the fixed paths
  beamreport

  # Override the input and output
  beamreport --input loads.xlsx --output reports/bridge.pdf --span 12`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "data/Force.xlsx", "Input workbook with force records")
	rootCmd.Flags().StringVar(&imagePath, "image", "images/Beam.png", "Beam configuration image for the introduction")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "output/report.pdf", "Output PDF path")
	rootCmd.Flags().Float64VarP(&beamSpan, "span", "L", 0, "Beam span in m (default: largest load position, rounded up)")
	rootCmd.Flags().IntVarP(&sampleCount, "samples", "n", 21, "Number of evenly spaced diagram stations")
	rootCmd.Flags().StringVar(&reportTitle, "title", "Beam Analysis Report", "Report title")
	rootCmd.Flags().StringVar(&reportAuthor, "author", "beamreport", "Report author")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SIMPLY SUPPORTED BEAM - REPORT GENERATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Printf("Reading force records from %s ...\n", inputPath)
	table, d, err := analyze(inputPath, beamSpan, sampleCount)
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d force records from sheet %q.\n", len(table.Loads), table.Sheet)

	cfg := report.DefaultConfig()
	cfg.Title = reportTitle
	cfg.Author = reportAuthor
	cfg.ImagePath = imagePath
	cfg.DataSource = inputPath

	fmt.Println("Generating report ...")
	doc, err := report.Build(table, d, cfg)
	if err != nil {
		return err
	}
	if err := doc.WriteFile(outputPath); err != nil {
		return err
	}

	ra, rb := d.Beam.Reactions()
	maxM, maxMX := d.MaxMoment()
	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("REPORT GENERATED", []string{
		fmt.Sprintf("Output:     %s (%d pages)", outputPath, doc.PageCount()),
		fmt.Sprintf("Span:       %.2f m", d.Beam.Span),
		fmt.Sprintf("Reactions:  R_A = %.2f kN, R_B = %.2f kN", ra, rb),
		fmt.Sprintf("Max shear:  %.2f kN", d.MaxShear()),
		fmt.Sprintf("Max moment: %.2f kN·m at %.2f m", maxM, maxMX),
	}))
	fmt.Println()
	return nil
}

// analyze runs the shared read-and-compute front half of the pipeline.
// Row warnings go to stderr; a span of 0 derives the span from the data.
func analyze(path string, span float64, samples int) (*forcedata.Table, *statics.Diagram, error) {
	table, err := forcedata.ReadWorkbook(path)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range table.Warnings {
		fmt.Fprintf(os.Stderr, "warning: skipped %v\n", w)
	}

	if span <= 0 {
		span = deriveSpan(table)
		if span <= 0 {
			return nil, nil, fmt.Errorf("cannot derive beam span from %s; provide --span", path)
		}
	}

	beam, err := statics.NewSimplySupported(span, table.Loads)
	if err != nil {
		return nil, nil, err
	}
	d, err := beam.Diagram(samples)
	if err != nil {
		return nil, nil, err
	}
	return table, d, nil
}

// deriveSpan rounds the furthest load position up to a whole metre.
func deriveSpan(table *forcedata.Table) float64 {
	m := table.MaxPosition()
	if m <= 0 {
		return 0
	}
	return math.Ceil(m)
}
