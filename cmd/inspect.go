package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structeng/beamreport/internal/forcedata"
)

var inspectInput string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the parsed force records without generating a report",
	Long: `Parse the input workbook and print the force records as a table,
along with any rows that were skipped. Useful for checking the input
before generating the report.

Examples:
  beamreport inspect
  beamreport inspect --input loads.xlsx`,
	SilenceUsage: true,
	RunE:         runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectInput, "input", "i", "data/Force.xlsx", "Input workbook with force records")
}

func runInspect(cmd *cobra.Command, args []string) error {
	table, err := forcedata.ReadWorkbook(inspectInput)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("FORCE RECORDS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tPosition (m)\tMagnitude\tType\n")
	fmt.Fprintf(w, "  ─\t────────────\t─────────\t────\n")

	var totalPoint, totalUDL float64
	for i, ld := range table.Loads {
		fmt.Fprintf(w, "  %d\t%.2f\t%.2f %s\t%s\n", i+1, ld.Position, ld.Magnitude, ld.Kind.Unit(), ld.Kind)
		switch ld.Kind {
		case forcedata.Point:
			totalPoint += ld.Magnitude
		case forcedata.Uniform:
			totalUDL += ld.Magnitude
		}
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  Sheet: %q\n", table.Sheet)
	fmt.Printf("  Total point load: %.2f kN\n", totalPoint)
	if totalUDL != 0 {
		fmt.Printf("  Distributed load: %.2f kN/m over the full span\n", totalUDL)
	}

	if len(table.Warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Skipped %d row(s):\n", len(table.Warnings))
		for _, rw := range table.Warnings {
			fmt.Printf("    - %v\n", rw)
		}
	}
	fmt.Println()
	return nil
}
