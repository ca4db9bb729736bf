package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-tracker/internal/report"
	"github.com/pdiddy/paper-tracker/internal/search"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a saved result file as a Markdown report",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("from", "", "saved result file")
	exportCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	fromPath, _ := cmd.Flags().GetString("from")
	if fromPath == "" {
		return fmt.Errorf("provide --from")
	}

	rf, err := search.ReadResultFile(fromPath)
	if err != nil {
		return err
	}

	md := report.Markdown(rf.Records, rf.Params.Keywords)

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		fmt.Fprint(os.Stdout, md)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}
