package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"sudreview/internal/report"
	"sudreview/internal/trace"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the print version of the review without starting the UI",
	Long: `Renders the whole review, every instrument expanded, as Markdown or
standalone HTML. Without --out the file is written to export_dir with a
timestamped name; --out - writes to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "", "md or html (defaults to export_format)")
	exportCmd.Flags().StringP("out", "o", "", "output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	name, _ := cmd.Flags().GetString("format")
	if name == "" {
		name = s.cfg.ExportFormat
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")

	path, err := writeReport(report.Default(), format, out, s.cfg.ExportDir)
	trace.NewRecorder(s.exporter).Export(context.Background(), string(format), path, err)
	if err != nil {
		s.log.Error("export failed", "err", err)
		return err
	}
	s.log.Info("report exported", "path", path, "format", format)
	if out != "-" {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// writeReport renders doc to out. An empty out picks a timestamped file in
// dir; "-" is stdout.
func writeReport(doc report.Document, format report.Format, out, dir string) (string, error) {
	switch out {
	case "":
		return doc.WriteFile(dir, format, time.Now())
	case "-":
		return "-", doc.Write(os.Stdout, format)
	}
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", out, err)
	}
	if err := doc.Write(f, format); err != nil {
		f.Close()
		return "", fmt.Errorf("rendering %s: %w", format, err)
	}
	return out, f.Close()
}
