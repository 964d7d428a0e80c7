package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nro337/docparse/internal/export"
	"github.com/nro337/docparse/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection to a markdown, YAML, or JSON file",
	Long: `Export writes the paper collection to a file. The default markdown
format produces a readable report; yaml and json dump the full records
including the converted document bodies.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("store", "papers_data.json", "path to the JSON storage file")
	exportCmd.Flags().String("dir", ".", "directory the export file is written to")
	exportCmd.Flags().String("format", "markdown", "export format: markdown, yaml, or json")
	exportCmd.Flags().String("output", "", "export filename (default: papers_export_<timestamp>)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	filename, _ := cmd.Flags().GetString("output")
	cfg := types.ExportConfig{
		Dir:    settingString(cmd, "dir", "export.dir"),
		Format: types.ExportFormat(settingString(cmd, "format", "export.format")),
	}

	path, err := export.Write(s.Papers(), cfg, filename)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d paper(s) to %s\n", s.Len(), path)
	return nil
}
