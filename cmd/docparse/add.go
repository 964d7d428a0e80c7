package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [identifiers...]",
	Short: "Add papers to the collection by URL, arXiv ID, or DOI",
	Long: `Add fetches each identifier, converts the document to Markdown,
extracts the title and abstract, and stores the entry. Processing
continues past individual failures; the exit status reflects them.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("store", "papers_data.json", "path to the JSON storage file")
	addCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more paper identifiers (URLs, arXiv IDs, or DOIs)")
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	result := newIngestor(cmd, s).AddBatch(cmd.Context(), args, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d paper(s) failed", result.Failed)
	}
	return nil
}
