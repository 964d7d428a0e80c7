package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the papers in the collection",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("store", "papers_data.json", "path to the JSON storage file")
	listCmd.Flags().Bool("json", false, "output the listing as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	summaries := s.List()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if len(summaries) == 0 {
		fmt.Fprintln(os.Stdout, "No papers in the collection.")
		return nil
	}

	for _, p := range summaries {
		fmt.Fprintf(os.Stdout, "[%d] %s\n", p.ID, p.Title)
		fmt.Fprintf(os.Stdout, "    %s\n", p.URL)
		fmt.Fprintf(os.Stdout, "    added %s\n", p.AddedDate.Format(time.RFC3339))
		fmt.Fprintf(os.Stdout, "    %s\n", p.Abstract)
	}
	fmt.Fprintf(os.Stdout, "\n%d paper(s)\n", len(summaries))
	return nil
}
