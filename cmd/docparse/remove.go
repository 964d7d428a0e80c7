package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nro337/docparse/internal/store"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a paper from the collection by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().String("store", "papers_data.json", "path to the JSON storage file")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("paper ID must be an integer, got %q", args[0])
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	if err := s.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("paper %d not found", id)
		}
		return err
	}

	fmt.Printf("Removed paper %d\n", id)
	return nil
}
