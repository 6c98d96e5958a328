package main

import (
	"fmt"

	"github.com/jacksmith/cb/internal/ops"
	"github.com/jacksmith/cb/internal/shell"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search contacts by name",
	Long: `Search for contacts whose name contains the query.

Matching is a case-insensitive substring search on the name only.
Results keep their index from the full list.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	_, b, err := loadStrict()
	if err != nil {
		return err
	}

	matches, err := ops.SearchContacts(b, args[0])
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Printf("No results found for %q\n", args[0])
		return nil
	}

	fmt.Printf("Found %d matching contact(s):\n", len(matches))
	for _, m := range matches {
		fmt.Println(shell.FormatContact(m.Index, m.Contact))
	}
	return nil
}
