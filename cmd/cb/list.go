package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/cb/internal/ops"
	"github.com/jacksmith/cb/internal/shell"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all contacts",
	Long: `List every contact with its current index.

Indexes shift when an earlier contact is deleted, so list again before
deleting by index.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, b, err := loadStrict()
	if err != nil {
		return err
	}

	seq, err := ops.ListContacts(b)
	if errors.Is(err, ops.ErrNoContacts) {
		fmt.Println("No contacts found.")
		return nil
	}

	for i, c := range seq {
		fmt.Println(shell.FormatContact(i, c))
	}
	return nil
}
