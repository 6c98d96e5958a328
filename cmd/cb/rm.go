package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <index|name>",
	Aliases: []string{"delete"},
	Short:   "Delete a contact",
	Long: `Delete a contact by index or by exact name.

A numeric argument is treated as an index from "cb list". Anything else is
matched against full names, ignoring case. If several contacts share the
name nothing is deleted; delete by index instead.

Use --name when the contact's name is itself a number.

Examples:
  cb rm 3
  cb rm "alice martin"
  cb rm --name 42`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRm,
	ValidArgsFunction: completeContactNames,
}

var rmByName bool

func init() {
	rmCmd.Flags().BoolVar(&rmByName, "name", false, "always match by name")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	s, b, err := loadStrict()
	if err != nil {
		return err
	}

	var removed model.Contact
	if _, numErr := strconv.Atoi(strings.TrimSpace(args[0])); numErr == nil && !rmByName {
		removed, err = ops.DeleteByIndex(s, b, args[0])
	} else {
		removed, err = ops.DeleteByName(s, b, args[0])
	}
	if err != nil {
		return err
	}

	fmt.Println(cli.Green("Removed contact: " + model.DisplayField(removed.Name)))
	return nil
}

// completeContactNames offers the names in the contact file.
func completeContactNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	b, err := openStorage().Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	prefix := strings.ToLower(toComplete)
	var names []string
	for _, c := range b.Contacts {
		if strings.HasPrefix(strings.ToLower(c.Name), prefix) {
			names = append(names, c.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
