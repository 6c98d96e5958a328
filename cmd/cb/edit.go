package main

import (
	"fmt"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the contact file in $EDITOR",
	Long: `Open the contact file in $VISUAL or $EDITOR.

When the editor exits the result is checked. It must still be a JSON list
of contacts; otherwise the change is rejected and the file is left as it
was. A missing contact file starts out as an empty list.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s := openStorage()

	original, err := s.ReadRaw()
	if err != nil {
		return err
	}
	if original == nil {
		if original, err = model.EncodeContacts(nil); err != nil {
			return err
		}
	}

	edited, changed, err := cli.EditInEditor(original, ".json")
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println(cli.Gray("No changes."))
		return nil
	}

	b, err := s.ReplaceRaw(edited)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %d contact(s) to %s\n", b.Len(), s.Path())
	return nil
}
