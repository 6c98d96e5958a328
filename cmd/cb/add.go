package main

import (
	"fmt"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new contact",
	Long: `Add a new contact to the end of the list.

Only the name is required. Surrounding whitespace is trimmed from every field.

Examples:
  cb add "Alice Martin"
  cb add Bob --phone=555-0100 --email=bob@example.com
  cb add "Zoë" --address="12 Rue de la Paix, Paris"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addPhone   string
	addEmail   string
	addAddress string
)

func init() {
	addCmd.Flags().StringVar(&addPhone, "phone", "", "phone number")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email address")
	addCmd.Flags().StringVar(&addAddress, "address", "", "postal address")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, b, err := loadStrict()
	if err != nil {
		return err
	}

	c, err := ops.AddContact(s, b, model.Contact{
		Name:    args[0],
		Phone:   addPhone,
		Email:   addEmail,
		Address: addAddress,
	})
	if err != nil {
		return err
	}

	fmt.Println(cli.Green(fmt.Sprintf("Contact '%s' added as #%d.", c.Name, b.Len())))
	return nil
}
