// Package main is the entry point for the cb CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/shell"
	"github.com/jacksmith/cb/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cb",
	Short: "cb - a personal contact book",
	Long: `cb keeps a personal list of contacts in a JSON file.

Run without a subcommand to open the interactive menu. The subcommands
do the same things non-interactively, for scripts.

The contact file defaults to contacts.json in the current directory. It
can be changed with data_file in .cbconfig.yaml or with --file.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runShell,
}

var dataFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "contact file (overrides data_file in .cbconfig.yaml)")

	rootCmd.SetVersionTemplate("cb version {{.Version}}\n")
}

// runShell runs the interactive menu. Every problem is reported and the
// session continues, so this path never fails.
func runShell(cmd *cobra.Command, args []string) {
	s := openStorage()

	b, err := s.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatWarning(err))
	}

	shell.New(os.Stdin, os.Stdout, s, b).Run()
}

// openStorage resolves the contact file from config and flags.
// A broken config file is reported and defaults are used.
func openStorage() *storage.Storage {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatWarning(err))
	}
	cli.ConfigureColor(os.Stdout, cfg.Color)

	path := cfg.DataFile
	if dataFile != "" {
		path = dataFile
	}
	return storage.Open(path)
}

// loadStrict loads the contact file for scripted commands. Unlike the
// interactive menu, a damaged file is an error here so that a scripted
// write never replaces it with a fresh list.
func loadStrict() (*storage.Storage, *model.Book, error) {
	s := openStorage()
	b, err := s.Load()
	if err != nil {
		return nil, nil, err
	}
	return s, b, nil
}
