package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/dictd/internal/dictionary"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputFormatSummary OutputFormat = "summary"
	OutputFormatYAML    OutputFormat = "yaml"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatSummary, OutputFormatYAML}
)

func newSeedCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "seed",
		Short: "Seed file commands",
	}

	output := OutputFormatSummary
	validateCommand := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := dictionary.ReadYAMLFile(args[0])
			if err != nil {
				return fmt.Errorf("dictionary.ReadYAMLFile() > %w", err)
			}
			if err := dictionary.ValidateEntries(entries); err != nil {
				return fmt.Errorf("dictionary.ValidateEntries() > %w", err)
			}

			// Later entries override earlier ones, the same way the server loads them.
			store := dictionary.NewStore()
			store.Load(entries)

			switch output {
			case OutputFormatYAML:
				return dictionary.WriteYAML(cmd.OutOrStdout(), store.ScanByPrefix(""))
			default:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d unique words\n", args[0], len(entries), store.Len())
				return err
			}
		},
	}
	validateCommand.Flags().Var(&output, "output", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))

	rootCommand.AddCommand(validateCommand)
	return &rootCommand
}
