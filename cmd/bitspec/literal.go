package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitspec/internal/logger"
	"github.com/joshuapare/bitspec/internal/printer"
	"github.com/joshuapare/bitspec/pkg/bitspec"
)

var literalFormat string

func init() {
	cmd := newLiteralCmd()
	cmd.Flags().StringVarP(&literalFormat, "format", "f", "text", "Output format: text, json or canonical")
	rootCmd.AddCommand(cmd)
}

func newLiteralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "literal <literal>...",
		Short: "Parse hex or binary literals",
		Long: `The literal command parses 0x and 0b literals, which may separate
digits with underscores, and prints their value.

Example:
  bitspec literal 0xFF_FF
  bitspec literal 0b1011_1100 --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLiteral(args)
		},
	}
	return cmd
}

func runLiteral(args []string) error {
	format, err := outputFormat(literalFormat)
	if err != nil {
		return err
	}
	p := printer.New(os.Stdout, printerOptions(format))

	for _, in := range args {
		lit, err := bitspec.ParseLiteral(in)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", in, err)
		}
		logger.Debug("parsed literal", "input", in, "base", lit.Base.String())
		if quiet {
			continue
		}
		if err := p.PrintLiteral(lit); err != nil {
			return err
		}
	}
	return nil
}
