package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitspec/internal/logger"
	"github.com/joshuapare/bitspec/internal/printer"
	"github.com/joshuapare/bitspec/pkg/bitspec"
	"github.com/joshuapare/bitspec/pkg/types"
)

var (
	parseFormat   string
	parseLimits   string
	parseWordBits int
	parseValidate bool
	parsePrefix   bool
	parseNoWidth  bool
)

func init() {
	cmd := newParseCmd()
	cmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "Output format: text, json or canonical")
	cmd.Flags().StringVar(&parseLimits, "limits", "", "Limits preset for --validate: default, relaxed or strict")
	cmd.Flags().IntVar(&parseWordBits, "word-bits", 0, "Word width in bits (default from the limits preset)")
	cmd.Flags().BoolVar(&parseValidate, "validate", false, "Check each spec against the limits")
	cmd.Flags().BoolVar(&parsePrefix, "prefix", false, "Parse a leading spec and report the unconsumed remainder")
	cmd.Flags().BoolVar(&parseNoWidth, "no-width", false, "Omit bit widths")
	rootCmd.AddCommand(cmd)
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <spec>...",
		Short: "Parse bit specs and print their structure",
		Long: `The parse command parses each argument as a bit spec and prints it.

Example:
  bitspec parse 4
  bitspec parse "3[4..7]..6[0..5];48" --format json
  bitspec parse "4[]..7[];(3[])<49" --validate --limits strict
  bitspec parse "2[]rest" --prefix`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args)
		},
	}
	return cmd
}

func runParse(args []string) error {
	format, err := outputFormat(parseFormat)
	if err != nil {
		return err
	}

	limits, err := bitspec.LimitsByName(parseLimits)
	if err != nil {
		return err
	}
	if parseWordBits > 0 {
		limits.WordBits = parseWordBits
	}

	opts := printerOptions(format)
	opts.WordBits = limits.WordBits
	opts.ShowWidth = !parseNoWidth
	p := printer.New(os.Stdout, opts)

	for _, in := range args {
		spec, rest, err := parseOne(in)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", in, err)
		}
		logger.Debug("parsed spec", "input", in, "spec", spec.String(), "rest", rest)

		if parseValidate {
			if err := bitspec.Validate(spec, limits); err != nil {
				return fmt.Errorf("invalid spec %q: %w", in, err)
			}
			printVerbose("%s: within limits\n", in)
		}

		if quiet {
			continue
		}
		if err := p.PrintSpec("", spec); err != nil {
			return fmt.Errorf("failed to print %q: %w", in, err)
		}
		if parsePrefix && format != printer.FormatJSON {
			printInfo("rest: %q\n", rest)
		}
	}
	return nil
}

func parseOne(in string) (types.BitSpec, string, error) {
	if parsePrefix {
		return bitspec.ParsePrefix(in)
	}
	spec, err := bitspec.Parse(in)
	return spec, "", err
}
