package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitspec/internal/catalog"
	"github.com/joshuapare/bitspec/internal/printer"
)

var (
	checkEncoding string
	checkLimits   string
	checkWordBits int
	checkShow     bool
	checkFormat   string
)

func init() {
	cmd := newCheckCmd()
	cmd.Flags().StringVar(&checkEncoding, "encoding", catalog.EncodingUTF8, "Catalog encoding: UTF-8, UTF-16LE or WINDOWS-1252")
	cmd.Flags().StringVar(&checkLimits, "limits", "", "Override the catalog's limits preset")
	cmd.Flags().IntVar(&checkWordBits, "word-bits", 0, "Override the catalog's word width")
	cmd.Flags().BoolVar(&checkShow, "show", false, "Print the validated fields")
	cmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "Output format for --show: text, json or canonical")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <catalog.yaml>",
		Short: "Validate a catalog of named bit specs",
		Long: `The check command loads a YAML field catalog, parses every spec and
checks it against the catalog's limits. Every rejected field is reported.

Example:
  bitspec check registers.yaml
  bitspec check registers.yaml --limits strict --show
  bitspec check legacy.yaml --encoding WINDOWS-1252`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

func runCheck(args []string) error {
	path := args[0]
	printVerbose("Loading catalog: %s\n", path)

	opts := catalog.DefaultOptions()
	opts.Encoding = checkEncoding
	opts.Limits = checkLimits
	opts.WordBits = checkWordBits

	c, err := catalog.Load(path, opts)
	if c == nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if err != nil {
		return fmt.Errorf("%s: %d field(s) valid, errors:\n%w", path, c.Len(), err)
	}

	if checkShow {
		format, err := outputFormat(checkFormat)
		if err != nil {
			return err
		}
		return printer.New(os.Stdout, printerOptions(format)).PrintCatalog(c)
	}

	printInfo("%s: %d field(s) OK\n", path, c.Len())
	return nil
}
