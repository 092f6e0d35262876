package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xlmapper/internal/gen"
	"xlmapper/internal/rowmap"
	"xlmapper/internal/schema"
	"xlmapper/internal/verify"
)

type mapOptions struct {
	definition string
	start      int
	array      bool
	output     string
}

func newMapCmd(a *app) *cobra.Command {
	var opts mapOptions

	cmd := &cobra.Command{
		Use:   "map FILE",
		Short: "Extract the rows below the header as JSON",
		Long: `Map verifies the schema against the worksheet, then writes one JSON object
per data row (JSON lines), or a single array with --array. Extraction stops
at the first row whose first column is blank.`,
		Example: `  xlmapper map report.xlsx -m report.yaml -o rows.jsonl
  xlmapper map report.xlsx --height 2 --array`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMap(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.definition, "mapping", "m", "", "Definition file (default: infer from the header)")
	cmd.Flags().IntVar(&opts.start, "start", 0, "First data row (default: the row below the header)")
	cmd.Flags().BoolVar(&opts.array, "array", false, "Write a single JSON array instead of JSON lines")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func (a *app) runMap(path string, opts mapOptions) error {
	sheet, err := a.openSheet(path)
	if err != nil {
		return err
	}
	defer sheet.Close()

	root, err := a.schemaFor(sheet, opts.definition)
	if err != nil {
		return err
	}

	verified, diags, err := verify.New(sheet, verify.WithLogger(a.logger)).Verify(root)
	if err != nil {
		return err
	}

	a.report(diags)

	start := opts.start
	if start == 0 {
		start = a.defaultStart(verified, opts.definition != "")
	}

	rows := rowmap.New(verified, sheet, rowmap.WithLogger(a.logger)).Rows(start)

	// Buffered so that a failing row leaves no partial output behind.
	var buf bytes.Buffer

	write := rowmap.WriteJSONLines
	if opts.array {
		write = rowmap.WriteJSONArray
	}

	n, err := write(&buf, rows)
	if err != nil {
		return fmt.Errorf("mapping rows: %w", err)
	}

	a.logger.Info("rows mapped",
		zap.String("sheet", sheet.Name()),
		zap.Int("start", start),
		zap.Int("records", n))

	return gen.WriteOutput(a.stdout, opts.output, buf.String())
}

// defaultStart returns the first data row: the row below the configured
// header block for an inferred schema, the row below the deepest leaf for a
// declared one.
func (a *app) defaultStart(root *schema.Node, declared bool) int {
	if declared {
		return rowmap.StartRow(root)
	}

	return a.cfg.RowOffset + a.cfg.Height + 1
}
