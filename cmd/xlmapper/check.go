package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xlmapper/internal/diagnostic"
	"xlmapper/internal/gen"
	"xlmapper/internal/verify"
)

func newCheckCmd(a *app) *cobra.Command {
	var definition string

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Verify a schema against a worksheet header",
		Long: `Check reads the schema from a definition file (or infers it from the header
flags), verifies every node against the worksheet and prints the coordinate
of each extracted column. Optional nodes missing from the worksheet are
dropped and reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(args[0], definition)
		},
	}

	cmd.Flags().StringVarP(&definition, "mapping", "m", "", "Definition file (default: infer from the header)")

	return cmd
}

func (a *app) runCheck(path, definition string) error {
	sheet, err := a.openSheet(path)
	if err != nil {
		return err
	}
	defer sheet.Close()

	root, err := a.schemaFor(sheet, definition)
	if err != nil {
		return err
	}

	verified, diags, err := verify.New(sheet, verify.WithLogger(a.logger)).Verify(root)
	if err != nil {
		return err
	}

	listing, err := gen.Flat(verified)
	if err != nil {
		return err
	}

	a.report(diags)

	return gen.WriteOutput(a.stdout, "", listing)
}

// report prints warnings and infos to stderr.
func (a *app) report(diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(a.stderr, "%s: %s\n", d.Severity, d)
	}
}
