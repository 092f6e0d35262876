package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xlmapper/internal/gen"
	"xlmapper/internal/infer"
	"xlmapper/internal/schema"
)

func newInferCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "infer FILE",
		Short: "Infer a schema from a worksheet header",
		Example: `  xlmapper infer report.xlsx -s Data --height 2 -t yaml -o report.yaml
  xlmapper infer report.xlsx --height 3 --width 12 -t ts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInfer(args[0], output)
		},
	}

	cmd.Flags().String("name", schema.DefaultRootName, "Root node name")
	cmd.Flags().StringP("type", "t", gen.FormatDefinition, "Output type: "+strings.Join(gen.Names(), ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func (a *app) runInfer(path, output string) error {
	formatter, err := gen.Lookup(a.cfg.Format)
	if err != nil {
		return err
	}

	sheet, err := a.openSheet(path)
	if err != nil {
		return err
	}
	defer sheet.Close()

	root, err := infer.Infer(sheet, infer.Options{
		Header: a.cfg.Header(),
		Name:   a.cfg.RootName,
		Logger: a.logger,
	})
	if err != nil {
		return fmt.Errorf("inferring schema: %w", err)
	}

	text, err := formatter.Format(root)
	if err != nil {
		return fmt.Errorf("formatting schema: %w", err)
	}

	a.logger.Info("schema inferred",
		zap.String("sheet", sheet.Name()),
		zap.Int("leaves", len(root.Leaves())),
		zap.String("format", a.cfg.Format))

	return gen.WriteOutput(a.stdout, output, text)
}
