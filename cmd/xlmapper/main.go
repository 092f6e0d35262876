// Package main provides the CLI entrypoint for xlmapper.
//
// xlmapper turns multi-row spreadsheet headers into field schemas:
//   - infer: build a schema from a header and print it (definition, TypeScript, flat, pretty)
//   - check: verify a schema against a worksheet header
//   - map: extract the data rows below a verified header as JSON
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"xlmapper/internal/config"
	"xlmapper/internal/grid"
	"xlmapper/internal/header"
	"xlmapper/internal/infer"
	"xlmapper/internal/mapping"
	"xlmapper/internal/schema"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	cfg    config.Config
	logger *zap.Logger

	stdout io.Writer
	stderr io.Writer

	// global flags
	envFile   string
	verbose   bool
	sheet     string
	height    int
	width     string
	vOffset   int
	hOffset   int
	cacheSize int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "xlmapper",
		Short: "Map multi-row spreadsheet headers to nested records",
		Long: `xlmapper infers a field schema from the header rows of an xlsx worksheet,
checks a schema against a worksheet and extracts the rows below the header
as nested JSON records.

Settings may also come from XLMAPPER_* environment variables or a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.envFile, "env-file", "", "Load settings from this file (default: .env when present)")
	flags.StringVarP(&a.sheet, "sheet", "s", "", "Worksheet name (default: active sheet)")
	flags.IntVar(&a.height, "height", 1, "Number of header rows")
	flags.StringVar(&a.width, "width", "auto", "Number of header columns, or auto")
	flags.IntVar(&a.vOffset, "v-offset", 0, "Rows above the header")
	flags.IntVar(&a.hOffset, "h-offset", 0, "Columns left of the header")
	flags.IntVar(&a.cacheSize, "cache-size", grid.DefaultCacheSize, "Resolved cells cached per worksheet")

	root.AddCommand(newInferCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newMapCmd(a))

	return root
}

// configure builds the effective configuration (defaults, environment,
// then explicitly set flags) and the logger.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("sheet") {
		cfg.Sheet = a.sheet
	}

	if flags.Changed("height") {
		cfg.Height = a.height
	}

	if flags.Changed("width") {
		w, err := header.ParseWidth(a.width)
		if err != nil {
			return err
		}

		cfg.Width = w
	}

	if flags.Changed("v-offset") {
		cfg.RowOffset = a.vOffset
	}

	if flags.Changed("h-offset") {
		cfg.ColOffset = a.hOffset
	}

	if flags.Changed("cache-size") {
		cfg.CacheSize = a.cacheSize
	}

	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}

	if f := flags.Lookup("name"); f != nil && f.Changed {
		cfg.RootName = f.Value.String()
	}

	if f := flags.Lookup("type"); f != nil && f.Changed {
		cfg.Format = f.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger = logger

	return nil
}

// openSheet opens the configured worksheet of the workbook at path.
func (a *app) openSheet(path string) (*grid.Sheet, error) {
	s, err := grid.OpenSheet(path, a.cfg.Sheet, a.cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("worksheet opened", zap.String("path", path), zap.String("sheet", s.Name()))

	return s, nil
}

// schemaFor returns the schema tree of g: loaded from the definition file
// when one is given, inferred from the configured header otherwise.
func (a *app) schemaFor(g grid.Grid, definition string) (*schema.Node, error) {
	if definition != "" {
		root, err := mapping.LoadFile(definition)
		if err != nil {
			return nil, err
		}

		a.logger.Debug("definition loaded", zap.String("path", definition), zap.Int("nodes", root.Cardinality()))

		return root, nil
	}

	return infer.Infer(g, infer.Options{
		Header: a.cfg.Header(),
		Name:   a.cfg.RootName,
		Logger: a.logger,
	})
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
