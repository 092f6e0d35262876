// Package config holds the settings shared by the xlmapper commands.
//
// Values come from defaults, then from XLMAPPER_* environment variables
// (optionally loaded from a .env file), then from command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"xlmapper/internal/gen"
	"xlmapper/internal/grid"
	"xlmapper/internal/header"
	"xlmapper/internal/schema"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "XLMAPPER_"

// DefaultEnvFile is loaded when present and no other file is given.
const DefaultEnvFile = ".env"

// Config holds the settings of one run.
type Config struct {
	// Sheet is the worksheet name.
	Sheet string
	// Height is the number of header rows.
	Height int
	// Width is the number of header columns, header.AutoWidth to detect.
	Width int
	// RowOffset and ColOffset locate the header block.
	RowOffset int
	ColOffset int
	// RootName names the inferred root node.
	RootName string
	// Format is the output format of infer (see gen.Names).
	Format string
	// CacheSize is the number of resolved cells kept per worksheet.
	CacheSize int
	// Verbose enables debug logging.
	Verbose bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Height:    1,
		Width:     header.AutoWidth,
		RootName:  schema.DefaultRootName,
		Format:    gen.FormatDefinition,
		CacheSize: grid.DefaultCacheSize,
	}
}

// Load returns the defaults overlaid with the environment. envFile is
// loaded first; an empty envFile loads DefaultEnvFile when it exists.
// Variables already set in the process environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		_ = godotenv.Load(DefaultEnvFile)
	} else if err := godotenv.Load(envFile); err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overlays the XLMAPPER_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}

		v = strings.TrimSpace(v)

		return v, v != ""
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"HEIGHT", &c.Height},
		{"V_OFFSET", &c.RowOffset},
		{"H_OFFSET", &c.ColOffset},
		{"CACHE_SIZE", &c.CacheSize},
	}

	for _, f := range ints {
		v, ok := get(f.name)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %q is not an integer", EnvPrefix, f.name, v)
		}

		*f.dst = n
	}

	if v, ok := get("WIDTH"); ok {
		w, err := header.ParseWidth(v)
		if err != nil {
			return fmt.Errorf("%sWIDTH: %w", EnvPrefix, err)
		}

		c.Width = w
	}

	if v, ok := get("VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sVERBOSE: %q is not a boolean", EnvPrefix, v)
		}

		c.Verbose = b
	}

	if v, ok := get("SHEET"); ok {
		c.Sheet = v
	}

	if v, ok := get("NAME"); ok {
		c.RootName = v
	}

	if v, ok := get("FORMAT"); ok {
		c.Format = v
	}

	return nil
}

// Validate checks the settings used by every command.
func (c Config) Validate() error {
	var errs []error

	if err := c.Header().Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.RootName == "" {
		errs = append(errs, errors.New("root name must not be empty"))
	}

	if !slices.Contains(gen.Names(), c.Format) {
		errs = append(errs, fmt.Errorf("unknown output format %q (available: %s)",
			c.Format, strings.Join(gen.Names(), ", ")))
	}

	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cache size must not be negative, got %d", c.CacheSize))
	}

	return errors.Join(errs...)
}

// Header returns the header block options.
func (c Config) Header() header.Options {
	return header.Options{
		Height: c.Height,
		Width:  c.Width,
		Offset: schema.Offset{Row: c.RowOffset, Col: c.ColOffset},
	}
}
