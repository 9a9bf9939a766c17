package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/stuartshay/swagger-enrich/internal/examples"
	"github.com/stuartshay/swagger-enrich/internal/swagger"
)

// defaultSwaggerFile is where documentation builds keep the generated document.
const defaultSwaggerFile = "docs/swagger.json"

// EnrichConfig captures all inputs that influence the enrich pass after
// merging defaults, config file values, and CLI overrides.
type EnrichConfig struct {
	File        string
	DryRun      bool
	FillMissing bool
	ConfigPath  string
	Verbose     bool
}

func defaultEnrichConfig() EnrichConfig {
	return EnrichConfig{File: defaultSwaggerFile}
}

var enrichRunner = runEnrich

func resolveEnrichConfig(cmd *cobra.Command) (*EnrichConfig, error) {
	cfg := defaultEnrichConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	configPath = strings.TrimSpace(configPath)
	if configPath != "" {
		cfg.ConfigPath = configPath
		if err := applyEnrichConfigFromFile(&cfg, configPath); err != nil {
			return nil, err
		}
	}

	if err := applyEnrichFlagOverrides(cmd.Flags(), &cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	return &cfg, nil
}

func applyEnrichFlagOverrides(flags *pflag.FlagSet, cfg *EnrichConfig) error {
	if flags.Changed("file") {
		value, err := flags.GetString("file")
		if err != nil {
			return err
		}
		cfg.File = strings.TrimSpace(value)
	}
	if flags.Changed("dry-run") {
		value, err := flags.GetBool("dry-run")
		if err != nil {
			return err
		}
		cfg.DryRun = value
	}
	if flags.Changed("fill-missing") {
		value, err := flags.GetBool("fill-missing")
		if err != nil {
			return err
		}
		cfg.FillMissing = value
	}
	if flags.Changed("verbose") {
		value, err := flags.GetBool("verbose")
		if err != nil {
			return err
		}
		cfg.Verbose = value
	}
	return nil
}

func (c *EnrichConfig) normalize() {
	c.File = strings.TrimSpace(c.File)
	if c.File == "" {
		c.File = defaultSwaggerFile
	}
}

func runEnrich(ctx context.Context, cfg *EnrichConfig) error {
	_ = ctx

	doc, err := swagger.Load(cfg.File)
	if err != nil {
		return err
	}

	patched := examples.Inject(doc)
	for _, name := range patched {
		fmt.Fprintf(os.Stdout, "Added examples to %s\n", name)
	}
	if len(patched) == 0 && cfg.Verbose {
		fmt.Fprintln(os.Stdout, "No known model definitions found; document left unchanged")
	}

	if cfg.FillMissing {
		for _, name := range examples.FillMissing(doc) {
			fmt.Fprintf(os.Stdout, "Filled placeholder example for %s\n", name)
		}
	}

	if cfg.DryRun {
		fmt.Fprintf(os.Stdout, "Dry run: %s not written (%d definitions patched in memory)\n", cfg.File, len(patched))
		return nil
	}

	if err := swagger.Save(doc, cfg.File); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Successfully added Swagger 2.0 examples to %s\n", cfg.File)
	return nil
}

func applyEnrichConfigFromFile(cfg *EnrichConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newUsageError(fmt.Sprintf("read config file %q: %v", path, err))
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return newUsageError(fmt.Sprintf("parse config file %q: %v", path, err))
	}

	for key, value := range raw {
		switch normalizeKey(key) {
		case "file":
			str, err := valueAsString(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.File = str
		case "dryrun":
			val, err := valueAsBool(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.DryRun = val
		case "fillmissing":
			val, err := valueAsBool(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.FillMissing = val
		case "verbose":
			val, err := valueAsBool(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.Verbose = val
		default:
			return newUsageError(fmt.Sprintf("config file %q: unknown field %q", path, key))
		}
	}

	return nil
}

func normalizeKey(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	lowered = strings.ReplaceAll(lowered, "-", "")
	lowered = strings.ReplaceAll(lowered, "_", "")
	return lowered
}

func valueAsString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

func valueAsBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		trimmed := strings.ToLower(strings.TrimSpace(val))
		switch trimmed {
		case "true", "t", "1", "yes", "y":
			return true, nil
		case "false", "f", "0", "no", "n":
			return false, nil
		case "":
			return false, nil
		default:
			return false, fmt.Errorf("invalid boolean value %q", val)
		}
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
}
