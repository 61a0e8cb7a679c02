// Package config loads snowplot configuration from file, environment and flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukaji3/snowplot-go/pkg/snowplot"
	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

// EnvPrefix prefixes environment variable overrides, e.g. SNOWPLOT_OUTPUT_DIR.
const EnvPrefix = "SNOWPLOT"

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Plot    PlotConfig    `mapstructure:"plot"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig holds model output location and layout
type InputConfig struct {
	Dir          string   `mapstructure:"dir"`
	Datasets     []string `mapstructure:"datasets"`
	Models       []string `mapstructure:"models"`
	Schema       []string `mapstructure:"schema"`
	SkipFirstRow bool     `mapstructure:"skip_first_row"`
}

// OutputConfig holds output location and toggles
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`
	Save     bool   `mapstructure:"save"`
	Workbook bool   `mapstructure:"workbook"`
}

// PlotConfig holds chart selection and axis configuration
type PlotConfig struct {
	Variables []string `mapstructure:"variables"`
	DOYMin    int      `mapstructure:"doy_min"`
	DOYMax    int      `mapstructure:"doy_max"`
	Stride    int      `mapstructure:"stride"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"input-dir":      "input.dir",
	"models":         "input.models",
	"skip-first-row": "input.skip_first_row",
	"output-dir":     "output.dir",
	"save":           "output.save",
	"xlsx":           "output.workbook",
	"variables":      "plot.variables",
	"doy-min":        "plot.doy_min",
	"doy-max":        "plot.doy_max",
	"stride":         "plot.stride",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
}

// Load reads configuration from an optional file, environment variables and flags.
// Flags take precedence over the environment, which takes precedence over the file.
// An empty path skips the file. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	defaults := snowplot.DefaultOptions()

	modelIDs := make([]string, len(defaults.Models))
	for i, m := range defaults.Models {
		modelIDs[i] = m.ID
	}
	variables := make([]string, len(defaults.Variables))
	for i, vr := range defaults.Variables {
		variables[i] = string(vr)
	}

	// Input defaults
	v.SetDefault("input.dir", defaults.InputDir)
	v.SetDefault("input.datasets", []string{})
	v.SetDefault("input.models", modelIDs)
	v.SetDefault("input.schema", []string(defaults.Schema))
	v.SetDefault("input.skip_first_row", defaults.Load.SkipFirstRow)

	// Output defaults
	v.SetDefault("output.dir", defaults.OutputDir)
	v.SetDefault("output.save", defaults.Save)
	v.SetDefault("output.workbook", false)

	// Plot defaults
	v.SetDefault("plot.variables", variables)
	v.SetDefault("plot.doy_min", defaults.DOYMin)
	v.SetDefault("plot.doy_max", defaults.DOYMax)
	v.SetDefault("plot.stride", defaults.Stride)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Input config
	if c.Input.Dir == "" {
		return fmt.Errorf("input.dir is required")
	}
	if len(c.Input.Datasets) == 0 {
		return fmt.Errorf("input.datasets must contain at least one dataset")
	}
	if len(c.Input.Models) == 0 {
		return fmt.Errorf("input.models must contain at least one model")
	}
	if len(c.Input.Models) > 4 {
		return fmt.Errorf("input.models must contain at most 4 models")
	}
	for _, id := range c.Input.Models {
		if _, err := models.ParseModelVariant(id); err != nil {
			return fmt.Errorf("input.models: %w", err)
		}
	}
	if len(c.Input.Schema) < 2 {
		return fmt.Errorf("input.schema must name the date column and at least one value column")
	}

	// Validate Output config
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}

	// Validate Plot config
	if len(c.Plot.Variables) == 0 {
		return fmt.Errorf("plot.variables must contain at least one variable")
	}
	for _, name := range c.Plot.Variables {
		if _, err := models.ParseVariable(name); err != nil {
			return fmt.Errorf("plot.variables: %w", err)
		}
	}
	if c.Plot.DOYMin >= c.Plot.DOYMax {
		return fmt.Errorf("plot.doy_min must be less than plot.doy_max")
	}
	if c.Plot.Stride < 1 {
		return fmt.Errorf("plot.stride must be at least 1")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// Options converts the configuration into pipeline options.
// The configuration must be valid.
func (c *Config) Options() (snowplot.Options, error) {
	opts := snowplot.DefaultOptions()
	opts.InputDir = c.Input.Dir
	opts.OutputDir = c.Output.Dir
	opts.Schema = models.Schema(c.Input.Schema)
	opts.DOYMin = c.Plot.DOYMin
	opts.DOYMax = c.Plot.DOYMax
	opts.Stride = c.Plot.Stride
	opts.Save = c.Output.Save
	opts.Workbook = c.Output.Workbook
	opts.Load.SkipFirstRow = c.Input.SkipFirstRow

	opts.Models = make([]models.ModelVariant, 0, len(c.Input.Models))
	for _, id := range c.Input.Models {
		m, err := models.ParseModelVariant(id)
		if err != nil {
			return snowplot.Options{}, err
		}
		opts.Models = append(opts.Models, m)
	}

	opts.Variables = make([]models.Variable, 0, len(c.Plot.Variables))
	for _, name := range c.Plot.Variables {
		v, err := models.ParseVariable(name)
		if err != nil {
			return snowplot.Options{}, err
		}
		opts.Variables = append(opts.Variables, v)
	}

	return opts, nil
}
