// Package config loads the tocnorm configuration from defaults,
// TOCNORM_ environment variables and command line overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"tocnorm/internal/logger"
	"tocnorm/internal/resolve"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TOCNORM_"

// Output formats of the upgraded table of contents.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config is the complete tocnorm configuration.
type Config struct {
	// Root is the directory searched for table of contents files.
	Root string `koanf:"root" validate:"required"`
	// Include and Exclude are doublestar patterns relative to Root.
	Include []string `koanf:"include" validate:"min=1,dive,required"`
	Exclude []string `koanf:"exclude" validate:"dive,required"`
	// Extensions are tried, in order, on file references without one.
	Extensions  []string  `koanf:"extensions"  validate:"min=1,dive,startswith=."`
	Concurrency int       `koanf:"concurrency" validate:"min=1"`
	Output      string    `koanf:"output"      validate:"oneof=yaml json"`
	Write       bool      `koanf:"write"`
	Log         LogConfig `koanf:"log"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Root:        ".",
		Include:     []string{"**/_toc.yml"},
		Exclude:     []string{"**/_build/**"},
		Extensions:  append([]string(nil), resolve.DefaultExtensions...),
		Concurrency: 4,
		Output:      OutputYAML,
		Log: LogConfig{
			Level: string(logger.InfoLevel),
		},
	}
}

// Load builds the configuration. Sources are applied in increasing
// precedence: defaults, environment, then overrides. Override keys use
// koanf paths such as "log.level".
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tag constraints of cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Logger returns the logger configuration matching c.
func (c *Config) Logger() *logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = logger.LogLevel(c.Log.Level)
	lc.JSON = c.Log.JSON

	return lc
}

// transformEnvKey maps TOCNORM_LOG_LEVEL onto log.level: the first
// segment after the prefix is the top-level key and the rest names the
// nested field.
func transformEnvKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_'
	})

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + "." + strings.Join(parts[1:], "_")
	}
}
