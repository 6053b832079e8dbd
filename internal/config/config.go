// internal/config/config.go

// Package config holds app-wide settings unmarshalled from Viper
// (defaults, an optional gffkit.yaml, and command-line overrides).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct shared by every subcommand.
type Config struct {
	// column delimiter of the annotation file
	Delimiter string `mapstructure:"delimiter"`

	// attribute separator used when a dialect is supplied instead of detected
	Separator string `mapstructure:"separator"`

	// key/value assigner used when a dialect is supplied instead of detected
	Assigner string `mapstructure:"assigner"`

	// number of records sampled during dialect detection
	MaxSampleSize int `mapstructure:"max-sample-size"`

	// substring gate selecting gene roots for hierarchy validation
	BiotypeMarker string `mapstructure:"biotype-marker"`

	// default reformat target when --to is not given
	TargetFormat string `mapstructure:"target-format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("delimiter", "\t")
	v.SetDefault("separator", ";")
	v.SetDefault("assigner", "=")
	v.SetDefault("max-sample-size", 100)
	v.SetDefault("biotype-marker", "protein_coding")
	v.SetDefault("target-format", "gff3")
}

// Load returns the settings from path, or the defaults plus any ./gffkit.yaml
// when path is empty. A missing settings file is not an error; a malformed
// one is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("gffkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// Default returns the built-in settings without touching the filesystem.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}
