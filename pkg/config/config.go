// Package config loads vok2vok settings from defaults, an optional config
// file, VOK2VOK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	CSV        bool       `mapstructure:"csv"`
	Overwrite  bool       `mapstructure:"overwrite"`
	DefaultBox int        `mapstructure:"default_box" validate:"min=0"`
	Extensions Extensions `mapstructure:"extensions" validate:"required"`
	Env        string     `mapstructure:"env" validate:"oneof=development production"`
	Verbose    bool       `mapstructure:"verbose"`
}

type Extensions struct {
	Source string `mapstructure:"source" validate:"required,startswith=."`
	Boxes  string `mapstructure:"boxes" validate:"required,startswith=."`
	CSV    string `mapstructure:"csv" validate:"required,startswith=."`
	Vok5   string `mapstructure:"vok5" validate:"required,startswith=."`
}

// Target names the output format for user-facing messages.
func (c Config) Target() string {
	if c.CSV {
		return "csv"
	}
	return "vok5"
}

const envPrefix = "VOK2VOK"

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("csv", false)
	v.SetDefault("overwrite", false)
	v.SetDefault("default_box", 5)
	v.SetDefault("extensions.source", ".vok2")
	v.SetDefault("extensions.boxes", ".kk")
	v.SetDefault("extensions.csv", ".csv")
	v.SetDefault("extensions.vok5", ".vok5")
	v.SetDefault("env", "development")
	v.SetDefault("verbose", false)
}

// Load builds the configuration. configFile may be empty, in which case
// vok2vok.{yaml,json,toml} is looked up in the working directory and in
// $HOME/.config/vok2vok; a missing default file is not an error. Flags
// that were set on flags override every other source.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("vok2vok")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "vok2vok"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" || f.Name == "help" {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			bindErr = errors.Join(bindErr, v.BindPFlag(key, f))
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		var errMsgs []string
		for _, e := range verrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", e.Namespace(), e.Tag(), e.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}
