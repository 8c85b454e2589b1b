// Package config defines the data structures related to configuration and
// includes functions for loading the config and converting it into loan
// calculation inputs.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/spf13/viper"
)

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for loan-schedule.
type Configuration struct {
	Name         string        `yaml:"name,omitempty"`
	Currency     string        `yaml:"currency,omitempty"`
	Loan         Loan          `yaml:"loan"`
	Payments     []float64     `yaml:"payments,omitempty"` // successfully applied payment amounts
	Modification *Modification `yaml:"modification,omitempty"`
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Any key may be overridden from the environment with
// the LOAN_SCHEDULE_ prefix, e.g. LOAN_SCHEDULE_LOAN_INTERESTRATE.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("currency", constants.DefaultCurrency)
	v.SetDefault("output.format", constants.OutputFormatPretty)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}
