// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/iwvelando/income-explorer/pkg/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for income-explorer.
type Configuration struct {
	Data     DataConfig     `yaml:"data,omitempty"`
	Explorer ExplorerConfig `yaml:"explorer,omitempty"`
	Rates    RatesConfig    `yaml:"rates,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
}

// DataConfig locates the WID CSV tables.
type DataConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// ExplorerConfig holds default selection values.
type ExplorerConfig struct {
	Country  string `yaml:"country,omitempty"`
	Variable string `yaml:"variable,omitempty"`
	Group    string `yaml:"group,omitempty"`
}

// RatesConfig holds the exchange-rate provider settings.
type RatesConfig struct {
	URL            string `yaml:"url,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the web UI settings.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults without error so
// the explorer runs out of the box next to a data directory.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return decodeConfiguration(v)
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decodeConfiguration(v)
}

func decodeConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// YAML serializes the effective configuration, defaults included, for
// display and export.
func (c *Configuration) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize configuration: %w", err)
	}
	return data, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", constants.DefaultDataDir)
	v.SetDefault("explorer.country", constants.DefaultCountry)
	v.SetDefault("explorer.variable", constants.DefaultVariable)
	v.SetDefault("explorer.group", constants.DefaultGroup)
	v.SetDefault("rates.url", constants.DefaultRateProviderURL)
	v.SetDefault("rates.timeoutSeconds", constants.DefaultRateTimeoutSeconds)
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("server.address", constants.DefaultServerAddress)
}
