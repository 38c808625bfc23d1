package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/income-explorer/pkg/constants"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Data.Dir != constants.DefaultDataDir {
		t.Errorf("Data.Dir = %q, expected %q", conf.Data.Dir, constants.DefaultDataDir)
	}
	if conf.Explorer.Country != constants.DefaultCountry {
		t.Errorf("Explorer.Country = %q, expected %q", conf.Explorer.Country, constants.DefaultCountry)
	}
	if conf.Explorer.Group != constants.DefaultGroup {
		t.Errorf("Explorer.Group = %q, expected %q", conf.Explorer.Group, constants.DefaultGroup)
	}
	if conf.Rates.URL != constants.DefaultRateProviderURL {
		t.Errorf("Rates.URL = %q, expected default provider", conf.Rates.URL)
	}
	if conf.Output.Format != constants.OutputFormatPretty {
		t.Errorf("Output.Format = %q, expected pretty", conf.Output.Format)
	}
	if conf.Server.Address != constants.DefaultServerAddress {
		t.Errorf("Server.Address = %q, expected %q", conf.Server.Address, constants.DefaultServerAddress)
	}
}

func TestLoadConfigurationFile(t *testing.T) {
	content := `
data:
  dir: /srv/wid
explorer:
  country: FR
  variable: shwealj992
logging:
  level: debug
  format: console
server:
  address: ":9090"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Data.Dir != "/srv/wid" {
		t.Errorf("Data.Dir = %q, expected /srv/wid", conf.Data.Dir)
	}
	if conf.Explorer.Country != "FR" {
		t.Errorf("Explorer.Country = %q, expected FR", conf.Explorer.Country)
	}
	if conf.Explorer.Variable != "shwealj992" {
		t.Errorf("Explorer.Variable = %q, expected shwealj992", conf.Explorer.Variable)
	}
	// Unset keys keep their defaults.
	if conf.Explorer.Group != constants.DefaultGroup {
		t.Errorf("Explorer.Group = %q, expected default", conf.Explorer.Group)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Server.Address != ":9090" {
		t.Errorf("Server.Address = %q, expected :9090", conf.Server.Address)
	}
}

func TestConfigurationYAML(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := conf.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "dir: "+constants.DefaultDataDir) {
		t.Errorf("YAML() missing data dir:\n%s", out)
	}
	if !strings.Contains(out, "country: "+constants.DefaultCountry) {
		t.Errorf("YAML() missing default country:\n%s", out)
	}
}

func TestLoadConfigurationGarbled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfiguration(path); err == nil {
		t.Error("LoadConfiguration() expected error for garbled YAML, got nil")
	}
}
