package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigFile is the optional config file name looked up in the config dir
const ConfigFile = "astrophage.json"

// EnvPrefix prefixes environment overrides, e.g. ASTROPHAGE_ADDR
const EnvPrefix = "ASTROPHAGE"

// Config holds static server settings
type Config struct {
	Addr      string `json:"addr" mapstructure:"addr"`
	PublicDir string `json:"publicDir" mapstructure:"publicDir"`
	IndexFile string `json:"indexFile" mapstructure:"indexFile"`
	LogLevel  string `json:"logLevel" mapstructure:"logLevel"`
	NoCache   bool   `json:"noCache" mapstructure:"noCache"`
}

// LoadConfig reads configDir/astrophage.json over the defaults, then applies
// environment overrides. A missing file is not an error.
func LoadConfig(configDir string) (Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("addr", ":3000")
	v.SetDefault("publicDir", "public")
	v.SetDefault("indexFile", "index.html")
	v.SetDefault("logLevel", "info")
	v.SetDefault("noCache", true)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	path := filepath.Join(configDir, ConfigFile)
	switch _, err := os.Stat(path); {
	case err == nil:
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}
