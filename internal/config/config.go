package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"pantrydash/internal/model"
)

// AppConfig application configuration
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig HTTP server configuration
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig data root configuration. The month folders (NOV/DEC/JAN)
// live directly under this directory.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig business constants
type BusinessConfig struct {
	TopProducts int `toml:"top_products"`
	// RetentionOverrides month tag -> fixed retention rate (%). These are
	// business-supplied values, not derived from the order KPIs.
	RetentionOverrides map[string]float64 `toml:"retention_overrides"`
}

// LoadConfigInfo configuration load metadata
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20418,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			TopProducts: 10,
			RetentionOverrides: map[string]float64{
				string(model.MonthDec): 12.2,
				string(model.MonthJan): 16.0,
			},
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir directory of the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml from the executable's directory and
// returns load metadata. A missing file yields the defaults.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config)

	return config, info, nil
}

// LoadConfig loads config.toml next to the executable.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("PANTRYDASH_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
}

// ResolveDataDir absolute data root: relative paths resolve against the
// executable's directory, never the process working directory.
func ResolveDataDir(config *AppConfig) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return config.Data.DataDir
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir)
}

// RetentionOverrides converts the configured override map onto month tags,
// dropping entries with unknown tags.
func RetentionOverrides(config *AppConfig) map[model.MonthTag]float64 {
	out := make(map[model.MonthTag]float64, len(config.Business.RetentionOverrides))
	for tag, value := range config.Business.RetentionOverrides {
		if month, ok := model.ParseMonth(tag); ok {
			out[month] = value
		}
	}
	return out
}
