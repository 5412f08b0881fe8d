// Package seqconfig provides TOML-backed configuration for the tunables
// the core library leaves to a caller-supplied value: the default
// approximate-search band, the sentinel base for suffix-tree insertion,
// and the kernel weight function to use. Load-with-fallback-to-defaults
// follows the teacher's pkg/config shape.
package seqconfig

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds every tunable a caller building on top of the tree
// packages might want to externalize instead of hard-coding.
type Config struct {
	DefaultMaxDistance    float64 `toml:"default_max_distance"`
	DefaultDiagonalMargin int     `toml:"default_diagonal_margin"`
	SentinelBase          int     `toml:"sentinel_base"`
	KernelWeightKind      string  `toml:"kernel_weight_kind"` // "sum" or "exp"
	KernelLambda          float64 `toml:"kernel_lambda"`
}

// DefaultConfig returns a Config with values that reproduce the core
// library's implicit defaults: an unbanded approximate search bounded only
// by distance, and the Sum kernel weight.
func DefaultConfig() *Config {
	return &Config{
		DefaultMaxDistance:    2.0,
		DefaultDiagonalMargin: -1,
		SentinelBase:          0x10FFFF,
		KernelWeightKind:      "sum",
		KernelLambda:          1.0,
	}
}

// FileExists reports whether path names an existing file or directory.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dirPath, and any missing parents, if it doesn't exist.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// LoadConfig reads a TOML file into a fresh DefaultConfig, so any field the
// file omits keeps its default value.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to configPath as TOML.
func SaveConfig(config *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("seqconfig: failed to create %s: %v", configPath, err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(config)
}

// InitConfig loads configPath, creating it with DefaultConfig's values if
// it doesn't exist yet, and falling back to built-in defaults (without
// touching disk) if the directory can't be created or the file can't be
// parsed.
func InitConfig(configPath string) (*Config, error) {
	dir := filepath.Dir(configPath)
	if err := EnsureDir(dir); err != nil {
		log.Warnf("seqconfig: failed to create %s: %v. Using built-in defaults.", dir, err)
		return DefaultConfig(), nil
	}

	if !FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("seqconfig: failed to write default config to %s: %v. Using built-in defaults.", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("seqconfig: created default config at %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("seqconfig: failed to load %s: %v. Using built-in defaults.", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}
