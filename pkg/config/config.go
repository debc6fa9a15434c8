/*
Package config manages the TOML config for wordgrid.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordgrid/internal/utils"
	"github.com/charmbracelet/log"
)

// AppName names the config and data directories.
const AppName = "wordgrid"

// Config holds the entire config structure
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Dict   DictConfig   `toml:"dict"`
	Board  BoardConfig  `toml:"board"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig has the defaults for a solve.
type SolverConfig struct {
	Language string `toml:"language"`
	Sort     string `toml:"sort"`
	Reverse  bool   `toml:"reverse"`
	Workers  int    `toml:"workers"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path       string `toml:"path"`
	Normalize  bool   `toml:"normalize"`
	IgnoreCase bool   `toml:"ignore_case"`
}

// BoardConfig bounds generated and accepted boards.
type BoardConfig struct {
	Rows    int `toml:"rows"`
	Cols    int `toml:"cols"`
	MaxRows int `toml:"max_rows"`
	MaxCols int `toml:"max_cols"`
}

// ServerConfig has IPC server limits.
type ServerConfig struct {
	MaxLimit      int `toml:"max_limit"`
	MaxBoardCells int `toml:"max_board_cells"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Quiet           bool   `toml:"quiet"`
	ShowMultipliers bool   `toml:"show_multipliers"`
	LogLevel        string `toml:"log_level"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordgrid
// 2. ~/Library/Application Support/wordgrid (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", AppName)
	if utils.WritableDir(primaryPath) {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", AppName)
	if utils.WritableDir(macOSPath) {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/wordgrid/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Language: "en",
			Sort:     "score",
			Reverse:  false,
			Workers:  0,
		},
		Dict: DictConfig{
			Path:       "",
			Normalize:  true,
			IgnoreCase: true,
		},
		Board: BoardConfig{
			Rows:    4,
			Cols:    4,
			MaxRows: 16,
			MaxCols: 16,
		},
		Server: ServerConfig{
			MaxLimit:      500,
			MaxBoardCells: 256,
		},
		CLI: CliConfig{
			Quiet:           false,
			ShowMultipliers: true,
			LogLevel:        "warn",
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse recovers whatever sections still decode as plain tables.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(section, &config.Solver)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "board"); ok {
		extractBoardConfig(section, &config.Board)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractString(data, "language"); ok {
		solver.Language = val
	}
	if val, ok := utils.ExtractString(data, "sort"); ok {
		solver.Sort = val
	}
	if val, ok := utils.ExtractBool(data, "reverse"); ok {
		solver.Reverse = val
	}
	if val, ok := utils.ExtractInt64(data, "workers"); ok {
		solver.Workers = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractBool(data, "normalize"); ok {
		dict.Normalize = val
	}
	if val, ok := utils.ExtractBool(data, "ignore_case"); ok {
		dict.IgnoreCase = val
	}
}

func extractBoardConfig(data map[string]any, board *BoardConfig) {
	if val, ok := utils.ExtractInt64(data, "rows"); ok {
		board.Rows = val
	}
	if val, ok := utils.ExtractInt64(data, "cols"); ok {
		board.Cols = val
	}
	if val, ok := utils.ExtractInt64(data, "max_rows"); ok {
		board.MaxRows = val
	}
	if val, ok := utils.ExtractInt64(data, "max_cols"); ok {
		board.MaxCols = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_board_cells"); ok {
		server.MaxBoardCells = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "quiet"); ok {
		cli.Quiet = val
	}
	if val, ok := utils.ExtractBool(data, "show_multipliers"); ok {
		cli.ShowMultipliers = val
	}
	if val, ok := utils.ExtractString(data, "log_level"); ok {
		cli.LogLevel = val
	}
}

// RebuildConfigFile force creates a new config.toml at the default path
func RebuildConfigFile() (string, error) {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return "", err
	}
	return defaultPath, SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.AbsPath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
