/*
Package config manages TOML config for the beesolve pipeline.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/beesolve/internal/utils"
	"github.com/bastiangx/beesolve/pkg/classifier"
	"github.com/bastiangx/beesolve/pkg/phonotactic"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Solver      SolverConfig      `toml:"solver"`
	Rejection   RejectionConfig   `toml:"rejection"`
	Phonotactic PhonotacticConfig `toml:"phonotactic"`
	Data        DataConfig        `toml:"data"`
}

// SolverConfig has pipeline-wide options.
type SolverConfig struct {
	MinWordLength     int     `toml:"min_word_length"`
	EnablePhonotactic bool    `toml:"enable_phonotactic"`
	MinConfidence     float64 `toml:"min_confidence"`
}

// RejectionConfig holds the blacklist tiers and penalty factors.
// Empirically tuned defaults from one historical dataset; treat as
// configuration, not invariants.
type RejectionConfig struct {
	LightThreshold   int     `toml:"light_threshold"`
	HeavyThreshold   int     `toml:"heavy_threshold"`
	InstantThreshold int     `toml:"instant_threshold"`
	LightMultiplier  float64 `toml:"light_multiplier"`
	HeavyMultiplier  float64 `toml:"heavy_multiplier"`
}

// PhonotacticConfig toggles the sequence-plausibility rules.
type PhonotacticConfig struct {
	TripleLetter      bool `toml:"triple_letter"`
	ImpossibleDoubles bool `toml:"impossible_doubles"`
	InitialCluster    bool `toml:"initial_cluster"`
	RunLength         bool `toml:"run_length"`
	MaxConsonantRun   int  `toml:"max_consonant_run"`
	MaxVowelRun       int  `toml:"max_vowel_run"`
}

// DataConfig points at the read-only reference files.
type DataConfig struct {
	DictionaryPath string `toml:"dictionary_path"`
	HistoryPath    string `toml:"history_path"`
	LexiconPath    string `toml:"lexicon_path"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "beesolve")
	if err := utils.EnsureDir(primaryPath); err == nil {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "beesolve")
	if err := utils.EnsureDir(macOSPath); err == nil {
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
// 2. Default path: [UserConfigDir]/beesolve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			MinWordLength:     4,
			EnablePhonotactic: true,
			MinConfidence:     0,
		},
		Rejection: RejectionConfig{
			LightThreshold:   3,
			HeavyThreshold:   5,
			InstantThreshold: 10,
			LightMultiplier:  0.8,
			HeavyMultiplier:  0.6,
		},
		Phonotactic: PhonotacticConfig{
			TripleLetter:      true,
			ImpossibleDoubles: true,
			InitialCluster:    true,
			RunLength:         true,
			MaxConsonantRun:   4,
			MaxVowelRun:       3,
		},
		Data: DataConfig{
			DictionaryPath: "data/words.txt",
			HistoryPath:    "data/history.msgpack",
			LexiconPath:    "data/lexicon.toml",
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

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if solverSection, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(solverSection, &config.Solver)
	}
	if rejectionSection, ok := utils.ExtractSection(tempConfig, "rejection"); ok {
		extractRejectionConfig(rejectionSection, &config.Rejection)
	}
	if phonoSection, ok := utils.ExtractSection(tempConfig, "phonotactic"); ok {
		extractPhonotacticConfig(phonoSection, &config.Phonotactic)
	}
	if dataSection, ok := utils.ExtractSection(tempConfig, "data"); ok {
		extractDataConfig(dataSection, &config.Data)
	}
	return config, nil
}

// extractSolverConfig extracts solver configuration from a map
func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractInt64(data, "min_word_length"); ok {
		solver.MinWordLength = val
	}
	if val, ok := utils.ExtractBool(data, "enable_phonotactic"); ok {
		solver.EnablePhonotactic = val
	}
	if val, ok := utils.ExtractFloat64(data, "min_confidence"); ok {
		solver.MinConfidence = val
	}
}

// extractRejectionConfig extracts the blacklist tier configuration from a map
func extractRejectionConfig(data map[string]any, rejection *RejectionConfig) {
	if val, ok := utils.ExtractInt64(data, "light_threshold"); ok {
		rejection.LightThreshold = val
	}
	if val, ok := utils.ExtractInt64(data, "heavy_threshold"); ok {
		rejection.HeavyThreshold = val
	}
	if val, ok := utils.ExtractInt64(data, "instant_threshold"); ok {
		rejection.InstantThreshold = val
	}
	if val, ok := utils.ExtractFloat64(data, "light_multiplier"); ok {
		rejection.LightMultiplier = val
	}
	if val, ok := utils.ExtractFloat64(data, "heavy_multiplier"); ok {
		rejection.HeavyMultiplier = val
	}
}

// extractPhonotacticConfig extracts the rule toggles from a map
func extractPhonotacticConfig(data map[string]any, phono *PhonotacticConfig) {
	if val, ok := utils.ExtractBool(data, "triple_letter"); ok {
		phono.TripleLetter = val
	}
	if val, ok := utils.ExtractBool(data, "impossible_doubles"); ok {
		phono.ImpossibleDoubles = val
	}
	if val, ok := utils.ExtractBool(data, "initial_cluster"); ok {
		phono.InitialCluster = val
	}
	if val, ok := utils.ExtractBool(data, "run_length"); ok {
		phono.RunLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_consonant_run"); ok {
		phono.MaxConsonantRun = val
	}
	if val, ok := utils.ExtractInt64(data, "max_vowel_run"); ok {
		phono.MaxVowelRun = val
	}
}

// extractDataConfig extracts reference data paths from a map
func extractDataConfig(data map[string]any, d *DataConfig) {
	if val, ok := data["dictionary_path"].(string); ok {
		d.DictionaryPath = val
	}
	if val, ok := data["history_path"].(string); ok {
		d.HistoryPath = val
	}
	if val, ok := data["lexicon_path"].(string); ok {
		d.LexiconPath = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Thresholds converts the rejection section into classifier tiers.
func (c *Config) Thresholds() classifier.Thresholds {
	return classifier.Thresholds{
		Light:   c.Rejection.LightThreshold,
		Heavy:   c.Rejection.HeavyThreshold,
		Instant: c.Rejection.InstantThreshold,
	}
}

// Multipliers converts the rejection section into penalty factors.
func (c *Config) Multipliers() classifier.Multipliers {
	return classifier.Multipliers{
		Light: c.Rejection.LightMultiplier,
		Heavy: c.Rejection.HeavyMultiplier,
	}
}

// RuleConfig converts the phonotactic section into a filter config.
func (c *Config) RuleConfig() phonotactic.RuleConfig {
	return phonotactic.RuleConfig{
		TripleLetter:      c.Phonotactic.TripleLetter,
		ImpossibleDoubles: c.Phonotactic.ImpossibleDoubles,
		InitialCluster:    c.Phonotactic.InitialCluster,
		RunLength:         c.Phonotactic.RunLength,
		MaxConsonantRun:   c.Phonotactic.MaxConsonantRun,
		MaxVowelRun:       c.Phonotactic.MaxVowelRun,
	}
}
