package config

import (
	"os"
	"path/filepath"

	"github.com/sungur/bowerbridge/internal/log"
	"gopkg.in/yaml.v3"
)

// Config file search paths (in order of precedence within the project scope).
var projectConfigFiles = []string{"bowerbridge.yaml", "bowerbridge.yml", ".bowerbridgerc"}

// globalConfigPath returns the global config file path (~/.bowerbridge/config.yaml).
func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bowerbridge", "config.yaml")
}

// LoadConfig loads and merges bowerbridge configuration from global and project config files.
//
// Precedence (later overrides earlier):
//  1. Global config (~/.bowerbridge/config.yaml)
//  2. Project config (bowerbridge.yaml, bowerbridge.yml, .bowerbridgerc in projectPath)
//  3. Environment (see ApplyEnv)
//
// CLI flags should be applied on top of the returned config by the caller.
func LoadConfig(projectPath string) BridgeConfig {
	globalCfg := loadGlobalConfig()
	projectCfg := loadProjectConfig(projectPath)
	cfg := mergeConfigs(globalCfg, projectCfg)
	ApplyEnv(&cfg)
	return cfg
}

func loadProjectConfig(projectPath string) *BridgeConfig {
	for _, filename := range projectConfigFiles {
		configPath := filepath.Join(projectPath, filename)
		cfg := loadConfigFile(configPath)
		if cfg != nil {
			log.Debugf("Loaded project config: %s", configPath)
			return cfg
		}
	}
	return nil
}

func loadGlobalConfig() *BridgeConfig {
	path := globalConfigPath()
	if path == "" {
		return nil
	}
	cfg := loadConfigFile(path)
	if cfg != nil {
		log.Debugf("Loaded global config: %s", path)
	}
	return cfg
}

// loadConfigFile reads and parses a single config file.
// Returns nil if the file does not exist or cannot be parsed.
func loadConfigFile(path string) *BridgeConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var cfg BridgeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warnf("Ignoring invalid config %s: %v", path, err)
		return nil
	}
	return &cfg
}

// mergeConfigs merges multiple configs with later values taking precedence.
// nil configs are skipped.
func mergeConfigs(configs ...*BridgeConfig) BridgeConfig {
	result := BridgeConfig{}

	for _, cfg := range configs {
		if cfg == nil {
			continue
		}

		if cfg.Executable != "" {
			result.Executable = cfg.Executable
		}
		if cfg.Fallback != "" {
			result.Fallback = cfg.Fallback
		}
		if cfg.VendorDir != "" {
			result.VendorDir = cfg.VendorDir
		}
		if cfg.UpdateRepo != "" {
			result.UpdateRepo = cfg.UpdateRepo
		}
		if cfg.DevMode != nil {
			result.DevMode = cfg.DevMode
		}
		if cfg.Quiet != nil {
			result.Quiet = cfg.Quiet
		}
		if cfg.Debug > 0 {
			result.Debug = cfg.Debug
		}

		// Env vars: merge (later overrides same keys)
		if cfg.Env != nil {
			if result.Env == nil {
				result.Env = make(map[string]string)
			}
			for k, v := range cfg.Env {
				result.Env[k] = v
			}
		}
	}

	return result
}
