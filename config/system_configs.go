package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/Piyush-Dabare/vikas/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads an optional .env file, then decodes the JSON object in
// the `config` environment variable over the defaults. DATA_SOURCE_URL and
// PORT win over the JSON when set.
func LoadConfigs() (*SystemConfigs, error) {
	_ = godotenv.Load()

	envCfg := model.DefaultEnvConfig()

	if rawJson := os.Getenv("config"); rawJson != "" {
		if err := json.Unmarshal([]byte(rawJson), &envCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if url := strings.TrimSpace(os.Getenv("DATA_SOURCE_URL")); url != "" {
		envCfg.DataSourceUrl = url
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		envCfg.Port = port
	}

	if err := validate(&envCfg); err != nil {
		return nil, err
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

func validate(cfg *model.EnvConfig) error {
	if strings.TrimSpace(cfg.DataSourceUrl) == "" {
		return fmt.Errorf("dataSourceUrl must not be empty")
	}
	if cfg.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("fetchTimeoutSeconds must be positive, got %d", cfg.FetchTimeoutSeconds)
	}
	if cfg.RateLimiter && (cfg.RateLimit <= 0 || cfg.RateBurst <= 0) {
		return fmt.Errorf("rateLimit and rateBurst must be positive when rateLimiter is on")
	}
	return nil
}

// ConfigManager hands the active config to request-time middleware.
type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.EnvConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.EnvConfig {
	return cm.value.Load().(*model.EnvConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.EnvConfig) {
	cm.value.Store(newCfg)
}
