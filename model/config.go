package model

import "time"

// DefaultDataSourceUrl is the CSV served when no source is configured.
const DefaultDataSourceUrl = "https://raw.githubusercontent.com/VIKASBHOSALE1/API_data/main/Generated_data1.csv"

// --- SYSTEM CONFIG ---
// EnvConfig holds the process settings decoded from the `config` env var.
type EnvConfig struct {
	Host                   string   `json:"host"`
	Port                   string   `json:"port"`
	Environment            string   `json:"environment"`
	DebugMode              bool     `json:"debug"`
	DataSourceUrl          string   `json:"dataSourceUrl"`
	FetchTimeoutSeconds    int      `json:"fetchTimeoutSeconds"`
	FrontendUrls           []string `json:"frontendUrls"`
	RateLimiter            bool     `json:"rateLimiter"`
	RateLimit              float64  `json:"rateLimit"`
	RateBurst              int      `json:"rateBurst"`
	ShutdownTimeoutSeconds int      `json:"shutdownTimeoutSeconds"`
}

func DefaultEnvConfig() EnvConfig {
	return EnvConfig{
		Host:                   "0.0.0.0",
		Port:                   "5003",
		Environment:            "development",
		DataSourceUrl:          DefaultDataSourceUrl,
		FetchTimeoutSeconds:    30,
		FrontendUrls:           []string{"*"},
		RateLimit:              5,
		RateBurst:              15,
		ShutdownTimeoutSeconds: 5,
	}
}

func (c *EnvConfig) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func (c *EnvConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c *EnvConfig) IsProduction() bool {
	return c.Environment == "production"
}
