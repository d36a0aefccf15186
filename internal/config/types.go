package config

import (
	"os"
	"strings"
	"time"
)

type LoggingConfig struct {
	LogLevel    string `koanf:"level"`
	WriteInFile bool   `koanf:"write_in_file"`
	FilePath    string `koanf:"file_path"`
}

func (c LoggingConfig) Level() string {
	return strings.ToLower(c.LogLevel)
}

func (c LoggingConfig) IsDebug() bool {
	return c.Level() == "debug" || c.Level() == "trace"
}

type HTTPConfig struct {
	Proxy   string        `koanf:"proxy"`
	Timeout time.Duration `koanf:"timeout"`
}

func (c HTTPConfig) GetProxy() string {
	if c.Proxy != "" {
		return c.Proxy
	}
	for _, key := range []string{"HTTPS_PROXY", "https_proxy", "HTTP_PROXY", "http_proxy"} {
		if proxyURL := os.Getenv(key); proxyURL != "" {
			return proxyURL
		}
	}
	return ""
}

// RuntimeConfig describes the hosted inference endpoint the handlers talk
// to. The endpoint is opaque: raw input in, task-shaped JSON out.
type RuntimeConfig struct {
	BaseURL      string        `koanf:"base_url"`
	HubURL       string        `koanf:"hub_url"`
	Token        string        `koanf:"token"`
	RateLimit    float64       `koanf:"rate_limit"`
	ModelInfoTTL time.Duration `koanf:"model_info_ttl"`
}

// DefaultsConfig holds the preselected model display name per modality.
type DefaultsConfig struct {
	Text  string `koanf:"text"`
	Image string `koanf:"image"`
	Audio string `koanf:"audio"`
}

type ConsoleConfig struct {
	Language string `koanf:"language"`
}
