package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	LOGGING_LEVEL         = "logging.level"
	LOGGING_WRITE_IN_FILE = "logging.write_in_file"
	LOGGING_FILE_PATH     = "logging.file_path"
	HTTP_PROXY            = "http.proxy"
	HTTP_TIMEOUT          = "http.timeout"
	RUNTIME_BASE_URL      = "runtime.base_url"
	RUNTIME_HUB_URL       = "runtime.hub_url"
	RUNTIME_TOKEN         = "runtime.token"
	RUNTIME_RATE_LIMIT    = "runtime.rate_limit"
	RUNTIME_INFO_TTL      = "runtime.model_info_ttl"
	DEFAULTS_TEXT         = "defaults.text"
	DEFAULTS_IMAGE        = "defaults.image"
	DEFAULTS_AUDIO        = "defaults.audio"
	CONSOLE_LANGUAGE      = "console.language"
)

type Config struct {
	k *koanf.Koanf
}

// Load builds the config from defaults, an optional toml file and
// INFERHUB_* environment variables, in that precedence order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		LOGGING_LEVEL:         "info",
		LOGGING_WRITE_IN_FILE: false,
		LOGGING_FILE_PATH:     "inferhub.log",
		HTTP_PROXY:            "",
		HTTP_TIMEOUT:          3 * time.Minute,
		RUNTIME_BASE_URL:      "https://api-inference.huggingface.co",
		RUNTIME_HUB_URL:       "https://huggingface.co",
		RUNTIME_TOKEN:         "",
		RUNTIME_RATE_LIMIT:    2.0,
		RUNTIME_INFO_TTL:      10 * time.Minute,
		DEFAULTS_TEXT:         "DistilBERT Sentiment (SST-2)",
		DEFAULTS_IMAGE:        "ViT Base Image Classifier",
		DEFAULTS_AUDIO:        "Whisper Tiny (EN) ASR",
		CONSOLE_LANGUAGE:      "en",
	}

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// only the first underscore separates section from key, the rest
	// belong to the key itself (INFERHUB_LOGGING_WRITE_IN_FILE)
	err := k.Load(env.Provider("INFERHUB_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "INFERHUB_")), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env config: %w", err)
	}

	return &Config{k: k}, nil
}

func (c *Config) Log() LoggingConfig {
	var cfg LoggingConfig
	_ = c.k.Unmarshal("logging", &cfg)
	return cfg
}

func (c *Config) HTTP() HTTPConfig {
	var cfg HTTPConfig
	_ = c.k.Unmarshal("http", &cfg)
	return cfg
}

func (c *Config) Runtime() RuntimeConfig {
	var cfg RuntimeConfig
	_ = c.k.Unmarshal("runtime", &cfg)
	return cfg
}

func (c *Config) Defaults() DefaultsConfig {
	var cfg DefaultsConfig
	_ = c.k.Unmarshal("defaults", &cfg)
	return cfg
}

func (c *Config) Console() ConsoleConfig {
	var cfg ConsoleConfig
	_ = c.k.Unmarshal("console", &cfg)
	return cfg
}
