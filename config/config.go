package config

import (
	"encoding/json"
	"errors"
	"os"
)

// WordPress holds the credentials for the target site's REST API.
// AppPassword is a WordPress application password, not the login password.
type WordPress struct {
	BaseURL     string `json:"base_url"`
	Username    string `json:"username"`
	AppPassword string `json:"app_password"`
}

// LLM 预留给生成模块的模型配置。
type LLM struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// Config is the full runtime configuration, loaded once at startup and
// injected into the pipeline; nothing reads it ad hoc mid-run.
type Config struct {
	WordPress      WordPress `json:"wordpress"`
	LLM            *LLM      `json:"llm,omitempty"`
	Domains        []string  `json:"domains"`
	Categories     []int     `json:"categories,omitempty"`
	CharsPerLine   int       `json:"chars_per_line,omitempty"`
	BackgroundPath string    `json:"background_path"`
	FontPath       string    `json:"font_path"`
	HistoryPath    string    `json:"history_path,omitempty"`
	ServerAddr     string    `json:"server_addr,omitempty"`
	TriggerSecret  string    `json:"trigger_secret,omitempty"`
}

// Load reads JSON config from disk.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.WordPress.BaseURL == "" || cfg.WordPress.Username == "" || cfg.WordPress.AppPassword == "" {
		return Config{}, errors.New("config must include wordpress.base_url, wordpress.username, and wordpress.app_password")
	}
	if len(cfg.Domains) == 0 {
		return Config{}, errors.New("config must include at least one entry in domains")
	}
	if cfg.BackgroundPath == "" || cfg.FontPath == "" {
		return Config{}, errors.New("config must include background_path and font_path")
	}
	if cfg.CharsPerLine == 0 {
		cfg.CharsPerLine = 30
	}
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = "published-titles.txt"
	}
	return cfg, nil
}
