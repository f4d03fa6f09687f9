package configs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/songzhibin97/solscout/internal/data/collector/dexscreener"
	"github.com/songzhibin97/solscout/internal/data/collector/gmgn"
	"github.com/songzhibin97/solscout/internal/notify"
	"github.com/songzhibin97/solscout/internal/risk"
	"github.com/songzhibin97/solscout/internal/social"
)

const (
	EnvBotToken = "TELEGRAM_BOT_TOKEN"
	EnvChatID   = "TELEGRAM_CHAT_ID"

	// 占位符，运行前必须替换
	PlaceholderBotToken = "your_telegram_bot_token"
	PlaceholderChatID   = "your_chat_id"
)

type Config struct {
	Proxy string `json:"proxy" yaml:"proxy"` // HTTP(S) 代理

	Sources    SourcesConfig  `json:"sources" yaml:"sources"`
	Rugcheck   EndpointConfig `json:"rugcheck" yaml:"rugcheck"`
	Tweetscout EndpointConfig `json:"tweetscout" yaml:"tweetscout"`
	Telegram   TelegramConfig `json:"telegram" yaml:"telegram"`
}

type SourcesConfig struct {
	GMGNURL        string `json:"gmgn_url" yaml:"gmgn_url"`               // GMGN 热门页面
	DexscreenerURL string `json:"dexscreener_url" yaml:"dexscreener_url"` // Dexscreener 热门接口
}

type EndpointConfig struct {
	URL string `json:"url" yaml:"url"`
}

type TelegramConfig struct {
	APIBase  string `json:"api_base" yaml:"api_base"`
	BotToken string `json:"bot_token" yaml:"bot_token"`
	ChatID   string `json:"chat_id" yaml:"chat_id"`
}

// Default returns the built-in endpoints and placeholder credentials.
func Default() *Config {
	return &Config{
		Sources: SourcesConfig{
			GMGNURL:        gmgn.DefaultURL,
			DexscreenerURL: dexscreener.DefaultURL,
		},
		Rugcheck:   EndpointConfig{URL: risk.DefaultRugcheckURL},
		Tweetscout: EndpointConfig{URL: social.DefaultTweetscoutURL},
		Telegram: TelegramConfig{
			APIBase:  notify.DefaultTelegramAPI,
			BotToken: PlaceholderBotToken,
			ChatID:   PlaceholderChatID,
		},
	}
}

// Load layers, in increasing priority: defaults, the config file (json or yaml),
// the env file, and the process environment. Empty paths are skipped.
func Load(path, envFile string) (*Config, error) {
	config := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(raw, config)
		default:
			err = json.Unmarshal(raw, config)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		if vars != nil {
			dotenv = vars
		}
	}

	if v := lookup(EnvBotToken, dotenv); v != "" {
		config.Telegram.BotToken = v
	}
	if v := lookup(EnvChatID, dotenv); v != "" {
		config.Telegram.ChatID = v
	}

	return config, nil
}

func lookup(key string, dotenv map[string]string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return dotenv[key]
}

// HasPlaceholderCredentials reports whether the telegram credentials were never supplied.
func (c *Config) HasPlaceholderCredentials() bool {
	return c.Telegram.BotToken == PlaceholderBotToken || c.Telegram.ChatID == PlaceholderChatID
}
