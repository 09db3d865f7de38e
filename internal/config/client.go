package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const clientEnvPrefix = "FASTAUTH"

// Client holds the settings of the terminal client.
type Client struct {
	APIURL     string
	TokenPath  string
	LogPath    string
	MessageTTL time.Duration
	Timeout    time.Duration
}

// NewClient reads the client settings from an optional YAML file, overridable with FASTAUTH_* variables.
func NewClient(path string) (Client, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	stateDir := filepath.Join(home, ".fastauth")

	v := viper.New()
	v.SetEnvPrefix(clientEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_url", "http://localhost:5000")
	v.SetDefault("token_path", filepath.Join(stateDir, "token"))
	v.SetDefault("log_path", filepath.Join(stateDir, "client.log"))
	v.SetDefault("message_ttl", 2*time.Second)
	v.SetDefault("timeout", 10*time.Second)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Client{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Client{
		APIURL:     strings.TrimRight(v.GetString("api_url"), "/"),
		TokenPath:  v.GetString("token_path"),
		LogPath:    v.GetString("log_path"),
		MessageTTL: v.GetDuration("message_ttl"),
		Timeout:    v.GetDuration("timeout"),
	}
	if cfg.MessageTTL <= 0 {
		cfg.MessageTTL = 2 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return cfg, nil
}
