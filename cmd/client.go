package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"fastauth/internal/client"
	"fastauth/internal/config"
	"fastauth/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// StartClient runs the terminal client. configPath may be empty.
func StartClient(configPath string) error {
	if configPath == "" {
		configPath = os.Getenv("FASTAUTH_CONFIG")
	}

	cfg, err := config.NewClient(configPath)
	if err != nil {
		return err
	}

	// the terminal belongs to the UI, logs go to a file
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o700); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := zerolog.New(logFile).With().Timestamp().Str("service", "fastauth-client").Logger()
	logger.Info().Str("api_url", cfg.APIURL).Msg("starting client")

	api := client.New(cfg.APIURL, cfg.Timeout)
	tokens := client.NewTokenStore(cfg.TokenPath)

	m := tui.New(api, tokens, logger, cfg.MessageTTL)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		logger.Error().Err(err).Msg("client stopped")
		return fmt.Errorf("run client: %w", err)
	}

	return nil
}
