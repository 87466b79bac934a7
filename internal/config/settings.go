package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/faizmokh/curtaincall/internal/files"
)

const (
	DefaultAPIURL  = "https://encora.it/api/collection"
	DefaultPerPage = 500
	DefaultRemote  = "Musicals"
)

// ErrMissingAPIKey is returned when an export is attempted without ENCORA_API_KEY.
var ErrMissingAPIKey = errors.New("ENCORA_API_KEY is not set")

// Settings holds every configurable value.
type Settings struct {
	DataDir      string
	APIKey       string
	APIURL       string
	PerPage      int
	Remote       string
	RcloneConfig string
}

// Load reads envFile (ignored when missing) and resolves settings from the
// environment. A non-empty dataDir overrides OUTPUT_DIR.
func Load(envFile, dataDir string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	manager, err := files.NewManager(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}

	settings := &Settings{
		DataDir:      manager.BasePath(),
		APIKey:       strings.TrimSpace(os.Getenv("ENCORA_API_KEY")),
		APIURL:       lookup("ENCORA_API_URL", DefaultAPIURL),
		PerPage:      DefaultPerPage,
		Remote:       lookup("RCLONE_REMOTE", DefaultRemote),
		RcloneConfig: lookup("RCLONE_CONFIG", manager.RcloneConfigPath()),
	}

	if raw := strings.TrimSpace(os.Getenv("ENCORA_PER_PAGE")); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage <= 0 {
			return nil, fmt.Errorf("invalid ENCORA_PER_PAGE %q (expected a positive integer)", raw)
		}
		settings.PerPage = perPage
	}

	if !filepath.IsAbs(settings.RcloneConfig) {
		abs, err := filepath.Abs(settings.RcloneConfig)
		if err != nil {
			return nil, err
		}
		settings.RcloneConfig = abs
	}

	return settings, nil
}

// Manager returns a files.Manager rooted at the configured data directory.
func (s *Settings) Manager() (*files.Manager, error) {
	return files.NewManager(s.DataDir)
}

// ValidateExport checks the settings needed by the exporter.
func (s *Settings) ValidateExport() error {
	if s.APIKey == "" {
		return ErrMissingAPIKey
	}
	if s.Remote == "" {
		return errors.New("RCLONE_REMOTE is empty")
	}
	return nil
}

func lookup(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
