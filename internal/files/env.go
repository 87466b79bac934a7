package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the data directory used when OUTPUT_DIR is unset,
	// resolved against the working directory.
	DefaultDirName = "data"

	// DataDirEnv overrides where collection.json and rclone.conf live.
	DataDirEnv = "OUTPUT_DIR"
)

// ResolveBasePath determines where curtaincall keeps its catalog, defaulting
// to ./data. The location can be overridden by exporting OUTPUT_DIR.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(DataDirEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}
	return filepath.Abs(DefaultDirName)
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
