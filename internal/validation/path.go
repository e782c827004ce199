package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxPathLength = 4096

// ErrBadPath classifies paths rejected by CleanPath and FilePath.
var ErrBadPath = errors.New("invalid path")

// CleanPath expands a leading "~/", makes the path absolute and cleans it.
// Empty paths, control characters and "~user" forms are rejected.
func CleanPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrBadPath)
	}
	if len(path) > maxPathLength {
		return "", fmt.Errorf("%w: path too long (max %d characters)", ErrBadPath, maxPathLength)
	}
	for _, r := range path {
		if r < 32 && r != '\t' {
			return "", fmt.Errorf("%w: path contains control characters", ErrBadPath)
		}
	}

	switch {
	case path == "~" || strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	case strings.HasPrefix(path, "~"):
		return "", fmt.Errorf("%w: only ~/ is expanded", ErrBadPath)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot make path absolute: %w", err)
	}
	return filepath.Clean(abs), nil
}

// FilePath is CleanPath for paths that must name a file: an existing
// directory at that location is rejected.
func FilePath(path string) (string, error) {
	clean, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory, not a file", ErrBadPath, clean)
	}
	return clean, nil
}
