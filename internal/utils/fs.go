package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates a directory (and parents) if it does not exist yet.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// GetExecutableDir returns the directory of the running binary.
func GetExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// GetAbsolutePath resolves path to an absolute path, falling back to the
// input when resolution fails.
func GetAbsolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// SaveTOMLFile writes v into a TOML file at path.
func SaveTOMLFile(v any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(v)
}
