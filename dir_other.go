// Copyright (c) 2025 BVK Chaitanya

//go:build !windows && !darwin

package flog

import (
	"os"
	"path/filepath"
)

// defaultLogDir follows the XDG state-directory convention.
func defaultLogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", logDirAppName), nil
}
