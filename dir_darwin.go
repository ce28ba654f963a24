// Copyright (c) 2025 BVK Chaitanya

//go:build darwin

package flog

import (
	"os"
	"path/filepath"
)

func defaultLogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Logs", logDirAppName), nil
}
