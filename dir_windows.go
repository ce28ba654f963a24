// Copyright (c) 2025 BVK Chaitanya

//go:build windows

package flog

import (
	"fmt"
	"os"
	"path/filepath"
)

func defaultLogDir() (string, error) {
	dir := os.Getenv("LOCALAPPDATA")
	if dir == "" {
		return "", fmt.Errorf("LOCALAPPDATA is not set: %w", os.ErrNotExist)
	}
	return filepath.Join(dir, logDirAppName, "Logs"), nil
}
