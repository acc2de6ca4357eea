package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateInputFile(kind, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s file is required", kind)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", kind, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", kind, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", kind, abs)
	}

	return nil
}
