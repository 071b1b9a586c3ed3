package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFileContent reads filePath. Relative paths are resolved against repoRoot.
func ReadFileContent(filePath string, repoRoot string) (string, error) {
	fullPath := filePath
	if !filepath.IsAbs(filePath) {
		fullPath = filepath.Join(repoRoot, filePath)
	}
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return string(content), nil
}
