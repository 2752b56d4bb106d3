package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveBase64Image decodes a base64 payload (raw or data URI) into
// uploads/<subdir> and returns the stored path relative to uploads.
func SaveBase64Image(b64 string, subdir string) (string, error) {
	b64 = strings.TrimSpace(b64)
	if b64 == "" {
		return "", fmt.Errorf("empty base64 string")
	}

	ext := ".jpg"
	if strings.HasPrefix(b64, "data:") {
		parts := strings.SplitN(b64, ";base64,", 2)
		if len(parts) == 2 {
			switch strings.TrimPrefix(parts[0], "data:") {
			case "image/png":
				ext = ".png"
			case "image/gif":
				ext = ".gif"
			}
			b64 = parts[1]
		} else if idx := strings.Index(b64, ","); idx >= 0 {
			b64 = b64[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join("uploads", subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}
