package util

import (
	"errors"
	"strings"
)

var errInvalidFileName = errors.New("invalid file name")

var separatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName flattens path separators into underscores and rejects traversal
// patterns, control characters and blank names.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := separatorReplacer.Replace(strings.TrimSpace(name))
	if s == "" {
		return "", errInvalidFileName
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return "", errInvalidFileName
		}
	}
	return s, nil
}
