package common

import "path/filepath"

// UnknownStr is the display name of values outside a known enumeration.
const UnknownStr = "unknown"

// RelSlash returns target relative to base using forward slashes.
// Both paths are cleaned first.
func RelSlash(base, target string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}
