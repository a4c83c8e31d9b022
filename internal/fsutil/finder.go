// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
)

// IsRegularFile reports whether path names an existing regular file. Any stat
// failure, including permission errors, counts as "no".
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ResolveAsset returns name unchanged when it is absolute. Otherwise it is
// resolved against the directory of the running executable, falling back to
// the working directory when that cannot be determined.
func ResolveAsset(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	candidate := filepath.Join(filepath.Dir(exe), name)
	if IsRegularFile(candidate) {
		return candidate
	}
	return name
}
