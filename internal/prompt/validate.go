package prompt

import (
	"errors"
	"path/filepath"

	"github.com/vk/maichartgen/internal/chart"
	"github.com/vk/maichartgen/internal/fsutil"
)

var (
	// ErrMissingTrack rejects a chart directory without a track file.
	ErrMissingTrack = errors.New("directory is missing " + chart.TrackFile)
	// ErrKeyRequired rejects an empty API key when the environment has none.
	ErrKeyRequired = errors.New("API key is required")
)

// ValidateChartDir accepts dir iff dir/track.mp3 is a regular file. Every
// other condition yields ErrMissingTrack.
func ValidateChartDir(dir string) error {
	if !fsutil.IsRegularFile(filepath.Join(dir, chart.TrackFile)) {
		return ErrMissingTrack
	}
	return nil
}

// ValidateAPIKey returns a validator that accepts an empty key only when
// envKey is set.
func ValidateAPIKey(envKey string) func(string) error {
	return func(v string) error {
		if v == "" && envKey == "" {
			return ErrKeyRequired
		}
		return nil
	}
}
