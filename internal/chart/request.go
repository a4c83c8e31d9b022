package chart

import (
	_ "embed"
	"path/filepath"
)

const (
	// TrackFile is the input audio every chart directory must contain.
	TrackFile = "track.mp3"
	// OutputFile is the generated chart written into the chart directory.
	OutputFile = "maidata.txt"

	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-pro"
	// ThinkingBudget caps the model's internal reasoning tokens per request.
	ThinkingBudget int32 = 128

	// AudioMIMEType tags both audio parts of a request.
	AudioMIMEType = "audio/mp3"
)

//go:embed assets/gen.prompt.md
var instructions string

// Instructions returns the embedded instructional prompt.
func Instructions() string {
	return instructions
}

// TrackPath returns the input track path inside dir.
func TrackPath(dir string) string {
	return filepath.Join(dir, TrackFile)
}

// OutputPath returns the chart path inside dir.
func OutputPath(dir string) string {
	return filepath.Join(dir, OutputFile)
}

// Part is one piece of a request: either Text, or Data tagged with MIMEType.
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
}

// IsText reports whether the part carries text rather than binary data.
func (p Part) IsText() bool {
	return p.MIMEType == ""
}

// Request is a fully assembled generation request. It is built once per run
// and must not be modified afterwards.
type Request struct {
	Model          string
	ThinkingBudget int32
	Parts          []Part
}
