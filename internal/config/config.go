package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/maichartgen/internal/ctxlog"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "maichart.hcl"

// File mirrors the attributes of a config file.
type File struct {
	Model          string `hcl:"model,optional"`
	ChartDir       string `hcl:"chart_dir,optional"`
	ReferenceAudio string `hcl:"reference_audio,optional"`
	APIBaseURL     string `hcl:"api_base_url,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	LogFormat      string `hcl:"log_format,optional"`
}

// Load reads the file at path. When the file does not exist Load returns an
// empty File, unless required is set.
func Load(ctx context.Context, path string, required bool) (*File, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			logger.Debug("No config file, using defaults.", "path", path)
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(src, path, os.Environ())
	if err != nil {
		return nil, err
	}
	logger.Debug("Config file loaded.", "path", path)
	return f, nil
}

// Parse decodes HCL source. environ is exposed to expressions as `env`.
func Parse(src []byte, filename string, environ []string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	var f File
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(environ), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}
	return &f, nil
}

func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" || !validIdentifier(name) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"coalesce":  stdlib.CoalesceFunc,
			"lower":     stdlib.LowerFunc,
			"upper":     stdlib.UpperFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

// validIdentifier keeps only names reachable as env.NAME.
func validIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}
