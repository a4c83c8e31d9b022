// Package config loads the optional maichart.hcl file.
//
// The file is plain HCL. Expressions can read the process environment through
// the `env` object and use a few string functions, for example:
//
//	model        = "gemini-2.5-pro"
//	chart_dir    = "${env.HOME}/charts/new"
//	api_base_url = env.GEMINI_PROXY
//	log_level    = lower("WARN")
//
// Every attribute is optional; unset values keep the application defaults.
package config
