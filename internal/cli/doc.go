// Package cli is responsible for parsing command-line arguments, loading the
// config file and .env, and handling process-level concerns like exit codes.
// It translates flags into the application's configuration and wires the
// real terminal, Gemini and progress collaborators into the app.
package cli
