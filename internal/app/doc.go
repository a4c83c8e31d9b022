// Package app contains the core application logic. It defines the App
// struct, its configuration, and the generation session it drives, decoupled
// from any specific entrypoint like the CLI.
//
// A session runs four stages in a fixed order: collect operator input, probe
// the Gemini API, assemble the request, and stream the answer into
// maidata.txt. Execute wraps the session in the single failure boundary of
// the program and turns its outcome into an exit code.
package app
