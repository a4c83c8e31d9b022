// Package prompt collects the operator input a generation session needs: the
// chart directory and the Gemini API key.
//
// Each question is a Field answered through a Prompter. A Prompter keeps
// asking until the Field's validation accepts the answer, and returns
// ErrCancelled when the operator aborts. TeaPrompter is the terminal
// implementation built on Bubble Tea.
package prompt
