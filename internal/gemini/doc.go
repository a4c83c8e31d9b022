// Package gemini adapts the Google Gen AI SDK to the two calls a session
// makes: a cheap capability probe, and one streaming generation request.
//
// Responses are exposed as a Stream, a pull iterator that ends with io.EOF,
// so consumers can drain it in a plain loop and tests can substitute a
// finite fake.
package gemini
