// Package testutil holds the fakes and fixtures shared by the package tests:
// a thread-safe log buffer, logger contexts, chart directory fixtures, a
// scripted prompter, a fake Gemini service and a recording progress sink.
//
// Set MAICHART_TEST_LOGS=true to dump captured logs at the end of each test.
package testutil
