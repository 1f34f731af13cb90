// Package internal contains test helpers for ctest.
package internal

// RunAction is used only in unit tests, but exported because it has to be in a separate package
// for its frames to survive stacktrace filtering.
func RunAction(action func()) {
	action()
}
