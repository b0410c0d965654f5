//go:build !mobile

// Package mobile is the ebitenmobile binding entry point. Desktop builds
// only get this stub; see mobile.go (built with -tags mobile).
package mobile

// Dummy is an exported no-op so the package builds without -tags mobile.
func Dummy() {}
