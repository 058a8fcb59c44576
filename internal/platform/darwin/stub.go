//go:build !darwin

// Package darwin is a no-op on other platforms; platform.NewProvider
// reports ErrUnsupported when this stub is the only file compiled.
package darwin
