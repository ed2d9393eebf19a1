//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools are declared in the go.mod tool block:
// - github.com/matryer/moq (mocks behind //go:generate)
// - github.com/pressly/goose/v3/cmd/goose (migrations/)
