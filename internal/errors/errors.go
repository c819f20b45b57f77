// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines the failure conditions callers can inspect with
// errors.Is() and errors.As(), plus structured types that keep input context.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedInput indicates a FEN string, square name or request that
	// cannot be parsed. It is fatal to the call and never retried.
	ErrMalformedInput = errors.New("malformed input")

	// ErrIllegalMove indicates a move that does not resolve to any legal
	// move in the given position. Callers should re-prompt for input.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates SAN text that matches more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidConfig indicates inconsistent command-line or environment settings.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError describes which FEN field failed to parse.
type FENError struct {
	Err   error  // The underlying error
	FEN   string // The full FEN string (if known)
	Field string // Field name, e.g. "placement" or "castling"
	Value string // The offending text
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Field, e.Value))
		} else {
			parts = append(parts, e.Field)
		}
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in FEN %q", e.FEN))
	}

	context := strings.Join(parts, " ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "invalid FEN"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MoveError wraps a move rejection with the move text and position.
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move as given by the caller
	FEN      string // Position the move was tried in
}

// Error returns a formatted error message.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %q", e.MoveText)
	if e.FEN != "" {
		msg += fmt.Sprintf(" in %q", e.FEN)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
