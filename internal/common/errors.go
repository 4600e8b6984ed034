// Package common defines shared constants and sentinel errors used across
// BookApp client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenMissing = errors.New("token missing")

	// Input errors.
	ErrEmptyInput = errors.New("empty input")
)
