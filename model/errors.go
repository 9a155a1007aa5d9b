// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrMalformed indicates a document that cannot be parsed at all.
	ErrMalformed = errors.New("model: malformed document")

	// ErrMissingField indicates that "matrix" or "initialVector" is absent.
	ErrMissingField = errors.New("model: missing required field")

	// ErrInvalidSize indicates a state count that is not an integer in
	// [validate.MinStates, validate.MaxStates] after the size fallback chain.
	ErrInvalidSize = errors.New("model: invalid model size")

	// ErrInvalid is matched by every Validate failure that has no more specific class.
	ErrInvalid = errors.New("model: invalid model")
)
