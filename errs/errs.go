// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errs defines the errors reported by static arrays.
//
// Functions return one of the sentinels below, usually wrapped with
// github.com/pkg/errors to add context. Callers match them with errors.Is.
package errs

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidShape is returned when an extent is negative or the rank is too large.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrLengthMismatch is returned when a flat sequence does not have the
	// number of elements required by a shape.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrShapeMismatch is returned when two shapes, or a shape and a buffer, disagree.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexOutOfBounds is returned when an index exceeds the extent of its axis.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrRankMismatch is returned when the number of indices does not match the rank.
	ErrRankMismatch = errors.New("rank mismatch")

	// ErrImmutable is returned when mutating an array that does not support it.
	ErrImmutable = errors.New("array is immutable")

	// ErrElemMismatch is returned when a type descriptor and a Go element type disagree.
	ErrElemMismatch = errors.New("element type mismatch")

	// ErrUnknownKind is returned for array kinds missing from the registry.
	ErrUnknownKind = errors.New("unknown array kind")
)

// Errorf wraps a sentinel error with a formatted message.
// The returned error matches the sentinel with errors.Is.
func Errorf(sentinel error, format string, args ...any) error {
	return errors.Wrapf(sentinel, format, args...)
}
