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

package array

import (
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/size"
)

// SArray is an immutable array.
// Its elements are set at construction and never modified afterward:
// operations on an SArray return new values.
//
// The zero value is not a valid array. Use one of the constructors.
type SArray[T any] struct {
	size size.Size
	data []T
}

var _ Array[float32] = SArray[float32]{}

// NewSArray returns an immutable array given its elements in column-major order.
// It returns errs.ErrLengthMismatch if the number of elements does not match the size.
func NewSArray[T any](sz size.Size, flat []T) (SArray[T], error) {
	if err := checkLength(flat, sz); err != nil {
		return SArray[T]{}, err
	}
	return SArray[T]{size: sz, data: append([]T{}, flat...)}, nil
}

// SVector returns an immutable vector of the given elements.
func SVector[T any](elems ...T) SArray[T] {
	return SArray[T]{
		size: size.Must(len(elems)),
		data: append([]T{}, elems...),
	}
}

// SMatrix returns an immutable matrix given its elements in column-major order.
func SMatrix[T any](rows, cols int, elems ...T) (SArray[T], error) {
	sz, err := size.Of(rows, cols)
	if err != nil {
		return SArray[T]{}, err
	}
	return NewSArray(sz, elems)
}

// NewScalar returns an immutable rank 0 array holding a single value.
func NewScalar[T any](v T) SArray[T] {
	return SArray[T]{size: size.Scalar(), data: []T{v}}
}

// Size of the array.
func (a SArray[T]) Size() size.Size {
	return a.size
}

// Kind of the array.
func (SArray[T]) Kind() Kind {
	return ValueKind
}

// Len returns the number of elements in the array.
func (a SArray[T]) Len() int {
	return len(a.data)
}

// At returns the element at a linear index.
func (a SArray[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(a.data), a.size); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Get returns the element at a linear index without checking bounds.
func (a SArray[T]) Get(i int) T {
	return a.data[i]
}

// Flat returns a copy of the elements.
func (a SArray[T]) Flat() []T {
	return append([]T{}, a.data...)
}

// Shape returns the extent of each axis.
func (a SArray[T]) Shape() []int {
	return a.size.Dims()
}

// Value returns the single element of a rank 0 array.
func (a SArray[T]) Value() (T, error) {
	if a.size.Rank() != 0 {
		var zero T
		return zero, errs.Errorf(errs.ErrRankMismatch, "array of size %s is not a scalar", a.size)
	}
	return a.data[0], nil
}

// String representation of the array.
func (a SArray[T]) String() string {
	return formatArray(a.Kind(), a.data, a.size)
}
