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

// Package array implements arrays with a size fixed at construction.
//
// Three concrete forms share the Array interface:
//   - SArray, an immutable value,
//   - MArray, a mutable array owning its storage,
//   - Sized, a mutable view with a fixed size over a buffer owned by the caller.
//
// Shape-changing operations return a Dynamic array when the size of the result
// cannot be known from the size of the operands.
//
// Elements are stored in column-major order: the first axis varies fastest.
// Linear indices are 0-based.
//
// Arrays do not synchronize access. SArray values can be shared by concurrent
// readers. MArray, Sized and Dynamic arrays require external synchronization.
package array

import (
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/fmt/fmtarray"
	"github.com/gx-org/staticarrays/size"
	"go.uber.org/multierr"
)

type (
	// Array is an array with a size fixed at construction.
	Array[T any] interface {
		// Size returns the size of the array.
		Size() size.Size

		// Kind returns the concrete form of the array.
		Kind() Kind

		// Len returns the number of elements.
		Len() int

		// At returns the element at a linear index.
		// It returns errs.ErrIndexOutOfBounds if the index is out of range.
		At(i int) (T, error)

		// Get returns the element at a linear index without checking the index
		// against the size. The caller is responsible for the index being in range.
		Get(i int) T

		// Flat returns the elements in column-major order.
		// The returned slice is a copy for immutable arrays and the storage itself
		// for mutable arrays.
		Flat() []T

		// Shape returns the extent of each axis.
		Shape() []int

		// String representation of the array.
		String() string
	}

	// Mutable is an array whose elements can be set in place.
	Mutable[T any] interface {
		Array[T]

		// Set the element at a linear index.
		// It returns errs.ErrIndexOutOfBounds if the index is out of range.
		Set(i int, v T) error
	}
)

// SizeOf returns the size of an array.
func SizeOf[T any](a Array[T]) size.Size {
	return a.Size()
}

// SetAt sets an element of an array.
// It returns errs.ErrImmutable if the array does not implement Mutable.
func SetAt[T any](a Array[T], i int, v T) error {
	m, ok := a.(Mutable[T])
	if !ok {
		return errs.Errorf(errs.ErrImmutable, "cannot set element %d of %s", i, a.Kind())
	}
	return m.Set(i, v)
}

// AtIndex returns an element given one index per axis.
func AtIndex[T any](a Array[T], index ...int) (T, error) {
	linear, err := a.Size().Linear(index...)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.At(linear)
}

// Live returns an error if the storage of one of the arrays is no longer
// valid, for example a Sized array wrapping a Dynamic array that has since
// been resized. Operations reading arrays through Get or Flat call Live first.
func Live[T any](arrays ...Array[T]) error {
	var err error
	for _, a := range arrays {
		l, ok := a.(interface{ Live() error })
		if !ok {
			continue
		}
		err = multierr.Append(err, l.Live())
	}
	return err
}

// Equal returns true if both arrays have the same size and the same elements.
// The kind of the arrays is ignored.
func Equal[T comparable](a, b Array[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.Len() {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

func checkIndex(i, n int, sz size.Size) error {
	if i < 0 || i >= n {
		return errs.Errorf(errs.ErrIndexOutOfBounds, "index %d out of bounds for size %s", i, sz)
	}
	return nil
}

func checkLength[T any](flat []T, sz size.Size) error {
	if len(flat) != sz.Total() {
		return errs.Errorf(errs.ErrLengthMismatch, "%d elements given but size %s requires %d elements", len(flat), sz, sz.Total())
	}
	return nil
}

func formatArray[T any](k Kind, data []T, sz size.Size) string {
	if sz.Rank() == 0 {
		return k.String() + " " + fmtarray.Sprint(data, nil)
	}
	return k.String() + fmtarray.Sprint(data, sz.Dims())
}
