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
	"github.com/gx-org/staticarrays/size"
)

// MArray is a mutable array owning its storage.
//
// Flat returns the storage itself: writing to the returned slice modifies
// the array. Reuse an MArray across iterations to avoid allocations.
type MArray[T any] struct {
	size size.Size
	data []T
}

var _ Mutable[float32] = (*MArray[float32])(nil)

// NewMArray returns a mutable array initialized with a copy of flat.
// It returns errs.ErrLengthMismatch if the number of elements does not match the size.
func NewMArray[T any](sz size.Size, flat []T) (*MArray[T], error) {
	if err := checkLength(flat, sz); err != nil {
		return nil, err
	}
	return &MArray[T]{size: sz, data: append([]T{}, flat...)}, nil
}

// MVector returns a mutable vector of the given elements.
func MVector[T any](elems ...T) *MArray[T] {
	return &MArray[T]{
		size: size.Must(len(elems)),
		data: append([]T{}, elems...),
	}
}

// Uninit returns a mutable array whose elements are to be set by the caller.
// Elements read before being set hold the zero value of T.
func Uninit[T any](sz size.Size) *MArray[T] {
	return &MArray[T]{size: sz, data: make([]T, sz.Total())}
}

// Size of the array.
func (a *MArray[T]) Size() size.Size {
	return a.size
}

// Kind of the array.
func (*MArray[T]) Kind() Kind {
	return MutableKind
}

// Len returns the number of elements in the array.
func (a *MArray[T]) Len() int {
	return len(a.data)
}

// At returns the element at a linear index.
func (a *MArray[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(a.data), a.size); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Get returns the element at a linear index without checking bounds.
func (a *MArray[T]) Get(i int) T {
	return a.data[i]
}

// Set the element at a linear index.
func (a *MArray[T]) Set(i int, v T) error {
	if err := checkIndex(i, len(a.data), a.size); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Flat returns the storage of the array.
func (a *MArray[T]) Flat() []T {
	return a.data
}

// Shape returns the extent of each axis.
func (a *MArray[T]) Shape() []int {
	return a.size.Dims()
}

// Fill sets all the elements of the array to v.
func (a *MArray[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// String representation of the array.
func (a *MArray[T]) String() string {
	return formatArray(a.Kind(), a.data, a.size)
}
