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

// Dynamic is a mutable array whose size is only known at run time.
//
// It is the result of operations for which the size of the output cannot be
// deduced from the size of the inputs, for example indexing with a range.
// Converting a Dynamic array to a static kind requires an explicit size.
type Dynamic[T any] struct {
	size size.Size
	data []T
}

var _ Mutable[float32] = (*Dynamic[float32])(nil)

// NewDynamic returns a dynamic array initialized with a copy of flat.
func NewDynamic[T any](sz size.Size, flat []T) (*Dynamic[T], error) {
	if err := checkLength(flat, sz); err != nil {
		return nil, err
	}
	return &Dynamic[T]{size: sz, data: append([]T{}, flat...)}, nil
}

// DynamicVector returns a rank 1 dynamic array holding a copy of elems.
func DynamicVector[T any](elems ...T) *Dynamic[T] {
	return &Dynamic[T]{size: size.Must(len(elems)), data: append([]T{}, elems...)}
}

// Resize changes the size of the array, reallocating its storage.
// Elements are preserved in column-major order up to the smallest of the two totals.
// Sized arrays wrapping the previous storage no longer alias the array.
func (d *Dynamic[T]) Resize(sz size.Size) {
	data := make([]T, sz.Total())
	copy(data, d.data)
	d.size, d.data = sz, data
}

// Size of the array.
func (d *Dynamic[T]) Size() size.Size {
	return d.size
}

// Kind of the array.
func (*Dynamic[T]) Kind() Kind {
	return DynamicKind
}

// Len returns the number of elements in the array.
func (d *Dynamic[T]) Len() int {
	return len(d.data)
}

// At returns the element at a linear index.
func (d *Dynamic[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(d.data), d.size); err != nil {
		var zero T
		return zero, err
	}
	return d.data[i], nil
}

// Get returns the element at a linear index without checking bounds.
func (d *Dynamic[T]) Get(i int) T {
	return d.data[i]
}

// Set the element at a linear index.
func (d *Dynamic[T]) Set(i int, v T) error {
	if err := checkIndex(i, len(d.data), d.size); err != nil {
		return err
	}
	d.data[i] = v
	return nil
}

// Flat returns the storage of the array.
func (d *Dynamic[T]) Flat() []T {
	return d.data
}

// Shape returns the extent of each axis.
func (d *Dynamic[T]) Shape() []int {
	return d.size.Dims()
}

// String representation of the array.
func (d *Dynamic[T]) String() string {
	return formatArray(d.Kind(), d.data, d.size)
}
