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

// Package size describes the extents of static arrays.
//
// A Size is an immutable, comparable value: two sizes are equal if and only
// if they have the same rank and the same extent on every axis. Sizes can be
// used as map keys to select specialized algorithms.
//
// All linear indices are 0-based and follow the column-major order: the first
// axis varies fastest.
package size

import (
	"fmt"
	"strings"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/gx-org/staticarrays/errs"
)

// MaxRank is the maximum number of axes of a static size.
const MaxRank = 8

// Size of a static array.
// The zero value is the size of a rank 0 array with one element.
type Size struct {
	rank int
	axes [MaxRank]int
}

// Tag identifies a size at the type level.
// It is used as a key to dispatch on the size of an array.
type Tag Size

// Size returns the size identified by the tag.
func (t Tag) Size() Size {
	return Size(t)
}

// Of returns the size given the extent of each axis.
func Of(dims ...int) (Size, error) {
	if len(dims) > MaxRank {
		return Size{}, errs.Errorf(errs.ErrInvalidShape, "rank %d exceeds the maximum rank %d", len(dims), MaxRank)
	}
	s := Size{rank: len(dims)}
	for i, d := range dims {
		if d < 0 {
			return Size{}, errs.Errorf(errs.ErrInvalidShape, "negative extent %d for axis %d in %v", d, i, dims)
		}
		s.axes[i] = d
	}
	return s, nil
}

// Must returns the size given the extent of each axis.
// It panics if an extent is invalid.
func Must(dims ...int) Size {
	s, err := Of(dims...)
	if err != nil {
		panic(err)
	}
	return s
}

// Scalar returns the rank 0 size.
func Scalar() Size {
	return Size{}
}

// Rank returns the number of axes.
func (s Size) Rank() int {
	return s.rank
}

// Dim returns the extent of an axis.
// It panics if the axis is out of range.
func (s Size) Dim(axis int) int {
	if axis < 0 || axis >= s.rank {
		panic(fmt.Sprintf("axis %d out of range for size %s", axis, s))
	}
	return s.axes[axis]
}

// Dims returns a copy of the extents.
func (s Size) Dims() []int {
	return append([]int{}, s.axes[:s.rank]...)
}

// Total returns the number of elements, that is the product of all extents.
func (s Size) Total() int {
	total := 1
	for _, d := range s.axes[:s.rank] {
		total *= d
	}
	return total
}

// Equal returns true if both sizes are equal.
func (s Size) Equal(other Size) bool {
	return s == other
}

// Tag returns the type tag of the size.
func (s Size) Tag() Tag {
	return Tag(s)
}

// IsSquare returns true if the size is a square matrix.
func (s Size) IsSquare() bool {
	return s.rank == 2 && s.axes[0] == s.axes[1]
}

// Strides returns the distance, in elements, between two consecutive
// indices of each axis.
func (s Size) Strides() []int {
	strides := make([]int, s.rank)
	stride := 1
	for i := range strides {
		strides[i] = stride
		stride *= s.axes[i]
	}
	return strides
}

// Linear converts a multi-dimensional index into a linear index.
func (s Size) Linear(index ...int) (int, error) {
	if len(index) != s.rank {
		return 0, errs.Errorf(errs.ErrRankMismatch, "%d indices for size %s", len(index), s)
	}
	linear, stride := 0, 1
	for i, x := range index {
		if x < 0 || x >= s.axes[i] {
			return 0, errs.Errorf(errs.ErrIndexOutOfBounds, "index %d out of bounds for axis %d of size %s", x, i, s)
		}
		linear += x * stride
		stride *= s.axes[i]
	}
	return linear, nil
}

// Cartesian converts a linear index into a multi-dimensional index.
func (s Size) Cartesian(linear int) ([]int, error) {
	if linear < 0 || linear >= s.Total() {
		return nil, errs.Errorf(errs.ErrIndexOutOfBounds, "linear index %d out of bounds for size %s", linear, s)
	}
	index := make([]int, s.rank)
	for i := range index {
		index[i] = linear % s.axes[i]
		linear /= s.axes[i]
	}
	return index, nil
}

// Remove returns a new size without the given axis.
func (s Size) Remove(axis int) (Size, error) {
	if axis < 0 || axis >= s.rank {
		return Size{}, errs.Errorf(errs.ErrRankMismatch, "cannot remove axis %d from size %s", axis, s)
	}
	dims := s.Dims()
	return Of(append(dims[:axis], dims[axis+1:]...)...)
}

// String representation of the size.
func (s Size) String() string {
	dims := make([]string, s.rank)
	for i, d := range s.axes[:s.rank] {
		dims[i] = fmt.Sprint(d)
	}
	if s.rank == 1 {
		return "(" + dims[0] + ",)"
	}
	return "(" + strings.Join(dims, ", ") + ")"
}

// Backend returns the backend shape of an array of the given data type.
func (s Size) Backend(dt dtype.DataType) *shape.Shape {
	return &shape.Shape{
		DType:       dt,
		AxisLengths: s.Dims(),
	}
}

// FromBackend returns the size of a backend shape.
func FromBackend(sh *shape.Shape) (Size, error) {
	return Of(sh.AxisLengths...)
}
