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

// Concat concatenates arrays along an axis.
//
// All the arrays must have the same rank and the same extent on every axis
// but the concatenated one. axis can be equal to the rank of the arrays, in
// which case the arrays are stacked along a new trailing axis.
//
// The type of the result is given by SimilarType from the first array with a
// static size, or the first array if none has a static size. A Sized operand
// therefore produces a Dynamic array.
func Concat[T any](axis int, arrays ...Array[T]) (Array[T], error) {
	if len(arrays) == 0 {
		return nil, errs.Errorf(errs.ErrInvalidShape, "nothing to concatenate")
	}
	if err := Live(arrays...); err != nil {
		return nil, err
	}
	first := arrays[0]
	rank := first.Size().Rank()
	if axis < 0 || axis > rank {
		return nil, errs.Errorf(errs.ErrIndexOutOfBounds, "cannot concatenate arrays of rank %d along axis %d", rank, axis)
	}
	dims := first.Size().Dims()
	if axis == rank {
		dims = append(dims, 0)
	} else {
		dims[axis] = 0
	}
	for i, a := range arrays {
		if got := a.Size().Rank(); got != rank {
			return nil, errs.Errorf(errs.ErrRankMismatch, "argument %d has size %s but argument 0 has size %s", i, a.Size(), first.Size())
		}
		for j := range rank {
			if j != axis && a.Size().Dim(j) != dims[j] {
				return nil, errs.Errorf(errs.ErrShapeMismatch, "argument %d has size %s incompatible with size %s on axis %d", i, a.Size(), first.Size(), j)
			}
		}
		dims[axis] += extent(a.Size(), axis)
	}
	out, err := size.Of(dims...)
	if err != nil {
		return nil, err
	}
	inner, outer := 1, 1
	for _, d := range dims[:axis] {
		inner *= d
	}
	for _, d := range dims[axis+1:] {
		outer *= d
	}
	flat := make([]T, 0, out.Total())
	for o := range outer {
		for _, a := range arrays {
			n := inner * extent(a.Size(), axis)
			for i := range n {
				flat = append(flat, a.Get(o*n+i))
			}
		}
	}
	return Make(SimilarType(TypeOf(staticFirst(arrays)), WithSize(out)), flat)
}

// VCat concatenates arrays along the first axis.
func VCat[T any](arrays ...Array[T]) (Array[T], error) {
	return Concat(0, arrays...)
}

// HCat concatenates arrays along the second axis.
// Vectors are stacked as the columns of a matrix.
func HCat[T any](arrays ...Array[T]) (Array[T], error) {
	return Concat(1, arrays...)
}

func extent(sz size.Size, axis int) int {
	if axis == sz.Rank() {
		return 1
	}
	return sz.Dim(axis)
}

func staticFirst[T any](arrays []Array[T]) Array[T] {
	for _, a := range arrays {
		if a.Kind().IsStatic() {
			return a
		}
	}
	return arrays[0]
}
