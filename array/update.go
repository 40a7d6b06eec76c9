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

// Setindex returns a copy of a where the element at linear index i is set to v.
// The result has the type of a.
func Setindex[T any](a Array[T], i int, v T) (Array[T], error) {
	if err := Live(a); err != nil {
		return nil, err
	}
	if err := checkIndex(i, a.Len(), a.Size()); err != nil {
		return nil, err
	}
	out := copyFlat(a)
	out[i] = v
	return Make(TypeOf(a), out)
}

func checkVector[T any](a Array[T], op string) error {
	if err := Live(a); err != nil {
		return err
	}
	if a.Size().Rank() != 1 {
		return errs.Errorf(errs.ErrRankMismatch, "%s requires a vector but got size %s", op, a.Size())
	}
	return nil
}

func resized[T any](a Array[T], out []T) (Array[T], error) {
	return Make(SimilarType(TypeOf(a), WithSize(size.Must(len(out)))), out)
}

// Push returns a copy of the vector a with v appended.
func Push[T any](a Array[T], v T) (Array[T], error) {
	if err := checkVector(a, "Push"); err != nil {
		return nil, err
	}
	return resized(a, append(copyFlat(a), v))
}

// Pop returns a copy of the vector a without its last element, and that element.
func Pop[T any](a Array[T]) (Array[T], T, error) {
	var zero T
	if err := checkVector(a, "Pop"); err != nil {
		return nil, zero, err
	}
	if a.Len() == 0 {
		return nil, zero, errs.Errorf(errs.ErrIndexOutOfBounds, "cannot pop from an empty vector")
	}
	flat := copyFlat(a)
	last := flat[len(flat)-1]
	out, err := resized(a, flat[:len(flat)-1])
	if err != nil {
		return nil, zero, err
	}
	return out, last, nil
}

// Unshift returns a copy of the vector a with v prepended.
func Unshift[T any](a Array[T], v T) (Array[T], error) {
	return Insert(a, 0, v)
}

// Shift returns a copy of the vector a without its first element, and that element.
func Shift[T any](a Array[T]) (Array[T], T, error) {
	var zero T
	if err := checkVector(a, "Shift"); err != nil {
		return nil, zero, err
	}
	if a.Len() == 0 {
		return nil, zero, errs.Errorf(errs.ErrIndexOutOfBounds, "cannot shift from an empty vector")
	}
	flat := copyFlat(a)
	out, err := resized(a, flat[1:])
	if err != nil {
		return nil, zero, err
	}
	return out, flat[0], nil
}

// Insert returns a copy of the vector a with v inserted at index i.
// i can be equal to the length of a.
func Insert[T any](a Array[T], i int, v T) (Array[T], error) {
	if err := checkVector(a, "Insert"); err != nil {
		return nil, err
	}
	if i < 0 || i > a.Len() {
		return nil, errs.Errorf(errs.ErrIndexOutOfBounds, "cannot insert at %d in a vector of length %d", i, a.Len())
	}
	flat := copyFlat(a)
	out := make([]T, 0, len(flat)+1)
	out = append(out, flat[:i]...)
	out = append(out, v)
	out = append(out, flat[i:]...)
	return resized(a, out)
}

// DeleteAt returns a copy of the vector a without the element at index i.
func DeleteAt[T any](a Array[T], i int) (Array[T], error) {
	if err := checkVector(a, "DeleteAt"); err != nil {
		return nil, err
	}
	if err := checkIndex(i, a.Len(), a.Size()); err != nil {
		return nil, err
	}
	flat := copyFlat(a)
	return resized(a, append(flat[:i], flat[i+1:]...))
}
