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

package index

import (
	"fmt"

	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/errs"
)

// Spec selects elements along one axis of an array.
type Spec interface {
	// resolve returns the selection of the specifier on an axis of the given extent.
	resolve(extent int) (axisPlan, error)
	fmt.Stringer
}

type (
	intSpec  struct{ i int }
	fullSpec struct{}
	listSpec struct {
		indices []int
		static  bool
	}
	rangeSpec struct{ lo, hi int }
	maskSpec  struct{ mask []bool }
)

// Int selects a single element along an axis.
// The axis is removed from the shape of the result.
func Int(i int) Spec {
	return intSpec{i: i}
}

// Full selects all the elements along an axis.
func Full() Spec {
	return fullSpec{}
}

// Static selects a list of elements whose length is fixed.
// The result keeps a static size.
func Static(indices ...int) Spec {
	return listSpec{indices: append([]int{}, indices...), static: true}
}

// StaticOf selects the elements listed in a vector of indices.
// The result keeps a static size unless indices is a Dynamic array.
func StaticOf(indices array.Array[int]) Spec {
	return listSpec{indices: append([]int{}, indices.Flat()...), static: indices.Kind().IsStatic()}
}

// Dynamic selects a list of elements whose length is only known at run time.
// The result is a Dynamic array.
func Dynamic(indices ...int) Spec {
	return listSpec{indices: append([]int{}, indices...)}
}

// Range selects the elements from lo (inclusive) to hi (exclusive).
// The result is a Dynamic array.
func Range(lo, hi int) Spec {
	return rangeSpec{lo: lo, hi: hi}
}

// Mask selects the elements for which mask is true.
// The length of the mask must be equal to the extent of the axis.
// The result is a Dynamic array.
func Mask(mask ...bool) Spec {
	return maskSpec{mask: append([]bool{}, mask...)}
}

func checkBound(i, extent int) error {
	if i < 0 || i >= extent {
		return errs.Errorf(errs.ErrIndexOutOfBounds, "index %d out of bounds for an axis of extent %d", i, extent)
	}
	return nil
}

func (s intSpec) resolve(extent int) (axisPlan, error) {
	if err := checkBound(s.i, extent); err != nil {
		return axisPlan{}, err
	}
	return axisPlan{src: []int{s.i}, static: true, drop: true}, nil
}

func (s intSpec) String() string {
	return fmt.Sprint(s.i)
}

func (fullSpec) resolve(extent int) (axisPlan, error) {
	src := make([]int, extent)
	for i := range src {
		src[i] = i
	}
	return axisPlan{src: src, static: true, full: true}, nil
}

func (fullSpec) String() string {
	return ":"
}

func (s listSpec) resolve(extent int) (axisPlan, error) {
	for _, i := range s.indices {
		if err := checkBound(i, extent); err != nil {
			return axisPlan{}, err
		}
	}
	return axisPlan{src: s.indices, static: s.static}, nil
}

func (s listSpec) String() string {
	if s.static {
		return fmt.Sprintf("static%v", s.indices)
	}
	return fmt.Sprint(s.indices)
}

func (s rangeSpec) resolve(extent int) (axisPlan, error) {
	if s.lo < 0 || s.hi > extent || s.lo > s.hi {
		return axisPlan{}, errs.Errorf(errs.ErrIndexOutOfBounds, "range %s out of bounds for an axis of extent %d", s, extent)
	}
	src := make([]int, s.hi-s.lo)
	for i := range src {
		src[i] = s.lo + i
	}
	return axisPlan{src: src}, nil
}

func (s rangeSpec) String() string {
	return fmt.Sprintf("%d:%d", s.lo, s.hi)
}

func (s maskSpec) resolve(extent int) (axisPlan, error) {
	if len(s.mask) != extent {
		return axisPlan{}, errs.Errorf(errs.ErrIndexOutOfBounds, "mask of length %d used on an axis of extent %d", len(s.mask), extent)
	}
	var src []int
	for i, ok := range s.mask {
		if ok {
			src = append(src, i)
		}
	}
	return axisPlan{src: src}, nil
}

func (s maskSpec) String() string {
	return fmt.Sprintf("mask%v", s.mask)
}
