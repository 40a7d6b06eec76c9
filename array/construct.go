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
	"golang.org/x/exp/constraints"

	"github.com/gx-org/staticarrays/promote"
	"github.com/gx-org/staticarrays/size"
)

// Number is the constraint of element types supporting arithmetic.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Fill returns an array of the given kind and size where all elements are v.
func Fill[T any](kind Kind, sz size.Size, v T) (Array[T], error) {
	out := make([]T, sz.Total())
	for i := range out {
		out[i] = v
	}
	return Make(Type{Kind: kind, Elem: promote.ElemOf[T](), Size: sz}, out)
}

// Zeros returns an array of the given kind and size filled with zeros.
func Zeros[T Number](kind Kind, sz size.Size) (Array[T], error) {
	return Fill[T](kind, sz, 0)
}

// Ones returns an array of the given kind and size filled with ones.
func Ones[T Number](kind Kind, sz size.Size) (Array[T], error) {
	return Fill[T](kind, sz, 1)
}

// Identity returns an n by n identity matrix of the given kind.
func Identity[T Number](kind Kind, n int) (Array[T], error) {
	sz, err := size.Of(n, n)
	if err != nil {
		return nil, err
	}
	out := make([]T, sz.Total())
	for i := range n {
		out[i+i*n] = 1
	}
	return Make(Type{Kind: kind, Elem: promote.ElemOf[T](), Size: sz}, out)
}

// Generate returns an array of the given kind and size where the element at
// linear index i is f(i).
func Generate[T any](kind Kind, sz size.Size, f func(i int) T) (Array[T], error) {
	out := make([]T, sz.Total())
	for i := range out {
		out[i] = f(i)
	}
	return Make(Type{Kind: kind, Elem: promote.ElemOf[T](), Size: sz}, out)
}
