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
	"github.com/gx-org/staticarrays/promote"
	"github.com/gx-org/staticarrays/size"
)

// FromDynamic converts a dynamic array into an array of the given kind and size.
// The size of d must match sz on every axis, otherwise errs.ErrShapeMismatch
// is returned. A Sized result wraps the storage of d. Other kinds copy it.
func FromDynamic[T any](d *Dynamic[T], kind Kind, sz size.Size) (Array[T], error) {
	if d.size != sz {
		return nil, errs.Errorf(errs.ErrShapeMismatch, "cannot convert a dynamic array of size %s to size %s", d.size, sz)
	}
	if kind == SizedKind {
		s, err := WrapDynamic(d, sz)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return Make(Type{Kind: kind, Elem: promote.ElemOf[T](), Size: sz}, append([]T{}, d.data...))
}

// FromFlat converts a flat sequence of elements into an array of the given kind and size.
// Only the number of elements is checked: it returns errs.ErrShapeMismatch if it
// does not match the size. A Sized result wraps flat. Other kinds copy it.
func FromFlat[T any](flat []T, kind Kind, sz size.Size) (Array[T], error) {
	if len(flat) != sz.Total() {
		return nil, errs.Errorf(errs.ErrShapeMismatch, "cannot convert %d elements to size %s (%d elements)", len(flat), sz, sz.Total())
	}
	if kind == SizedKind {
		s, err := Wrap(flat, sz)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return Make(Type{Kind: kind, Elem: promote.ElemOf[T](), Size: sz}, append([]T{}, flat...))
}

// ToDynamic returns a dynamic array with a copy of the elements of a.
func ToDynamic[T any](a Array[T]) *Dynamic[T] {
	return &Dynamic[T]{size: a.Size(), data: copyFlat(a)}
}

// Freeze returns an immutable snapshot of a.
// Later modifications of a are not visible in the snapshot.
// Like Get, it panics if a is a Sized array failing its liveness check.
func Freeze[T any](a Array[T]) SArray[T] {
	if s, ok := a.(SArray[T]); ok {
		return s
	}
	return SArray[T]{size: a.Size(), data: copyFlat(a)}
}

// Thaw returns a mutable copy of a.
func Thaw[T any](a Array[T]) *MArray[T] {
	return &MArray[T]{size: a.Size(), data: copyFlat(a)}
}

// Reshape returns a copy of a with a new size.
// The type of the result is given by SimilarType.
// It returns errs.ErrShapeMismatch if both sizes do not have the same number of elements.
func Reshape[T any](a Array[T], sz size.Size, opts ...Override) (Array[T], error) {
	if err := Live(a); err != nil {
		return nil, err
	}
	if sz.Total() != a.Len() {
		return nil, errs.Errorf(errs.ErrShapeMismatch, "cannot reshape %s of size %s to size %s", a.Kind(), a.Size(), sz)
	}
	opts = append(opts, WithSize(sz))
	return Make(SimilarType(TypeOf(a), opts...), copyFlat(a))
}

// Copy returns a copy of a with the same type.
func Copy[T any](a Array[T]) (Array[T], error) {
	if err := Live(a); err != nil {
		return nil, err
	}
	return Make(TypeOf(a), copyFlat(a))
}

// Convert returns an array similar to a with elements converted by f.
func Convert[U, T any](a Array[T], f func(T) U) (Array[U], error) {
	if err := Live(a); err != nil {
		return nil, err
	}
	out := make([]U, a.Len())
	for i := range out {
		out[i] = f(a.Get(i))
	}
	return Make(SimilarType(TypeOf(a), WithElem(promote.ElemOf[U]())), out)
}

func copyFlat[T any](a Array[T]) []T {
	out := make([]T, a.Len())
	for i := range out {
		out[i] = a.Get(i)
	}
	return out
}
