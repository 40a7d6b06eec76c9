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
	"fmt"
	"reflect"

	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/promote"
	"github.com/gx-org/staticarrays/size"
)

// Type describes the concrete type of an array: its kind, its element type
// and its size. Two types are equal if and only if all three are equal.
type Type struct {
	Kind Kind
	Elem promote.Elem
	Size size.Size
}

// TypeOf returns the type of an array.
func TypeOf[T any](a Array[T]) Type {
	return Type{
		Kind: a.Kind(),
		Elem: promote.ElemOf[T](),
		Size: a.Size(),
	}
}

// TypeFor returns the type of arrays of a given kind, element type and size.
func TypeFor[T any](kind Kind, sz size.Size) Type {
	return Type{Kind: kind, Elem: promote.ElemOf[T](), Size: sz}
}

func (t Type) String() string {
	return fmt.Sprintf("%s%s%s", t.Kind, t.Size, t.Elem)
}

type (
	overrides struct {
		elem        *promote.Elem
		size        *size.Size
		keepWrapped bool
	}

	// Override changes the type computed by SimilarType.
	Override func(*overrides)
)

// WithElem sets the element type of the result.
func WithElem(e promote.Elem) Override {
	return func(o *overrides) {
		o.elem = &e
	}
}

// WithSize sets the size of the result.
func WithSize(sz size.Size) Override {
	return func(o *overrides) {
		o.size = &sz
	}
}

// KeepWrapped keeps the Sized kind when the size of the result changes.
// The result then wraps a new buffer.
func KeepWrapped() Override {
	return func(o *overrides) {
		o.keepWrapped = true
	}
}

// SimilarType returns the type of the result of an operation on an array
// of type src.
//
// Without overrides, the result has the type of src. WithElem and WithSize
// substitute the element type and the size. The size of a Sized array is an
// annotation on a buffer: changing it produces a Dynamic array unless
// KeepWrapped is given. Kinds registered with a Similar function resolve
// their own results.
func SimilarType(src Type, opts ...Override) Type {
	var ov overrides
	for _, opt := range opts {
		opt(&ov)
	}
	elem, sz := src.Elem, src.Size
	if ov.elem != nil {
		elem = *ov.elem
	}
	resized := false
	if ov.size != nil {
		resized = *ov.size != src.Size
		sz = *ov.size
	}
	if info, err := src.Kind.Info(); err == nil && info.Similar != nil {
		return info.Similar(src, elem, sz)
	}
	kind := src.Kind
	if kind == SizedKind && resized && !ov.keepWrapped {
		kind = DynamicKind
	}
	return Type{Kind: kind, Elem: elem, Size: sz}
}

// SimilarMutable returns the type of a mutable array similar to src.
// It is used to accumulate results before freezing them into a value.
// The result is always an MArray.
func SimilarMutable(src Type, opts ...Override) Type {
	typ := SimilarType(src, opts...)
	typ.Kind = MutableKind
	return typ
}

// Make returns a new array given its type and its elements.
// The array takes ownership of flat: the caller must not modify it afterward.
func Make[T any](typ Type, flat []T) (Array[T], error) {
	if want := promote.ElemOf[T](); typ.Elem != want {
		return nil, errs.Errorf(errs.ErrElemMismatch, "cannot build %s from elements of type %s", typ, want)
	}
	if err := checkLength(flat, typ.Size); err != nil {
		return nil, err
	}
	switch typ.Kind {
	case ValueKind:
		return SArray[T]{size: typ.Size, data: flat}, nil
	case MutableKind:
		return &MArray[T]{size: typ.Size, data: flat}, nil
	case SizedKind:
		return &Sized[T]{size: typ.Size, buf: flat}, nil
	case DynamicKind:
		return &Dynamic[T]{size: typ.Size, data: flat}, nil
	}
	info, err := typ.Kind.Info()
	if err != nil {
		return nil, err
	}
	val, err := info.Build(typ, flat)
	if err != nil {
		return nil, err
	}
	array, ok := val.(Array[T])
	if !ok {
		return nil, errs.Errorf(errs.ErrElemMismatch, "kind %s built %T which is not a %s", typ.Kind, val, reflect.TypeFor[Array[T]]())
	}
	return array, nil
}

// Similar returns a new mutable array similar to a with elements of type U.
// The elements of the new array are set to their zero value.
func Similar[U, T any](a Array[T], opts ...Override) *MArray[U] {
	opts = append(opts, WithElem(promote.ElemOf[U]()))
	typ := SimilarMutable(TypeOf(a), opts...)
	return Uninit[U](typ.Size)
}
