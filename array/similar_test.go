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

package array_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/promote"
	"github.com/gx-org/staticarrays/size"
)

func TestSimilarType(t *testing.T) {
	s23, s32, s4 := size.Must(2, 3), size.Must(3, 2), size.Must(4)
	value := array.TypeFor[int](array.ValueKind, s23)
	sized := array.TypeFor[int](array.SizedKind, s23)
	mutable := array.TypeFor[int](array.MutableKind, s23)
	tests := []struct {
		name string
		src  array.Type
		opts []array.Override
		want array.Type
	}{
		{
			name: "default",
			src:  value,
			want: value,
		},
		{
			name: "new element type",
			src:  value,
			opts: []array.Override{array.WithElem(promote.Float32)},
			want: array.TypeFor[float32](array.ValueKind, s23),
		},
		{
			name: "new size",
			src:  value,
			opts: []array.Override{array.WithSize(s32)},
			want: array.TypeFor[int](array.ValueKind, s32),
		},
		{
			name: "new size with a different total",
			src:  mutable,
			opts: []array.Override{array.WithSize(s4)},
			want: array.TypeFor[int](array.MutableKind, s4),
		},
		{
			name: "both",
			src:  value,
			opts: []array.Override{array.WithElem(promote.Float64), array.WithSize(s4)},
			want: array.TypeFor[float64](array.ValueKind, s4),
		},
		{
			name: "sized keeps its kind",
			src:  sized,
			opts: []array.Override{array.WithElem(promote.Float64)},
			want: array.TypeFor[float64](array.SizedKind, s23),
		},
		{
			name: "sized with the same size",
			src:  sized,
			opts: []array.Override{array.WithSize(s23)},
			want: sized,
		},
		{
			name: "sized falls back to dynamic",
			src:  sized,
			opts: []array.Override{array.WithSize(s32)},
			want: array.TypeFor[int](array.DynamicKind, s32),
		},
		{
			name: "sized kept wrapped",
			src:  sized,
			opts: []array.Override{array.WithSize(s32), array.KeepWrapped()},
			want: array.TypeFor[int](array.SizedKind, s32),
		},
	}
	for _, test := range tests {
		got := array.SimilarType(test.src, test.opts...)
		if got != test.want {
			t.Errorf("%s: got %s but want %s", test.name, got, test.want)
		}
	}
}

func TestSimilarTypeAnySize(t *testing.T) {
	src := array.TypeFor[uint8](array.ValueKind, size.Must(2, 2))
	for _, sz := range []size.Size{size.Scalar(), size.Must(1), size.Must(7, 3), size.Must(2, 2, 2, 2)} {
		got := array.SimilarType(src, array.WithSize(sz))
		if got.Kind != array.ValueKind || got.Elem != promote.Uint8 || got.Size != sz {
			t.Errorf("SimilarType(%s, %s) = %s", src, sz, got)
		}
	}
}

func TestSimilarMutable(t *testing.T) {
	for _, kind := range []array.Kind{array.ValueKind, array.MutableKind, array.SizedKind, array.DynamicKind} {
		src := array.TypeFor[int](kind, size.Must(2))
		got := array.SimilarMutable(src, array.WithSize(size.Must(5)))
		want := array.TypeFor[int](array.MutableKind, size.Must(5))
		if got != want {
			t.Errorf("SimilarMutable(%s) = %s but want %s", src, got, want)
		}
	}
	m := array.Similar[float32, int](array.SVector(1, 2, 3))
	if got, want := array.TypeOf[float32](m), array.TypeFor[float32](array.MutableKind, size.Must(3)); got != want {
		t.Errorf("Similar returned %s but want %s", got, want)
	}
}

func TestTypeOf(t *testing.T) {
	sized, err := array.Wrap([]float32{1, 2, 3, 4}, size.Must(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	got := array.TypeOf[float32](sized)
	want := array.Type{Kind: array.SizedKind, Elem: promote.Float32, Size: size.Must(2, 2)}
	if got != want {
		t.Errorf("got %s but want %s", got, want)
	}
	if got.String() != "Sized(2, 2)float32" {
		t.Errorf("unexpected type string %q", got.String())
	}
}

func TestMake(t *testing.T) {
	sz := size.Must(2)
	for _, kind := range []array.Kind{array.ValueKind, array.MutableKind, array.SizedKind, array.DynamicKind} {
		a, err := array.Make(array.TypeFor[int](kind, sz), []int{1, 2})
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if a.Kind() != kind {
			t.Errorf("got kind %s but want %s", a.Kind(), kind)
		}
		if diff := cmp.Diff([]int{1, 2}, a.Flat()); diff != "" {
			t.Errorf("%s: unexpected elements:\n%s", kind, diff)
		}
	}
	if _, err := array.Make(array.TypeFor[float32](array.ValueKind, sz), []int{1, 2}); !errors.Is(err, errs.ErrElemMismatch) {
		t.Errorf("got error %v but want %v", err, errs.ErrElemMismatch)
	}
	if _, err := array.Make(array.TypeFor[int](array.ValueKind, sz), []int{1}); !errors.Is(err, errs.ErrLengthMismatch) {
		t.Errorf("got error %v but want %v", err, errs.ErrLengthMismatch)
	}
	if _, err := array.Make(array.TypeFor[int](array.Kind(1000), sz), []int{1, 2}); !errors.Is(err, errs.ErrUnknownKind) {
		t.Errorf("got error %v but want %v", err, errs.ErrUnknownKind)
	}
}

type tagged struct {
	array.SArray[int]
}

func (tagged) Kind() array.Kind {
	return taggedKind
}

var taggedKind = array.RegisterKind(array.KindInfo{
	Name: "Tagged",
	Similar: func(src array.Type, elem promote.Elem, sz size.Size) array.Type {
		if elem != promote.ElemOf[int]() {
			return array.Type{Kind: array.ValueKind, Elem: elem, Size: sz}
		}
		return array.Type{Kind: src.Kind, Elem: elem, Size: sz}
	},
	Build: func(typ array.Type, flat any) (any, error) {
		s, err := array.NewSArray(typ.Size, flat.([]int))
		if err != nil {
			return nil, err
		}
		return tagged{SArray: s}, nil
	},
})

func TestRegisteredKind(t *testing.T) {
	src := tagged{SArray: array.SVector(1, 2)}
	typ := array.TypeOf[int](src)
	if got := array.SimilarType(typ, array.WithSize(size.Must(3))); got.Kind != taggedKind {
		t.Errorf("got kind %s but want %s", got.Kind, taggedKind)
	}
	if got := array.SimilarType(typ, array.WithElem(promote.Float64)); got.Kind != array.ValueKind {
		t.Errorf("got kind %s but want %s", got.Kind, array.ValueKind)
	}
	pushed, err := array.Push[int](src, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := pushed.(tagged); !ok {
		t.Errorf("Push returned %T but want %T", pushed, tagged{})
	}
	if taggedKind.String() != "Tagged" || taggedKind.IsMutable() {
		t.Errorf("unexpected kind info for %s", taggedKind)
	}
}
