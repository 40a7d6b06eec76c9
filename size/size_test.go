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

package size_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/size"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		dims  []int
		total int
		str   string
	}{
		{dims: nil, total: 1, str: "()"},
		{dims: []int{3}, total: 3, str: "(3,)"},
		{dims: []int{2, 3}, total: 6, str: "(2, 3)"},
		{dims: []int{2, 0, 4}, total: 0, str: "(2, 0, 4)"},
		{dims: []int{2, 2, 2, 2, 2, 2}, total: 64, str: "(2, 2, 2, 2, 2, 2)"},
	}
	for _, test := range tests {
		s, err := size.Of(test.dims...)
		if err != nil {
			t.Fatalf("size.Of(%v): %v", test.dims, err)
		}
		if s.Total() != test.total {
			t.Errorf("%v: got total %d but want %d", test.dims, s.Total(), test.total)
		}
		if s.Rank() != len(test.dims) {
			t.Errorf("%v: got rank %d but want %d", test.dims, s.Rank(), len(test.dims))
		}
		if got := s.String(); got != test.str {
			t.Errorf("%v: got %q but want %q", test.dims, got, test.str)
		}
		product := 1
		for _, d := range s.Dims() {
			product *= d
		}
		if product != s.Total() {
			t.Errorf("%v: product of extents %d != total %d", test.dims, product, s.Total())
		}
	}
	if got := size.Scalar().Total(); got != 1 {
		t.Errorf("rank 0 total: got %d but want 1", got)
	}
}

func TestInvalid(t *testing.T) {
	for _, dims := range [][]int{
		{-1},
		{2, -3},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
	} {
		if _, err := size.Of(dims...); !errors.Is(err, errs.ErrInvalidShape) {
			t.Errorf("size.Of(%v): got error %v but want %v", dims, err, errs.ErrInvalidShape)
		}
	}
}

func TestEquality(t *testing.T) {
	a, b, c := size.Must(2, 3), size.Must(2, 3), size.Must(3, 2)
	if a != b || !a.Equal(b) {
		t.Errorf("%s and %s should be equal", a, b)
	}
	if a == c {
		t.Errorf("%s and %s should not be equal", a, c)
	}
	if size.Must(2) == size.Must(2, 1) {
		t.Errorf("sizes with different ranks should not be equal")
	}
	tags := map[size.Tag]string{
		a.Tag(): "a",
		c.Tag(): "c",
	}
	if got := tags[b.Tag()]; got != "a" {
		t.Errorf("lookup by tag: got %q but want %q", got, "a")
	}
	if got := a.Tag().Size(); got != a {
		t.Errorf("tag round trip: got %s but want %s", got, a)
	}
}

func TestLinearCartesian(t *testing.T) {
	s := size.Must(2, 3, 4)
	if diff := cmp.Diff([]int{1, 2, 6}, s.Strides()); diff != "" {
		t.Errorf("unexpected strides:\n%s", diff)
	}
	for i := range s.Total() {
		index, err := s.Cartesian(i)
		if err != nil {
			t.Fatal(err)
		}
		linear, err := s.Linear(index...)
		if err != nil {
			t.Fatal(err)
		}
		if linear != i {
			t.Errorf("Linear(Cartesian(%d)) = %d", i, linear)
		}
	}
	got, err := s.Cartesian(7)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 0, 1}, got); diff != "" {
		t.Errorf("column-major order violated:\n%s", diff)
	}
	if _, err := s.Linear(0, 3, 0); !errors.Is(err, errs.ErrIndexOutOfBounds) {
		t.Errorf("got error %v but want %v", err, errs.ErrIndexOutOfBounds)
	}
	if _, err := s.Linear(0, 0); !errors.Is(err, errs.ErrRankMismatch) {
		t.Errorf("got error %v but want %v", err, errs.ErrRankMismatch)
	}
	if _, err := s.Cartesian(24); !errors.Is(err, errs.ErrIndexOutOfBounds) {
		t.Errorf("got error %v but want %v", err, errs.ErrIndexOutOfBounds)
	}
}

func TestRemove(t *testing.T) {
	s := size.Must(2, 3, 4)
	got, err := s.Remove(1)
	if err != nil {
		t.Fatal(err)
	}
	if want := size.Must(2, 4); got != want {
		t.Errorf("got %s but want %s", got, want)
	}
	if s != size.Must(2, 3, 4) {
		t.Errorf("Remove mutated its receiver: %s", s)
	}
	if _, err := s.Remove(3); !errors.Is(err, errs.ErrRankMismatch) {
		t.Errorf("got error %v but want %v", err, errs.ErrRankMismatch)
	}
}

func TestBackend(t *testing.T) {
	s := size.Must(3, 4)
	sh := s.Backend(dtype.Float32)
	if sh.DType != dtype.Float32 {
		t.Errorf("got data type %s but want %s", sh.DType, dtype.Float32)
	}
	if sh.Size() != s.Total() {
		t.Errorf("backend shape has %d elements but want %d", sh.Size(), s.Total())
	}
	back, err := size.FromBackend(sh)
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Errorf("got %s but want %s", back, s)
	}
}
