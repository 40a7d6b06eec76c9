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

package arrayjson_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gx-org/backend/dtype"

	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/encoding/arrayjson"
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/fieldvec"
	"github.com/gx-org/staticarrays/size"
)

func TestMarshal(t *testing.T) {
	m, err := array.SMatrix[float32](2, 2, 1, 2, 3, 4)
	require.NoError(t, err)
	got, err := arrayjson.Marshal[float32](m)
	require.NoError(t, err)
	want := `{"kind":"SArray","elem":"float32","size":[2,2],"data":[1,2,3,4]}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("unexpected encoding:\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	w, err := array.Wrap([]int64{1, 2, 3, 4, 5, 6}, size.Must(3, 2))
	require.NoError(t, err)
	arrays := []array.Array[int64]{
		array.SVector[int64](1, 2, 3),
		array.MVector[int64](4, 5),
		w,
		array.DynamicVector[int64](),
		array.NewScalar[int64](7),
		fieldvec.New[int64](1, 2, 3),
	}
	for _, a := range arrays {
		buf, err := arrayjson.Marshal(a)
		require.NoError(t, err, "%s", a)
		got, err := arrayjson.Unmarshal[int64](buf)
		require.NoError(t, err, "%s", buf)
		require.Equal(t, array.TypeOf(a), array.TypeOf(got), "%s", buf)
		require.True(t, array.Equal(a, got), "got %s but want %s", got, a)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := arrayjson.Unmarshal[float64]([]byte(`{"kind":"Tensor","elem":"int32","size":[2,-1],"data":[1]}`))
	require.ErrorIs(t, err, errs.ErrUnknownKind)
	require.ErrorIs(t, err, errs.ErrElemMismatch)
	require.ErrorIs(t, err, errs.ErrInvalidShape)

	_, err = arrayjson.Unmarshal[float64]([]byte(`{"kind":"MArray","elem":"float64","size":[2,2],"data":[1,2,3]}`))
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = arrayjson.Unmarshal[float64]([]byte(`{"kind":"Point3","elem":"float64","size":[2],"data":[1,2]}`))
	require.ErrorIs(t, err, errs.ErrShapeMismatch)

	_, err = arrayjson.Unmarshal[float64]([]byte(`[1, 2]`))
	require.Error(t, err)

	_, err = arrayjson.Unmarshal[float64]([]byte(`{"kind":"SArray","elem":"float64","data":[5]}`))
	require.ErrorIs(t, err, errs.ErrInvalidShape)

	_, err = arrayjson.Unmarshal[int]([]byte(`{"kind":"SArray","elem":"int64","size":[1],"data":[5]}`))
	require.ErrorIs(t, err, errs.ErrElemMismatch)
}

func TestScalar(t *testing.T) {
	buf, err := arrayjson.Marshal[float64](array.NewScalar(5.0))
	require.NoError(t, err)
	require.Equal(t, `{"kind":"SArray","elem":"float64","size":[],"data":[5]}`, string(buf))
	got, err := arrayjson.Unmarshal[float64](buf)
	require.NoError(t, err)
	require.Equal(t, size.Scalar(), got.Size())
}

func TestGoElems(t *testing.T) {
	ints := array.SVector(1, 2)
	buf, err := arrayjson.Marshal[int](ints)
	require.NoError(t, err)
	require.Equal(t, `{"kind":"SArray","elem":"int","size":[2],"data":[1,2]}`, string(buf))
	got, err := arrayjson.Unmarshal[int](buf)
	require.NoError(t, err)
	require.True(t, array.Equal[int](ints, got))

	_, err = arrayjson.Decode(buf)
	require.ErrorIs(t, err, errs.ErrElemMismatch)
}

func TestHeader(t *testing.T) {
	kind, sh, err := arrayjson.Header([]byte(`{"kind":"MArray","elem":"uint32","size":[3,2],"data":[1,2,3,4,5,6]}`))
	require.NoError(t, err)
	require.Equal(t, array.MutableKind, kind)
	require.Equal(t, dtype.Uint32, sh.DType)
	require.Equal(t, []int{3, 2}, sh.AxisLengths)

	_, sh, err = arrayjson.Header([]byte(`{"kind":"SArray","elem":"complex128","size":[1],"data":[]}`))
	require.NoError(t, err)
	require.Equal(t, dtype.Invalid, sh.DType)

	_, _, err = arrayjson.Header([]byte(`{"kind":"Tensor","elem":"float32"}`))
	require.ErrorIs(t, err, errs.ErrUnknownKind)
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}

func TestDecode(t *testing.T) {
	got, err := arrayjson.Decode([]byte(`{"kind":"SArray","elem":"float32","size":[2],"data":[1,2]}`))
	require.NoError(t, err)
	a, ok := got.(array.Array[float32])
	require.True(t, ok, "got %T", got)
	require.Equal(t, []float32{1, 2}, a.Flat())

	got, err = arrayjson.Decode([]byte(`{"kind":"Dynamic","elem":"bool","size":[1],"data":[true]}`))
	require.NoError(t, err)
	b, ok := got.(array.Array[bool])
	require.True(t, ok, "got %T", got)
	require.Equal(t, array.DynamicKind, b.Kind())
}

func TestMarshalResizedOwner(t *testing.T) {
	d := array.DynamicVector(1.0, 2)
	w, err := array.WrapDynamic(d, size.Must(2), array.WithLivenessCheck())
	require.NoError(t, err)
	d.Resize(size.Must(4))
	_, err = arrayjson.Marshal[float64](w)
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}
