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

// Package arrayjson encodes arrays in JSON.
//
// An array is encoded as an object with its kind, its element type, its size
// and its elements in column-major order:
//
//	{"kind":"SArray","elem":"float32","size":[2,2],"data":[1,2,3,4]}
package arrayjson

import (
	"encoding/json"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/promote"
	"github.com/gx-org/staticarrays/size"
)

type (
	header struct {
		Kind string `json:"kind"`
		Elem string `json:"elem"`
		Size []int  `json:"size"`
	}

	document[T any] struct {
		header
		Data []T `json:"data"`
	}
)

// dataTypes lists the backend data types an element type name can resolve to.
var dataTypes = []dtype.DataType{
	dtype.Bool,
	dtype.Int32,
	dtype.Int64,
	dtype.Uint32,
	dtype.Uint64,
	dtype.Float32,
	dtype.Float64,
}

// dataType returns the backend data type of an element type name,
// or dtype.Invalid if the backend does not support the element type.
func dataType(elem string) dtype.DataType {
	for _, dt := range dataTypes {
		if e, err := promote.FromDType(dt); err == nil && e.String() == elem {
			return dt
		}
	}
	return dtype.Invalid
}

// backendType returns the backend data type of e, or dtype.Invalid if the
// backend has no data type decoding back to e (int maps to int64 for example).
func backendType(e promote.Elem) dtype.DataType {
	dt := e.DType()
	if back, err := promote.FromDType(dt); err != nil || back != e {
		return dtype.Invalid
	}
	return dt
}

func elemName(e promote.Elem) string {
	if dt := backendType(e); dt != dtype.Invalid {
		return dt.String()
	}
	return e.String()
}

func (h *header) shape() (*shape.Shape, error) {
	if h.Size == nil {
		return nil, errs.Errorf(errs.ErrInvalidShape, "missing size: use [] for a scalar")
	}
	sz, err := size.Of(h.Size...)
	if err != nil {
		return nil, err
	}
	return sz.Backend(dataType(h.Elem)), nil
}

func (h *header) checkElem(want promote.Elem) error {
	if backendType(want) == dtype.Invalid {
		if h.Elem != want.String() {
			return errs.Errorf(errs.ErrElemMismatch, "got elements of type %q but want %q", h.Elem, want)
		}
		return nil
	}
	got, err := promote.FromDType(dataType(h.Elem))
	if err != nil || got != want {
		return errs.Errorf(errs.ErrElemMismatch, "got elements of type %q but want %q", h.Elem, want)
	}
	return nil
}

// Marshal returns the JSON encoding of an array.
// It returns an error if the storage of the array is no longer valid.
func Marshal[T any](a array.Array[T]) ([]byte, error) {
	if err := array.Live(a); err != nil {
		return nil, err
	}
	data := a.Flat()
	if data == nil {
		data = []T{}
	}
	return json.Marshal(document[T]{
		header: header{
			Kind: a.Kind().String(),
			Elem: elemName(promote.ElemOf[T]()),
			Size: a.Shape(),
		},
		Data: data,
	})
}

// Header decodes the kind and the backend shape of an encoded array without
// decoding its elements. The data type of the shape is dtype.Invalid if the
// backend does not support the element type.
func Header(buf []byte) (array.Kind, *shape.Shape, error) {
	var h header
	if err := json.Unmarshal(buf, &h); err != nil {
		return array.InvalidKind, nil, errors.Wrap(err, "cannot decode array header")
	}
	kind, kindErr := array.KindOf(h.Kind)
	sh, shapeErr := h.shape()
	if err := multierr.Combine(kindErr, shapeErr); err != nil {
		return array.InvalidKind, nil, err
	}
	return kind, sh, nil
}

// Unmarshal decodes an array from its JSON encoding.
//
// All the fields of the document are checked: the kind must be registered,
// the element type must be T, the size must be present and the number of
// elements must match the size. All the problems found are reported together.
func Unmarshal[T any](buf []byte) (array.Array[T], error) {
	var doc document[T]
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, errors.Wrap(err, "cannot decode array")
	}
	var err error
	kind, kindErr := array.KindOf(doc.Kind)
	err = multierr.Append(err, kindErr)
	err = multierr.Append(err, doc.checkElem(promote.ElemOf[T]()))
	sh, shapeErr := doc.shape()
	err = multierr.Append(err, shapeErr)
	var sz size.Size
	if shapeErr == nil {
		sz, shapeErr = size.FromBackend(sh)
		err = multierr.Append(err, shapeErr)
	}
	if shapeErr == nil && len(doc.Data) != sz.Total() {
		err = multierr.Append(err, errs.Errorf(errs.ErrLengthMismatch, "%d elements given but size %s requires %d elements", len(doc.Data), sz, sz.Total()))
	}
	if err != nil {
		return nil, err
	}
	if doc.Data == nil {
		doc.Data = []T{}
	}
	return array.Make(array.TypeFor[T](kind, sz), doc.Data)
}

// Decode decodes an array whose element type is read from the document.
// The element type must be supported by the backend. The result is an
// array.Array of the matching Go type, for example array.Array[float32].
func Decode(buf []byte) (any, error) {
	var h header
	if err := json.Unmarshal(buf, &h); err != nil {
		return nil, errors.Wrap(err, "cannot decode array header")
	}
	switch dataType(h.Elem) {
	case dtype.Bool:
		return Unmarshal[bool](buf)
	case dtype.Int32:
		return Unmarshal[int32](buf)
	case dtype.Int64:
		return Unmarshal[int64](buf)
	case dtype.Uint32:
		return Unmarshal[uint32](buf)
	case dtype.Uint64:
		return Unmarshal[uint64](buf)
	case dtype.Float32:
		return Unmarshal[float32](buf)
	case dtype.Float64:
		return Unmarshal[float64](buf)
	default:
		return nil, errs.Errorf(errs.ErrElemMismatch, "cannot decode elements of type %q: no backend data type", h.Elem)
	}
}
