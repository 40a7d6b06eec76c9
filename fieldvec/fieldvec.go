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

// Package fieldvec implements a vector of three coordinates stored as named fields.
//
// Point3 is an example of an array type defined outside of the array package.
// It registers its own kind so that generic operations preserve the type:
// adding two Point3 returns a Point3. Operations changing the size of a Point3
// return an SArray.
package fieldvec

import (
	"fmt"
	"math"

	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/fmt/fmtarray"
	"github.com/gx-org/staticarrays/promote"
	"github.com/gx-org/staticarrays/size"
)

// Coord is the constraint of the coordinates of a point.
type Coord interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point3 is a point in a three dimensional space.
type Point3[T Coord] struct {
	X, Y, Z T
}

var _ array.Array[float32] = Point3[float32]{}

var (
	vec3 = size.Must(3)

	coords = map[promote.Elem]bool{
		promote.ElemOf[int](): true,
		promote.Int32:         true,
		promote.Int64:         true,
		promote.Float32:       true,
		promote.Float64:       true,
	}

	// Kind of Point3 arrays.
	Kind = array.RegisterKind(array.KindInfo{
		Name:    "Point3",
		Similar: similar,
		Build:   build,
	})
)

func similar(src array.Type, elem promote.Elem, sz size.Size) array.Type {
	kind := src.Kind
	if sz != vec3 || !coords[elem] {
		kind = array.ValueKind
	}
	return array.Type{Kind: kind, Elem: elem, Size: sz}
}

func fromFlat[T Coord](flat []T) Point3[T] {
	return Point3[T]{X: flat[0], Y: flat[1], Z: flat[2]}
}

func build(typ array.Type, flat any) (any, error) {
	if typ.Size != vec3 {
		return nil, errs.Errorf(errs.ErrShapeMismatch, "cannot build %s", typ)
	}
	switch f := flat.(type) {
	case []int:
		return fromFlat(f), nil
	case []int32:
		return fromFlat(f), nil
	case []int64:
		return fromFlat(f), nil
	case []float32:
		return fromFlat(f), nil
	case []float64:
		return fromFlat(f), nil
	}
	return nil, errs.Errorf(errs.ErrElemMismatch, "cannot build %s", typ)
}

// New returns a new point.
func New[T Coord](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

// From converts a vector of three elements into a point.
func From[T Coord](a array.Array[T]) (Point3[T], error) {
	if a.Size() != vec3 {
		return Point3[T]{}, errs.Errorf(errs.ErrShapeMismatch, "cannot convert an array of size %s to a %s", a.Size(), Kind)
	}
	return Point3[T]{X: a.Get(0), Y: a.Get(1), Z: a.Get(2)}, nil
}

// Size of the point, always (3,).
func (Point3[T]) Size() size.Size {
	return vec3
}

// Kind of the array.
func (Point3[T]) Kind() array.Kind {
	return Kind
}

// Len returns 3.
func (Point3[T]) Len() int {
	return 3
}

// At returns a coordinate given its index.
func (p Point3[T]) At(i int) (T, error) {
	if i < 0 || i >= 3 {
		var zero T
		return zero, errs.Errorf(errs.ErrIndexOutOfBounds, "index %d out of bounds for a %s", i, Kind)
	}
	return p.Get(i), nil
}

// Get returns a coordinate given its index.
func (p Point3[T]) Get(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic(fmt.Sprintf("index %d out of bounds for a %s", i, Kind))
}

// Flat returns the coordinates.
func (p Point3[T]) Flat() []T {
	return []T{p.X, p.Y, p.Z}
}

// Shape returns [3].
func (Point3[T]) Shape() []int {
	return []int{3}
}

// Dot returns the dot product of two points.
func (p Point3[T]) Dot(q Point3[T]) T {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product of two points.
func (p Point3[T]) Cross(q Point3[T]) Point3[T] {
	return Point3[T]{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the euclidean norm of the point.
func (p Point3[T]) Norm() float64 {
	return math.Sqrt(float64(p.Dot(p)))
}

func (p Point3[T]) String() string {
	return Kind.String() + fmtarray.Sprint(p.Flat(), p.Shape())
}
