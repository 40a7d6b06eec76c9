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

// Package index selects elements of arrays.
//
// An index expression is given as one specifier per axis. Each specifier
// maps the positions of the result along its axis to positions in the source.
// The result keeps a static size if every specifier has a static length.
// Otherwise, the result is a Dynamic array.
package index

import (
	"strings"

	"go.uber.org/multierr"

	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/size"
)

type axisPlan struct {
	// src maps positions of the result along the axis to positions in the source.
	src []int
	// static is true if the length of src is known at construction.
	static bool
	// full is true if src is the identity.
	full bool
	// drop is true if the axis is removed from the result.
	drop bool
}

// Plan is an index expression resolved against the size of an array.
type Plan struct {
	// Source is the size of the indexed array.
	Source size.Size
	// Size is the size of the result.
	Size size.Size
	// Static is true if the result keeps a static size.
	Static bool
	// Identity is true if the result is the indexed array itself.
	Identity bool

	axes []axisPlan
}

// Resolve computes the plan of an index expression on an array of size sz.
//
// The number of specifiers must be equal to the rank of the array, except
// for a single Full specifier which selects the whole array whatever its rank.
// Errors of all axes are reported together.
func Resolve(sz size.Size, specs ...Spec) (*Plan, error) {
	if len(specs) == 1 && sz.Rank() != 1 {
		if _, ok := specs[0].(fullSpec); ok {
			specs = make([]Spec, sz.Rank())
			for i := range specs {
				specs[i] = Full()
			}
		}
	}
	if len(specs) != sz.Rank() {
		return nil, errs.Errorf(errs.ErrRankMismatch, "%d index specifiers given for an array of size %s", len(specs), sz)
	}
	plan := &Plan{
		Source:   sz,
		Static:   true,
		Identity: true,
		axes:     make([]axisPlan, len(specs)),
	}
	var err error
	var dims []int
	for axis, spec := range specs {
		ax, axisErr := spec.resolve(sz.Dim(axis))
		if axisErr != nil {
			err = multierr.Append(err, errs.Errorf(axisErr, "axis %d", axis))
			continue
		}
		plan.axes[axis] = ax
		plan.Static = plan.Static && ax.static
		plan.Identity = plan.Identity && ax.full
		if !ax.drop {
			dims = append(dims, len(ax.src))
		}
	}
	if err != nil {
		return nil, err
	}
	plan.Size, err = size.Of(dims...)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Sources returns the linear index in the source array of every element of
// the result, in column-major order.
func (p *Plan) Sources() []int {
	out := make([]int, 0, p.Size.Total())
	if p.Size.Total() == 0 {
		return out
	}
	strides := p.Source.Strides()
	pos := make([]int, len(p.axes))
	for {
		linear := 0
		for axis, ax := range p.axes {
			linear += ax.src[pos[axis]] * strides[axis]
		}
		out = append(out, linear)
		axis := 0
		for ; axis < len(pos); axis++ {
			pos[axis]++
			if pos[axis] < len(p.axes[axis].src) {
				break
			}
			pos[axis] = 0
		}
		if axis == len(pos) {
			return out
		}
	}
}

func (p *Plan) String() string {
	return p.Source.String() + "->" + p.Size.String()
}

// Get returns the elements of a selected by an index expression.
//
// Selecting all the elements returns a itself. If the result keeps a
// static size, its type is computed by array.SimilarType with the size of
// the result. Otherwise, the result is a Dynamic array.
func Get[T any](a array.Array[T], specs ...Spec) (array.Array[T], error) {
	if err := array.Live(a); err != nil {
		return nil, err
	}
	plan, err := Resolve(a.Size(), specs...)
	if err != nil {
		return nil, errs.Errorf(err, "cannot index %s with [%s]", a.Kind(), join(specs))
	}
	if plan.Identity {
		return a, nil
	}
	sources := plan.Sources()
	flat := make([]T, len(sources))
	for i, src := range sources {
		flat[i] = a.Get(src)
	}
	typ := array.TypeFor[T](array.DynamicKind, plan.Size)
	if plan.Static {
		typ = array.SimilarType(array.TypeOf(a), array.WithSize(plan.Size))
	}
	return array.Make(typ, flat)
}

// Set assigns the elements of src to the elements of dst selected by an index expression.
// The size of src must be the size of the selection.
func Set[T any](dst array.Mutable[T], src array.Array[T], specs ...Spec) error {
	if err := array.Live[T](dst, src); err != nil {
		return err
	}
	plan, err := Resolve(dst.Size(), specs...)
	if err != nil {
		return errs.Errorf(err, "cannot index %s with [%s]", dst.Kind(), join(specs))
	}
	if src.Size() != plan.Size {
		return errs.Errorf(errs.ErrShapeMismatch, "cannot assign an array of size %s to a selection of size %s", src.Size(), plan.Size)
	}
	for i, target := range plan.Sources() {
		if err := dst.Set(target, src.Get(i)); err != nil {
			return err
		}
	}
	return nil
}

// Fill sets all the elements of dst selected by an index expression to v.
func Fill[T any](dst array.Mutable[T], v T, specs ...Spec) error {
	if err := array.Live[T](dst); err != nil {
		return err
	}
	plan, err := Resolve(dst.Size(), specs...)
	if err != nil {
		return errs.Errorf(err, "cannot index %s with [%s]", dst.Kind(), join(specs))
	}
	for _, target := range plan.Sources() {
		if err := dst.Set(target, v); err != nil {
			return err
		}
	}
	return nil
}

func join(specs []Spec) string {
	ss := make([]string, len(specs))
	for i, spec := range specs {
		ss[i] = spec.String()
	}
	return strings.Join(ss, ", ")
}
