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

// Package kernels implements arithmetic on arrays.
//
// Kernels are selected from the types of their operands. The type of their
// result is computed by array.SimilarType from the type of the operands,
// so that operations on static arrays return static arrays.
package kernels

import (
	"go/token"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/promote"
	"github.com/gx-org/staticarrays/size"
)

type (
	// Real is the constraint of element types with an order.
	Real interface {
		constraints.Integer | constraints.Float
	}

	// Unary like -.
	Unary[T any] func(array.Array[T]) (array.Array[T], error)

	// Binary like +, -, *, /.
	Binary[T any] func(array.Array[T], array.Array[T]) (array.Array[T], error)
)

func isAtomic(typ array.Type) bool {
	return typ.Size.Rank() == 0
}

// SameSize returns the size shared by all the given sizes.
// It returns errs.ErrShapeMismatch if two sizes differ.
func SameSize(sizes ...size.Size) (size.Size, error) {
	if len(sizes) == 0 {
		return size.Scalar(), nil
	}
	for _, sz := range sizes[1:] {
		if sz != sizes[0] {
			return size.Size{}, errs.Errorf(errs.ErrShapeMismatch, "size %s does not match size %s", sz, sizes[0])
		}
	}
	return sizes[0], nil
}

// elementwiseType returns the type of the result of an elementwise
// operation. Atomic operands are broadcast to the size of the other operand.
// A static operand is preferred over a dynamic one.
func elementwiseType(x, y array.Type) (array.Type, error) {
	xAtomic, yAtomic := isAtomic(x), isAtomic(y)
	switch {
	case xAtomic && !yAtomic:
		return array.SimilarType(y), nil
	case yAtomic && !xAtomic:
		return array.SimilarType(x), nil
	}
	if _, err := SameSize(x.Size, y.Size); err != nil {
		return array.Type{}, err
	}
	if !x.Kind.IsStatic() && y.Kind.IsStatic() {
		return array.SimilarType(y), nil
	}
	return array.SimilarType(x), nil
}

func operator[T array.Number](op token.Token) (func(T, T) T, error) {
	switch op {
	case token.ADD:
		return func(x, y T) T { return x + y }, nil
	case token.SUB:
		return func(x, y T) T { return x - y }, nil
	case token.MUL:
		return func(x, y T) T { return x * y }, nil
	case token.QUO:
		elem := promote.ElemOf[T]()
		if closure := promote.ArithmeticClosure(elem); closure != elem {
			return nil, errs.Errorf(errs.ErrElemMismatch, "%s on %s returns %s: use Quo", op, elem, closure)
		}
		return func(x, y T) T { return x / y }, nil
	default:
		return nil, errors.Errorf("operator %s not supported for %s", op, promote.ElemOf[T]())
	}
}

// BinaryOp returns the kernel of a binary operator given the type of its
// operands, and the type of the result of the kernel.
func BinaryOp[T array.Number](op token.Token, x, y array.Type) (Binary[T], array.Type, error) {
	out, err := elementwiseType(x, y)
	if err != nil {
		return nil, array.Type{}, errors.WithMessagef(err, "cannot apply %s to %s and %s", op, x, y)
	}
	f, err := operator[T](op)
	if err != nil {
		return nil, array.Type{}, err
	}
	xAtomic, yAtomic := isAtomic(x), isAtomic(y)
	switch {
	case xAtomic && !yAtomic:
		return atomicToArray(f, out), out, nil
	case yAtomic && !xAtomic:
		return arrayToAtomic(f, out), out, nil
	default:
		return arrayToArray(f, out), out, nil
	}
}

func atomicToArray[T any](f func(T, T) T, out array.Type) Binary[T] {
	return func(xVal, yVal array.Array[T]) (array.Array[T], error) {
		if err := array.Live(xVal, yVal); err != nil {
			return nil, err
		}
		x := xVal.Get(0)
		z := make([]T, yVal.Len())
		for i := range z {
			z[i] = f(x, yVal.Get(i))
		}
		return array.Make(out, z)
	}
}

func arrayToAtomic[T any](f func(T, T) T, out array.Type) Binary[T] {
	return func(xVal, yVal array.Array[T]) (array.Array[T], error) {
		if err := array.Live(xVal, yVal); err != nil {
			return nil, err
		}
		y := yVal.Get(0)
		z := make([]T, xVal.Len())
		for i := range z {
			z[i] = f(xVal.Get(i), y)
		}
		return array.Make(out, z)
	}
}

func arrayToArray[T any](f func(T, T) T, out array.Type) Binary[T] {
	return func(xVal, yVal array.Array[T]) (array.Array[T], error) {
		if err := array.Live(xVal, yVal); err != nil {
			return nil, err
		}
		if xVal.Len() != yVal.Len() {
			return nil, errs.Errorf(errs.ErrShapeMismatch, "cannot combine %d elements with %d elements", xVal.Len(), yVal.Len())
		}
		z := make([]T, xVal.Len())
		for i := range z {
			z[i] = f(xVal.Get(i), yVal.Get(i))
		}
		return array.Make(out, z)
	}
}

// Apply computes x op y elementwise.
func Apply[T array.Number](op token.Token, x, y array.Array[T]) (array.Array[T], error) {
	kernel, _, err := BinaryOp[T](op, array.TypeOf(x), array.TypeOf(y))
	if err != nil {
		return nil, err
	}
	return kernel(x, y)
}

// Add returns x + y.
func Add[T array.Number](x, y array.Array[T]) (array.Array[T], error) {
	return Apply(token.ADD, x, y)
}

// Sub returns x - y.
func Sub[T array.Number](x, y array.Array[T]) (array.Array[T], error) {
	return Apply(token.SUB, x, y)
}

// Mul returns x * y elementwise.
func Mul[T array.Number](x, y array.Array[T]) (array.Array[T], error) {
	return Apply(token.MUL, x, y)
}

// UnaryOp returns the kernel of a unary operator given the type of its
// operand, and the type of the result of the kernel.
func UnaryOp[T array.Number](op token.Token, x array.Type) (Unary[T], array.Type, error) {
	out := array.SimilarType(x)
	switch op {
	case token.SUB:
		return func(xVal array.Array[T]) (array.Array[T], error) {
			if err := array.Live(xVal); err != nil {
				return nil, err
			}
			z := make([]T, xVal.Len())
			for i := range z {
				z[i] = -xVal.Get(i)
			}
			return array.Make(out, z)
		}, out, nil
	case token.ADD:
		return array.Copy[T], out, nil
	default:
		return nil, array.Type{}, errors.Errorf("operator %s not supported for %s", op, x)
	}
}

// Neg returns -x.
func Neg[T array.Number](x array.Array[T]) (array.Array[T], error) {
	kernel, _, err := UnaryOp[T](token.SUB, array.TypeOf(x))
	if err != nil {
		return nil, err
	}
	return kernel(x)
}

// Scale returns k * x.
func Scale[T array.Number](k T, x array.Array[T]) (array.Array[T], error) {
	return Apply[T](token.MUL, array.NewScalar(k), x)
}

// Quo returns x / y elementwise with elements of type U.
// U must be the promoted type of a division on elements of type T,
// for example float64 for integers. errs.ErrElemMismatch is returned otherwise.
func Quo[U constraints.Float, T Real](x, y array.Array[T]) (array.Array[U], error) {
	if err := array.Live(x, y); err != nil {
		return nil, err
	}
	elem := promote.ElemOf[T]()
	want, err := promote.ForOp(token.QUO, elem, elem)
	if err != nil {
		return nil, err
	}
	if got := promote.ElemOf[U](); got != want {
		return nil, errs.Errorf(errs.ErrElemMismatch, "division of %s returns %s, not %s", elem, want, got)
	}
	out, err := elementwiseType(array.TypeOf(x), array.TypeOf(y))
	if err != nil {
		return nil, errors.WithMessagef(err, "cannot divide %s by %s", x.Size(), y.Size())
	}
	out = array.SimilarType(out, array.WithElem(want))
	xStep, yStep := 1, 1
	if x.Len() == 1 {
		xStep = 0
	}
	if y.Len() == 1 {
		yStep = 0
	}
	z := make([]U, out.Size.Total())
	for i := range z {
		z[i] = U(x.Get(i*xStep)) / U(y.Get(i*yStep))
	}
	return array.Make(out, z)
}
