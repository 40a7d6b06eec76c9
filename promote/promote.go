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

// Package promote describes element types of arrays and how they promote
// under arithmetic.
package promote

import (
	"go/token"
	"math/big"
	"reflect"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/staticarrays/errs"
)

// Class groups element types with the same promotion behavior.
type Class int

// Classes of element types, ordered from the narrowest to the widest.
const (
	Other Class = iota
	Boolean
	Unsigned
	Signed
	BigInt
	Float
	BigFloat
	Complex
)

var classNames = map[Class]string{
	Other:    "other",
	Boolean:  "boolean",
	Unsigned: "unsigned",
	Signed:   "signed",
	BigInt:   "big integer",
	Float:    "float",
	BigFloat: "big float",
	Complex:  "complex",
}

func (c Class) String() string {
	return classNames[c]
}

// Elem describes the element type of an array.
// The zero value is an invalid element type.
type Elem struct {
	typ reflect.Type
}

// ElemOf returns the element type descriptor of T.
func ElemOf[T any]() Elem {
	return Elem{typ: reflect.TypeFor[T]()}
}

// Element types used by the promotion rules.
var (
	Bool        = ElemOf[bool]()
	Int8        = ElemOf[int8]()
	Int16       = ElemOf[int16]()
	Int32       = ElemOf[int32]()
	Int64       = ElemOf[int64]()
	Uint8       = ElemOf[uint8]()
	Uint16      = ElemOf[uint16]()
	Uint32      = ElemOf[uint32]()
	Uint64      = ElemOf[uint64]()
	Float32     = ElemOf[float32]()
	Float64     = ElemOf[float64]()
	Complex64   = ElemOf[complex64]()
	Complex128  = ElemOf[complex128]()
	BigIntPtr   = ElemOf[*big.Int]()
	BigFloatPtr = ElemOf[*big.Float]()
)

var (
	bigIntType   = reflect.TypeFor[*big.Int]()
	bigFloatType = reflect.TypeFor[*big.Float]()
)

// IsValid returns true if the descriptor refers to a Go type.
func (e Elem) IsValid() bool {
	return e.typ != nil
}

// Type returns the Go type of the elements.
func (e Elem) Type() reflect.Type {
	return e.typ
}

// Class returns the promotion class of the element type.
func (e Elem) Class() Class {
	if e.typ == nil {
		return Other
	}
	switch e.typ {
	case bigIntType:
		return BigInt
	case bigFloatType:
		return BigFloat
	}
	switch e.typ.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Unsigned
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Complex64, reflect.Complex128:
		return Complex
	}
	return Other
}

func (e Elem) bits() int {
	switch e.Class() {
	case Boolean:
		return 1
	case Signed, Unsigned, Float, Complex:
		return e.typ.Bits()
	}
	return 0
}

// String returns the name of the Go type.
func (e Elem) String() string {
	if e.typ == nil {
		return "invalid"
	}
	return e.typ.String()
}

// DType returns the backend data type of the element type.
// It returns dtype.Invalid if the backend does not support the type.
func (e Elem) DType() dtype.DataType {
	switch e.Class() {
	case Boolean:
		return dtype.Bool
	case Float:
		if e.bits() == 32 {
			return dtype.Float32
		}
		return dtype.Float64
	case Signed:
		switch e.bits() {
		case 32:
			return dtype.Int32
		case 64:
			return dtype.Int64
		}
	case Unsigned:
		switch e.bits() {
		case 32:
			return dtype.Uint32
		case 64:
			return dtype.Uint64
		}
	}
	return dtype.Invalid
}

// FromDType returns the element type of a backend data type.
func FromDType(dt dtype.DataType) (Elem, error) {
	switch dt {
	case dtype.Bool:
		return Bool, nil
	case dtype.Float32:
		return Float32, nil
	case dtype.Float64:
		return Float64, nil
	case dtype.Int32:
		return Int32, nil
	case dtype.Int64:
		return Int64, nil
	case dtype.Uint32:
		return Uint32, nil
	case dtype.Uint64:
		return Uint64, nil
	}
	return Elem{}, errs.Errorf(errs.ErrElemMismatch, "no element type for backend data type %s", dt.String())
}

// ArithmeticClosure returns the element type values of e promote to under
// a combination of +, -, * and /.
//
// Booleans and fixed-width integers promote to float64, big integers to
// big floats. Other types are closed under arithmetic.
func ArithmeticClosure(e Elem) Elem {
	switch e.Class() {
	case Boolean, Signed, Unsigned:
		return Float64
	case BigInt:
		return BigFloatPtr
	}
	return e
}

func sized(class Class, bits int) Elem {
	switch class {
	case Unsigned:
		switch {
		case bits <= 8:
			return Uint8
		case bits <= 16:
			return Uint16
		case bits <= 32:
			return Uint32
		}
		return Uint64
	case Signed:
		switch {
		case bits <= 8:
			return Int8
		case bits <= 16:
			return Int16
		case bits <= 32:
			return Int32
		}
		return Int64
	case Float:
		if bits <= 32 {
			return Float32
		}
		return Float64
	case Complex:
		if bits <= 64 {
			return Complex64
		}
		return Complex128
	}
	return Elem{}
}

// Binary returns the element type both operands of a binary operator
// promote to.
//
// Identical types promote to themselves. Booleans promote to the other
// operand type. Otherwise, the operand with the widest class wins and the
// width of the result is the largest width of both operands.
func Binary(a, b Elem) (Elem, error) {
	if a == b {
		return a, nil
	}
	ca, cb := a.Class(), b.Class()
	if ca == Other || cb == Other {
		return Elem{}, errs.Errorf(errs.ErrElemMismatch, "cannot promote %s and %s", a, b)
	}
	if ca == Boolean {
		return b, nil
	}
	if cb == Boolean {
		return a, nil
	}
	if ca < cb {
		a, b, ca, cb = b, a, cb, ca
	}
	switch ca {
	case BigInt, BigFloat:
		return a, nil
	case Float:
		if cb == BigInt {
			return BigFloatPtr, nil
		}
		if cb != Float {
			return a, nil
		}
	case Complex:
		if cb == BigInt || cb == BigFloat {
			return Elem{}, errs.Errorf(errs.ErrElemMismatch, "cannot promote %s and %s", a, b)
		}
		if cb != Complex && cb != Float {
			return a, nil
		}
		bits := b.bits()
		if cb == Float {
			bits *= 2
		}
		return sized(Complex, max(a.bits(), bits)), nil
	}
	if ca == cb && a.bits() == b.bits() {
		// Same class and width but different named types.
		return sized(ca, a.bits()), nil
	}
	bits := max(a.bits(), b.bits())
	if ca == Signed && cb == Unsigned && b.bits() >= a.bits() {
		bits = min(b.bits()*2, 64)
	}
	return sized(ca, bits), nil
}

// ForOp returns the element type of the result of a binary operator.
// Division promotes integer and boolean operands to a floating-point type.
func ForOp(op token.Token, a, b Elem) (Elem, error) {
	e, err := Binary(a, b)
	if err != nil {
		return Elem{}, err
	}
	if op == token.QUO {
		return ArithmeticClosure(e), nil
	}
	return e, nil
}
