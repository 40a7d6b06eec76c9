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

package kernels

import (
	"math"

	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/size"
)

// BLASThreshold is the largest extent for which MatMul reads its operands
// in place. Above it, the left operand is first copied in row-major order.
const BLASThreshold = 14

func checkMatrix[T any](a array.Array[T], op string) error {
	if err := array.Live(a); err != nil {
		return err
	}
	if a.Size().Rank() != 2 {
		return errs.Errorf(errs.ErrRankMismatch, "%s requires a matrix but got size %s", op, a.Size())
	}
	return nil
}

// Transpose returns the transpose of a matrix.
func Transpose[T any](a array.Array[T]) (array.Array[T], error) {
	if err := checkMatrix(a, "Transpose"); err != nil {
		return nil, err
	}
	rows, cols := a.Size().Dim(0), a.Size().Dim(1)
	out, err := size.Of(cols, rows)
	if err != nil {
		return nil, err
	}
	z := make([]T, a.Len())
	for j := range cols {
		for i := range rows {
			z[j+i*cols] = a.Get(i + j*rows)
		}
	}
	return array.Make(array.SimilarType(array.TypeOf(a), array.WithSize(out)), z)
}

// MatMul returns the matrix product of x and y.
// x is a matrix. y is a matrix or a vector.
func MatMul[T array.Number](x, y array.Array[T]) (array.Array[T], error) {
	if err := checkMatrix(x, "MatMul"); err != nil {
		return nil, err
	}
	if err := array.Live(y); err != nil {
		return nil, err
	}
	m, k := x.Size().Dim(0), x.Size().Dim(1)
	var n int
	var out size.Size
	var err error
	switch y.Size().Rank() {
	case 1:
		n = 1
		out, err = size.Of(m)
	case 2:
		n = y.Size().Dim(1)
		out, err = size.Of(m, n)
	default:
		return nil, errs.Errorf(errs.ErrRankMismatch, "MatMul requires a matrix or a vector but got size %s", y.Size())
	}
	if err != nil {
		return nil, err
	}
	if y.Size().Dim(0) != k {
		return nil, errs.Errorf(errs.ErrShapeMismatch, "cannot multiply a matrix of size %s with an array of size %s", x.Size(), y.Size())
	}
	at := func(i, p int) T { return x.Get(i + p*m) }
	if m > BLASThreshold || k > BLASThreshold || n > BLASThreshold {
		rowMajor := make([]T, x.Len())
		for p := range k {
			for i := range m {
				rowMajor[p+i*k] = x.Get(i + p*m)
			}
		}
		at = func(i, p int) T { return rowMajor[p+i*k] }
	}
	z := make([]T, m*n)
	for j := range n {
		for i := range m {
			var sum T
			for p := range k {
				sum += at(i, p) * y.Get(p+j*k)
			}
			z[i+j*m] = sum
		}
	}
	return array.Make(array.SimilarType(array.TypeOf(x), array.WithSize(out)), z)
}

// Dot returns the sum of the elementwise product of x and y.
func Dot[T array.Number](x, y array.Array[T]) (T, error) {
	var sum T
	if err := array.Live(x, y); err != nil {
		return sum, err
	}
	if _, err := SameSize(x.Size(), y.Size()); err != nil {
		return sum, err
	}
	for i := range x.Len() {
		sum += x.Get(i) * y.Get(i)
	}
	return sum, nil
}

// Trace returns the sum of the diagonal of a square matrix.
func Trace[T array.Number](a array.Array[T]) (T, error) {
	var sum T
	if err := array.Live(a); err != nil {
		return sum, err
	}
	if !a.Size().IsSquare() {
		return sum, errs.Errorf(errs.ErrShapeMismatch, "Trace requires a square matrix but got size %s", a.Size())
	}
	n := a.Size().Dim(0)
	for i := range n {
		sum += a.Get(i + i*n)
	}
	return sum, nil
}

// DetKernel computes the determinant of a square matrix given its
// elements in column-major order.
type DetKernel func(flat []float64) float64

var detKernels = map[size.Tag]DetKernel{
	size.Must(0, 0).Tag(): func([]float64) float64 { return 1 },
	size.Must(1, 1).Tag(): det1,
	size.Must(2, 2).Tag(): det2,
	size.Must(3, 3).Tag(): det3,
}

// RegisterDet registers a kernel computing the determinant of matrices of a given size.
// It is not safe for concurrent use and is meant to be called from init functions.
func RegisterDet(sz size.Size, kernel DetKernel) error {
	if !sz.IsSquare() {
		return errs.Errorf(errs.ErrShapeMismatch, "cannot register a determinant for size %s", sz)
	}
	detKernels[sz.Tag()] = kernel
	return nil
}

func det1(a []float64) float64 {
	return a[0]
}

func det2(a []float64) float64 {
	return a[0]*a[3] - a[2]*a[1]
}

func det3(a []float64) float64 {
	return a[0]*(a[4]*a[8]-a[7]*a[5]) -
		a[3]*(a[1]*a[8]-a[7]*a[2]) +
		a[6]*(a[1]*a[5]-a[4]*a[2])
}

// detLU computes a determinant with a LU decomposition with partial pivoting.
func detLU(n int, a []float64) float64 {
	det := 1.0
	for col := range n {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row+col*n]) > math.Abs(a[pivot+col*n]) {
				pivot = row
			}
		}
		if a[pivot+col*n] == 0 {
			return 0
		}
		if pivot != col {
			for j := range n {
				a[col+j*n], a[pivot+j*n] = a[pivot+j*n], a[col+j*n]
			}
			det = -det
		}
		diag := a[col+col*n]
		det *= diag
		for row := col + 1; row < n; row++ {
			factor := a[row+col*n] / diag
			for j := col + 1; j < n; j++ {
				a[row+j*n] -= factor * a[col+j*n]
			}
		}
	}
	return det
}

// Det returns the determinant of a square matrix.
// Matrices up to 3x3 use closed-form kernels. Larger matrices use a LU decomposition.
func Det[T Real](a array.Array[T]) (float64, error) {
	if err := array.Live(a); err != nil {
		return 0, err
	}
	if !a.Size().IsSquare() {
		return 0, errs.Errorf(errs.ErrShapeMismatch, "Det requires a square matrix but got size %s", a.Size())
	}
	flat := make([]float64, a.Len())
	for i := range flat {
		flat[i] = float64(a.Get(i))
	}
	if kernel, ok := detKernels[a.Size().Tag()]; ok {
		return kernel(flat), nil
	}
	return detLU(a.Size().Dim(0), flat), nil
}
