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

// Package fmtarray formats arrays stored in column-major order into strings.
//
// Matrices are printed row by row. Arrays with more than two axes are printed
// as nested blocks following the order of the axes in the type header: the
// first axis is the outermost and the last two axes form the innermost matrices.
package fmtarray

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

func computeIndex(strides []int, p []int) int {
	var index int
	for i, v := range p {
		index += strides[i] * v
	}
	return index
}

type builder[T any] struct {
	w       *strings.Builder
	data    []T
	axes    []int
	strides []int
}

func newBuilder[T any](data []T, axes []int) (*builder[T], error) {
	b := &builder[T]{
		w:       &strings.Builder{},
		data:    data,
		axes:    axes,
		strides: axesStrides(axes),
	}
	total := 1
	for _, size := range b.axes {
		total *= size
	}
	if total != len(data) {
		return b, errors.Errorf("len(data)=%d does not match axes %v=%d", len(data), axes, total)
	}
	return b, nil
}

func (b *builder[T]) toValue(x T) string {
	var fmtstr string
	switch any(x).(type) {
	case float32:
		fmtstr = "%.6f"
	case float64:
		fmtstr = "%.10f"
	default:
		return fmt.Sprint(x)
	}

	result := fmt.Sprintf(fmtstr, x)
	if strings.ContainsRune(result, '.') {
		// Remove any number of trailing zeroes after the decimal point, and remove
		// the point itself if there are no digits after it.
		result = strings.TrimRight(result, "0")
		result = strings.TrimSuffix(result, ".")
	}
	return result
}

func (b *builder[T]) printScalar() {
	b.w.WriteString("(")
	b.w.WriteString(b.toValue(b.data[0]))
	b.w.WriteString(")")
}

// printVector prints the elements along the last axis.
func (b *builder[T]) printVector(p []int) {
	axis := len(b.axes) - 1
	pos := append([]int{}, p...)
	vec := make([]string, b.axes[axis])
	for i := range vec {
		pos[axis] = i
		vec[i] = b.toValue(b.data[computeIndex(b.strides, pos)])
	}
	b.w.WriteString(fmt.Sprintf("{%s}", strings.Join(vec, ", ")))
}

// printMatrix prints the last two axes: one row per element of the
// second to last axis.
func (b *builder[T]) printMatrix(indent string, p []int) {
	axis := len(b.axes) - 2
	pos := append([]int{}, p...)
	b.w.WriteString(indent + "{\n")
	for i := 0; i < b.axes[axis]; i++ {
		b.w.WriteString(indent + tab)
		pos[axis] = i
		b.printVector(pos)
		b.w.WriteString(",\n")
	}
	b.w.WriteString(indent + "}")
}

const tab = "\t"

// printRec prints the axes from the first one, outermost, to the last one.
func (b *builder[T]) printRec(indent string, p []int, axis int) {
	if axis == len(b.axes)-2 {
		b.printMatrix(indent, p)
		return
	}
	pos := append([]int{}, p...)
	b.w.WriteString(indent + "{\n")
	for i := 0; i < b.axes[axis]; i++ {
		pos[axis] = i
		b.printRec(indent+tab, pos, axis+1)
		b.w.WriteString(",\n")
	}
	b.w.WriteString(indent + "}")
}

func (b *builder[T]) printType() {
	shapes := make([]string, len(b.axes))
	for i, size := range b.axes {
		shapes[i] = fmt.Sprintf("[%d]", size)
	}
	shapes = append(shapes, reflect.TypeFor[T]().String())
	b.w.WriteString(strings.Join(shapes, ""))
}

func axesStrides(axes []int) []int {
	strides := make([]int, len(axes))
	stride := 1
	for i, d := range axes {
		strides[i] = stride
		stride *= d
	}
	return strides
}

func (b *builder[T]) sDataPrint() {
	pos := make([]int, len(b.axes))
	switch len(b.axes) {
	case 0:
		b.printScalar()
	case 1:
		b.printVector(pos)
	case 2:
		b.printMatrix("", pos)
	default:
		b.printRec("", pos, 0)
	}
}

// SDataPrint returns a string representation of the content of an array without the type.
// data is stored in column-major order.
func SDataPrint[T any](data []T, axes []int) string {
	b, err := newBuilder[T](data, axes)
	if err != nil {
		return err.Error()
	}
	b.sDataPrint()
	return b.w.String()
}

// Sprint returns a string representation of an array.
// data is stored in column-major order.
func Sprint[T any](data []T, axes []int) string {
	b, err := newBuilder[T](data, axes)
	if err != nil {
		return err.Error()
	}
	b.printType()
	b.sDataPrint()
	return b.w.String()
}
