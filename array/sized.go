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

package array

import (
	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/size"
)

type (
	wrapConfig struct {
		checkLiveness bool
	}

	// WrapOption configures a Sized array.
	WrapOption func(*wrapConfig)
)

// WithLivenessCheck verifies on every access that the Dynamic array wrapped
// by a Sized array has not been resized since the Sized array was created.
// This option has no effect when wrapping a slice.
func WithLivenessCheck() WrapOption {
	return func(cfg *wrapConfig) {
		cfg.checkLiveness = true
	}
}

// Sized annotates a buffer owned by the caller with a fixed size.
//
// A Sized array does not copy the buffer: writes through the Sized array are
// visible in the buffer and vice versa. Two Sized arrays wrapping the same
// buffer alias each other. The caller must not reallocate or shrink the
// buffer while the Sized array is in use.
type Sized[T any] struct {
	size  size.Size
	buf   []T
	owner *Dynamic[T]
	cfg   wrapConfig
}

var _ Mutable[float32] = (*Sized[float32])(nil)

// Wrap returns a Sized array over buf.
// The length of buf is checked once against the size: it returns
// errs.ErrShapeMismatch if the two disagree.
func Wrap[T any](buf []T, sz size.Size, opts ...WrapOption) (*Sized[T], error) {
	if len(buf) != sz.Total() {
		return nil, errs.Errorf(errs.ErrShapeMismatch, "cannot wrap a buffer of length %d with size %s (%d elements)", len(buf), sz, sz.Total())
	}
	a := &Sized[T]{size: sz, buf: buf}
	for _, opt := range opts {
		opt(&a.cfg)
	}
	return a, nil
}

// WrapDynamic returns a Sized array over the storage of a Dynamic array.
// Only the total number of elements is checked against the size.
func WrapDynamic[T any](d *Dynamic[T], sz size.Size, opts ...WrapOption) (*Sized[T], error) {
	a, err := Wrap(d.data, sz, opts...)
	if err != nil {
		return nil, err
	}
	a.owner = d
	return a, nil
}

// Reshape returns a new Sized array over the same buffer.
// It returns errs.ErrShapeMismatch if the new size does not have the
// same number of elements.
func (a *Sized[T]) Reshape(sz size.Size) (*Sized[T], error) {
	if err := a.Live(); err != nil {
		return nil, err
	}
	r, err := Wrap(a.buf, sz)
	if err != nil {
		return nil, err
	}
	r.owner, r.cfg = a.owner, a.cfg
	return r, nil
}

// Live returns an error if the Dynamic array wrapped with WithLivenessCheck
// has been resized or reallocated. It always returns nil otherwise.
func (a *Sized[T]) Live() error {
	if !a.cfg.checkLiveness || a.owner == nil {
		return nil
	}
	if len(a.owner.data) != len(a.buf) {
		return errs.Errorf(errs.ErrShapeMismatch, "wrapped buffer resized from %d to %d elements", len(a.buf), len(a.owner.data))
	}
	if len(a.buf) > 0 && &a.owner.data[0] != &a.buf[0] {
		return errs.Errorf(errs.ErrShapeMismatch, "wrapped buffer has been reallocated")
	}
	return nil
}

// Size of the array.
func (a *Sized[T]) Size() size.Size {
	return a.size
}

// Kind of the array.
func (*Sized[T]) Kind() Kind {
	return SizedKind
}

// Len returns the number of elements in the array.
func (a *Sized[T]) Len() int {
	return len(a.buf)
}

// At returns the element at a linear index.
func (a *Sized[T]) At(i int) (T, error) {
	var zero T
	if err := a.Live(); err != nil {
		return zero, err
	}
	if err := checkIndex(i, len(a.buf), a.size); err != nil {
		return zero, err
	}
	return a.buf[i], nil
}

// Get returns the element at a linear index without checking bounds.
// It panics if the liveness check is enabled and fails.
func (a *Sized[T]) Get(i int) T {
	a.mustLive()
	return a.buf[i]
}

// Set the element at a linear index.
func (a *Sized[T]) Set(i int, v T) error {
	if err := a.Live(); err != nil {
		return err
	}
	if err := checkIndex(i, len(a.buf), a.size); err != nil {
		return err
	}
	a.buf[i] = v
	return nil
}

// Flat returns the wrapped buffer.
// It panics if the liveness check is enabled and fails.
func (a *Sized[T]) Flat() []T {
	a.mustLive()
	return a.buf
}

func (a *Sized[T]) mustLive() {
	if !a.cfg.checkLiveness {
		return
	}
	if err := a.Live(); err != nil {
		panic(err)
	}
}

// Shape returns the extent of each axis.
func (a *Sized[T]) Shape() []int {
	return a.size.Dims()
}

// String representation of the array.
func (a *Sized[T]) String() string {
	return formatArray(a.Kind(), a.buf, a.size)
}
