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
	"fmt"

	"github.com/gx-org/staticarrays/errs"
	"github.com/gx-org/staticarrays/promote"
	"github.com/gx-org/staticarrays/size"
)

// Kind identifies the concrete form of an array.
type Kind int

// Kinds provided by this package.
const (
	InvalidKind Kind = iota
	// ValueKind is the kind of SArray.
	ValueKind
	// MutableKind is the kind of MArray.
	MutableKind
	// SizedKind is the kind of Sized.
	SizedKind
	// DynamicKind is the kind of Dynamic.
	DynamicKind
)

// KindInfo describes a kind of array.
type KindInfo struct {
	// Name of the kind.
	Name string

	// Mutable is true if arrays of the kind implement Mutable.
	Mutable bool

	// Similar returns the type of the result of an operation on an array
	// of type src, given the element type and the size of the result.
	// If nil, the result has the kind of src.
	Similar func(src Type, elem promote.Elem, sz size.Size) Type

	// Build returns a new array of the given type.
	// flat is a []T where T is the Go type of typ.Elem. The returned
	// value must implement Array[T].
	Build func(typ Type, flat any) (any, error)
}

var kinds = []*KindInfo{
	InvalidKind: {Name: "Invalid"},
	ValueKind:   {Name: "SArray"},
	MutableKind: {Name: "MArray", Mutable: true},
	SizedKind:   {Name: "Sized", Mutable: true},
	DynamicKind: {Name: "Dynamic", Mutable: true},
}

// RegisterKind registers a new kind of array and returns its identifier.
// It is not safe for concurrent use and is meant to be called from init functions.
func RegisterKind(info KindInfo) Kind {
	if info.Build == nil {
		panic(fmt.Sprintf("kind %q registered without a Build function", info.Name))
	}
	kinds = append(kinds, &info)
	return Kind(len(kinds) - 1)
}

// Info returns the description of a kind.
func (k Kind) Info() (*KindInfo, error) {
	if k <= InvalidKind || int(k) >= len(kinds) {
		return nil, errs.Errorf(errs.ErrUnknownKind, "kind %d", int(k))
	}
	return kinds[k], nil
}

// IsMutable returns true if arrays of the kind can be set in place.
func (k Kind) IsMutable() bool {
	info, err := k.Info()
	if err != nil {
		return false
	}
	return info.Mutable
}

// IsStatic returns true if the size of arrays of the kind is fixed.
func (k Kind) IsStatic() bool {
	return k != InvalidKind && k != DynamicKind
}

func (k Kind) String() string {
	info, err := k.Info()
	if err != nil {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return info.Name
}

// KindOf returns the kind registered with a given name.
func KindOf(name string) (Kind, error) {
	for i, info := range kinds {
		if Kind(i) != InvalidKind && info.Name == name {
			return Kind(i), nil
		}
	}
	return InvalidKind, errs.Errorf(errs.ErrUnknownKind, "no kind named %q", name)
}
