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

// Package main builds an array from the command line, indexes it and prints the result.
//
// Example:
//
//	sarray -size 2,3 -data 1,2,3,4,5,6 -index "1;:" -op json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/gx-org/staticarrays/array"
	"github.com/gx-org/staticarrays/encoding/arrayjson"
	"github.com/gx-org/staticarrays/index"
	"github.com/gx-org/staticarrays/kernels"
	"github.com/gx-org/staticarrays/size"
	"github.com/gx-org/staticarrays/tools/arrflag"
)

type options struct {
	dims  *[]int
	data  *[]string
	kind  *string
	specs *[]index.Spec
	op    *string
}

func newOptions(fs *flag.FlagSet) *options {
	return &options{
		dims:  arrflag.IntListVar(fs, "size", "comma separated extent of each axis"),
		data:  arrflag.StringListVar(fs, "data", "comma separated elements in column-major order (default 1, 2, ...)"),
		kind:  fs.String("kind", "SArray", "kind of the array: SArray, MArray, Sized or Dynamic"),
		specs: arrflag.SpecsVar(fs, "index", "index expression applied to the array, for example \"1;:\""),
		op:    fs.String("op", "", "operation applied to the result: neg, transpose, det, trace or json"),
	}
}

func (o *options) elements(sz size.Size) ([]float64, error) {
	if len(*o.data) == 0 {
		out := make([]float64, sz.Total())
		for i := range out {
			out[i] = float64(i + 1)
		}
		return out, nil
	}
	out := make([]float64, len(*o.data))
	for i, s := range *o.data {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Errorf("element %d: %q is not a number", i, s)
		}
		out[i] = v
	}
	return out, nil
}

func (o *options) build() (array.Array[float64], error) {
	sz, err := size.Of(*o.dims...)
	if err != nil {
		return nil, err
	}
	kind, err := array.KindOf(*o.kind)
	if err != nil {
		return nil, err
	}
	data, err := o.elements(sz)
	if err != nil {
		return nil, err
	}
	return array.FromFlat(data, kind, sz)
}

func apply(w io.Writer, op string, a array.Array[float64]) error {
	switch op {
	case "":
		_, err := fmt.Fprintln(w, a)
		return err
	case "neg":
		neg, err := kernels.Neg(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, neg)
		return err
	case "transpose":
		tr, err := kernels.Transpose(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, tr)
		return err
	case "det":
		det, err := kernels.Det(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, det)
		return err
	case "trace":
		tr, err := kernels.Trace(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, tr)
		return err
	case "json":
		buf, err := arrayjson.Marshal(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(buf))
		return err
	}
	return errors.Errorf("unknown operation %q", op)
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("sarray", flag.ContinueOnError)
	opts := newOptions(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	a, err := opts.build()
	if err != nil {
		return err
	}
	if len(*opts.specs) > 0 {
		if a, err = index.Get(a, *opts.specs...); err != nil {
			return err
		}
	}
	return apply(w, *opts.op, a)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
