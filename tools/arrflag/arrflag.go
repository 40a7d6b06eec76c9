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

// Package arrflag provides flag types to describe arrays on the command line.
package arrflag

import (
	"flag"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gx-org/staticarrays/index"
)

type stringList struct {
	list *[]string
}

func (sl *stringList) String() string {
	if sl.list == nil {
		return ""
	}
	return strings.Join(*sl.list, ",")
}

func (sl *stringList) Set(values string) error {
	for _, value := range strings.Split(values, ",") {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		*sl.list = append(*sl.list, value)
	}
	return nil
}

// StringListVar defines a flag in a flag set to pass a comma separated list of strings.
func StringListVar(fs *flag.FlagSet, name, doc string) *[]string {
	var list []string
	fs.Var(&stringList{&list}, name, doc)
	return &list
}

// StringList returns a flag to pass a list of string from the command line.
func StringList(name, doc string) *[]string {
	return StringListVar(flag.CommandLine, name, doc)
}

type intList struct {
	list *[]int
}

func (il *intList) String() string {
	if il.list == nil {
		return ""
	}
	ss := make([]string, len(*il.list))
	for i, v := range *il.list {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

func (il *intList) Set(values string) error {
	for _, value := range strings.Split(values, ",") {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Errorf("%q is not an integer", value)
		}
		*il.list = append(*il.list, v)
	}
	return nil
}

// IntListVar defines a flag in a flag set to pass a comma separated list of integers.
func IntListVar(fs *flag.FlagSet, name, doc string) *[]int {
	var list []int
	fs.Var(&intList{&list}, name, doc)
	return &list
}

// IntList returns a flag to pass a list of integers from the command line.
func IntList(name, doc string) *[]int {
	return IntListVar(flag.CommandLine, name, doc)
}

type specList struct {
	raw   *string
	specs *[]index.Spec
}

func (sl *specList) String() string {
	if sl.raw == nil {
		return ""
	}
	return *sl.raw
}

func (sl *specList) Set(value string) error {
	specs, err := ParseSpecs(value)
	if err != nil {
		return err
	}
	*sl.raw, *sl.specs = value, specs
	return nil
}

// SpecsVar defines a flag in a flag set to pass an index expression.
// See ParseSpecs for the syntax.
func SpecsVar(fs *flag.FlagSet, name, doc string) *[]index.Spec {
	var raw string
	var specs []index.Spec
	fs.Var(&specList{raw: &raw, specs: &specs}, name, doc)
	return &specs
}

// Specs returns a flag to pass an index expression from the command line.
func Specs(name, doc string) *[]index.Spec {
	return SpecsVar(flag.CommandLine, name, doc)
}

// ParseSpecs parses an index expression.
// Specifiers are separated by semicolons. A specifier is one of:
//
//	2       an integer
//	:       a full axis
//	1:3     a range
//	{0 2}   a static list of integers
//	[0 2]   a dynamic list of integers
func ParseSpecs(expr string) ([]index.Spec, error) {
	var specs []index.Spec
	for _, field := range strings.Split(expr, ";") {
		field = strings.TrimSpace(field)
		spec, err := parseSpec(field)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid index specifier %q", field)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Fields(s) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseSpec(s string) (index.Spec, error) {
	switch {
	case s == ":":
		return index.Full(), nil
	case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
		ints, err := parseInts(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return index.Static(ints...), nil
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		ints, err := parseInts(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return index.Dynamic(ints...), nil
	case strings.Contains(s, ":"):
		lo, hi, _ := strings.Cut(s, ":")
		bounds, err := parseInts(lo + " " + hi)
		if err != nil {
			return nil, err
		}
		if len(bounds) != 2 {
			return nil, errors.Errorf("a range requires two bounds")
		}
		return index.Range(bounds[0], bounds[1]), nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return index.Int(i), nil
}
