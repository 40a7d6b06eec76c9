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

package fmtarray_test

import (
	"strings"
	"testing"

	"github.com/gx-org/staticarrays/fmt/fmtarray"
)

func buildData(axes []int) []int32 {
	total := int32(1)
	for _, axisSize := range axes {
		total *= int32(axisSize)
	}
	data := make([]int32, total)
	for i := range total {
		data[i] = i
	}
	return data
}

func TestFmtArray(t *testing.T) {
	tests := []struct {
		data []int32
		axes []int
		want string
	}{
		{
			data: []int32{42},
			want: "int32(42)",
		},
		{
			data: []int32{1, 2, 3, 4, 5, 6},
			axes: []int{6},
			want: "[6]int32{1, 2, 3, 4, 5, 6}",
		},
		{
			axes: []int{2, 3},
			want: `
[2][3]int32{
	{0, 2, 4},
	{1, 3, 5},
}
`,
		},
		{
			axes: []int{2, 2, 2},
			want: `
[2][2][2]int32{
	{
		{0, 4},
		{2, 6},
	},
	{
		{1, 5},
		{3, 7},
	},
}
`,
		},
		{
			axes: []int{2, 3, 4},
			want: `
[2][3][4]int32{
	{
		{0, 6, 12, 18},
		{2, 8, 14, 20},
		{4, 10, 16, 22},
	},
	{
		{1, 7, 13, 19},
		{3, 9, 15, 21},
		{5, 11, 17, 23},
	},
}
`,
		},
		{
			axes: []int{1, 2, 2, 2},
			want: `
[1][2][2][2]int32{
	{
		{
			{0, 4},
			{2, 6},
		},
		{
			{1, 5},
			{3, 7},
		},
	},
}
`,
		},
	}
	for i, test := range tests {
		if test.data == nil {
			test.data = buildData(test.axes)
		}
		test.want = strings.TrimSpace(test.want)
		got := fmtarray.Sprint[int32](test.data, test.axes)
		if got != test.want {
			t.Errorf("test %d: incorrect array formatting:\naxes: %v\ndata: %v\ngot:\n%s\nwant:\n%s\n", i, test.axes, test.data, got, test.want)
		}
	}
}

func TestFmtFloat(t *testing.T) {
	got := fmtarray.SDataPrint([]float64{1.5, 2, 0.25}, []int{3})
	if want := "{1.5, 2, 0.25}"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}

func TestFmtLengthMismatch(t *testing.T) {
	got := fmtarray.Sprint([]int32{1, 2, 3}, []int{2, 2})
	if !strings.Contains(got, "does not match") {
		t.Errorf("got %q but want a length mismatch error", got)
	}
}
