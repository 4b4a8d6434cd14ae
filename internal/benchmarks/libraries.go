// Copyright 2025 The align Authors
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

// Package benchmarks compares this module against other Go edit-distance implementations.
//
// It lives in a separate module to keep the comparison libraries out of the main module's
// dependencies.
package benchmarks

import (
	"github.com/agnivade/levenshtein"
	"github.com/seqwise/align"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Library is one edit-distance implementation under comparison. Distance returns the global
// unit-cost edit distance between query and target. Exact marks implementations that compute
// the true distance; diff-based ones only approximate it.
type Library struct {
	Name     string
	Exact    bool
	Distance func(query, target string) int
}

// Libraries lists all implementations under comparison. The first entry is this module.
var Libraries = []Library{
	{
		Name:  "seqwise/align",
		Exact: true,
		Distance: func(query, target string) int {
			res, err := align.Align([]byte(query), []byte(target))
			if err != nil {
				panic(err)
			}
			return res.Distance
		},
	},
	{
		Name:  "agnivade/levenshtein",
		Exact: true,
		Distance: func(query, target string) int {
			return levenshtein.ComputeDistance(query, target)
		},
	},
	{
		Name: "sergi/go-diff",
		Distance: func(query, target string) int {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMainRunes([]rune(query), []rune(target), false)
			return dmp.DiffLevenshtein(diffs)
		},
	},
}
