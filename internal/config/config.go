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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// align.Option.
package config

import "fmt"

// Mode selects the alignment regime, that is, which unmatched ends of the target are free.
type Mode int

const (
	// Global alignment: the whole target must be consumed, gaps at both ends are penalized.
	Global Mode = iota

	// Prefix alignment: an unmatched target suffix is free. Answers how well the query fits at
	// the beginning of the target.
	Prefix

	// Infix alignment: unmatched target prefix and suffix are both free. Answers how well the
	// query fits anywhere inside the target.
	Infix
)

func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	default:
		return fmt.Sprint(int(m))
	}
}

// Task selects how much of the result is computed. More work is strictly additive: Locations
// includes everything Distance computes, Path includes everything Locations computes.
type Task int

const (
	// Distance computes the edit distance and the end locations of optimal alignments.
	Distance Task = iota

	// Locations additionally computes start locations.
	Locations

	// Path additionally computes the full edit-operation sequence.
	Path
)

func (t Task) String() string {
	switch t {
	case Distance:
		return "distance"
	case Locations:
		return "locations"
	case Path:
		return "path"
	default:
		return fmt.Sprint(int(t))
	}
}

// Config collects all configurable parameters for an alignment call.
type Config struct {
	// K bounds the edit distance. Non-negative values are a hard cap: if the optimal distance is
	// larger than K, the result distance is -1. Negative values mean unbounded: the engine grows
	// the bound until the exact distance is found.
	K int

	// Alignment regime.
	Mode Mode

	// How much of the result to compute.
	Task Task

	// Equalities lists symbol pairs that are treated as matching in addition to identity. The
	// relation is symmetric but deliberately not transitively closed.
	Equalities [][2]byte
}

// Default is the default configuration: unbounded global distance-only alignment.
var Default = Config{
	K:    -1,
	Mode: Global,
	Task: Distance,
}

// Validate rejects configurations with out-of-range discriminants. Configurations built through
// the option constructors always pass; this guards hand-built values at the API boundary.
func (c *Config) Validate() error {
	if c.Mode < Global || c.Mode > Infix {
		return fmt.Errorf("align: invalid mode %v", c.Mode)
	}
	if c.Task < Distance || c.Task > Path {
		return fmt.Errorf("align: invalid task %v", c.Task)
	}
	return nil
}

// Flag describes a single config entry. This is used to detect if options are being passed to an
// entry point that does not support them.
type Flag int

const (
	Bound Flag = 1 << iota
	ModeSelect
	TaskSelect
	Equality
)

// All enables every option. Align accepts the full set.
const All = Bound | ModeSelect | TaskSelect | Equality

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Bound:
		return "align.Bound"
	case ModeSelect:
		return "align.Global/Prefix/Infix"
	case TaskSelect:
		return "align.Locations/Path"
	case Equality:
		return "align.Equate"
	default:
		panic("never reached")
	}
}
