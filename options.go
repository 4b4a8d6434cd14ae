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

package align

import "github.com/seqwise/align/internal/config"

// Option configures an [Align] call.
type Option = config.Option

// Bound caps the edit distance at k. When no alignment within k exists the result distance is
// -1 and no locations are reported. A negative k means unbounded, which is also the default:
// the search then widens its bound until the exact distance is found.
//
// A tight bound is the single most effective performance lever, the work is proportional to the
// band the bound admits.
func Bound(k int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.K = k
		return config.Bound
	}
}

// Global selects global alignment: the whole query against the whole target, gaps at both ends
// are penalized. This is the default.
func Global() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.Global
		return config.ModeSelect
	}
}

// Prefix selects prefix alignment: an unmatched target suffix is free. Answers how well the
// query matches the beginning of the target.
func Prefix() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.Prefix
		return config.ModeSelect
	}
}

// Infix selects infix alignment: unmatched target prefix and suffix are both free. Answers
// where the query occurs approximately inside the target.
func Infix() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.Infix
		return config.ModeSelect
	}
}

// Locations requests start locations in addition to the distance and end locations.
func Locations() Option {
	return func(cfg *config.Config) config.Flag {
		if cfg.Task < config.Locations {
			cfg.Task = config.Locations
		}
		return config.TaskSelect
	}
}

// Path requests the full edit-operation sequence. Implies [Locations].
func Path() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Task = config.Path
		return config.TaskSelect
	}
}

// Equate declares the symbols a and b to match each other in addition to identity. The relation
// is symmetric but not transitive: Equate('a', 'b') and Equate('b', 'c') does not make 'a'
// match 'c'. Repeat the option for every pair that should match.
func Equate(a, b byte) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Equalities = append(cfg.Equalities, [2]byte{a, b})
		return config.Equality
	}
}
