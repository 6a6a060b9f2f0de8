/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package resolv maps user-facing names to interchangeable implementations
// and instantiates them with keyword arguments.
//
// The pattern shows up wherever a system exposes a family of components
// behind a string: picking an activation function from a config file, an
// aggregation strategy from a CLI flag, a storage backend from an
// environment variable. resolv keeps the mapping in one place: register
// the implementations once, then resolve names, values, or defaults
// through a uniform query interface.
//
// Names are normalized before lookup (case, separators, and a per-resolver
// suffix are ignored), so "BatchNorm", "batch-norm", and "batch_norm"
// select the same element. Two specializations cover the common cases:
//
//   - ClassResolver resolves named types implementing a base interface and
//     constructs instances from keyword arguments.
//   - FunctionResolver resolves functions of a common signature and binds
//     keyword arguments for later application.
//
// The root package re-exports the everyday surface; the registry, resolver,
// and config packages expose the full machinery for advanced wiring.
//
// A minimal class resolver:
//
//	shapes, err := resolv.NewClassResolver[Shape]([]Shape{
//		&Circle{}, &Square{},
//	})
//	if err != nil { ... }
//	s, err := shapes.Make(resolv.ByName("circle"), resolv.Kwargs{"radius": 2.0})
package resolv
