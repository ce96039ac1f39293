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

// Package bindctor decides which constructor, if any, configuration binding
// should use for a target type.
//
// A type is described by an apis.TypeDescriptor: its declared constructors,
// their parameters and the explicit marks attached to them (constructor
// binding, autowired, primary). Resolution yields one of three outcomes:
//
//   - Selected: bind through the returned constructor.
//   - NoBinding: default-construct the value and bind by mutation.
//   - Contradiction: the marks conflict and no constructor may be guessed.
//
// Resolution runs these rules in order:
//
//  1. An autowired constructor vetoes binding. A different constructor that
//     is also marked for constructor binding is a contradiction.
//  2. Exactly one constructor marked for constructor binding is selected.
//     Two or more is a contradiction.
//  3. When implicit inference is enabled, a sole constructor with
//     parameters is selected, else a primary constructor with parameters.
//  4. Otherwise there is nothing to bind through.
//
// # Global state
//
// The package holds a read-mostly snapshot of Config, Registry, Resolver and
// Builder behind an atomic pointer. Reads never lock:
//
//	td := extract.Must(extract.Of[ServerProperties](
//		extract.Constructor(NewServerProperties, extract.ParamNames("host", "port")),
//	))
//	_ = bindctor.RegisterType(td)
//	ctor, err := bindctor.BindConstructorOf[ServerProperties]()
//
// Writers (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, SetAll)
// take a build mutex, derive a new snapshot and publish it. Unpinned layers
// are rebuilt by the Builder on every write. SetRegistry and SetResolver pin
// the layer they install so later rebuilds leave it alone until
// UnpinRegistry or UnpinResolver.
//
// The extension value set with SetExt is passed to the Builder untouched.
// The default builder reads a *slog.Logger (or builder.LoggerProvider) from
// it to trace resolution decisions.
package bindctor
