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

package apis

// Config carries read-only resolution knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// PrimaryConstructorEligible enables implicit inference: a sole constructor
	// with parameters, or a primary constructor with parameters, is selected
	// even without an explicit constructor-binding mark. If false, only
	// explicitly marked constructors are ever selected.
	PrimaryConstructorEligible bool

	// MaxUnwrap limits pointer unwrapping depth when normalizing registry
	// keys (*T, **T -> T).
	MaxUnwrap int

	// Cache enables memoization of resolution results per descriptor.
	Cache bool
}
