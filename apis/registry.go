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

import "reflect"

// Registry stores type descriptors supplied by a metadata extractor so that
// callers holding only a reflect.Type (or a type name) can resolve them.
type Registry interface {
	// Register stores td under its normalized Type, or under its Name when Type is nil.
	// Re-registering an equal descriptor is a no-op; a different one is an error.
	Register(td *TypeDescriptor) error
	// Lookup returns the descriptor registered for t (after normalization).
	// Returned descriptors are the registered snapshots and must not be
	// modified; resolvers may memoize results per descriptor.
	Lookup(t reflect.Type) (td *TypeDescriptor, ok bool)
	// LookupName returns the descriptor registered under name.
	LookupName(name string) (td *TypeDescriptor, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	// The descriptors themselves are shared and must not be modified.
	Entries() []*TypeDescriptor
	// Count returns the number of registered descriptors.
	Count() int
	// Reset clears all registered descriptors.
	Reset()
}
