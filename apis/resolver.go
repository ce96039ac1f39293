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

// Resolver decides which constructor, if any, binds configuration onto a type.
// Implementations must be safe for concurrent use and must not modify td.
type Resolver interface {
	// Resolve returns the tagged outcome for td under cfg.
	// A nil td resolves to NoBinding.
	Resolve(td *TypeDescriptor, cfg Config) Result
}
