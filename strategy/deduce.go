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

package strategy

import (
	"dirpx.dev/bindctor/apis"
)

// NewDeducingStrategy creates an apis.Strategy that infers a bind constructor
// for unmarked types when cfg.PrimaryConstructorEligible is set.
func NewDeducingStrategy() apis.Strategy {
	return deducingStrategy{}
}

// deducingStrategy is the last step of the chain. It only sees types with no
// autowired and no constructor-binding marks.
type deducingStrategy struct{}

// Ensure deducingStrategy implements apis.Strategy.
var _ apis.Strategy = (*deducingStrategy)(nil)

func (deducingStrategy) Name() string { return "deduce" }

// TryResolve selects, in order:
//   - the only declared constructor, if it takes parameters;
//   - the primary constructor, if it takes parameters.
//
// Anything else (zero-parameter constructors, several unmarked constructors
// without a primary) is bean-style. With inference disabled it falls through.
func (deducingStrategy) TryResolve(td *apis.TypeDescriptor, cfg apis.Config) (apis.Result, bool) {
	if td == nil || !cfg.PrimaryConstructorEligible {
		return apis.Result{}, false
	}

	ctors := marked(td, func(*apis.ConstructorDescriptor) bool { return true })
	if len(ctors) == 1 && ctors[0].ParameterCount() > 0 {
		return apis.Select(ctors[0]), true
	}
	if p := td.Primary(); p != nil && p.ParameterCount() > 0 {
		return apis.Select(p), true
	}
	return apis.NoBind(), true
}
