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

// NewAutowiredStrategy creates an apis.Strategy that vetoes constructor
// binding when any constructor is marked for autowiring.
func NewAutowiredStrategy() apis.Strategy {
	return &autowiredStrategy{}
}

// autowiredStrategy runs first in the chain: an autowired constructor means
// a container builds the object, so configuration is bound bean-style.
type autowiredStrategy struct{}

// Ensure autowiredStrategy implements apis.Strategy.
var _ apis.Strategy = (*autowiredStrategy)(nil)

func (*autowiredStrategy) Name() string { return "autowired" }

// TryResolve returns NoBinding if any constructor is autowired, or a
// Contradiction if a different constructor is marked for constructor binding.
// Types without autowired constructors fall through.
func (*autowiredStrategy) TryResolve(td *apis.TypeDescriptor, _ apis.Config) (apis.Result, bool) {
	if td == nil {
		return apis.Result{}, false
	}

	var autowired, bound int
	var first *apis.ConstructorDescriptor
	conflict := false
	for _, c := range td.Constructors {
		if c == nil {
			continue
		}
		if c.Autowired {
			autowired++
		}
		if c.ConstructorBinding {
			bound++
		}
		// A conflict needs one autowired and one bound constructor that are
		// not the same constructor.
		if c.Autowired || c.ConstructorBinding {
			if first == nil {
				first = c
			} else if first != c {
				conflict = true
			}
		}
	}
	if autowired == 0 {
		return apis.Result{}, false
	}
	if bound == 0 || !conflict {
		return apis.NoBind(), true
	}

	return apis.Contradict(&apis.AmbiguityError{
		TypeName:     td.Name,
		Reason:       apis.AutowiredWithConstructorBinding,
		Constructors: marked(td, func(c *apis.ConstructorDescriptor) bool { return c.Autowired || c.ConstructorBinding }),
	}), true
}
