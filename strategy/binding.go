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

// NewConstructorBindingStrategy creates an apis.Strategy that honors explicit
// constructor-binding marks.
func NewConstructorBindingStrategy() apis.Strategy {
	return &bindingStrategy{}
}

// bindingStrategy selects the single explicitly marked constructor,
// regardless of its arity or primary status.
type bindingStrategy struct{}

// Ensure bindingStrategy implements apis.Strategy.
var _ apis.Strategy = (*bindingStrategy)(nil)

func (*bindingStrategy) Name() string { return "constructor-binding" }

// TryResolve selects the marked constructor. More than one mark is a
// Contradiction; no mark falls through.
func (*bindingStrategy) TryResolve(td *apis.TypeDescriptor, _ apis.Config) (apis.Result, bool) {
	if td == nil {
		return apis.Result{}, false
	}
	bound := marked(td, func(c *apis.ConstructorDescriptor) bool { return c.ConstructorBinding })
	switch len(bound) {
	case 0:
		return apis.Result{}, false
	case 1:
		return apis.Select(bound[0]), true
	default:
		return apis.Contradict(&apis.AmbiguityError{
			TypeName:     td.Name,
			Reason:       apis.MultipleConstructorBinding,
			Constructors: bound,
		}), true
	}
}

// marked returns the non-nil constructors of td matching keep, in declaration order.
func marked(td *apis.TypeDescriptor, keep func(*apis.ConstructorDescriptor) bool) []*apis.ConstructorDescriptor {
	var out []*apis.ConstructorDescriptor
	for _, c := range td.Constructors {
		if c != nil && keep(c) {
			out = append(out, c)
		}
	}
	return out
}
