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

package extract

import (
	"fmt"

	"dirpx.dev/bindctor/apis"
)

// ConstructorBinding marks the constructor for configuration binding.
func ConstructorBinding() Mark {
	return func(c *apis.ConstructorDescriptor) error {
		c.ConstructorBinding = true
		return nil
	}
}

// Autowired marks the constructor as supplied by a dependency container.
func Autowired() Mark {
	return func(c *apis.ConstructorDescriptor) error {
		c.Autowired = true
		return nil
	}
}

// Primary designates the constructor as the type's primary constructor.
func Primary() Mark {
	return func(c *apis.ConstructorDescriptor) error {
		c.Primary = true
		return nil
	}
}

// Name overrides the constructor name taken from the function symbol.
func Name(name string) Mark {
	return func(c *apis.ConstructorDescriptor) error {
		c.Name = name
		return nil
	}
}

// ParamNames names the parameters in declaration order. The count must
// match the signature.
func ParamNames(names ...string) Mark {
	return func(c *apis.ConstructorDescriptor) error {
		if len(names) != len(c.Parameters) {
			return fmt.Errorf("%w: %d names for %d parameters", ErrParamNames, len(names), len(c.Parameters))
		}
		for i, n := range names {
			c.Parameters[i].Name = n
		}
		return nil
	}
}

// Defaults records that the named parameters have default values. Apply
// after ParamNames when custom names are used.
func Defaults(names ...string) Mark {
	return func(c *apis.ConstructorDescriptor) error {
		for _, n := range names {
			found := false
			for i := range c.Parameters {
				if c.Parameters[i].Name == n {
					c.Parameters[i].HasDefault = true
					found = true
				}
			}
			if !found {
				return fmt.Errorf("%w: no parameter %q", ErrParamNames, n)
			}
		}
		return nil
	}
}
