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

package strategy_test

import (
	"dirpx.dev/bindctor/apis"
)

// ctor builds a constructor descriptor with n string parameters.
func ctor(name string, n int, mods ...func(*apis.ConstructorDescriptor)) *apis.ConstructorDescriptor {
	c := &apis.ConstructorDescriptor{Name: name}
	for i := 0; i < n; i++ {
		c.Parameters = append(c.Parameters, apis.Parameter{Name: "p" + string(rune('a'+i)), TypeName: "string"})
	}
	for _, m := range mods {
		m(c)
	}
	return c
}

func bound(c *apis.ConstructorDescriptor)     { c.ConstructorBinding = true }
func autowired(c *apis.ConstructorDescriptor) { c.Autowired = true }
func primary(c *apis.ConstructorDescriptor)   { c.Primary = true }

func typeOf(name string, ctors ...*apis.ConstructorDescriptor) *apis.TypeDescriptor {
	return &apis.TypeDescriptor{Name: name, Constructors: ctors}
}

var (
	eligible   = apis.Config{PrimaryConstructorEligible: true}
	ineligible = apis.Config{}
)
