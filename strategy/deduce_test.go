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
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/strategy"
)

func TestDeducingStrategy(t *testing.T) {
	single := ctor("New", 2)
	single.Parameters[0].HasDefault = true
	single.Parameters[1].HasDefault = true
	prim := ctor("New", 2, primary)
	onlyPrimary := ctor("New", 2, primary)

	cases := []struct {
		name string
		td   *apis.TypeDescriptor
		want *apis.ConstructorDescriptor
	}{
		{"single constructor with defaults", typeOf("app.DataWithDefaults", single), single},
		{"primary only", typeOf("app.PrimaryNoAnnotation", onlyPrimary), onlyPrimary},
		{"primary beside secondary", typeOf("app.PrimaryAndSecondary", ctor("NewFoo", 1), prim, ctor("NewBar", 0)), prim},
		{"default constructor only", typeOf("app.Foo", ctor("New", 0)), nil},
		{"zero-parameter primary", typeOf("app.ZeroPrimary", ctor("New", 0, primary), ctor("NewFoo", 1)), nil},
		{"two unmarked", typeOf("app.Ambiguous", ctor("New", 0), ctor("NewFoo", 1)), nil},
		{"no constructors", typeOf("app.None"), nil},
	}

	s := strategy.NewDeducingStrategy()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)
			res, ok := s.TryResolve(tc.td, eligible)
			r.True(ok)
			if tc.want == nil {
				r.Equal(apis.NoBinding, res.Outcome)
				r.Nil(res.Constructor)
				return
			}
			r.Equal(apis.Selected, res.Outcome)
			r.Same(tc.want, res.Constructor)
		})
	}
}

func TestDeducingStrategy_Disabled(t *testing.T) {
	s := strategy.NewDeducingStrategy()

	for _, td := range []*apis.TypeDescriptor{
		typeOf("app.Single", ctor("New", 2)),
		typeOf("app.Primary", ctor("New", 2, primary), ctor("NewFoo", 1)),
		nil,
	} {
		if _, ok := s.TryResolve(td, ineligible); ok {
			t.Fatalf("TryResolve(%v) with inference disabled: want fall-through", td)
		}
	}
}

func TestDeducingStrategy_DeclarationOrderIrrelevant(t *testing.T) {
	r := require.New(t)
	s := strategy.NewDeducingStrategy()

	prim := ctor("New", 2, primary)
	a, b, c := ctor("NewA", 1), ctor("NewB", 0), prim
	orders := [][]*apis.ConstructorDescriptor{{a, b, c}, {c, b, a}, {b, c, a}}
	for _, o := range orders {
		res, ok := s.TryResolve(typeOf("app.Order", o...), eligible)
		r.True(ok)
		r.Same(prim, res.Constructor)
	}
}
