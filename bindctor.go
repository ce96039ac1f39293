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

package bindctor

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/builder"
	"dirpx.dev/bindctor/config"
)

// init publishes the initial snapshot: default config and builder.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	st.Store(s.rebuild(nil, nil))
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("bindctor: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("bindctor: builder returned nil resolver")
	// ErrUnknownType is returned when no descriptor is registered for a type.
	ErrUnknownType = errors.New("bindctor: no type descriptor registered")
)

// Resolve decides how td is bound using the global resolver. eligible
// overrides Config().PrimaryConstructorEligible for this call.
func Resolve(td *apis.TypeDescriptor, eligible bool) apis.Result {
	s := st.Load()
	cfg := s.cfg
	cfg.PrimaryConstructorEligible = eligible
	return s.res.Resolve(td, cfg)
}

// BindConstructor looks up the registered descriptor for t and returns its
// bind constructor. A nil constructor with a nil error means bean-style
// binding. A contradiction is returned as an *apis.AmbiguityError.
func BindConstructor(t reflect.Type, eligible bool) (*apis.ConstructorDescriptor, error) {
	s := st.Load()
	td, ok := s.reg.Lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w for %v", ErrUnknownType, t)
	}
	cfg := s.cfg
	cfg.PrimaryConstructorEligible = eligible
	return s.res.Resolve(td, cfg).Unpack()
}

// BindConstructorOf is BindConstructor for the type parameter T, using the
// configured default for PrimaryConstructorEligible.
func BindConstructorOf[T any]() (*apis.ConstructorDescriptor, error) {
	return BindConstructor(reflect.TypeOf((*T)(nil)).Elem(), st.Load().cfg.PrimaryConstructorEligible)
}

// RegisterType adds a descriptor to the global registry.
func RegisterType(td *apis.TypeDescriptor) error {
	return st.Load().reg.Register(td)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged, except for ext
// which is always replaced. Registry and resolver are rebuilt (and unpinned)
// unless given, in which case they are pinned.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	update(func(old *state) *state {
		n := *old
		if cfg != nil {
			n.cfg = *cfg
		}
		n.ext = ext
		if bld != nil {
			n.bld = bld
		}
		n.reg, n.preg = reg, reg != nil
		n.res, n.pres = res, res != nil
		if n.reg == nil {
			n.reg = n.bld.BuildRegistry(n.cfg, old.reg, n.ext)
		}
		if n.res == nil {
			n.res = n.bld.BuildResolver(n.cfg, n.reg, old.res, n.ext)
		}
		return &n
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds unpinned layers.
func SetConfig(cfg apis.Config) {
	update(func(old *state) *state {
		n := *old
		n.cfg = cfg
		return n.rebuild(old.reg, old.res)
	})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry pins reg as the global registry and rebuilds the resolver
// unless it is pinned. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(old *state) *state {
		n := *old
		n.reg, n.preg = reg, true
		return n.rebuild(old.reg, old.res)
	})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver pins res as the global resolver. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(old *state) *state {
		n := *old
		n.res, n.pres = res, true
		return &n
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds unpinned layers with it.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(old *state) *state {
		n := *old
		n.bld = b
		return n.rebuild(old.reg, old.res)
	})
}

// SetExt replaces the extension value and rebuilds unpinned layers.
// The default builder accepts a *slog.Logger or builder.LoggerProvider.
func SetExt[T any](ext T) {
	update(func(old *state) *state {
		n := *old
		n.ext = ext
		return n.rebuild(old.reg, old.res)
	})
}

// ExtAs returns the extension value as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool { return st.Load().preg }

// PinRegistry stops automatic rebuilds of the global registry.
func PinRegistry() { setPins(func(n *state) { n.preg = true }) }

// UnpinRegistry resumes automatic rebuilds of the global registry.
func UnpinRegistry() { setPins(func(n *state) { n.preg = false }) }

// IsResolverPinned reports whether the global resolver is pinned.
func IsResolverPinned() bool { return st.Load().pres }

// PinResolver stops automatic rebuilds of the global resolver.
func PinResolver() { setPins(func(n *state) { n.pres = true }) }

// UnpinResolver resumes automatic rebuilds of the global resolver.
func UnpinResolver() { setPins(func(n *state) { n.pres = false }) }

func setPins(fn func(*state)) {
	update(func(old *state) *state {
		n := *old
		fn(&n)
		return &n
	})
}

// update derives a new snapshot from the current one under buildMu and
// publishes it. Builders must never return nil layers.
func update(derive func(old *state) *state) {
	buildMu.Lock()
	defer buildMu.Unlock()

	n := derive(st.Load())
	if n.reg == nil {
		panic(ErrNilRegistry)
	}
	if n.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(n)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global snapshot. A published state is never mutated;
// writers copy it, modify the copy and swap it in.
type state struct {
	cfg apis.Config
	// ext is the opaque extension value handed to the builder.
	ext any
	reg apis.Registry
	res apis.Resolver
	bld apis.Builder
	// preg and pres mark pinned layers that rebuilds leave untouched.
	preg bool
	pres bool
}

// rebuild replaces the unpinned layers of s using its builder.
func (s *state) rebuild(prevReg apis.Registry, prevRes apis.Resolver) *state {
	if !s.preg {
		s.reg = s.bld.BuildRegistry(s.cfg, prevReg, s.ext)
	}
	if !s.pres {
		s.res = s.bld.BuildResolver(s.cfg, s.reg, prevRes, s.ext)
	}
	return s
}
