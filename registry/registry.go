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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/config"
	"dirpx.dev/bindctor/descriptor"
	uref "dirpx.dev/bindctor/utils/reflect"
)

var (
	// ErrNilDescriptor is returned when a nil descriptor is provided.
	ErrNilDescriptor = errors.New("bindctor(registry): nil type descriptor provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type or name with a different descriptor.
	ErrConflictingRegistration = errors.New("bindctor(registry): conflicting type registration")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a Registry implementation backed by two sync.Maps: every
// descriptor is indexed by name, typed descriptors also by normalized type.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter.
	mu sync.Mutex
	// byType maps normalized reflect.Type to descriptor.
	byType sync.Map // map[reflect.Type]*apis.TypeDescriptor
	// byName maps descriptor name to descriptor.
	byName sync.Map // map[string]*apis.TypeDescriptor
	// count tracks the number of registered descriptors.
	count int
}

// Register validates td and stores it. It is idempotent for equal
// descriptors; a different descriptor under the same type or name is
// ErrConflictingRegistration.
func (r *registry) Register(td *apis.TypeDescriptor) error {
	if td == nil {
		return ErrNilDescriptor
	}
	if err := descriptor.Validate(td); err != nil {
		return err
	}

	var key reflect.Type
	if td.Type != nil {
		nt, err := uref.Normalize(td.Type, r.cfg)
		if err != nil {
			return fmt.Errorf("bindctor(registry): %s: %w", td.Name, err)
		}
		key = nt
	}

	// Fast read path: idempotency / conflict check without locking.
	if done, err := r.check(key, td); done || err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if done, err := r.check(key, td); done || err != nil {
		return err
	}

	if key != nil {
		r.byType.Store(key, td)
	}
	r.byName.Store(td.Name, td)
	r.count++
	return nil
}

// check reports done=true when an equal descriptor is already stored, or an
// error when a different one occupies the type or the name.
func (r *registry) check(key reflect.Type, td *apis.TypeDescriptor) (done bool, err error) {
	if key != nil {
		if old, ok := r.byType.Load(key); ok {
			if same(old.(*apis.TypeDescriptor), td) {
				return true, nil
			}
			return false, ErrConflictingRegistration
		}
	}
	if old, ok := r.byName.Load(td.Name); ok {
		if same(old.(*apis.TypeDescriptor), td) {
			return true, nil
		}
		return false, ErrConflictingRegistration
	}
	return false, nil
}

// same compares descriptors by identity, then by value.
func same(a, b *apis.TypeDescriptor) bool {
	return a == b || reflect.DeepEqual(a, b)
}

// Lookup returns the descriptor registered for t, after normalization.
// The descriptor is the registered pointer, not a copy; callers must treat
// it as read-only. To change a type's constructors, register a new
// descriptor into a fresh or Reset registry.
func (r *registry) Lookup(t reflect.Type) (*apis.TypeDescriptor, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.byType.Load(nt); ok {
		return v.(*apis.TypeDescriptor), true
	}
	return nil, false
}

// LookupName returns the descriptor registered under name. Like Lookup,
// the result is shared and read-only.
func (r *registry) LookupName(name string) (*apis.TypeDescriptor, bool) {
	if v, ok := r.byName.Load(name); ok {
		return v.(*apis.TypeDescriptor), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
// The slice is fresh; the descriptors are the shared, read-only originals.
func (r *registry) Entries() []*apis.TypeDescriptor {
	entries := make([]*apis.TypeDescriptor, 0, r.Count())
	r.byName.Range(func(_, value any) bool {
		entries = append(entries, value.(*apis.TypeDescriptor))
		return true
	})
	return entries
}

// Count returns the number of registered descriptors.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered descriptors.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType.Clear()
	r.byName.Clear()
	r.count = 0
}
