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

package resolver

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"dirpx.dev/bindctor/apis"
)

// NewCached wraps next with memoization. Only descriptors that carry a Go
// type are cached, one entry per (type, eligibility). Each entry remembers
// the descriptor it was computed for; a different descriptor for the same
// type is resolved afresh and replaces the entry, so re-registration never
// serves a stale result. Concurrent misses for the same descriptor are
// collapsed into a single call to next.
func NewCached(next apis.Resolver) apis.Resolver {
	if next == nil {
		return nil
	}
	if c, ok := next.(*cached); ok {
		return c
	}
	return &cached{next: next}
}

// cacheKey ensures memoization respects every input that affects resolution.
type cacheKey struct {
	t        reflect.Type
	eligible bool
}

// cacheEntry is a result together with the descriptor it belongs to.
type cacheEntry struct {
	td  *apis.TypeDescriptor
	res apis.Result
}

type cached struct {
	next  apis.Resolver
	group singleflight.Group
	// results caches resolution results by cacheKey.
	results sync.Map // key: cacheKey, val: cacheEntry
}

// Resolve returns the memoized result for td, computing it on first use or
// when td differs from the descriptor the entry was computed for.
func (c *cached) Resolve(td *apis.TypeDescriptor, cfg apis.Config) apis.Result {
	if td == nil || td.Type == nil {
		return c.next.Resolve(td, cfg)
	}
	key := cacheKey{t: td.Type, eligible: cfg.PrimaryConstructorEligible}
	if v, ok := c.results.Load(key); ok {
		if e := v.(cacheEntry); e.td == td {
			return e.res
		}
	}

	v, _, _ := c.group.Do(fmt.Sprintf("%p/%t", td, key.eligible), func() (any, error) {
		res := c.next.Resolve(td, cfg)
		c.results.Store(key, cacheEntry{td: td, res: res})
		return res, nil
	})
	return v.(apis.Result)
}

// len returns the number of cached entries.
func (c *cached) len() int {
	n := 0
	c.results.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
