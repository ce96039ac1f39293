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
	"context"
	"log/slog"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/strategy"
)

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. A nil logger discards decision logs. The
// returned resolver is safe for concurrent use provided strategies
// themselves are safe for concurrent TryResolve calls.
func New(logger *slog.Logger, strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return chain{strats: out, log: logger}
}

// Default constructs the standard chain: autowiring veto, explicit
// constructor-binding marks, then implicit inference.
func Default(logger *slog.Logger) apis.Resolver {
	return New(logger,
		strategy.NewAutowiredStrategy(),
		strategy.NewConstructorBindingStrategy(),
		strategy.NewDeducingStrategy(),
	)
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
	log    *slog.Logger
}

// Resolve runs strategies in order until one handles the type.
// Returns NoBinding if no strategy reached a decision.
func (r chain) Resolve(td *apis.TypeDescriptor, cfg apis.Config) apis.Result {
	if td == nil {
		return apis.NoBind()
	}
	for _, s := range r.strats {
		if res, ok := s.TryResolve(td, cfg); ok {
			r.trace(td, s.Name(), res)
			return res
		}
	}
	r.trace(td, "", apis.NoBind())
	return apis.NoBind()
}

func (r chain) trace(td *apis.TypeDescriptor, by string, res apis.Result) {
	ctx := context.Background()
	if !r.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.String("type", td.Name),
		slog.String("outcome", res.Outcome.String()),
	}
	if by != "" {
		attrs = append(attrs, slog.String("strategy", by))
	}
	switch res.Outcome {
	case apis.Selected:
		attrs = append(attrs, slog.String("constructor", res.Constructor.String()))
	case apis.Contradiction:
		attrs = append(attrs, slog.String("reason", res.Conflict.Reason.String()))
	}
	r.log.LogAttrs(ctx, slog.LevelDebug, "resolved bind constructor", attrs...)
}
