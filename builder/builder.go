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

package builder

import (
	"log/slog"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/registry"
	"dirpx.dev/bindctor/resolver"
)

// LoggerProvider may be passed as the extension value to supply the
// resolver's logger.
type LoggerProvider interface {
	Logger() *slog.Logger
}

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its entries are copied
// into the new registry; entries the new configuration rejects are dropped.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, td := range preg.Entries() {
			_ = nreg.Register(td)
		}
	}
	return nreg
}

// BuildResolver builds the standard strategy chain. ext may be a *slog.Logger
// or a LoggerProvider; otherwise slog.Default() is used. With cfg.Cache the
// chain is memoized.
func (b *builder) BuildResolver(cfg apis.Config, _ apis.Registry, _ apis.Resolver, ext any) apis.Resolver {
	res := resolver.Default(loggerFrom(ext))
	if cfg.Cache {
		res = resolver.NewCached(res)
	}
	return res
}

func loggerFrom(ext any) *slog.Logger {
	switch v := ext.(type) {
	case *slog.Logger:
		if v != nil {
			return v
		}
	case LoggerProvider:
		if l := v.Logger(); l != nil {
			return l
		}
	}
	return slog.Default()
}
