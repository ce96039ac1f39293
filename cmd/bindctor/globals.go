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

package main

import (
	"fmt"
	"io"
	"log/slog"

	"dirpx.dev/bindctor/apis"
	"dirpx.dev/bindctor/builder"
	"dirpx.dev/bindctor/config"
	"dirpx.dev/bindctor/descriptor"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"Configuration file (YAML or JSON)." type:"existingfile" short:"c"`
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"warn" name:"log-level"`

	out    io.Writer `kong:"-"`
	errOut io.Writer `kong:"-"`
}

func (g *Globals) logger() (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(g.errOut, &slog.HandlerOptions{Level: lvl})), nil
}

func (g *Globals) config() (apis.Config, error) {
	if g.Config == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(g.Config)
}

// session is a loaded descriptor file together with the registry and
// resolver built for it.
type session struct {
	cfg   apis.Config
	log   *slog.Logger
	types []*apis.TypeDescriptor
	reg   apis.Registry
	res   apis.Resolver
}

func (g *Globals) open(file string) (*session, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, err
	}
	log, err := g.logger()
	if err != nil {
		return nil, err
	}
	types, err := descriptor.Load(file)
	if err != nil {
		return nil, err
	}

	b := builder.New()
	reg := b.BuildRegistry(cfg, nil, log)
	for _, td := range types {
		if err := reg.Register(td); err != nil {
			return nil, err
		}
	}
	log.Debug("loaded type descriptors", slog.String("file", file), slog.Int("types", reg.Count()))
	return &session{cfg: cfg, log: log, types: types, reg: reg, res: b.BuildResolver(cfg, reg, nil, log)}, nil
}

// resolve returns the results for the selected types in file order. An
// empty name selects every type.
func (s *session) resolve(name string, eligible bool) ([]*apis.TypeDescriptor, []apis.Result, error) {
	types := s.types
	if name != "" {
		td, ok := s.reg.LookupName(name)
		if !ok {
			return nil, nil, fmt.Errorf("unknown type %q", name)
		}
		types = []*apis.TypeDescriptor{td}
	}
	cfg := s.cfg
	cfg.PrimaryConstructorEligible = eligible
	results := make([]apis.Result, len(types))
	for i, td := range types {
		results[i] = s.res.Resolve(td, cfg)
	}
	return types, results, nil
}
