// Copyright Heisenberg Quantum Simulations
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package translate maps source-IR commands onto target-IR operations via a
// registry of per-gate-kind translation functions.
package translate

import (
	"fmt"

	"github.com/hqsim/go-qbridge/pkg/circuit"
	"github.com/hqsim/go-qbridge/pkg/qir"
)

// Mapping assigns each allocated qubit reference its position in the target
// register.
type Mapping map[qir.QubitID]uint

// Func translates one command into a target operation, resolving qubit
// references through the given mapping into positions of the given register.
type Func func(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error)

// UnsupportedGateError signals that no translation function is registered for
// a command's gate kind.
type UnsupportedGateError struct {
	// Kind of the offending gate.
	Kind qir.Kind
}

func (e *UnsupportedGateError) Error() string {
	return fmt.Sprintf("unsupported gate %s", e.Kind)
}

// Ruleset is a registry of translation functions keyed by gate kind.
// Registration is incremental and append-only: later registrations for a kind
// never displace earlier ones, and lookup always selects the first function
// registered for the kind.
type Ruleset struct {
	rules map[qir.Kind][]Func
	// fallbacks apply to any matrix-carrying gate whose kind has no entry.
	fallbacks []Func
}

// NewRuleset constructs an empty registry.
func NewRuleset() *Ruleset {
	return &Ruleset{rules: make(map[qir.Kind][]Func)}
}

// AddRule registers fn under every given kind.
func (r *Ruleset) AddRule(kinds []qir.Kind, fn Func) {
	for _, kind := range kinds {
		r.rules[kind] = append(r.rules[kind], fn)
	}
}

// AddFallback registers fn as a passthrough for gates exposing a known matrix
// but having no kind-specific rule.
func (r *Ruleset) AddFallback(fn Func) {
	r.fallbacks = append(r.fallbacks, fn)
}

// Knows reports whether a translation function is registered for the given
// kind.
func (r *Ruleset) Knows(kind qir.Kind) bool {
	return len(r.rules[kind]) > 0
}

// Kinds returns all kinds with a registered translation function.
func (r *Ruleset) Kinds() []qir.Kind {
	kinds := make([]qir.Kind, 0, len(r.rules))
	//
	for kind := range r.rules {
		kinds = append(kinds, kind)
	}
	//
	return kinds
}

// Translate dispatches the command to the first function registered for its
// gate kind, falling back to the known-matrix passthrough where applicable.
func (r *Ruleset) Translate(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	gate := cmd.Gate()
	//
	if fns := r.rules[gate.Kind()]; len(fns) > 0 {
		return fns[0](cmd, mapping, register)
	}
	//
	if _, ok := gate.(qir.MatrixGate); ok && len(r.fallbacks) > 0 {
		return r.fallbacks[0](cmd, mapping, register)
	}
	//
	return circuit.Operation{}, &UnsupportedGateError{gate.Kind()}
}
