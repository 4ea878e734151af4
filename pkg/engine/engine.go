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

// Package engine provides the stateful streaming translator.  It consumes
// source-IR commands in order, buffers their translations and commits each
// batch into the target circuit when a flush sentinel arrives.  An engine
// instance owns its buffer and qubit mapping exclusively; concurrent calls on
// the same instance are not supported.
package engine

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/hqsim/go-qbridge/pkg/circuit"
	"github.com/hqsim/go-qbridge/pkg/qir"
	"github.com/hqsim/go-qbridge/pkg/translate"
)

// Engine translates a command stream into a batched target circuit.
type Engine struct {
	register circuit.Register
	rules    *translate.Ruleset
	strategy circuit.InsertStrategy
	// Target circuit built so far.
	circ *circuit.Circuit
	// Translated operations awaiting the next flush.
	buffer []circuit.Operation
	// Qubit reference to register position, and its inverse.
	mapping translate.Mapping
	inverse map[uint]qir.QubitID
	// Set between a flush and the next stored command.
	fresh bool
}

// Option configures an engine under construction.
type Option func(*Engine) error

// WithRegister supplies the target qubit register explicitly.
func WithRegister(register circuit.Register) Option {
	return func(e *Engine) error {
		if e.register != nil {
			return errors.New("qubit register specified twice")
		}
		//
		e.register = register
		//
		return nil
	}
}

// WithDevice takes the target qubit register from a device.
func WithDevice(device circuit.Device) Option {
	return WithRegister(device.Qubits())
}

// WithRules replaces the default translation ruleset.
func WithRules(rules *translate.Ruleset) Option {
	return func(e *Engine) error {
		e.rules = rules
		//
		return nil
	}
}

// WithStrategy replaces the default (earliest-slot) insert strategy.
func WithStrategy(strategy circuit.InsertStrategy) Option {
	return func(e *Engine) error {
		e.strategy = strategy
		//
		return nil
	}
}

// New constructs an engine.  Exactly one of WithRegister or WithDevice must
// be given; rules and strategy default to translate.DefaultRuleset and
// circuit.Earliest.
func New(options ...Option) (*Engine, error) {
	e := &Engine{}
	//
	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	//
	if e.register == nil {
		return nil, errors.New("specify one of qubit register or device")
	}
	//
	if e.rules == nil {
		e.rules = translate.DefaultRuleset()
	}
	//
	if e.strategy == nil {
		e.strategy = circuit.Earliest
	}
	//
	e.clear()
	e.mapping = make(translate.Mapping)
	e.inverse = make(map[uint]qir.QubitID)
	//
	return e, nil
}

// Receive consumes commands in order, buffering translations and committing
// the buffer on each flush sentinel.  A failed translation aborts the call
// immediately, leaving the in-progress batch inconsistent; the caller must
// Reset before continuing.
func (e *Engine) Receive(cmds []qir.Command) error {
	for _, cmd := range cmds {
		if cmd.Gate().Kind() == qir.KIND_FLUSH {
			e.commit()
		} else if err := e.store(cmd); err != nil {
			return err
		}
	}
	//
	return nil
}

// IsAvailable reports whether a command can be translated by this engine,
// without translating it.  The classical bookkeeping instructions are always
// available; anything else requires a registered translation rule.
func (e *Engine) IsAvailable(cmd qir.Command) bool {
	switch cmd.Gate().Kind() {
	case qir.KIND_MEASURE, qir.KIND_ALLOCATE, qir.KIND_DEALLOCATE, qir.KIND_BARRIER:
		return true
	default:
		return e.rules.Knows(cmd.Gate().Kind())
	}
}

// Reset discards the circuit and any buffered operations.  With keepMap set
// the qubit mapping (and its inverse) survives, which is the only state ever
// carried across a reset.
func (e *Engine) Reset(keepMap bool) {
	e.clear()
	//
	if !keepMap {
		e.mapping = make(translate.Mapping)
		e.inverse = make(map[uint]qir.QubitID)
	}
}

// Circuit returns the target circuit built so far.
func (e *Engine) Circuit() *circuit.Circuit {
	return e.circ
}

// Qubits returns the target qubit register.
func (e *Engine) Qubits() circuit.Register {
	return append(circuit.Register(nil), e.register...)
}

// Mapping returns a copy of the current qubit reference to position mapping.
func (e *Engine) Mapping() translate.Mapping {
	m := make(translate.Mapping, len(e.mapping))
	//
	for ref, pos := range e.mapping {
		m[ref] = pos
	}
	//
	return m
}

// InverseMapping returns a copy of the current position to qubit reference
// mapping.
func (e *Engine) InverseMapping() map[uint]qir.QubitID {
	m := make(map[uint]qir.QubitID, len(e.inverse))
	//
	for pos, ref := range e.inverse {
		m[pos] = ref
	}
	//
	return m
}

// store handles a single non-flush command.
func (e *Engine) store(cmd qir.Command) error {
	if e.fresh {
		e.fresh = false
		e.buffer = nil
	}
	//
	switch cmd.Gate().Kind() {
	case qir.KIND_ALLOCATE:
		e.allocate(cmd.Targets()[0])
		return nil
	case qir.KIND_DEALLOCATE, qir.KIND_BARRIER:
		return nil
	}
	//
	op, err := e.rules.Translate(cmd, e.mapping, e.register)
	//
	if err != nil {
		return fmt.Errorf("translating %s: %w", cmd, err)
	}
	//
	e.buffer = append(e.buffer, op)
	//
	return nil
}

// allocate creates an identity mapping entry for a fresh qubit reference.
// References already mapped are left untouched.
func (e *Engine) allocate(ref qir.QubitID) {
	if _, ok := e.mapping[ref]; !ok {
		e.mapping[ref] = uint(ref)
		e.inverse[uint(ref)] = ref
	}
}

// commit appends the buffered operations to the circuit and re-arms the
// fresh flag.
func (e *Engine) commit() {
	log.Debugf("committing %d buffered operation(s)", len(e.buffer))
	//
	e.circ.Append(e.buffer, e.strategy)
	e.buffer = nil
	e.fresh = true
}

// clear resets circuit and buffer, leaving the mapping alone.
func (e *Engine) clear() {
	e.circ = circuit.NewCircuit()
	e.buffer = nil
	e.fresh = true
}
