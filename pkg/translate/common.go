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
package translate

import (
	"fmt"

	"github.com/hqsim/go-qbridge/pkg/circuit"
	"github.com/hqsim/go-qbridge/pkg/qir"
)

// DefaultRuleset constructs a registry holding the built-in translation rules
// for common gates, the native xmon gates, measurements and the known-matrix
// passthrough.
func DefaultRuleset() *Ruleset {
	r := NewRuleset()
	//
	r.AddRule([]qir.Kind{qir.KIND_RX, qir.KIND_RY, qir.KIND_RZ}, TranslateRotation)
	r.AddRule([]qir.Kind{qir.KIND_X, qir.KIND_Y, qir.KIND_Z}, TranslatePauli)
	r.AddRule([]qir.Kind{qir.KIND_H, qir.KIND_S}, TranslateHS)
	r.AddRule([]qir.Kind{qir.KIND_PH}, TranslateKnownMatrix)
	r.AddRule([]qir.Kind{qir.KIND_MEASURE}, TranslateMeasurement)
	r.AddFallback(TranslateKnownMatrix)
	//
	AddXmonRules(r)
	//
	return r
}

// TranslateRotation translates an Rx, Ry or Rz rotation.  The rotation gate
// itself carries its unitary, so translation amounts to resolving qubit
// positions and wrapping controls.
func TranslateRotation(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	return translateSingle(cmd, mapping, register)
}

// TranslatePauli translates an X, Y or Z gate.
func TranslatePauli(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	return translateSingle(cmd, mapping, register)
}

// TranslateHS translates a Hadamard or S gate.
func TranslateHS(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	return translateSingle(cmd, mapping, register)
}

// TranslateKnownMatrix translates any gate exposing a fixed matrix, of
// whatever arity, passing the matrix through unchanged.
func TranslateKnownMatrix(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	gate, ok := cmd.Gate().(qir.MatrixGate)
	//
	if !ok {
		return circuit.Operation{}, &UnsupportedGateError{cmd.Gate().Kind()}
	}
	//
	targets, err := resolve(cmd.Targets(), mapping, register)
	if err != nil {
		return circuit.Operation{}, err
	}
	//
	controls, err := resolve(cmd.Controls(), mapping, register)
	if err != nil {
		return circuit.Operation{}, err
	}
	//
	return wrapControls(gate, targets, controls), nil
}

// TranslateMeasurement translates a measure command into a measurement
// operation on the resolved target qubit.  Measure commands come straight
// from the stream rather than from a registered rule, so a bad arity is user
// input and reports as an error.
func TranslateMeasurement(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	targets, err := resolve(cmd.Targets(), mapping, register)
	if err != nil {
		return circuit.Operation{}, err
	}
	//
	if len(targets) != 1 {
		return circuit.Operation{}, fmt.Errorf("measurement of %d qubits where exactly one required", len(targets))
	}
	//
	return circuit.NewOperation(circuit.Measurement{}, targets[0]), nil
}

// ============================================================================
// Helpers
// ============================================================================

// translateSingle is the shared pattern of all single-target translations:
// resolve the target, enforce the single-qubit arity contract, resolve any
// controls and wrap.
func translateSingle(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	gate, ok := cmd.Gate().(qir.MatrixGate)
	//
	if !ok {
		return circuit.Operation{}, &UnsupportedGateError{cmd.Gate().Kind()}
	}
	//
	targets, err := resolve(cmd.Targets(), mapping, register)
	if err != nil {
		return circuit.Operation{}, err
	}
	// A single-qubit rule receiving several targets indicates a broken rule
	// registration, not bad user input.
	if len(targets) != 1 {
		panic(fmt.Sprintf("gate %s applied to %d qubits where exactly one required", gate, len(targets)))
	}
	//
	controls, err := resolve(cmd.Controls(), mapping, register)
	if err != nil {
		return circuit.Operation{}, err
	}
	//
	return wrapControls(gate, targets, controls), nil
}

// resolve maps qubit references onto register qubits via their positions.
func resolve(refs []qir.QubitID, mapping Mapping, register circuit.Register) ([]circuit.Qubit, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	//
	qubits := make([]circuit.Qubit, len(refs))
	//
	for i, ref := range refs {
		pos, ok := mapping[ref]
		//
		if !ok {
			return nil, fmt.Errorf("qubit %d has no mapping entry", ref)
		} else if pos >= uint(len(register)) {
			return nil, fmt.Errorf("qubit %d mapped to position %d outside register of size %d", ref, pos, len(register))
		}
		//
		qubits[i] = register[pos]
	}
	//
	return qubits, nil
}

// wrapControls builds the base operation and, when controls are present,
// wraps it in a controlled gate applied to the controls followed by the
// targets.
func wrapControls(gate circuit.UnitaryGate, targets, controls []circuit.Qubit) circuit.Operation {
	if len(controls) == 0 {
		return circuit.NewOperation(gate, targets...)
	}
	//
	qubits := make([]circuit.Qubit, 0, len(controls)+len(targets))
	qubits = append(qubits, controls...)
	qubits = append(qubits, targets...)
	//
	return circuit.NewOperation(circuit.NewControlled(gate, len(controls)), qubits...)
}
