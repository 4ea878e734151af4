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
	"github.com/hqsim/go-qbridge/pkg/qir/xmon"
)

// AddXmonRules registers the translation rules for the native primitive
// gates.
func AddXmonRules(r *Ruleset) {
	r.AddRule([]qir.Kind{xmon.KIND_EXPW}, TranslateExpW)
	r.AddRule([]qir.Kind{xmon.KIND_EXPZ}, TranslateExpZ)
	r.AddRule([]qir.Kind{xmon.KIND_EXP11}, TranslateExp11)
}

// TranslateExpW translates an XY-plane phase gate, rebuilding it from its
// canonical parameters.
func TranslateExpW(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	gate, ok := cmd.Gate().(xmon.ExpW)
	//
	if !ok {
		return circuit.Operation{}, &UnsupportedGateError{cmd.Gate().Kind()}
	}
	//
	return translateSingleGate(xmon.NewExpW(gate.HalfTurns(), gate.AxisHalfTurns()), cmd, mapping, register)
}

// TranslateExpZ translates a Z-axis phase gate, rebuilding it from its
// canonical parameter.
func TranslateExpZ(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	gate, ok := cmd.Gate().(xmon.ExpZ)
	//
	if !ok {
		return circuit.Operation{}, &UnsupportedGateError{cmd.Gate().Kind()}
	}
	//
	return translateSingleGate(xmon.NewExpZ(gate.HalfTurns()), cmd, mapping, register)
}

// TranslateExp11 translates a two-qubit conditional phase gate.  Exp11 takes
// no controls of its own; both qubits are targets and their order is
// interchangeable.
func TranslateExp11(cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	gate, ok := cmd.Gate().(xmon.Exp11)
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
	if len(targets) != 2 {
		panic(fmt.Sprintf("gate %s applied to %d qubits where exactly two required", gate, len(targets)))
	}
	//
	return circuit.NewOperation(xmon.NewExp11(gate.HalfTurns()), targets...), nil
}

// translateSingleGate resolves the single target and any controls of cmd,
// then applies the given (already rebuilt) gate.
func translateSingleGate(gate circuit.UnitaryGate, cmd qir.Command, mapping Mapping, register circuit.Register) (circuit.Operation, error) {
	targets, err := resolve(cmd.Targets(), mapping, register)
	if err != nil {
		return circuit.Operation{}, err
	}
	//
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
