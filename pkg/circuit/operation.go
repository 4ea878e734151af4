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
package circuit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gate is any gate applicable in the target IR.  The interface is structural,
// so source-IR gate values which happen to satisfy it can be used directly as
// target gates.
type Gate interface {
	// NumQubits returns the number of qubits this gate acts upon.
	NumQubits() int
	// String returns a short human-readable rendering of this gate.
	String() string
}

// UnitaryGate is a target gate which can produce its unitary matrix.
// Measurements are the only built-in gates which cannot.
type UnitaryGate interface {
	Gate
	// Unitary returns the matrix implemented by this gate.
	Unitary() *mat.CDense
}

// Operation is a gate applied to concrete register qubits.
type Operation struct {
	gate   Gate
	qubits []Qubit
}

// NewOperation constructs an operation applying the given gate to the given
// qubits.  The qubit count must match the gate's arity.
func NewOperation(gate Gate, qubits ...Qubit) Operation {
	if len(qubits) != gate.NumQubits() {
		panic(fmt.Sprintf("gate %s expects %d qubits, given %d", gate, gate.NumQubits(), len(qubits)))
	}
	//
	return Operation{gate, append([]Qubit(nil), qubits...)}
}

// Gate returns the gate this operation applies.
func (o Operation) Gate() Gate { return o.gate }

// Qubits returns the register qubits this operation touches.
func (o Operation) Qubits() []Qubit {
	return append([]Qubit(nil), o.qubits...)
}

func (o Operation) String() string {
	str := o.gate.String() + "("
	//
	for i, q := range o.qubits {
		if i != 0 {
			str += ", "
		}
		//
		str += q.String()
	}
	//
	return str + ")"
}

// ============================================================================
// Controlled gates
// ============================================================================

// Controlled wraps a gate with some number of control qubits.  By convention
// the controls occupy the leading qubit slots of the resulting operation,
// followed by the wrapped gate's targets.
type Controlled struct {
	gate     UnitaryGate
	controls int
}

// NewControlled wraps the given gate with the given number of controls.
func NewControlled(gate UnitaryGate, controls int) Controlled {
	if controls < 1 {
		panic("controlled gate requires at least one control")
	}
	//
	return Controlled{gate, controls}
}

// Target returns the wrapped gate.
func (g Controlled) Target() UnitaryGate { return g.gate }

// Controls returns the number of control qubits.
func (g Controlled) Controls() int { return g.controls }

// NumQubits returns the combined control and target arity.
func (g Controlled) NumQubits() int {
	return g.controls + g.gate.NumQubits()
}

// Unitary returns the block matrix acting as the identity unless all controls
// are set, in which case the wrapped gate applies to the targets.
func (g Controlled) Unitary() *mat.CDense {
	var (
		sub    = g.gate.Unitary()
		subDim = 1 << g.gate.NumQubits()
		dim    = 1 << g.NumQubits()
		m      = mat.NewCDense(dim, dim, nil)
	)
	//
	for i := 0; i < dim-subDim; i++ {
		m.Set(i, i, 1)
	}
	//
	for i := 0; i < subDim; i++ {
		for j := 0; j < subDim; j++ {
			m.Set(dim-subDim+i, dim-subDim+j, sub.At(i, j))
		}
	}
	//
	return m
}

func (g Controlled) String() string {
	return fmt.Sprintf("C%d[%s]", g.controls, g.gate)
}

// ============================================================================
// Measurement
// ============================================================================

// Measurement reads a single qubit out in the computational basis.  It has no
// unitary, so circuits containing measurements cannot be composed into a
// matrix.
type Measurement struct{}

// NumQubits returns 1.
func (g Measurement) NumQubits() int { return 1 }

func (g Measurement) String() string { return "M" }
