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

// Package circuit provides the target IR: an ordered collection of
// time-sliced operations over a fixed qubit register.  Operations are grouped
// into moments, where every operation within a moment touches a disjoint set
// of qubits and all operations of a moment notionally execute at the same
// time.
package circuit

import (
	"fmt"
	"strings"

	"github.com/hqsim/go-qbridge/pkg/util/cmatrix"
	"gonum.org/v1/gonum/mat"
)

// Moment is one time slice of a circuit.
type Moment struct {
	ops []Operation
}

// Operations returns the operations of this moment.
func (m *Moment) Operations() []Operation {
	return append([]Operation(nil), m.ops...)
}

// touchesAny reports whether any operation of this moment acts on one of the
// given qubits.
func (m *Moment) touchesAny(qubits []Qubit) bool {
	for _, op := range m.ops {
		for _, p := range op.qubits {
			for _, q := range qubits {
				if p == q {
					return true
				}
			}
		}
	}
	//
	return false
}

// Circuit is an ordered sequence of moments.
type Circuit struct {
	moments []Moment
}

// NewCircuit constructs an empty circuit.
func NewCircuit() *Circuit {
	return &Circuit{}
}

// Append inserts the given operations in order, each placed according to the
// given strategy.
func (c *Circuit) Append(ops []Operation, strategy InsertStrategy) {
	for _, op := range ops {
		strategy.Insert(c, op)
	}
}

// Moments returns the moments of this circuit.
func (c *Circuit) Moments() []Moment {
	return append([]Moment(nil), c.moments...)
}

// Operations returns all operations of this circuit in time order.
func (c *Circuit) Operations() []Operation {
	var ops []Operation
	//
	for _, m := range c.moments {
		ops = append(ops, m.ops...)
	}
	//
	return ops
}

// Depth returns the number of moments.
func (c *Circuit) Depth() int {
	return len(c.moments)
}

// Unitary composes all operations of this circuit into a single matrix over
// an n-qubit register, with qubit 0 supplying the most significant bit of a
// basis index.  Composition fails if any operation's gate has no unitary.
func (c *Circuit) Unitary(n uint) (*mat.CDense, error) {
	total := cmatrix.Identity(1 << n)
	//
	for _, op := range c.Operations() {
		gate, ok := op.gate.(UnitaryGate)
		//
		if !ok {
			return nil, fmt.Errorf("gate %s has no unitary", op.gate)
		}
		//
		positions := make([]int, len(op.qubits))
		for i, q := range op.qubits {
			positions[i] = int(q)
		}
		// Later operations apply on the left.
		total = cmatrix.Mul(cmatrix.Expand(gate.Unitary(), positions, int(n)), total)
	}
	//
	return total, nil
}

// String renders the circuit as a wire diagram, one row per qubit and one
// column per moment.
func (c *Circuit) String() string {
	if len(c.moments) == 0 {
		return "(empty circuit)"
	}
	//
	var (
		n      = c.width()
		labels = make([][]string, len(c.moments))
		widths = make([]int, len(c.moments))
	)
	// Compute per-moment labels for each qubit.
	for i, m := range c.moments {
		labels[i] = make([]string, n)
		//
		for _, op := range m.ops {
			for j, q := range op.qubits {
				labels[i][q] = wireLabel(op.gate, j)
			}
		}
		//
		for _, l := range labels[i] {
			if len(l) > widths[i] {
				widths[i] = len(l)
			}
		}
	}
	//
	var builder strings.Builder
	//
	for q := 0; q < n; q++ {
		fmt.Fprintf(&builder, "%s: ", Qubit(q))
		//
		for i := range c.moments {
			builder.WriteString("─")
			builder.WriteString(pad(labels[i][q], widths[i]))
			builder.WriteString("─")
		}
		//
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// width returns one past the highest qubit index in use.
func (c *Circuit) width() int {
	width := 0
	//
	for _, m := range c.moments {
		for _, op := range m.ops {
			for _, q := range op.qubits {
				if int(q) >= width {
					width = int(q) + 1
				}
			}
		}
	}
	//
	return width
}

// wireLabel determines what to draw on the slot-th wire of the given gate.
// Controls render as "@", targets as the gate's own rendering.
func wireLabel(gate Gate, slot int) string {
	if ctrl, ok := gate.(Controlled); ok {
		if slot < ctrl.controls {
			return "@"
		}
		//
		return wireLabel(ctrl.gate, slot-ctrl.controls)
	}
	//
	return gate.String()
}

// pad centres a label on its wire, filling with wire segments.
func pad(label string, width int) string {
	fill := width - len(label)
	left := fill / 2
	//
	return strings.Repeat("─", left) + label + strings.Repeat("─", fill-left)
}
