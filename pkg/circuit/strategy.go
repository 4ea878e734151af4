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

// InsertStrategy decides which moment a freshly appended operation lands in.
type InsertStrategy interface {
	// Insert places op into the circuit.
	Insert(c *Circuit, op Operation)
}

// Earliest places each operation into the first moment in which all of its
// qubits are simultaneously free, scanning from the last moment any of its
// qubits is busy in.
var Earliest InsertStrategy = earliestStrategy{}

// NewMoment places every operation into a fresh moment of its own.
var NewMoment InsertStrategy = newMomentStrategy{}

type earliestStrategy struct{}

func (earliestStrategy) Insert(c *Circuit, op Operation) {
	slot := 0
	// Find the last moment already touching one of op's qubits.
	for i := len(c.moments) - 1; i >= 0; i-- {
		if c.moments[i].touchesAny(op.qubits) {
			slot = i + 1
			break
		}
	}
	//
	if slot == len(c.moments) {
		c.moments = append(c.moments, Moment{})
	}
	//
	c.moments[slot].ops = append(c.moments[slot].ops, op)
}

type newMomentStrategy struct{}

func (newMomentStrategy) Insert(c *Circuit, op Operation) {
	c.moments = append(c.moments, Moment{[]Operation{op}})
}
