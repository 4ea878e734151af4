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
)

// Qubit is a position in the target circuit's qubit register.
type Qubit uint

func (q Qubit) String() string {
	return fmt.Sprintf("q%d", uint(q))
}

// Register is the ordered collection of qubits a circuit is built over.
type Register []Qubit

// LineRegister constructs a register of n consecutively numbered qubits.
func LineRegister(n uint) Register {
	reg := make(Register, n)
	//
	for i := range reg {
		reg[i] = Qubit(i)
	}
	//
	return reg
}

// Device is anything which can supply a qubit register, such as a hardware
// model with a fixed topology.
type Device interface {
	// Qubits returns the register offered by this device.
	Qubits() Register
}

// LineDevice is the simplest possible device: n qubits on a line with no
// connectivity restrictions.
type LineDevice struct {
	n uint
}

// NewLineDevice constructs a device supplying n qubits.
func NewLineDevice(n uint) *LineDevice {
	return &LineDevice{n}
}

// Qubits returns the device's register.
func (d *LineDevice) Qubits() Register {
	return LineRegister(d.n)
}
