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
package qir

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ============================================================================
// Rotation gates
// ============================================================================

// RxGate rotates a single qubit about the X axis of the Bloch sphere by a
// given angle in radians, exp(-i*angle*X/2).
type RxGate struct{ rads float64 }

// Rx constructs a rotation about the X axis by the given angle in radians.
func Rx(rads float64) RxGate { return RxGate{rads} }

// Kind returns KIND_RX.
func (g RxGate) Kind() Kind { return KIND_RX }

// Rads returns the rotation angle in radians.
func (g RxGate) Rads() float64 { return g.rads }

// NumQubits returns 1.
func (g RxGate) NumQubits() int { return 1 }

// Unitary returns exp(-i*angle*X/2).
func (g RxGate) Unitary() *mat.CDense {
	c := complex(math.Cos(g.rads/2), 0)
	s := complex(0, -math.Sin(g.rads/2))
	//
	return mat.NewCDense(2, 2, []complex128{c, s, s, c})
}

func (g RxGate) String() string { return fmt.Sprintf("Rx(%.4g)", g.rads) }

// RyGate rotates a single qubit about the Y axis of the Bloch sphere by a
// given angle in radians, exp(-i*angle*Y/2).
type RyGate struct{ rads float64 }

// Ry constructs a rotation about the Y axis by the given angle in radians.
func Ry(rads float64) RyGate { return RyGate{rads} }

// Kind returns KIND_RY.
func (g RyGate) Kind() Kind { return KIND_RY }

// Rads returns the rotation angle in radians.
func (g RyGate) Rads() float64 { return g.rads }

// NumQubits returns 1.
func (g RyGate) NumQubits() int { return 1 }

// Unitary returns exp(-i*angle*Y/2).
func (g RyGate) Unitary() *mat.CDense {
	c := complex(math.Cos(g.rads/2), 0)
	s := complex(math.Sin(g.rads/2), 0)
	//
	return mat.NewCDense(2, 2, []complex128{c, -s, s, c})
}

func (g RyGate) String() string { return fmt.Sprintf("Ry(%.4g)", g.rads) }

// RzGate rotates a single qubit about the Z axis of the Bloch sphere by a
// given angle in radians, exp(-i*angle*Z/2).
type RzGate struct{ rads float64 }

// Rz constructs a rotation about the Z axis by the given angle in radians.
func Rz(rads float64) RzGate { return RzGate{rads} }

// Kind returns KIND_RZ.
func (g RzGate) Kind() Kind { return KIND_RZ }

// Rads returns the rotation angle in radians.
func (g RzGate) Rads() float64 { return g.rads }

// NumQubits returns 1.
func (g RzGate) NumQubits() int { return 1 }

// Unitary returns exp(-i*angle*Z/2).
func (g RzGate) Unitary() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		cmplx.Exp(complex(0, -g.rads/2)), 0,
		0, cmplx.Exp(complex(0, g.rads/2)),
	})
}

func (g RzGate) String() string { return fmt.Sprintf("Rz(%.4g)", g.rads) }

// ============================================================================
// Pauli, Hadamard and S gates
// ============================================================================

// XGate is the Pauli X gate.
type XGate struct{}

// Kind returns KIND_X.
func (g XGate) Kind() Kind { return KIND_X }

// NumQubits returns 1.
func (g XGate) NumQubits() int { return 1 }

// Unitary returns the Pauli X matrix.
func (g XGate) Unitary() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
}

func (g XGate) String() string { return "X" }

// YGate is the Pauli Y gate.
type YGate struct{}

// Kind returns KIND_Y.
func (g YGate) Kind() Kind { return KIND_Y }

// NumQubits returns 1.
func (g YGate) NumQubits() int { return 1 }

// Unitary returns the Pauli Y matrix.
func (g YGate) Unitary() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0})
}

func (g YGate) String() string { return "Y" }

// ZGate is the Pauli Z gate.
type ZGate struct{}

// Kind returns KIND_Z.
func (g ZGate) Kind() Kind { return KIND_Z }

// NumQubits returns 1.
func (g ZGate) NumQubits() int { return 1 }

// Unitary returns the Pauli Z matrix.
func (g ZGate) Unitary() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
}

func (g ZGate) String() string { return "Z" }

// HGate is the Hadamard gate.
type HGate struct{}

// Kind returns KIND_H.
func (g HGate) Kind() Kind { return KIND_H }

// NumQubits returns 1.
func (g HGate) NumQubits() int { return 1 }

// Unitary returns the Hadamard matrix.
func (g HGate) Unitary() *mat.CDense {
	s := complex(1/math.Sqrt2, 0)
	//
	return mat.NewCDense(2, 2, []complex128{s, s, s, -s})
}

func (g HGate) String() string { return "H" }

// SGate is the phase gate diag(1, i).
type SGate struct{}

// Kind returns KIND_S.
func (g SGate) Kind() Kind { return KIND_S }

// NumQubits returns 1.
func (g SGate) NumQubits() int { return 1 }

// Unitary returns diag(1, i).
func (g SGate) Unitary() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, 1i})
}

func (g SGate) String() string { return "S" }

// ============================================================================
// Swap and global phase
// ============================================================================

// SwapGate exchanges the state of its two target qubits.
type SwapGate struct{}

// Kind returns KIND_SWAP.
func (g SwapGate) Kind() Kind { return KIND_SWAP }

// NumQubits returns 2.
func (g SwapGate) NumQubits() int { return 2 }

// Unitary returns the 4x4 swap matrix.
func (g SwapGate) Unitary() *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
}

func (g SwapGate) String() string { return "Swap" }

// PhGate multiplies the state by the global phase exp(i*alpha).  It acts
// trivially on its single target qubit and exists purely so that phase
// bookkeeping survives translation into the target IR.
type PhGate struct{ rads float64 }

// Ph constructs a global phase instruction of exp(i*rads).
func Ph(rads float64) PhGate { return PhGate{rads} }

// Kind returns KIND_PH.
func (g PhGate) Kind() Kind { return KIND_PH }

// Rads returns the phase angle in radians.
func (g PhGate) Rads() float64 { return g.rads }

// NumQubits returns 1.
func (g PhGate) NumQubits() int { return 1 }

// Unitary returns exp(i*alpha) times the identity.
func (g PhGate) Unitary() *mat.CDense {
	z := cmplx.Exp(complex(0, g.rads))
	//
	return mat.NewCDense(2, 2, []complex128{z, 0, 0, z})
}

func (g PhGate) String() string { return fmt.Sprintf("Ph(%.4g)", g.rads) }

// ============================================================================
// Generic matrix gates
// ============================================================================

// RawGate is a gate defined solely by its unitary matrix.  Raw gates have no
// decomposition or kind-specific translation rule; they rely on the generic
// known-matrix passthrough.
type RawGate struct {
	name   string
	matrix *mat.CDense
}

// NewRawGate constructs a gate with the given name and unitary matrix.  The
// matrix dimension must be a power of two; the gate acts on log2(dim) qubits.
func NewRawGate(name string, matrix *mat.CDense) RawGate {
	r, c := matrix.Dims()
	//
	if r != c || r&(r-1) != 0 || r < 2 {
		panic(fmt.Sprintf("raw gate %s given non power-of-two matrix %dx%d", name, r, c))
	}
	//
	return RawGate{name, matrix}
}

// Kind returns the gate's name as its kind token.
func (g RawGate) Kind() Kind { return Kind(g.name) }

// NumQubits returns the number of qubits the matrix acts upon.
func (g RawGate) NumQubits() int {
	r, _ := g.matrix.Dims()
	//
	return int(math.Round(math.Log2(float64(r))))
}

// Unitary returns the defining matrix.
func (g RawGate) Unitary() *mat.CDense { return g.matrix }

func (g RawGate) String() string { return g.name }

// ============================================================================
// Classical instruction gates
// ============================================================================

// classicalGate covers the non-unitary bookkeeping instructions of the
// stream: allocation, deallocation, barriers, measurement and the flush
// sentinel.  They carry no translation semantics of their own.
type classicalGate struct{ kind Kind }

func (g classicalGate) Kind() Kind     { return g.kind }
func (g classicalGate) String() string { return string(g.kind) }

// Singleton instances of the classical instruction gates.
var (
	// Allocate introduces a fresh qubit reference into the stream.
	Allocate Gate = classicalGate{KIND_ALLOCATE}
	// Deallocate retires a qubit reference.
	Deallocate Gate = classicalGate{KIND_DEALLOCATE}
	// Barrier separates scheduling regions.  The default engine ignores it.
	Barrier Gate = classicalGate{KIND_BARRIER}
	// Measure reads a qubit out in the computational basis.
	Measure Gate = classicalGate{KIND_MEASURE}
	// Flush delimits a batch, forcing buffered operations into the circuit.
	Flush Gate = classicalGate{KIND_FLUSH}
)
