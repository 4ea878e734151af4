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
	"gonum.org/v1/gonum/mat"
)

// Kind identifies the structural kind of a gate.  Kinds are opaque tokens
// rather than runtime types so that rule registries can use them directly as
// lookup keys, whilst still allowing callers to introduce new kinds.
type Kind string

// Kinds of the built-in source gate vocabulary.  Native primitive kinds are
// declared alongside their gates in the xmon subpackage.
const (
	KIND_RX         Kind = "Rx"
	KIND_RY         Kind = "Ry"
	KIND_RZ         Kind = "Rz"
	KIND_X          Kind = "X"
	KIND_Y          Kind = "Y"
	KIND_Z          Kind = "Z"
	KIND_H          Kind = "H"
	KIND_S          Kind = "S"
	KIND_SWAP       Kind = "Swap"
	KIND_PH         Kind = "Ph"
	KIND_ALLOCATE   Kind = "Allocate"
	KIND_DEALLOCATE Kind = "Deallocate"
	KIND_BARRIER    Kind = "Barrier"
	KIND_MEASURE    Kind = "Measure"
	KIND_FLUSH      Kind = "Flush"
)

// QubitID is an opaque qubit reference handed out by the source-IR framework.
// It is unique within a circuit but carries no positional meaning until the
// streaming engine maps it onto a target register position.
type QubitID int

// Gate is the fundamental interface implemented by every instruction in the
// source IR, native or otherwise.
type Gate interface {
	// Kind returns the structural kind of this gate, used to key decomposition
	// and translation rules.
	Kind() Kind
	// String returns a short human-readable rendering of this gate.
	String() string
}

// MatrixGate is the capability of gates which can produce their unitary
// matrix.  Any such gate can be passed through translation unchanged, even
// when no kind-specific rule is registered for it.
type MatrixGate interface {
	Gate
	// NumQubits returns the number of target qubits this gate acts upon.
	NumQubits() int
	// Unitary returns the matrix implemented by this gate.
	Unitary() *mat.CDense
}

// MergeableGate is the capability of gates which can absorb an adjacent gate
// into a single equivalent gate.  Merging incompatible gates fails with a
// NotMergeableError.
type MergeableGate interface {
	Gate
	// Merged returns a gate equivalent to other applied after this gate.
	Merged(other Gate) (Gate, error)
}
