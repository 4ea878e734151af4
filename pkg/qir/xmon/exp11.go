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
package xmon

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/hqsim/go-qbridge/pkg/qir"
	"gonum.org/v1/gonum/mat"
)

// Exp11 is a two-qubit interaction phasing the amplitude of the |11> state,
// exp(i*pi*phi*|11><11|) with phi in half turns:
//
//	diag(1, 1, 1, exp(i*pi*phi))
//
// Note there is no minus sign in the exponent.  Unlike the single-qubit phase
// gates, a full turn (phi = 2) is the identity here: there is no Bloch sphere
// for two qubits, so phi counts half of a full rotation in U(4).  The matrix
// is symmetric under exchanging the two target qubits, so their order is
// interchangeable.
type Exp11 struct {
	halfTurns float64
}

// NewExp11 constructs a conditional phase gate from an angle in half turns,
// canonicalizing it into (-1, 1].
func NewExp11(halfTurns float64) Exp11 {
	return Exp11{CanonicalHalfTurns(halfTurns)}
}

// Kind returns KIND_EXP11.
func (g Exp11) Kind() qir.Kind { return KIND_EXP11 }

// HalfTurns returns the canonical angle in half turns, in (-1, 1].
func (g Exp11) HalfTurns() float64 { return g.halfTurns }

// Rads returns the canonical angle in radians, in (-pi, pi].
func (g Exp11) Rads() float64 { return g.halfTurns * math.Pi }

// NumQubits returns 2.
func (g Exp11) NumQubits() int { return 2 }

// Unitary returns diag(1, 1, 1, exp(i*pi*phi)).
func (g Exp11) Unitary() *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, cmplx.Exp(complex(0, g.Rads())),
	})
}

// Merged returns a single Exp11 equivalent to other applied after this gate.
// Only another Exp11 merges; half turns add modulo the canonical range.
func (g Exp11) Merged(other qir.Gate) (qir.Gate, error) {
	if o, ok := other.(Exp11); ok {
		return NewExp11(g.halfTurns + o.halfTurns), nil
	}
	//
	return nil, notMergeable(g, other)
}

func (g Exp11) String() string {
	return fmt.Sprintf("@(%.2f)", g.halfTurns)
}
