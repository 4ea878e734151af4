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

// ExpZ is a phase gate about the Z axis of the Bloch sphere.  With phi the
// half turns, its matrix is
//
//	diag(exp(-i*pi*phi/2), exp(i*pi*phi/2))
//
// Restricting phi to (-1, 1] covers the full range of phase differences
// between the Z eigenstates; the global phase distinguishing a rotation by
// phi from one by phi+2 is deliberately not representable, making ExpZ a
// phase gate rather than a rotation gate.
type ExpZ struct {
	halfTurns float64
}

// NewExpZ constructs a Z-axis phase gate from an angle in half turns,
// canonicalizing it into (-1, 1].
func NewExpZ(halfTurns float64) ExpZ {
	return ExpZ{CanonicalHalfTurns(halfTurns)}
}

// Kind returns KIND_EXPZ.
func (g ExpZ) Kind() qir.Kind { return KIND_EXPZ }

// HalfTurns returns the canonical angle in half turns, in (-1, 1].
func (g ExpZ) HalfTurns() float64 { return g.halfTurns }

// Rads returns the canonical angle in radians, in (-pi, pi].
func (g ExpZ) Rads() float64 { return g.halfTurns * math.Pi }

// NumQubits returns 1.
func (g ExpZ) NumQubits() int { return 1 }

// Unitary returns diag(exp(-i*pi*phi/2), exp(i*pi*phi/2)).
func (g ExpZ) Unitary() *mat.CDense {
	half := g.Rads() / 2
	//
	return mat.NewCDense(2, 2, []complex128{
		cmplx.Exp(complex(0, -half)), 0,
		0, cmplx.Exp(complex(0, half)),
	})
}

// Merged returns a single ExpZ equivalent to other applied after this gate.
// Only another ExpZ merges; half turns add modulo the canonical range.
func (g ExpZ) Merged(other qir.Gate) (qir.Gate, error) {
	if o, ok := other.(ExpZ); ok {
		return NewExpZ(g.halfTurns + o.halfTurns), nil
	}
	//
	return nil, notMergeable(g, other)
}

func (g ExpZ) String() string {
	return fmt.Sprintf("Z(%.2f)", g.halfTurns)
}
