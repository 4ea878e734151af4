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

// ExpW is a phase gate about an axis in the XY plane of the Bloch sphere.
// With phi the half turns and theta the axis half turns, the axis operator is
//
//	W(theta) = cos(pi*theta)*X + sin(pi*theta)*Y
//
// and the gate implements
//
//	exp(i*pi*phi/2) * exp(-i*pi*phi/2 * W(theta))
//
// The leading factor makes this a phase gate in the W basis rather than a
// plain rotation: one full turn (phi = 2) is the identity.  The axis is
// canonicalized into [0, 1) by repeatedly negating phi and advancing theta by
// one half turn, turning a positive rotation about a negative axis into a
// negative rotation about the positive axis.
type ExpW struct {
	halfTurns     float64
	axisHalfTurns float64
}

// NewExpW constructs an XY-plane phase gate from a rotation angle and an axis
// angle, both in half turns.
func NewExpW(halfTurns, axisHalfTurns float64) ExpW {
	var (
		phi   = CanonicalHalfTurns(halfTurns)
		theta = CanonicalHalfTurns(axisHalfTurns)
	)
	//
	for theta < 0 || theta >= 1 {
		phi = CanonicalHalfTurns(-phi)
		theta = CanonicalHalfTurns(theta + 1)
	}
	//
	return ExpW{phi, theta}
}

// Kind returns KIND_EXPW.
func (g ExpW) Kind() qir.Kind { return KIND_EXPW }

// HalfTurns returns the canonical rotation angle in half turns, in (-1, 1].
func (g ExpW) HalfTurns() float64 { return g.halfTurns }

// AxisHalfTurns returns the canonical axis angle in half turns, in [0, 1).
func (g ExpW) AxisHalfTurns() float64 { return g.axisHalfTurns }

// Rads returns the canonical rotation angle in radians.
func (g ExpW) Rads() float64 { return g.halfTurns * math.Pi }

// AxisRads returns the canonical axis angle in radians.
func (g ExpW) AxisRads() float64 { return g.axisHalfTurns * math.Pi }

// NumQubits returns 1.
func (g ExpW) NumQubits() int { return 1 }

// Unitary returns
//
//	exp(i*phi*pi/2) * [ cos(phi*pi/2)              -i*sin(phi*pi/2)*e^{-i*theta*pi} ]
//	                  [ -i*sin(phi*pi/2)*e^{i*theta*pi}   cos(phi*pi/2)             ]
func (g ExpW) Unitary() *mat.CDense {
	var (
		c = complex(math.Cos(g.Rads()/2), 0)
		s = complex(math.Sin(g.Rads()/2), 0)
		w = cmplx.Exp(complex(0, -g.AxisRads()))
		z = cmplx.Exp(complex(0, g.Rads()/2))
	)
	//
	return mat.NewCDense(2, 2, []complex128{
		z * c, z * -1i * s * w,
		z * -1i * s * cmplx.Conj(w), z * c,
	})
}

// Merged returns a single ExpW equivalent to other applied after this gate.
// Only another ExpW about the same axis merges; half turns add modulo the
// canonical range.
func (g ExpW) Merged(other qir.Gate) (qir.Gate, error) {
	if o, ok := other.(ExpW); ok && o.axisHalfTurns == g.axisHalfTurns {
		return NewExpW(g.halfTurns+o.halfTurns, g.axisHalfTurns), nil
	}
	//
	return nil, notMergeable(g, other)
}

func (g ExpW) String() string {
	return fmt.Sprintf("W(%.2f, %.2f)", g.halfTurns, g.axisHalfTurns)
}
