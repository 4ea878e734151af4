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

// Package xmon provides the native primitive gate family all higher-level
// gates decompose into: a phase gate about the Z axis (ExpZ), a phase gate
// about an axis in the XY plane (ExpW) and a two-qubit conditional phase gate
// (Exp11).  All parameters are held in half turns (one half turn equals pi
// radians) and canonicalized into the half-open interval (-1, 1] on
// construction.
package xmon

import (
	"fmt"
	"math"

	"github.com/hqsim/go-qbridge/pkg/qir"
)

// Kinds of the native primitive gates.
const (
	KIND_EXPZ  qir.Kind = "ExpZ"
	KIND_EXPW  qir.Kind = "ExpW"
	KIND_EXP11 qir.Kind = "Exp11"
)

// CanonicalHalfTurns maps an angle in half turns into the canonical range
// (-1, 1] by adding or subtracting even integers.
func CanonicalHalfTurns(halfTurns float64) float64 {
	r := math.Mod(halfTurns, 2)
	//
	if r <= -1 {
		r += 2
	} else if r > 1 {
		r -= 2
	}
	//
	return r
}

// NotMergeableError signals an attempt to merge two gates which have no
// combined single-gate equivalent.
type NotMergeableError struct {
	// Kinds of the two gates involved.
	Left, Right qir.Kind
}

func (e *NotMergeableError) Error() string {
	return fmt.Sprintf("cannot merge %s with %s", e.Left, e.Right)
}

func notMergeable(left, right qir.Gate) error {
	return &NotMergeableError{left.Kind(), right.Kind()}
}
