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
package cmatrix

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

var (
	pauliX = mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	pauliZ = mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
)

func Test_Identity_01(t *testing.T) {
	check_equal(t, Mul(Identity(4), Identity(4)), Identity(4))
}

func Test_Mul_01(t *testing.T) {
	// X * X == I
	check_equal(t, Mul(pauliX, pauliX), Identity(2))
}

func Test_Mul_02(t *testing.T) {
	// X * Z == -i * Y
	y := mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0})
	check_equal(t, Mul(pauliX, pauliZ), Scale(-1i, y))
}

func Test_Mul_03(t *testing.T) {
	// Entry-level check against a hand-computed product.
	var (
		a        = mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
		b        = mat.NewCDense(2, 2, []complex128{0, 1i, 1, 0})
		expected = mat.NewCDense(2, 2, []complex128{2, 1i, 4, 3i})
	)
	//
	check_equal(t, Mul(a, b), expected)
}

func Test_Mul_04(t *testing.T) {
	// Non-commuting factors multiply in the given order.
	var (
		ab = Mul(pauliX, pauliZ)
		ba = Mul(pauliZ, pauliX)
	)
	//
	if EqualApprox(ab, ba, DefaultTolerance) {
		t.Errorf("expected X*Z and Z*X to differ")
	}
	//
	check_equal(t, Mul(ab, ab), Scale(-1, Identity(2)))
}

func Test_Kron_01(t *testing.T) {
	check_equal(t, Kron(Identity(2), Identity(2)), Identity(4))
}

func Test_Kron_02(t *testing.T) {
	// (X ⊗ I) flips the most significant bit.
	expected := mat.NewCDense(4, 4, []complex128{
		0, 0, 1, 0,
		0, 0, 0, 1,
		1, 0, 0, 0,
		0, 1, 0, 0,
	})
	check_equal(t, Kron(pauliX, Identity(2)), expected)
}

func Test_Expand_01(t *testing.T) {
	// X on qubit 0 of two equals X ⊗ I.
	check_equal(t, Expand(pauliX, []int{0}, 2), Kron(pauliX, Identity(2)))
}

func Test_Expand_02(t *testing.T) {
	// X on qubit 1 of two equals I ⊗ X.
	check_equal(t, Expand(pauliX, []int{1}, 2), Kron(Identity(2), pauliX))
}

func Test_Expand_03(t *testing.T) {
	// Embedding a two-qubit operator in its own space changes nothing.
	cnot := mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
	check_equal(t, Expand(cnot, []int{0, 1}, 2), cnot)
}

func Test_Expand_04(t *testing.T) {
	// Reversing the qubit order of a CNOT swaps control and target.
	var (
		cnot = mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		})
		reversed = mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
			0, 1, 0, 0,
		})
	)
	//
	check_equal(t, Expand(cnot, []int{1, 0}, 2), reversed)
}

func Test_Expand_05(t *testing.T) {
	// A CNOT on qubits (0, 2) of three leaves qubit 1 alone.
	var (
		cnot = mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		})
		m = Expand(cnot, []int{0, 2}, 3)
	)
	// |101> -> |100>, i.e. column 5 has its one at row 4.
	if m.At(4, 5) != 1 || m.At(5, 5) != 0 {
		t.Errorf("expected |101> to map onto |100>")
	}
	// |010> is untouched.
	if m.At(2, 2) != 1 {
		t.Errorf("expected |010> to be fixed")
	}
}

func Test_GlobalPhase_01(t *testing.T) {
	if !EqualUpToGlobalPhase(Scale(1i, pauliX), pauliX, DefaultTolerance) {
		t.Errorf("expected i*X to equal X up to global phase")
	}
}

func Test_GlobalPhase_02(t *testing.T) {
	if EqualUpToGlobalPhase(pauliZ, pauliX, DefaultTolerance) {
		t.Errorf("expected Z to differ from X up to global phase")
	}
}

func Test_GlobalPhase_03(t *testing.T) {
	// Scaling by a non-unit factor is not a phase.
	if EqualUpToGlobalPhase(Scale(2, pauliX), pauliX, DefaultTolerance) {
		t.Errorf("expected 2*X to differ from X up to global phase")
	}
}

func check_equal(t *testing.T, actual, expected *mat.CDense) {
	t.Helper()
	//
	ra, ca := actual.Dims()
	re, ce := expected.Dims()
	//
	if ra != re || ca != ce {
		t.Errorf("expected %dx%d matrix, got %dx%d", re, ce, ra, ca)
		return
	}
	//
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if a, e := actual.At(i, j), expected.At(i, j); !approx(a, e) {
				t.Errorf("entry (%d,%d): expected %v, got %v", i, j, e, a)
				return
			}
		}
	}
}

func approx(a, b complex128) bool {
	d := a - b
	//
	return real(d)*real(d)+imag(d)*imag(d) <= DefaultTolerance*DefaultTolerance
}
