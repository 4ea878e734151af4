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
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the absolute tolerance used when comparing unitaries.
// Gate matrices are built from a handful of trigonometric evaluations, hence a
// tolerance well above machine epsilon but far below any physical angle.
const DefaultTolerance = 1e-9

// Identity constructs the n x n complex identity matrix.
func Identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	//
	return m
}

// Mul returns the matrix product a*b.
func Mul(a, b *mat.CDense) *mat.CDense {
	var (
		ra, ca = a.Dims()
		_, cb  = b.Dims()
		c      = mat.NewCDense(ra, cb, nil)
	)
	//
	for i := 0; i < ra; i++ {
		for j := 0; j < cb; j++ {
			var sum complex128
			//
			for k := 0; k < ca; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			//
			c.Set(i, j, sum)
		}
	}
	//
	return c
}

// Scale returns z*a without modifying a.
func Scale(z complex128, a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	m := mat.NewCDense(r, c, nil)
	//
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, z*a.At(i, j))
		}
	}
	//
	return m
}

// Kron returns the Kronecker product of a and b, with a supplying the most
// significant index bits.
func Kron(a, b *mat.CDense) *mat.CDense {
	var (
		ra, ca = a.Dims()
		rb, cb = b.Dims()
		m      = mat.NewCDense(ra*rb, ca*cb, nil)
	)
	//
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			for k := 0; k < rb; k++ {
				for l := 0; l < cb; l++ {
					m.Set(i*rb+k, j*cb+l, a.At(i, j)*b.At(k, l))
				}
			}
		}
	}
	//
	return m
}

// Expand embeds an operator u acting on the given qubit positions into the
// full n-qubit space.  Qubit 0 carries the most significant bit of a basis
// index, and the order of the qubits slice determines which bit of the
// sub-index each qubit supplies.
func Expand(u *mat.CDense, qubits []int, n int) *mat.CDense {
	var (
		dim = 1 << n
		m   = mat.NewCDense(dim, dim, nil)
	)
	//
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			// Off-operator bits must agree for a non-zero element.
			if restBits(i, qubits, n) != restBits(j, qubits, n) {
				continue
			}
			//
			m.Set(i, j, u.At(subIndex(i, qubits, n), subIndex(j, qubits, n)))
		}
	}
	//
	return m
}

// EqualApprox reports whether a and b agree element-wise within tol.
func EqualApprox(a, b *mat.CDense, tol float64) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	//
	if ra != rb || ca != cb {
		return false
	}
	//
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if cmplx.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	//
	return true
}

// EqualUpToGlobalPhase reports whether a equals z*b for some scalar z of
// modulus one.
func EqualUpToGlobalPhase(a, b *mat.CDense, tol float64) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	//
	if ra != rb || ca != cb {
		return false
	}
	// Fix the phase against the first entry of b with usable magnitude.
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if cmplx.Abs(b.At(i, j)) > tol {
				z := a.At(i, j) / b.At(i, j)
				//
				if d := cmplx.Abs(z) - 1; d > tol || d < -tol {
					return false
				}
				//
				return EqualApprox(a, Scale(z, b), tol)
			}
		}
	}
	// b is (numerically) zero, so a must be too.
	return EqualApprox(a, b, tol)
}

// subIndex extracts the bits of index belonging to the given qubits, in the
// order listed.
func subIndex(index int, qubits []int, n int) int {
	sub := 0
	//
	for _, q := range qubits {
		sub = (sub << 1) | ((index >> (n - 1 - q)) & 1)
	}
	//
	return sub
}

// restBits clears the bits of index belonging to the given qubits.
func restBits(index int, qubits []int, n int) int {
	for _, q := range qubits {
		index &^= 1 << (n - 1 - q)
	}
	//
	return index
}
