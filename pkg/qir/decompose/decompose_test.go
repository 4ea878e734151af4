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
package decompose

import (
	"math"
	"testing"

	"github.com/hqsim/go-qbridge/pkg/qir"
	"github.com/hqsim/go-qbridge/pkg/qir/xmon"
	"github.com/hqsim/go-qbridge/pkg/util/cmatrix"
	"gonum.org/v1/gonum/mat"
)

// Rotation angles in radians, deliberately reaching beyond the canonical
// range of the native gates.
var angleGrid = []float64{-4.5, -math.Pi / 2, 0, 0.3, math.Pi / 2, math.Pi, 2 * math.Pi, 7}

// ============================================================================
// Rotations
// ============================================================================

func Test_Decompose_Rx_01(t *testing.T) {
	for _, a := range angleGrid {
		check_exact(t, 1, qir.NewCommand(qir.Rx(a), 0))
	}
}

func Test_Decompose_Rx_02(t *testing.T) {
	for _, a := range angleGrid {
		check_up_to_phase(t, 1, qir.NewCommand(qir.Rx(a), 0))
	}
}

func Test_Decompose_Ry_01(t *testing.T) {
	for _, a := range angleGrid {
		check_exact(t, 1, qir.NewCommand(qir.Ry(a), 0))
	}
}

func Test_Decompose_Rz_01(t *testing.T) {
	for _, a := range angleGrid {
		check_exact(t, 1, qir.NewCommand(qir.Rz(a), 0))
	}
}

func Test_Decompose_Rz_02(t *testing.T) {
	// Within the canonical range the native gate equals the rotation outright,
	// so no compensating phase is emitted.
	cmds := decompose(false, qir.NewCommand(qir.Rz(math.Pi/2), 0))
	//
	if len(cmds) != 1 {
		t.Errorf("expected a single command, got %d", len(cmds))
	}
}

func Test_Decompose_Rz_03(t *testing.T) {
	// Beyond the canonical range a compensating phase appears.
	cmds := decompose(true, qir.NewCommand(qir.Rz(3*math.Pi), 0))
	//
	if len(cmds) != 2 || cmds[1].Gate().Kind() != qir.KIND_PH {
		t.Errorf("expected native gate plus compensating phase, got %v", cmds)
	}
}

// ============================================================================
// Paulis
// ============================================================================

func Test_Decompose_X_01(t *testing.T) {
	// Pauli X lowers to a single native gate, exactly.
	cmds := decompose(false, qir.NewCommand(qir.XGate{}, 0))
	//
	if len(cmds) != 1 || cmds[0].Gate().Kind() != xmon.KIND_EXPW {
		t.Errorf("expected a single native gate, got %v", cmds)
	}
	//
	check_exact(t, 1, qir.NewCommand(qir.XGate{}, 0))
}

func Test_Decompose_Y_01(t *testing.T) {
	cmds := decompose(false, qir.NewCommand(qir.YGate{}, 0))
	//
	if len(cmds) != 1 || cmds[0].Gate().Kind() != xmon.KIND_EXPW {
		t.Errorf("expected a single native gate, got %v", cmds)
	}
	//
	check_exact(t, 1, qir.NewCommand(qir.YGate{}, 0))
}

func Test_Decompose_Z_01(t *testing.T) {
	check_exact(t, 1, qir.NewCommand(qir.ZGate{}, 0))
	check_up_to_phase(t, 1, qir.NewCommand(qir.ZGate{}, 0))
}

// ============================================================================
// Hadamard
// ============================================================================

func Test_Decompose_H_01(t *testing.T) {
	check_exact(t, 1, qir.NewCommand(qir.HGate{}, 0))
}

func Test_Decompose_H_02(t *testing.T) {
	// The Z-axis gate must precede the XY-plane gate in time.
	cmds := decompose(false, qir.NewCommand(qir.HGate{}, 0))
	//
	if len(cmds) != 2 {
		t.Fatalf("expected two native gates, got %d", len(cmds))
	}
	//
	if cmds[0].Gate().Kind() != xmon.KIND_EXPZ || cmds[1].Gate().Kind() != xmon.KIND_EXPW {
		t.Errorf("expected ExpZ then ExpW, got %v", cmds)
	}
}

// ============================================================================
// CNOT
// ============================================================================

func Test_Decompose_CNOT_01(t *testing.T) {
	check_exact(t, 2, qir.NewCommand(qir.XGate{}, 1).WithControls(0))
}

func Test_Decompose_CNOT_02(t *testing.T) {
	check_up_to_phase(t, 2, qir.NewCommand(qir.XGate{}, 1).WithControls(0))
}

func Test_Decompose_CNOT_04(t *testing.T) {
	// A single rewrite step yields Hadamard, conditional phase, Hadamard.
	var (
		rules   = NewRuleset(NewRule(qir.KIND_X, recognizeSingleControl, rewriteCNOT))
		cmds, _ = rules.apply(Config{}, qir.NewCommand(qir.XGate{}, 1).WithControls(0))
	)
	//
	if len(cmds) != 3 {
		t.Fatalf("expected three commands, got %d", len(cmds))
	}
	//
	if cmds[0].Gate().Kind() != qir.KIND_H || cmds[2].Gate().Kind() != qir.KIND_H {
		t.Errorf("expected conjugating Hadamards, got %v", cmds)
	}
	//
	middle, ok := cmds[1].Gate().(xmon.Exp11)
	//
	if !ok || middle.HalfTurns() != 1 {
		t.Fatalf("expected a half-turn conditional phase, got %s", cmds[1])
	}
	//
	if ts := cmds[1].Targets(); ts[0] != 0 || ts[1] != 1 {
		t.Errorf("expected conditional phase on (0, 1), got %v", ts)
	}
}

func Test_Decompose_CNOT_03(t *testing.T) {
	// The conjugating Hadamards decompose further, leaving only native gates
	// and compensating phases.
	cmds := decompose(true, qir.NewCommand(qir.XGate{}, 1).WithControls(0))
	//
	check_native(t, cmds)
}

// ============================================================================
// SWAP
// ============================================================================

func Test_Decompose_Swap_01(t *testing.T) {
	// The swap decomposition is exact with no compensating phase at all.
	check_exact(t, 2, qir.NewCommand(qir.SwapGate{}, 0, 1))
	//
	var (
		cmds  = decompose(false, qir.NewCommand(qir.SwapGate{}, 0, 1))
		total = sequenceUnitary(t, 2, cmds)
	)
	//
	if !cmatrix.EqualApprox(total, qir.SwapGate{}.Unitary(), cmatrix.DefaultTolerance) {
		t.Errorf("expected uncorrected swap decomposition to be exact")
	}
}

func Test_Decompose_Swap_02(t *testing.T) {
	cmds := decompose(false, qir.NewCommand(qir.SwapGate{}, 0, 1))
	//
	if len(cmds) != 9 {
		t.Errorf("expected nine native gates, got %d", len(cmds))
	}
	//
	check_native(t, cmds)
}

// ============================================================================
// Driver behaviour
// ============================================================================

func Test_Decompose_Passthrough_01(t *testing.T) {
	// No rule covers the S gate, so it survives untouched.
	cmds := decompose(true, qir.NewCommand(qir.SGate{}, 0))
	//
	if len(cmds) != 1 || cmds[0].Gate().Kind() != qir.KIND_S {
		t.Errorf("expected the S gate to pass through, got %v", cmds)
	}
}

func Test_Decompose_Passthrough_02(t *testing.T) {
	// A doubly-controlled X matches neither the plain nor the single-control
	// rule.
	cmds := decompose(true, qir.NewCommand(qir.XGate{}, 2).WithControls(0, 1))
	//
	if len(cmds) != 1 || cmds[0].ControlCount() != 2 {
		t.Errorf("expected the Toffoli to pass through, got %v", cmds)
	}
}

func Test_Decompose_Controls_01(t *testing.T) {
	// Ambient controls are pushed down onto every replacement command.
	cmds := decompose(true, qir.NewCommand(qir.Rz(math.Pi), 1).WithControls(2))
	//
	if len(cmds) == 0 {
		t.Fatalf("expected a non-empty decomposition")
	}
	//
	for _, cmd := range cmds {
		if cmd.ControlCount() != 1 {
			t.Errorf("expected command %s to carry the ambient control", cmd)
		}
	}
}

func Test_Decompose_Order_01(t *testing.T) {
	// Commands of a stream decompose independently, preserving stream order.
	var (
		cmds = decompose(false,
			qir.NewCommand(qir.XGate{}, 0),
			qir.NewCommand(qir.YGate{}, 1),
		)
	)
	//
	if len(cmds) != 2 {
		t.Fatalf("expected two commands, got %d", len(cmds))
	}
	//
	if cmds[0].Targets()[0] != 0 || cmds[1].Targets()[0] != 1 {
		t.Errorf("expected stream order to be preserved, got %v", cmds)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func decompose(correct bool, cmds ...qir.Command) []qir.Command {
	cfg := Config{CorrectGlobalPhase: correct}
	//
	return Decompose(cfg, DefaultRuleset(), cmds)
}

// check_exact decomposes the command with phase correction enabled and checks
// the resulting sequence multiplies out to exactly the original unitary.
func check_exact(t *testing.T, n int, cmd qir.Command) {
	t.Helper()
	//
	var (
		cmds     = decompose(true, cmd)
		total    = sequenceUnitary(t, n, cmds)
		expected = commandUnitary(t, n, cmd)
	)
	//
	if !cmatrix.EqualApprox(total, expected, cmatrix.DefaultTolerance) {
		t.Errorf("decomposition of %s is not exact", cmd)
	}
}

// check_up_to_phase decomposes the command without phase correction and checks
// the result agrees with the original up to a global phase.
func check_up_to_phase(t *testing.T, n int, cmd qir.Command) {
	t.Helper()
	//
	var (
		cmds     = decompose(false, cmd)
		total    = sequenceUnitary(t, n, cmds)
		expected = commandUnitary(t, n, cmd)
	)
	//
	if !cmatrix.EqualUpToGlobalPhase(total, expected, cmatrix.DefaultTolerance) {
		t.Errorf("decomposition of %s is wrong even up to global phase", cmd)
	}
}

// check_native fails unless every command is a native primitive or a global
// phase.
func check_native(t *testing.T, cmds []qir.Command) {
	t.Helper()
	//
	for _, cmd := range cmds {
		switch cmd.Gate().Kind() {
		case xmon.KIND_EXPZ, xmon.KIND_EXPW, xmon.KIND_EXP11, qir.KIND_PH:
			// ok
		default:
			t.Errorf("command %s is not native", cmd)
		}
	}
}

// sequenceUnitary multiplies an uncontrolled command sequence out over an
// n-qubit register, later commands applying on the left.
func sequenceUnitary(t *testing.T, n int, cmds []qir.Command) *mat.CDense {
	t.Helper()
	//
	total := cmatrix.Identity(1 << n)
	//
	for _, cmd := range cmds {
		total = cmatrix.Mul(commandUnitary(t, n, cmd), total)
	}
	//
	return total
}

// commandUnitary embeds a single command into the n-qubit space, treating any
// controls as leading qubits of a block-diagonal operator.
func commandUnitary(t *testing.T, n int, cmd qir.Command) *mat.CDense {
	t.Helper()
	//
	gate, ok := cmd.Gate().(qir.MatrixGate)
	//
	if !ok {
		t.Fatalf("gate %s has no unitary", cmd.Gate())
	}
	//
	var (
		u         = gate.Unitary()
		positions []int
	)
	//
	for _, q := range cmd.Controls() {
		positions = append(positions, int(q))
	}
	//
	for _, q := range cmd.Targets() {
		positions = append(positions, int(q))
	}
	//
	if c := cmd.ControlCount(); c > 0 {
		u = controlled(u, c)
	}
	//
	return cmatrix.Expand(u, positions, n)
}

// controlled builds the block-diagonal operator applying u only when all
// controls are set.
func controlled(u *mat.CDense, controls int) *mat.CDense {
	var (
		subDim = subDims(u)
		dim    = subDim << controls
		m      = cmatrix.Identity(dim)
	)
	//
	for i := 0; i < subDim; i++ {
		for j := 0; j < subDim; j++ {
			m.Set(dim-subDim+i, dim-subDim+j, u.At(i, j))
		}
	}
	//
	return m
}

func subDims(u *mat.CDense) int {
	r, _ := u.Dims()
	//
	return r
}
