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

	"github.com/hqsim/go-qbridge/pkg/qir"
	"github.com/hqsim/go-qbridge/pkg/qir/xmon"
)

// DefaultRuleset constructs the fixed rule set lowering rotations, Paulis,
// Hadamard, CNOT and SWAP into the native primitive family.
func DefaultRuleset() *Ruleset {
	return NewRuleset(
		NewRule(qir.KIND_RX, recognizeUncontrolled, rewriteRx),
		NewRule(qir.KIND_RY, recognizeUncontrolled, rewriteRy),
		NewRule(qir.KIND_RZ, recognizeUncontrolled, rewriteRz),
		NewRule(qir.KIND_X, recognizeUncontrolled, rewriteX),
		NewRule(qir.KIND_Y, recognizeUncontrolled, rewriteY),
		NewRule(qir.KIND_Z, recognizeUncontrolled, rewriteZ),
		NewRule(qir.KIND_H, recognizeUncontrolled, rewriteH),
		NewRule(qir.KIND_X, recognizeSingleControl, rewriteCNOT),
		NewRule(qir.KIND_SWAP, recognizeUncontrolled, rewriteSwap),
	)
}

func recognizeUncontrolled(cmd qir.Command) bool {
	return cmd.ControlCount() == 0
}

func recognizeSingleControl(cmd qir.Command) bool {
	return cmd.ControlCount() == 1
}

// ============================================================================
// Rotations
// ============================================================================

// rewriteRx lowers Rx(a) to an XY-plane phase gate about the X axis.  The
// phase gate equals exp(i*a/2)*Rx(a), so the compensating phase is -a/2.
func rewriteRx(cfg Config, cmd qir.Command) []qir.Command {
	var (
		rads   = cmd.Gate().(qir.RxGate).Rads()
		target = cmd.Targets()[0]
		cmds   = []qir.Command{
			qir.NewCommand(xmon.NewExpW(rads/math.Pi, 0), target),
		}
	)
	//
	if cfg.CorrectGlobalPhase {
		cmds = append(cmds, qir.NewCommand(qir.Ph(-rads/2), target))
	}
	//
	return withControls(cmds, cmd.Controls())
}

// rewriteRy lowers Ry(a) to an XY-plane phase gate about the Y axis, with the
// same -a/2 compensating phase as Rx.
func rewriteRy(cfg Config, cmd qir.Command) []qir.Command {
	var (
		rads   = cmd.Gate().(qir.RyGate).Rads()
		target = cmd.Targets()[0]
		cmds   = []qir.Command{
			qir.NewCommand(xmon.NewExpW(rads/math.Pi, 0.5), target),
		}
	)
	//
	if cfg.CorrectGlobalPhase {
		cmds = append(cmds, qir.NewCommand(qir.Ph(-rads/2), target))
	}
	//
	return withControls(cmds, cmd.Controls())
}

// rewriteRz lowers Rz(a) to a Z-axis phase gate.  For angles within the
// canonical range the phase gate equals Rz(a) exactly; canonicalization of
// larger angles flips the sign once per discarded full turn, which the
// compensating phase undoes.
func rewriteRz(cfg Config, cmd qir.Command) []qir.Command {
	var (
		rads   = cmd.Gate().(qir.RzGate).Rads()
		target = cmd.Targets()[0]
		gate   = xmon.NewExpZ(rads / math.Pi)
		cmds   = []qir.Command{qir.NewCommand(gate, target)}
	)
	//
	if delta := (rads - gate.Rads()) / 2; cfg.CorrectGlobalPhase && delta != 0 {
		cmds = append(cmds, qir.NewCommand(qir.Ph(delta), target))
	}
	//
	return withControls(cmds, cmd.Controls())
}

// ============================================================================
// Paulis
// ============================================================================

// rewriteX lowers a Pauli X to a full-turn XY-plane phase gate about the X
// axis, which equals X exactly.
func rewriteX(cfg Config, cmd qir.Command) []qir.Command {
	cmds := []qir.Command{
		qir.NewCommand(xmon.NewExpW(1, 0), cmd.Targets()[0]),
	}
	//
	return withControls(cmds, cmd.Controls())
}

// rewriteY lowers a Pauli Y to a full-turn XY-plane phase gate about the Y
// axis, which equals Y exactly.
func rewriteY(cfg Config, cmd qir.Command) []qir.Command {
	cmds := []qir.Command{
		qir.NewCommand(xmon.NewExpW(1, 0.5), cmd.Targets()[0]),
	}
	//
	return withControls(cmds, cmd.Controls())
}

// rewriteZ lowers a Pauli Z to a full-turn Z-axis phase gate.  The phase gate
// equals -i*Z, hence the compensating phase of pi/2.
func rewriteZ(cfg Config, cmd qir.Command) []qir.Command {
	var (
		target = cmd.Targets()[0]
		cmds   = []qir.Command{qir.NewCommand(xmon.NewExpZ(1), target)}
	)
	//
	if cfg.CorrectGlobalPhase {
		cmds = append(cmds, qir.NewCommand(qir.Ph(math.Pi/2), target))
	}
	//
	return withControls(cmds, cmd.Controls())
}

// ============================================================================
// Hadamard
// ============================================================================

// rewriteH lowers a Hadamard to a full-turn Z-axis phase gate followed by a
// half-turn XY-plane phase gate about the Y axis.  Their product equals
// exp(-i*pi/4)*H, hence the compensating phase of pi/4.
func rewriteH(cfg Config, cmd qir.Command) []qir.Command {
	var (
		target = cmd.Targets()[0]
		cmds   = []qir.Command{
			qir.NewCommand(xmon.NewExpZ(1), target),
			qir.NewCommand(xmon.NewExpW(0.5, 0.5), target),
		}
	)
	//
	if cfg.CorrectGlobalPhase {
		cmds = append(cmds, qir.NewCommand(qir.Ph(math.Pi/4), target))
	}
	//
	return withControls(cmds, cmd.Controls())
}

// ============================================================================
// CNOT
// ============================================================================

// rewriteCNOT lowers an X gate with exactly one control into a conditional
// phase gate conjugated by Hadamards on the target.  The emitted Hadamards
// are source gates and decompose further in the same run; any phase they
// introduce is theirs to compensate.
func rewriteCNOT(cfg Config, cmd qir.Command) []qir.Command {
	var (
		target  = cmd.Targets()[0]
		control = cmd.Controls()[0]
	)
	//
	return []qir.Command{
		qir.NewCommand(qir.HGate{}, target),
		qir.NewCommand(xmon.NewExp11(1), control, target),
		qir.NewCommand(qir.HGate{}, target),
	}
}

// ============================================================================
// SWAP
// ============================================================================

// rewriteSwap lowers an unconditional SWAP into three conditional phase
// gates, each conjugated by quarter-turn XY-plane phase gates on the
// respective target.  Every conjugated triple equals a CNOT exactly (the
// quarter-turn phase prefactors cancel pairwise), so the whole sequence
// equals SWAP exactly and needs no compensating phase.
func rewriteSwap(cfg Config, cmd qir.Command) []qir.Command {
	var (
		targets = cmd.Targets()
		a       = targets[0]
		b       = targets[1]
	)
	//
	return withControls([]qir.Command{
		qir.NewCommand(xmon.NewExpW(-0.5, 0.5), b),
		qir.NewCommand(xmon.NewExp11(1), a, b),
		qir.NewCommand(xmon.NewExpW(0.5, 0.5), b),
		qir.NewCommand(xmon.NewExpW(-0.5, 0.5), a),
		qir.NewCommand(xmon.NewExp11(1), b, a),
		qir.NewCommand(xmon.NewExpW(0.5, 0.5), a),
		qir.NewCommand(xmon.NewExpW(-0.5, 0.5), b),
		qir.NewCommand(xmon.NewExp11(1), a, b),
		qir.NewCommand(xmon.NewExpW(0.5, 0.5), b),
	}, cmd.Controls())
}
