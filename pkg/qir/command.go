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
	"strings"
)

// Command is a single instruction of the source IR: a gate applied to an
// ordered list of target qubits, optionally conditioned on an ordered list of
// control qubits.  Commands are immutable once constructed; the accessor
// methods hand out copies of the internal slices.
type Command struct {
	gate     Gate
	targets  []QubitID
	controls []QubitID
	tags     []string
}

// NewCommand constructs a command applying the given gate to the given target
// qubits.
func NewCommand(gate Gate, targets ...QubitID) Command {
	return Command{gate, cloneQubits(targets), nil, nil}
}

// WithControls returns a copy of this command conditioned on the given
// control qubits, appended after any existing controls.
func (c Command) WithControls(controls ...QubitID) Command {
	merged := make([]QubitID, 0, len(c.controls)+len(controls))
	merged = append(merged, c.controls...)
	merged = append(merged, controls...)
	//
	return Command{c.gate, c.targets, merged, c.tags}
}

// WithTags returns a copy of this command carrying the given opaque metadata
// tags.
func (c Command) WithTags(tags ...string) Command {
	return Command{c.gate, c.targets, c.controls, append(cloneTags(c.tags), tags...)}
}

// Gate returns the gate this command applies.
func (c Command) Gate() Gate {
	return c.gate
}

// Targets returns the target qubits of this command.
func (c Command) Targets() []QubitID {
	return cloneQubits(c.targets)
}

// Controls returns the control qubits of this command.
func (c Command) Controls() []QubitID {
	return cloneQubits(c.controls)
}

// ControlCount returns the number of control qubits of this command.
func (c Command) ControlCount() int {
	return len(c.controls)
}

// Tags returns the opaque metadata tags attached to this command.
func (c Command) Tags() []string {
	return cloneTags(c.tags)
}

func (c Command) String() string {
	var builder strings.Builder
	//
	if len(c.controls) > 0 {
		fmt.Fprintf(&builder, "C%d[", len(c.controls))
		//
		for i, q := range c.controls {
			if i != 0 {
				builder.WriteString(",")
			}
			//
			fmt.Fprintf(&builder, "%d", q)
		}
		//
		builder.WriteString("] ")
	}
	//
	builder.WriteString(c.gate.String())
	builder.WriteString(" |")
	//
	for _, q := range c.targets {
		fmt.Fprintf(&builder, " %d", q)
	}
	//
	return builder.String()
}

func cloneQubits(qs []QubitID) []QubitID {
	if len(qs) == 0 {
		return nil
	}
	//
	return append([]QubitID(nil), qs...)
}

func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	//
	return append([]string(nil), tags...)
}
