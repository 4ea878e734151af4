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
	"strconv"
	"strings"
)

// ParseProgram parses a textual command stream, one instruction per line.
// Lines are of the form
//
//	alloc 0            rx 0 1.5708        cnot 0 1
//	h 0                ry 0 0.7854        swap 0 1
//	measure 0          rz 0 3.1416        ph 0 0.7854
//	barrier            dealloc 0          flush
//
// with '#' introducing comments.  Qubit arguments are source-IR references,
// not register positions.
func ParseProgram(input string) ([]Command, error) {
	var cmds []Command
	//
	for i, line := range strings.Split(input, "\n") {
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		//
		fields := strings.Fields(line)
		//
		if len(fields) == 0 {
			continue
		}
		//
		cmd, err := parseInstruction(fields[0], fields[1:])
		//
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		//
		cmds = append(cmds, cmd)
	}
	//
	return cmds, nil
}

func parseInstruction(name string, args []string) (Command, error) {
	switch strings.ToLower(name) {
	case "alloc":
		return parseNullary(Allocate, args)
	case "dealloc":
		return parseNullary(Deallocate, args)
	case "measure":
		return parseNullary(Measure, args)
	case "barrier":
		if len(args) != 0 {
			return Command{}, fmt.Errorf("barrier takes no arguments")
		}
		//
		return NewCommand(Barrier), nil
	case "flush":
		if len(args) != 0 {
			return Command{}, fmt.Errorf("flush takes no arguments")
		}
		//
		return NewCommand(Flush), nil
	case "h":
		return parseNullary(HGate{}, args)
	case "s":
		return parseNullary(SGate{}, args)
	case "x":
		return parseNullary(XGate{}, args)
	case "y":
		return parseNullary(YGate{}, args)
	case "z":
		return parseNullary(ZGate{}, args)
	case "rx", "ry", "rz", "ph":
		return parseRotation(name, args)
	case "cnot":
		qs, err := parseQubits(args, 2)
		//
		if err != nil {
			return Command{}, err
		}
		// control first, target second
		return NewCommand(XGate{}, qs[1]).WithControls(qs[0]), nil
	case "swap":
		qs, err := parseQubits(args, 2)
		//
		if err != nil {
			return Command{}, err
		}
		//
		return NewCommand(SwapGate{}, qs...), nil
	default:
		return Command{}, fmt.Errorf("unknown instruction %q", name)
	}
}

func parseNullary(gate Gate, args []string) (Command, error) {
	qs, err := parseQubits(args, 1)
	//
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", gate, err)
	}
	//
	return NewCommand(gate, qs...), nil
}

func parseRotation(name string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, fmt.Errorf("%s expects qubit and angle", name)
	}
	//
	qs, err := parseQubits(args[:1], 1)
	//
	if err != nil {
		return Command{}, err
	}
	//
	rads, err := strconv.ParseFloat(args[1], 64)
	//
	if err != nil {
		return Command{}, fmt.Errorf("invalid angle %q", args[1])
	}
	//
	switch strings.ToLower(name) {
	case "rx":
		return NewCommand(Rx(rads), qs[0]), nil
	case "ry":
		return NewCommand(Ry(rads), qs[0]), nil
	case "rz":
		return NewCommand(Rz(rads), qs[0]), nil
	default:
		return NewCommand(Ph(rads), qs[0]), nil
	}
}

func parseQubits(args []string, n int) ([]QubitID, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d qubit(s), given %d", n, len(args))
	}
	//
	qs := make([]QubitID, n)
	//
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		//
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid qubit %q", arg)
		}
		//
		qs[i] = QubitID(id)
	}
	//
	return qs, nil
}
