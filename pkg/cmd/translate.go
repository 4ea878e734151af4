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
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hqsim/go-qbridge/pkg/circuit"
	"github.com/hqsim/go-qbridge/pkg/config"
	"github.com/hqsim/go-qbridge/pkg/engine"
	"github.com/hqsim/go-qbridge/pkg/qir"
	"github.com/hqsim/go-qbridge/pkg/qir/decompose"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] program_file",
	Short: "Translate an instruction stream into a batched circuit.",
	Long: `Translate a textual instruction stream into a batched target
	circuit, printing the circuit diagram and the final qubit mapping.
	With --native every gate is first lowered to the native primitive
	set before translation.`,
	Run: runTranslateCmd,
}

func runTranslateCmd(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	cfg := readConfig(cmd)
	// Read in program file
	bytes, err := os.ReadFile(args[0])
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	cmds, err := qir.ParseProgram(string(bytes))
	//
	if err != nil {
		fmt.Printf("%s:%s\n", args[0], err)
		os.Exit(2)
	}
	// Lower to native primitives (if requested)
	if cfg.NativeOnly {
		dcfg := decompose.Config{CorrectGlobalPhase: cfg.CorrectGlobalPhase}
		cmds = decompose.Decompose(dcfg, decompose.DefaultRuleset(), cmds)
	}
	//
	eng, err := engine.New(
		engine.WithRegister(circuit.LineRegister(registerSize(cfg, cmds))),
		engine.WithStrategy(readStrategy(cfg)),
	)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Commit whatever the stream leaves buffered.
	cmds = append(cmds, qir.NewCommand(qir.Flush))
	//
	if err := eng.Receive(cmds); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	printCircuit(eng.Circuit())
	printMapping(eng.Mapping())
}

// readConfig determines the run settings, starting from the config file (if
// given) and applying any explicitly set flags on top.
func readConfig(cmd *cobra.Command) config.Config {
	cfg := config.Default()
	//
	if path := GetString(cmd, "config"); path != "" {
		var err error
		//
		if cfg, err = config.Load(path); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if cmd.Flags().Changed("qubits") {
		cfg.Qubits = GetUint(cmd, "qubits")
	}
	//
	if cmd.Flags().Changed("native") {
		cfg.NativeOnly = GetFlag(cmd, "native")
	}
	//
	if cmd.Flags().Changed("correct-phase") {
		cfg.CorrectGlobalPhase = GetFlag(cmd, "correct-phase")
	}
	//
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = GetString(cmd, "strategy")
	}
	//
	return cfg
}

func readStrategy(cfg config.Config) circuit.InsertStrategy {
	switch cfg.Strategy {
	case "earliest":
		return circuit.Earliest
	case "new_moment":
		return circuit.NewMoment
	default:
		fmt.Printf("unknown strategy %q\n", cfg.Strategy)
		os.Exit(2)
		// unreachable
		return nil
	}
}

// registerSize determines the target register size, either as configured or
// (when left zero) from the highest qubit reference in the program.
func registerSize(cfg config.Config, cmds []qir.Command) uint {
	if cfg.Qubits != 0 {
		return cfg.Qubits
	}
	//
	var n uint
	//
	for _, cmd := range cmds {
		for _, ref := range cmd.Targets() {
			n = max(n, uint(ref)+1)
		}
		//
		for _, ref := range cmd.Controls() {
			n = max(n, uint(ref)+1)
		}
	}
	//
	return n
}

// printCircuit prints the wire diagram, falling back to a moment-by-moment
// listing when the diagram would overflow the terminal.
func printCircuit(circ *circuit.Circuit) {
	diagram := circ.String()
	width := 80
	//
	if w, _, err := term.GetSize(0); err == nil {
		width = w
	}
	//
	if diagramWidth(diagram) > width {
		for i, moment := range circ.Moments() {
			fmt.Printf("[%d]", i)
			//
			for _, op := range moment.Operations() {
				fmt.Printf(" %s", op)
			}
			//
			fmt.Println()
		}
	} else {
		fmt.Println(diagram)
	}
}

func diagramWidth(diagram string) int {
	w := 0
	// Wire segments are multi-byte runes, so count runes rather than bytes.
	for _, line := range strings.Split(diagram, "\n") {
		w = max(w, utf8.RuneCountInString(line))
	}
	//
	return w
}

// printMapping prints the qubit reference to register position mapping in
// reference order.
func printMapping(mapping map[qir.QubitID]uint) {
	refs := make([]qir.QubitID, 0, len(mapping))
	//
	for ref := range mapping {
		refs = append(refs, ref)
	}
	//
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	//
	for _, ref := range refs {
		fmt.Printf("%d -> q%d\n", ref, mapping[ref])
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().String("config", "", "load settings from a YAML file")
	translateCmd.Flags().UintP("qubits", "q", 0, "size of target register (0 = infer from program)")
	translateCmd.Flags().BoolP("native", "n", false, "lower gates to the native primitive set")
	translateCmd.Flags().Bool("correct-phase", false, "emit compensating global-phase instructions")
	translateCmd.Flags().StringP("strategy", "s", "", "insert strategy (earliest or new_moment)")
}
