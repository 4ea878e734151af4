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

// Package decompose rewrites arbitrary source-IR gates into the native
// primitive set (ExpZ, ExpW, Exp11).  Every rewrite is a state-free
// recognizer/rewriter pair; the driver applies rules until no command matches
// any rule, so rewrites may emit commands which themselves decompose further.
package decompose

import (
	log "github.com/sirupsen/logrus"

	"github.com/hqsim/go-qbridge/pkg/qir"
)

// Config carries the options of a decomposition run.  It is consulted afresh
// on every rewrite invocation, so a caller mutating its copy between calls
// sees the change take effect for all subsequent rewrites.
type Config struct {
	// CorrectGlobalPhase requests that every rewrite additionally emit a
	// compensating global-phase instruction sized to cancel exactly the phase
	// that rewrite introduced.  Without it, rewrites are correct only up to a
	// global phase.
	CorrectGlobalPhase bool
}

// Recognizer decides whether a rule applies to a command.  Beyond the gate
// kind the registry dispatches on, recognizers typically constrain the
// control count.
type Recognizer func(cmd qir.Command) bool

// Rewriter replaces a recognized command by zero or more commands.
type Rewriter func(cfg Config, cmd qir.Command) []qir.Command

// Rule pairs a recognizer with a rewriter under a gate kind.
type Rule struct {
	kind      qir.Kind
	recognize Recognizer
	rewrite   Rewriter
}

// NewRule constructs a decomposition rule for the given gate kind.
func NewRule(kind qir.Kind, recognize Recognizer, rewrite Rewriter) Rule {
	return Rule{kind, recognize, rewrite}
}

// Kind returns the gate kind this rule applies to.
func (r Rule) Kind() qir.Kind { return r.kind }

// Ruleset is a collection of decomposition rules indexed by gate kind.  Rules
// for the same kind are tried in registration order.
type Ruleset struct {
	rules map[qir.Kind][]Rule
}

// NewRuleset constructs a ruleset holding the given rules.
func NewRuleset(rules ...Rule) *Ruleset {
	rs := &Ruleset{make(map[qir.Kind][]Rule)}
	//
	for _, r := range rules {
		rs.AddRule(r)
	}
	//
	return rs
}

// AddRule appends a rule to the set.
func (rs *Ruleset) AddRule(r Rule) {
	rs.rules[r.kind] = append(rs.rules[r.kind], r)
}

// apply rewrites cmd using the first applicable rule, if any.
func (rs *Ruleset) apply(cfg Config, cmd qir.Command) ([]qir.Command, bool) {
	for _, r := range rs.rules[cmd.Gate().Kind()] {
		if r.recognize(cmd) {
			return r.rewrite(cfg, cmd), true
		}
	}
	//
	return nil, false
}

// Decompose lowers the given commands using the given rules, re-examining
// replacement commands until no rule applies anywhere.  Commands no rule
// recognizes pass through unchanged.
func Decompose(cfg Config, rules *Ruleset, cmds []qir.Command) []qir.Command {
	var (
		out  = make([]qir.Command, 0, len(cmds))
		work = append([]qir.Command(nil), cmds...)
	)
	//
	for len(work) > 0 {
		cmd := work[0]
		work = work[1:]
		//
		if replacement, ok := rules.apply(cfg, cmd); ok {
			log.Debugf("decomposed %s into %d command(s)", cmd, len(replacement))
			// Re-examine replacements before the remaining input.
			work = append(append([]qir.Command(nil), replacement...), work...)
		} else {
			out = append(out, cmd)
		}
	}
	//
	return out
}

// withControls conditions every command on the given extra controls, in
// addition to any it already carries.  Rewriters use this to keep ambient
// controls transparent to the rewrite.
func withControls(cmds []qir.Command, controls []qir.QubitID) []qir.Command {
	if len(controls) == 0 {
		return cmds
	}
	//
	out := make([]qir.Command, len(cmds))
	//
	for i, cmd := range cmds {
		out[i] = cmd.WithControls(controls...)
	}
	//
	return out
}
