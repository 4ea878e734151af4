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

// Package config loads translator settings from a YAML file.  Every setting
// has a corresponding command-line flag; flags given explicitly win over the
// file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the translator settings of a run.
type Config struct {
	// Registers the number of target register qubits.  Zero means size the
	// register to the highest qubit reference in the input.
	Qubits uint `yaml:"qubits"`
	// NativeOnly lowers every gate to the native primitive set before
	// translation.
	NativeOnly bool `yaml:"native_only"`
	// CorrectGlobalPhase emits compensating global-phase instructions during
	// decomposition.
	CorrectGlobalPhase bool `yaml:"correct_global_phase"`
	// Strategy selects the insert strategy, "earliest" or "new_moment".
	Strategy string `yaml:"strategy"`
}

// Default returns the settings used when no file or flags are given.
func Default() Config {
	return Config{Strategy: "earliest"}
}

// Load reads settings from the given YAML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	//
	bytes, err := os.ReadFile(path)
	//
	if err != nil {
		return cfg, err
	}
	//
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	//
	if cfg.Strategy != "earliest" && cfg.Strategy != "new_moment" {
		return cfg, fmt.Errorf("parsing %s: unknown strategy %q", path, cfg.Strategy)
	}
	//
	return cfg, nil
}
