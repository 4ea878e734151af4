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
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Config_01(t *testing.T) {
	cfg := Default()
	//
	if cfg.Strategy != "earliest" || cfg.NativeOnly || cfg.Qubits != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func Test_Config_02(t *testing.T) {
	cfg := load(t, `
qubits: 4
native_only: true
correct_global_phase: true
strategy: new_moment
`)
	//
	if cfg.Qubits != 4 || !cfg.NativeOnly || !cfg.CorrectGlobalPhase || cfg.Strategy != "new_moment" {
		t.Errorf("unexpected settings: %+v", cfg)
	}
}

func Test_Config_03(t *testing.T) {
	// Omitted settings keep their defaults.
	cfg := load(t, "qubits: 2\n")
	//
	if cfg.Qubits != 2 || cfg.Strategy != "earliest" {
		t.Errorf("unexpected settings: %+v", cfg)
	}
}

func Test_Config_04(t *testing.T) {
	if _, err := Load(write(t, "strategy: sometime\n")); err == nil {
		t.Errorf("expected an unknown strategy to be rejected")
	}
}

func Test_Config_05(t *testing.T) {
	if _, err := Load(write(t, "qubits: [1, 2]\n")); err == nil {
		t.Errorf("expected malformed YAML to be rejected")
	}
}

func Test_Config_06(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected a missing file to be an error")
	}
}

func load(t *testing.T, yaml string) Config {
	t.Helper()
	//
	cfg, err := Load(write(t, yaml))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return cfg
}

func write(t *testing.T, yaml string) string {
	t.Helper()
	//
	path := filepath.Join(t.TempDir(), "config.yaml")
	//
	if err := os.WriteFile(path, []byte(yaml), 0600); err != nil {
		t.Fatal(err)
	}
	//
	return path
}
