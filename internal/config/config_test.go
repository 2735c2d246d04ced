/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import "testing"

func TestEnvOverridesAutocomplete(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAutocompleteEnabled, "false")
	t.Setenv(EnvAutocompleteDelayMs, "400")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.AutocompleteEnabled {
		t.Fatalf("Editor.AutocompleteEnabled expected false from env override")
	}
	if got, want := cfg.Editor.AutocompleteDelayMs, 400; got != want {
		t.Fatalf("Editor.AutocompleteDelayMs = %d, want %d", got, want)
	}
}

func TestEnvOverridesTelemetry(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvTelemetryOptIn, "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.General.TelemetryOptIn {
		t.Fatalf("General.TelemetryOptIn expected true from env override")
	}
}

func TestMergeIncludesEditor(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Editor.AutocompleteEnabled = false
	src.Editor.AutocompleteDelayMs = 600
	mergeInto(&dst, &src)
	if dst.Editor.AutocompleteEnabled {
		t.Fatalf("AutocompleteEnabled was not merged from file config")
	}
	if dst.Editor.AutocompleteDelayMs != 600 {
		t.Fatalf("AutocompleteDelayMs was not merged from file config")
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "Debug"
	src.Logging.Format = "JSON"
	src.Logging.Source = true
	src.Logging.File = " /tmp/gsw.log "
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" {
		t.Fatalf("logging level/format not normalized: %+v", dst.Logging)
	}
	if !dst.Logging.Source || dst.Logging.File != "/tmp/gsw.log" {
		t.Fatalf("logging source/file not merged: %+v", dst.Logging)
	}
}

func TestEnvOverrideFor(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	if name, ok := EnvOverrideFor("logging.level"); !ok || name != EnvLogLevel {
		t.Fatalf("EnvOverrideFor(logging.level) = %q,%v", name, ok)
	}
	if _, ok := EnvOverrideFor("nope"); ok {
		t.Fatalf("unknown key must not report an override")
	}
}

func TestInvalidDelayIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAutocompleteDelayMs, "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.AutocompleteDelayMs != Defaults().Editor.AutocompleteDelayMs {
		t.Fatalf("invalid delay override must keep default, got %d", cfg.Editor.AutocompleteDelayMs)
	}
}
