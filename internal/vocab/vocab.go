/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package vocab loads optional vocabulary packs that extend the built-in
// autocomplete word lists. A pack is a YAML file validated against a JSON
// Schema before use, so a malformed pack fails loudly at load time instead
// of silently degrading suggestions.
package vocab

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	applog "goscreenwriter/internal/log"
	"goscreenwriter/internal/screenplay"
)

// Pack is a user-supplied vocabulary extension.
type Pack struct {
	Name        string   `yaml:"name" json:"name"`
	TimesOfDay  []string `yaml:"timesOfDay,omitempty" json:"timesOfDay,omitempty"`
	Transitions []string `yaml:"transitions,omitempty" json:"transitions,omitempty"`
	Characters  []string `yaml:"characters,omitempty" json:"characters,omitempty"`
	Locations   []string `yaml:"locations,omitempty" json:"locations,omitempty"`
}

// packSchema constrains pack shape: a name plus string lists only.
const packSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "timesOfDay": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "transitions": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "characters": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "locations": {"type": "array", "items": {"type": "string", "minLength": 1}}
  }
}`

// Load reads, validates, and parses a vocabulary pack from path.
func Load(path string) (Pack, error) {
	l := applog.WithOperation(applog.WithComponent("vocab"), "load").With(slog.String("path", path))
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("read vocabulary pack: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Pack{}, err
	}
	l.Info("vocabulary pack loaded", slog.String("name", p.Name),
		slog.Int("timesOfDay", len(p.TimesOfDay)), slog.Int("transitions", len(p.Transitions)),
		slog.Int("characters", len(p.Characters)), slog.Int("locations", len(p.Locations)))
	return p, nil
}

// Parse validates raw YAML bytes against the pack schema and decodes them.
func Parse(data []byte) (Pack, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Pack{}, fmt.Errorf("parse vocabulary pack: %w", err)
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return Pack{}, fmt.Errorf("normalize vocabulary pack: %w", err)
	}
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(packSchema), gojsonschema.NewBytesLoader(jsonBytes))
	if err != nil {
		return Pack{}, fmt.Errorf("validate vocabulary pack: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return Pack{}, fmt.Errorf("invalid vocabulary pack: %s", strings.Join(msgs, "; "))
	}
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pack{}, fmt.Errorf("decode vocabulary pack: %w", err)
	}
	return p, nil
}

// Apply merges a pack into a corpus. Built-in lists stay first so defaults
// keep their declared order; pack entries follow, deduplicated
// case-insensitively against what is already present.
func Apply(c screenplay.Corpus, p Pack) screenplay.Corpus {
	c.TimeOfDayVocab = extend(orDefault(c.TimeOfDayVocab, screenplay.TimesOfDay), p.TimesOfDay)
	c.TransitionList = extend(orDefault(c.TransitionList, screenplay.Transitions), p.Transitions)
	c.Characters = extend(c.Characters, p.Characters)
	c.Locations = extend(c.Locations, p.Locations)
	return c
}

func orDefault(v, def []string) []string {
	if v != nil {
		return v
	}
	return def
}

func extend(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[strings.ToUpper(s)] = struct{}{}
	}
	out := append([]string{}, base...)
	for _, s := range extra {
		key := strings.ToUpper(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
