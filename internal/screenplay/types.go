/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package screenplay implements the screenplay text model: line
// classification, cursor context resolution, autocomplete suggestions,
// whole-document entity extraction, and the Tab/Enter formatting table.
//
// Everything in this package is a pure function over in-memory strings.
// There is no I/O, no configuration, and no retained state between calls,
// so all entry points are safe for concurrent use on immutable inputs.
package screenplay

import "encoding/json"

// ElementType is the semantic kind of a single screenplay line.
// Classification is total: every (line, previousLine) pair maps to exactly
// one ElementType.
type ElementType int

const (
	Empty ElementType = iota
	SceneHeading
	Action
	Character
	Dialogue
	Parenthetical
	Transition
)

var elementNames = map[ElementType]string{
	Empty:         "empty",
	SceneHeading:  "scene_heading",
	Action:        "action",
	Character:     "character",
	Dialogue:      "dialogue",
	Parenthetical: "parenthetical",
	Transition:    "transition",
}

func (t ElementType) String() string {
	if s, ok := elementNames[t]; ok {
		return s
	}
	return "action"
}

// MarshalJSON renders the type as its lowercase name so CLI output stays
// readable and stable across enum reordering.
func (t ElementType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// ClassifiedLine is one line of a document together with its byte range.
// End excludes the trailing newline; Start==End for empty lines.
type ClassifiedLine struct {
	Start int         `json:"start"`
	End   int         `json:"end"`
	Text  string      `json:"text"`
	Type  ElementType `json:"type"`
}

// LocationType distinguishes interior and exterior scenes.
type LocationType string

const (
	LocationInt     LocationType = "INT"
	LocationExt     LocationType = "EXT"
	LocationIntExt  LocationType = "INT/EXT"
	LocationUnknown LocationType = "UNKNOWN"
)

// Location is a distinct place named by scene headings.
type Location struct {
	Name       string       `json:"name"`
	Type       LocationType `json:"type"`
	SceneCount int          `json:"sceneCount"`
}

// Element is one classified line belonging to a scene. Speaker is set only
// for dialogue and parentheticals inside an attributed dialogue block.
type Element struct {
	Type    ElementType `json:"type"`
	Text    string      `json:"text"`
	Speaker string      `json:"speaker,omitempty"`
	LineNo  int         `json:"lineNo"`
}

// Scene is a value object rebuilt wholesale on every extraction pass.
// Number is 1-based and dense in document order; it is never persisted and
// may change between calls when scenes move. ID is derived from the heading
// text and its occurrence ordinal so repeated extraction of the same text
// yields the same IDs.
type Scene struct {
	ID         string    `json:"id"`
	Number     int       `json:"number"`
	Heading    string    `json:"heading"`
	Location   Location  `json:"location"`
	TimeOfDay  string    `json:"timeOfDay"`
	Characters []string  `json:"characters"`
	Elements   []Element `json:"elements"`
	Synopsis   string    `json:"synopsis,omitempty"`
}

// Appearance records a character's presence in one scene.
type Appearance struct {
	SceneID       string `json:"sceneId"`
	SceneNumber   int    `json:"sceneNumber"`
	DialogueLines int    `json:"dialogueLines"`
}

// ScreenCharacter is a member of the character roster. Identity is the cue
// string matched case-insensitively; Name keeps the form of the first
// sighting.
type ScreenCharacter struct {
	Name        string       `json:"name"`
	Appearances []Appearance `json:"appearances"`
}

// Document is the full entity graph extracted from screenplay text.
type Document struct {
	Scenes     []Scene           `json:"scenes"`
	Characters []ScreenCharacter `json:"characters"`
	Locations  []Location        `json:"locations"`
}

// ContextType names the suggestion category an autocomplete context is in.
type ContextType string

const (
	ContextNone         ContextType = "none"
	ContextSceneHeading ContextType = "scene-heading"
	ContextLocation     ContextType = "location"
	ContextTimeOfDay    ContextType = "time-of-day"
	ContextCharacter    ContextType = "character"
	ContextTransition   ContextType = "transition"
)

// Context describes the cursor position for autocomplete. It is recomputed
// from scratch on every call; nothing is cached between keystrokes.
type Context struct {
	ShouldShow   bool        `json:"shouldShow"`
	Type         ContextType `json:"type"`
	CurrentWord  string      `json:"currentWord"`
	WordStart    int         `json:"wordStart"`
	LineContent  string      `json:"lineContent"`
	LineStart    int         `json:"lineStart"`
	PreviousLine string      `json:"previousLine"`
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}
