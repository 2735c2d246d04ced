/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
)

var reHeadingPrefix = regexp.MustCompile(`(?i)^(INT\./EXT\.|INT/EXT\.?|I/E\.?|INT\.?|EXT\.?)\s*`)

// extractState is the explicit fold accumulator for Extract. All running
// state lives here rather than in package variables, so concurrent Extract
// calls never interfere.
type extractState struct {
	scenes       []Scene
	current      *Scene
	roster       []*ScreenCharacter
	rosterByKey  map[string]*ScreenCharacter
	sceneChars   map[string]struct{}
	currentCue   string
	headingCount map[string]int
}

// Extract scans the full screenplay text and derives the entity graph:
// ordered scenes, the character roster with per-scene dialogue counts, and
// the location roster. The whole graph is recomputed from scratch on every
// call; scene numbers are dense and 1-based in document order and may
// change between calls when scenes are reordered upstream.
//
// Lines before the first scene heading are classified but belong to no
// scene: a document with N scene headings always yields exactly N scenes.
func Extract(text string) Document {
	st := extractState{
		rosterByKey:  map[string]*ScreenCharacter{},
		headingCount: map[string]int{},
	}

	for lineNo, cl := range ClassifyDocument(text) {
		line := strings.TrimSpace(cl.Text)
		switch cl.Type {
		case Empty:
			// Blank lines are separators, not elements.
		case SceneHeading:
			st.flushScene()
			st.openScene(line)
		case Character:
			st.onCharacter(line, lineNo+1)
		case Dialogue:
			st.onDialogue(line, lineNo+1)
		case Parenthetical:
			st.appendElement(Element{Type: Parenthetical, Text: line, Speaker: st.currentCue, LineNo: lineNo + 1})
		default:
			// Action and transitions end the current dialogue block, so a
			// later dialogue-looking line is never attributed to a stale
			// speaker.
			st.currentCue = ""
			st.appendElement(Element{Type: cl.Type, Text: line, LineNo: lineNo + 1})
		}
	}
	st.flushScene()

	return Document{
		Scenes:     st.scenes,
		Characters: st.characters(),
		Locations:  st.locations(),
	}
}

func (st *extractState) openScene(heading string) {
	n := len(st.scenes) + 1
	st.headingCount[heading]++
	st.current = &Scene{
		ID:         sceneID(heading, st.headingCount[heading]),
		Number:     n,
		Heading:    heading,
		Characters: []string{},
		Elements:   []Element{},
	}
	st.current.Location, st.current.TimeOfDay = parseHeading(heading)
	st.sceneChars = map[string]struct{}{}
	st.currentCue = ""
}

func (st *extractState) flushScene() {
	if st.current != nil {
		st.scenes = append(st.scenes, *st.current)
	}
	st.current = nil
}

func (st *extractState) onCharacter(line string, lineNo int) {
	key := strings.ToUpper(line)
	ch, ok := st.rosterByKey[key]
	if !ok {
		ch = &ScreenCharacter{Name: line}
		st.rosterByKey[key] = ch
		st.roster = append(st.roster, ch)
	}
	st.currentCue = ch.Name
	if st.current != nil {
		if _, seen := st.sceneChars[key]; !seen {
			st.sceneChars[key] = struct{}{}
			st.current.Characters = append(st.current.Characters, ch.Name)
			ch.Appearances = append(ch.Appearances, Appearance{
				SceneID:     st.current.ID,
				SceneNumber: st.current.Number,
			})
		}
		st.current.Elements = append(st.current.Elements, Element{Type: Character, Text: line, LineNo: lineNo})
	}
}

func (st *extractState) onDialogue(line string, lineNo int) {
	st.appendElement(Element{Type: Dialogue, Text: line, Speaker: st.currentCue, LineNo: lineNo})
	if st.current == nil || st.currentCue == "" {
		return
	}
	ch := st.rosterByKey[strings.ToUpper(st.currentCue)]
	for i := range ch.Appearances {
		if ch.Appearances[i].SceneID == st.current.ID {
			ch.Appearances[i].DialogueLines++
			return
		}
	}
}

func (st *extractState) appendElement(e Element) {
	if st.current != nil {
		st.current.Elements = append(st.current.Elements, e)
	}
}

func (st *extractState) characters() []ScreenCharacter {
	out := make([]ScreenCharacter, 0, len(st.roster))
	for _, ch := range st.roster {
		out = append(out, *ch)
	}
	return out
}

// locations aggregates the distinct (name, type) pairs across scenes with
// their scene counts, in first-seen order.
func (st *extractState) locations() []Location {
	type locKey struct {
		name string
		typ  LocationType
	}
	idx := map[locKey]int{}
	var out []Location
	for _, sc := range st.scenes {
		k := locKey{sc.Location.Name, sc.Location.Type}
		if i, ok := idx[k]; ok {
			out[i].SceneCount++
			continue
		}
		idx[k] = len(out)
		out = append(out, Location{Name: sc.Location.Name, Type: sc.Location.Type, SceneCount: 1})
	}
	return out
}

// parseHeading splits a scene heading into its location and time of day.
// The leading INT/EXT token decides the location type; the text up to the
// first " - " is the location name and the remainder the time of day. With
// no separator the whole remainder is the location name and the time of
// day stays empty.
func parseHeading(heading string) (Location, string) {
	loc := Location{Type: LocationUnknown}
	rest := heading
	if m := reHeadingPrefix.FindString(heading); m != "" {
		loc.Type = locationTypeOf(m)
		rest = heading[len(m):]
	}
	if i := strings.Index(rest, " - "); i >= 0 {
		loc.Name = strings.TrimSpace(rest[:i])
		return loc, strings.TrimSpace(rest[i+3:])
	}
	loc.Name = strings.TrimSpace(rest)
	return loc, ""
}

func locationTypeOf(prefix string) LocationType {
	up := strings.ToUpper(strings.TrimSpace(prefix))
	switch {
	case strings.HasPrefix(up, "INT./EXT") || strings.HasPrefix(up, "INT/EXT") || strings.HasPrefix(up, "I/E"):
		return LocationIntExt
	case strings.HasPrefix(up, "INT"):
		return LocationInt
	case strings.HasPrefix(up, "EXT"):
		return LocationExt
	}
	return LocationUnknown
}

// sceneID derives a stable identifier from the heading text and its
// occurrence ordinal, so extracting identical text twice yields identical
// IDs without any hidden counter.
func sceneID(heading string, occurrence int) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(heading))
	_, _ = fmt.Fprintf(h, "#%d", occurrence)
	return fmt.Sprintf("scn-%08x", h.Sum32())
}
