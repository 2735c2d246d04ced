/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

import (
	"strings"
	"testing"
)

func TestNextInsertionTableExhaustive(t *testing.T) {
	types := []ElementType{Empty, SceneHeading, Action, Character, Dialogue, Parenthetical, Transition}
	for _, typ := range types {
		for _, key := range []Key{KeyTab, KeyEnter} {
			if _, ok := insertions[insertion{typ, key}]; !ok {
				t.Fatalf("no insertion for %v + %v", typ, key)
			}
		}
	}
	if len(insertions) != len(types)*2 {
		t.Fatalf("table has %d entries, want %d", len(insertions), len(types)*2)
	}
}

func TestNextInsertionCharacterTab(t *testing.T) {
	got := NextInsertion(Character, KeyTab)
	if got != "\n"+DialogueIndent {
		t.Fatalf("Character+Tab = %q, want newline plus dialogue indent", got)
	}
	// Applying the template puts the next character at the dialogue column,
	// not the character column.
	line := got[strings.LastIndexByte(got, '\n')+1:]
	if len(line) != len(DialogueIndent) {
		t.Fatalf("column after Character+Tab = %d, want %d", len(line), len(DialogueIndent))
	}
	if len(line) == len(CharacterIndent) {
		t.Fatalf("Character+Tab must not land at the character column")
	}
}

func TestNextInsertionCharacterEnterOpensParenthetical(t *testing.T) {
	got := NextInsertion(Character, KeyEnter)
	if !strings.HasSuffix(got, "(") {
		t.Fatalf("Character+Enter = %q, want template ending in (", got)
	}
	if !strings.Contains(got, ParentheticalIndent) {
		t.Fatalf("Character+Enter = %q, want parenthetical indent", got)
	}
}

func TestNextInsertionActionTab(t *testing.T) {
	got := NextInsertion(Action, KeyTab)
	if got != "\n\n"+CharacterIndent {
		t.Fatalf("Action+Tab = %q, want two newlines plus character indent", got)
	}
}
