/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

import (
	"errors"
	"testing"
)

func TestResolveContextCursorOutOfRange(t *testing.T) {
	if _, err := ResolveContext("abc", -1); !errors.Is(err, ErrCursorOutOfRange) {
		t.Fatalf("negative cursor: err = %v, want ErrCursorOutOfRange", err)
	}
	if _, err := ResolveContext("abc", 4); !errors.Is(err, ErrCursorOutOfRange) {
		t.Fatalf("cursor past end: err = %v, want ErrCursorOutOfRange", err)
	}
	if _, err := ResolveContext("abc", 3); err != nil {
		t.Fatalf("cursor at end must be valid, got %v", err)
	}
	if _, err := ResolveContext("", 0); err != nil {
		t.Fatalf("empty text cursor 0 must be valid, got %v", err)
	}
}

func TestResolveContextCharacterTrigger(t *testing.T) {
	text := "\n\nJOH"
	ctx, err := ResolveContext(text, len(text))
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Type != ContextCharacter {
		t.Fatalf("type = %q, want %q", ctx.Type, ContextCharacter)
	}
	if !ctx.ShouldShow {
		t.Fatalf("ShouldShow = false, want true")
	}
	if ctx.CurrentWord != "JOH" {
		t.Fatalf("CurrentWord = %q, want JOH", ctx.CurrentWord)
	}
	if ctx.WordStart != 2 {
		t.Fatalf("WordStart = %d, want 2", ctx.WordStart)
	}
}

func TestResolveContextSceneHeadingTrigger(t *testing.T) {
	for _, partial := range []string{"", "INT", "INT.", "ext", "EXT.", "I/E"} {
		text := "\n\n" + partial
		ctx, err := ResolveContext(text, len(text))
		if err != nil {
			t.Fatalf("ResolveContext(%q) error: %v", partial, err)
		}
		if ctx.Type != ContextSceneHeading || !ctx.ShouldShow {
			t.Fatalf("partial %q: type=%q show=%v, want scene-heading/true", partial, ctx.Type, ctx.ShouldShow)
		}
	}
}

func TestResolveContextLocationTrigger(t *testing.T) {
	text := "\n\nINT. COF"
	ctx, err := ResolveContext(text, len(text))
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Type != ContextLocation || !ctx.ShouldShow {
		t.Fatalf("type=%q show=%v, want location/true", ctx.Type, ctx.ShouldShow)
	}
	if ctx.CurrentWord != "COF" {
		t.Fatalf("CurrentWord = %q, want COF", ctx.CurrentWord)
	}

	// With the cursor on a space there is no word yet: the category holds
	// but the UI stays hidden until at least one character is typed.
	text = "\n\nINT. COFFEE "
	ctx, err = ResolveContext(text, len(text))
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Type != ContextLocation || ctx.ShouldShow {
		t.Fatalf("type=%q show=%v, want location/false", ctx.Type, ctx.ShouldShow)
	}
}

// A bare prefix with its dot still reads as the scene-heading category, not
// location: the prefix pattern is matched against the trimmed line.
func TestResolveContextBarePrefixIsHeading(t *testing.T) {
	text := "\n\nINT. "
	ctx, err := ResolveContext(text, len(text))
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Type != ContextSceneHeading || !ctx.ShouldShow {
		t.Fatalf("type=%q show=%v, want scene-heading/true", ctx.Type, ctx.ShouldShow)
	}
}

func TestResolveContextTimeOfDayTrigger(t *testing.T) {
	text := "\n\nINT. COFFEE SHOP - "
	ctx, err := ResolveContext(text, len(text))
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Type != ContextTimeOfDay || !ctx.ShouldShow {
		t.Fatalf("type=%q show=%v, want time-of-day/true", ctx.Type, ctx.ShouldShow)
	}
}

func TestResolveContextTransitionTrigger(t *testing.T) {
	text := "\n\nCUT"
	ctx, err := ResolveContext(text, len(text))
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Type != ContextTransition || !ctx.ShouldShow {
		t.Fatalf("type=%q show=%v, want transition/true", ctx.Type, ctx.ShouldShow)
	}
	if ctx.CurrentWord != "CUT" {
		t.Fatalf("CurrentWord = %q, want CUT", ctx.CurrentWord)
	}
}

func TestResolveContextNone(t *testing.T) {
	// Mid-dialogue typing should not trigger anything.
	text := "JOHN\nwell then"
	ctx, err := ResolveContext(text, len(text))
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Type != ContextNone || ctx.ShouldShow {
		t.Fatalf("type=%q show=%v, want none/false", ctx.Type, ctx.ShouldShow)
	}
	if ctx.PreviousLine != "JOHN" {
		t.Fatalf("PreviousLine = %q, want JOHN", ctx.PreviousLine)
	}
}

func TestResolveContextLineFields(t *testing.T) {
	text := "INT. SHOP - DAY\n\nJOHN"
	ctx, err := ResolveContext(text, len(text))
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.LineStart != 17 {
		t.Fatalf("LineStart = %d, want 17", ctx.LineStart)
	}
	if ctx.LineContent != "JOHN" {
		t.Fatalf("LineContent = %q, want JOHN", ctx.LineContent)
	}
	// Cursor mid-document, not at line end.
	ctx, err = ResolveContext(text, 8)
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.LineContent != "INT. SHOP - DAY" || ctx.LineStart != 0 {
		t.Fatalf("mid-line context = %+v", ctx)
	}
}
