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
	"fmt"
	"regexp"
	"strings"
)

// ErrCursorOutOfRange is returned by ResolveContext for a cursor offset
// that is negative or beyond the end of the text. Out-of-range offsets are
// caller bugs; they fail loudly instead of clamping.
var ErrCursorOutOfRange = errors.New("cursor offset out of range")

var (
	reCurrentWord = regexp.MustCompile(`[A-Za-z0-9.'/-]+$`)

	// Partial scene-heading opener, tuned for "still typing": empty line,
	// a bare prefix, or a prefix with the trailing dot.
	reHeadingStart = regexp.MustCompile(`(?i)^(INT|EXT|I/E)?\.?$`)

	reUppercaseLetter = regexp.MustCompile(`[A-Z]`)
)

// ResolveContext computes the autocomplete context for a cursor position.
// The triggers are evaluated in fixed order and the first match wins; they
// mirror the classifier precedence but use narrower patterns because the
// line under the cursor is usually incomplete.
func ResolveContext(text string, cursor int) (Context, error) {
	if cursor < 0 || cursor > len(text) {
		return Context{}, fmt.Errorf("resolve context at %d of %d bytes: %w", cursor, len(text), ErrCursorOutOfRange)
	}

	lineStart := strings.LastIndexByte(text[:cursor], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[cursor:], '\n'); i >= 0 {
		lineEnd = cursor + i
	}
	before := text[lineStart:cursor]

	previous := ""
	if lineStart > 0 {
		prevStart := strings.LastIndexByte(text[:lineStart-1], '\n') + 1
		previous = strings.TrimSpace(text[prevStart : lineStart-1])
	}

	word := reCurrentWord.FindString(before)

	ctx := Context{
		Type:         ContextNone,
		CurrentWord:  word,
		WordStart:    cursor - len(word),
		LineContent:  text[lineStart:lineEnd],
		LineStart:    lineStart,
		PreviousLine: previous,
	}

	trimmed := strings.TrimSpace(before)
	switch {
	case previous == "" && reHeadingStart.MatchString(trimmed):
		ctx.Type = ContextSceneHeading
		ctx.ShouldShow = true
	case hasHeadingPrefix(trimmed) && !strings.Contains(before, " - "):
		ctx.Type = ContextLocation
		ctx.ShouldShow = len(word) >= 1
	case hasHeadingPrefix(trimmed) && strings.Contains(before, " - "):
		ctx.Type = ContextTimeOfDay
		ctx.ShouldShow = true
	case previous == "" && isCharacterStart(trimmed):
		ctx.Type = ContextCharacter
		ctx.ShouldShow = true
	case previous == "" && isTransitionStart(trimmed):
		ctx.Type = ContextTransition
		ctx.ShouldShow = true
	}
	return ctx, nil
}

func hasHeadingPrefix(trimmed string) bool {
	up := strings.ToUpper(trimmed)
	for _, p := range SceneHeadingPrefixes {
		if strings.HasPrefix(up, p) {
			return true
		}
	}
	return false
}

// isCharacterStart reports whether the partial line looks like a character
// cue being typed: at least two characters, fully uppercase, at least one
// letter, and not the start of a heading or transition.
func isCharacterStart(trimmed string) bool {
	if len(trimmed) < 2 {
		return false
	}
	if strings.ToUpper(trimmed) != trimmed {
		return false
	}
	if !reUppercaseLetter.MatchString(trimmed) {
		return false
	}
	if reSceneHeading.MatchString(trimmed) || hasHeadingPrefix(trimmed) {
		return false
	}
	if isTransitionStart(trimmed) {
		return false
	}
	return true
}

func isTransitionStart(trimmed string) bool {
	up := strings.ToUpper(trimmed)
	for _, kw := range transitionKeywords {
		if strings.HasPrefix(up, kw) {
			return true
		}
	}
	return false
}
