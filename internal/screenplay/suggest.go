/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

import "strings"

// Static vocabularies. Suggestion order mirrors declaration order; there is
// no ranking beyond category match.
var (
	SceneHeadingPrefixes = []string{"INT.", "EXT.", "INT./EXT.", "I/E."}

	TimesOfDay = []string{
		"DAY", "NIGHT", "DAWN", "DUSK", "MORNING", "AFTERNOON", "EVENING",
		"CONTINUOUS", "MOMENTS LATER", "SAME", "LATER",
	}

	Transitions = []string{
		"CUT TO:", "FADE TO:", "FADE OUT.", "FADE IN:", "DISSOLVE TO:",
		"SMASH CUT TO:", "MATCH CUT TO:", "JUMP CUT TO:", "IRIS OUT.", "WIPE TO:",
	}
)

// Corpus is the vocabulary Suggestions draws from. Characters and Locations
// are the dynamic part, normally derived from the latest Extract pass and
// kept in first-seen order. The static lists may be overridden (vocabulary
// packs); nil fields fall back to the package defaults.
type Corpus struct {
	Characters []string
	Locations  []string

	ScenePrefixes  []string
	TimeOfDayVocab []string
	TransitionList []string
}

func (c Corpus) scenePrefixes() []string {
	if c.ScenePrefixes != nil {
		return c.ScenePrefixes
	}
	return SceneHeadingPrefixes
}

func (c Corpus) timesOfDay() []string {
	if c.TimeOfDayVocab != nil {
		return c.TimeOfDayVocab
	}
	return TimesOfDay
}

func (c Corpus) transitions() []string {
	if c.TransitionList != nil {
		return c.TransitionList
	}
	return Transitions
}

// Suggestions returns the filtered candidate list for a context. An empty
// result means the caller must suppress the suggestion UI; there is no
// "no results" placeholder at this layer.
//
// All categories filter by case-insensitive prefix match on the current
// word except locations, which use substring match: location names are
// often long compound phrases and users search by any part of them.
func Suggestions(ctx Context, corpus Corpus) []Suggestion {
	if !ctx.ShouldShow {
		return nil
	}
	word := strings.ToLower(ctx.CurrentWord)
	switch ctx.Type {
	case ContextSceneHeading:
		return filterPrefix(corpus.scenePrefixes(), word, "scene-heading")
	case ContextTimeOfDay:
		return filterPrefix(corpus.timesOfDay(), word, "time-of-day")
	case ContextTransition:
		return filterPrefix(corpus.transitions(), word, "transition")
	case ContextCharacter:
		return filterPrefix(corpus.Characters, word, "character")
	case ContextLocation:
		return filterSubstring(dedupe(corpus.Locations), word, "location")
	}
	return nil
}

func filterPrefix(values []string, lowerWord, category string) []Suggestion {
	var out []Suggestion
	for _, v := range values {
		if strings.HasPrefix(strings.ToLower(v), lowerWord) {
			out = append(out, Suggestion{Value: v, Label: v, Category: category})
		}
	}
	return out
}

func filterSubstring(values []string, lowerWord, category string) []Suggestion {
	var out []Suggestion
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerWord) {
			out = append(out, Suggestion{Value: v, Label: v, Category: category})
		}
	}
	return out
}

// dedupe drops exact duplicates, keeping first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
