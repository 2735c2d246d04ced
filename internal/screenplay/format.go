/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package screenplay

// Key is the trigger for a smart-formatting insertion.
type Key int

const (
	KeyTab Key = iota
	KeyEnter
)

func (k Key) String() string {
	if k == KeyTab {
		return "tab"
	}
	return "enter"
}

// Fixed screenplay columns, in spaces from the left margin of a monospace
// page. Action sits at the margin.
const (
	DialogueIndent      = "          "             // column 10
	ParentheticalIndent = "                "       // column 16
	CharacterIndent     = "                      " // column 22
)

type insertion struct {
	typ ElementType
	key Key
}

// insertions maps every element type and trigger to the literal template
// that seeds the logically-next element. The table is declarative and
// exhaustive over the 7 types so the formatting convention can be audited
// without reading editor code.
var insertions = map[insertion]string{
	{Empty, KeyEnter}: "\n",
	{Empty, KeyTab}:   CharacterIndent,

	{SceneHeading, KeyEnter}: "\n\n",
	{SceneHeading, KeyTab}:   "\n\n" + CharacterIndent,

	{Action, KeyEnter}: "\n\n",
	{Action, KeyTab}:   "\n\n" + CharacterIndent,

	{Character, KeyEnter}: "\n" + ParentheticalIndent + "(",
	{Character, KeyTab}:   "\n" + DialogueIndent,

	{Dialogue, KeyEnter}: "\n\n" + CharacterIndent,
	{Dialogue, KeyTab}:   "\n" + ParentheticalIndent + "(",

	{Parenthetical, KeyEnter}: "\n" + DialogueIndent,
	{Parenthetical, KeyTab}:   "\n" + DialogueIndent,

	{Transition, KeyEnter}: "\n\n",
	{Transition, KeyTab}:   "\n\n",
}

// NextInsertion returns the text to insert when the given key fires on a
// line of the given element type.
func NextInsertion(t ElementType, k Key) string {
	return insertions[insertion{t, k}]
}
