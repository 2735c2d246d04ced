/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"goscreenwriter/internal/screenplay"
)

func init() {
	cmd := &cobra.Command{
		Use:   "fmt-next",
		Short: "Text inserted by Tab or Enter after an element",
		Long:  "Prints the literal insertion a smart editor makes when Tab or Enter is pressed at the end of an element of the given type.",
		Run:   runFmtNext,
	}
	cmd.Flags().StringP("type", "t", "action", "Element type: empty, scene_heading, action, character, dialogue, parenthetical, transition")
	cmd.Flags().StringP("key", "k", "enter", "Key pressed: tab or enter")
	RootCmd.AddCommand(cmd)
}

func runFmtNext(cmd *cobra.Command, args []string) {
	typeName, _ := cmd.Flags().GetString("type")
	keyName, _ := cmd.Flags().GetString("key")

	t, err := parseElementType(typeName)
	if err != nil {
		exitErr("fmt-next", err)
	}
	k, err := parseKey(keyName)
	if err != nil {
		exitErr("fmt-next", err)
	}
	ins := screenplay.NextInsertion(t, k)
	if formatFlag == "text" {
		fmt.Print(ins)
		return
	}
	// JSON string keeps the whitespace visible and copy-pasteable.
	b, _ := json.Marshal(ins)
	fmt.Println(string(b))
}

func parseElementType(s string) (screenplay.ElementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty":
		return screenplay.Empty, nil
	case "scene_heading", "scene-heading", "heading":
		return screenplay.SceneHeading, nil
	case "action":
		return screenplay.Action, nil
	case "character":
		return screenplay.Character, nil
	case "dialogue":
		return screenplay.Dialogue, nil
	case "parenthetical":
		return screenplay.Parenthetical, nil
	case "transition":
		return screenplay.Transition, nil
	}
	return screenplay.Action, fmt.Errorf("unknown element type %q", s)
}

func parseKey(s string) (screenplay.Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tab":
		return screenplay.KeyTab, nil
	case "enter":
		return screenplay.KeyEnter, nil
	}
	return screenplay.KeyEnter, fmt.Errorf("unknown key %q", s)
}
