/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"goscreenwriter/internal/screenplay"
	"goscreenwriter/internal/telemetry"
)

func init() {
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify every line of a screenplay",
		Long:  "Labels each line as scene heading, action, character, dialogue, parenthetical, transition, or empty.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runClassify,
	}
	RootCmd.AddCommand(cmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	text, err := readInput(args)
	if err != nil {
		exitErr("classify", err)
	}
	lines := screenplay.ClassifyDocument(text)
	telemetry.Event("classify", map[string]any{"lines": len(lines)})

	if formatFlag == "text" {
		for i, ln := range lines {
			fmt.Printf("%4d %-13s %s\n", i+1, ln.Type, ln.Text)
		}
		return
	}
	b, _ := json.MarshalIndent(lines, "", "  ")
	fmt.Println(string(b))
}
