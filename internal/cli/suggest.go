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
		Use:   "suggest [file]",
		Short: "Autocomplete candidates at a cursor position",
		Long:  "Resolves the autocomplete context at --cursor and prints the matching candidates for it.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSuggest,
	}
	cmd.Flags().IntP("cursor", "c", -1, "Byte offset of the cursor (required)")
	_ = cmd.MarkFlagRequired("cursor")
	RootCmd.AddCommand(cmd)
}

func runSuggest(cmd *cobra.Command, args []string) {
	cursor, _ := cmd.Flags().GetInt("cursor")
	text, err := readInput(args)
	if err != nil {
		exitErr("suggest", err)
	}
	if !appCfg.Editor.AutocompleteEnabled {
		fmt.Println("[]")
		return
	}
	sctx, err := screenplay.ResolveContext(text, cursor)
	if err != nil {
		exitErr("resolve context", err)
	}
	corpus, err := buildCorpus(text)
	if err != nil {
		exitErr("build corpus", err)
	}
	suggestions := screenplay.Suggestions(sctx, corpus)
	telemetry.Event("suggest", map[string]any{"context": string(sctx.Type), "candidates": len(suggestions)})

	if formatFlag == "text" {
		for _, s := range suggestions {
			fmt.Println(s.Value)
		}
		return
	}
	if suggestions == nil {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(suggestions, "", "  ")
	fmt.Println(string(b))
}
