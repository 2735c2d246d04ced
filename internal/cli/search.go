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

	"goscreenwriter/internal/index"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <file> [query]",
		Short: "Search a screenplay's breakdown index",
		Long:  "Full-text search over indexed scene headings, action, and dialogue. Query uses FTS5 syntax; without a query the filters alone select rows.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}
	cmd.Flags().StringSlice("kind", nil, "Filter by entry kind (dialogue, action, scene_heading, character, location)")
	cmd.Flags().String("speaker", "", "Filter dialogue by speaking character")
	cmd.Flags().Int("from", 0, "First scene number (inclusive)")
	cmd.Flags().Int("to", 0, "Last scene number (inclusive)")
	cmd.Flags().IntP("limit", "l", 50, "Max results")
	cmd.Flags().Int("offset", 0, "Pagination offset")
	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	activeDoc = args[0]
	kinds, _ := cmd.Flags().GetStringSlice("kind")
	speaker, _ := cmd.Flags().GetString("speaker")
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	q := index.Query{
		Text:      strings.Join(args[1:], " "),
		Speaker:   speaker,
		Kinds:     kinds,
		SceneFrom: from,
		SceneTo:   to,
		Limit:     limit,
		Offset:    offset,
	}
	results, err := index.Search(cmd.Context(), args[0], q)
	if err != nil {
		exitErr("search", err)
	}

	if formatFlag == "text" {
		for _, r := range results {
			line := r.Snippet
			if line == "" {
				line = r.Text
			}
			if r.SceneNumber > 0 {
				fmt.Printf("%3d %-13s %s\n", r.SceneNumber, r.Kind, line)
			} else {
				fmt.Printf("    %-13s %s\n", r.Kind, line)
			}
		}
		return
	}
	if len(results) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(results, "", "  ")
	fmt.Println(string(b))
}
