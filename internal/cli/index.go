/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goscreenwriter/internal/index"
	"goscreenwriter/internal/screenplay"
	"goscreenwriter/internal/telemetry"
)

func init() {
	cmd := &cobra.Command{
		Use:   "index <file>",
		Short: "Build the breakdown index for a screenplay",
		Long:  "Extracts the document graph and rebuilds the SQLite index stored next to the file.",
		Args:  cobra.ExactArgs(1),
		Run:   runIndex,
	}
	RootCmd.AddCommand(cmd)
}

func runIndex(cmd *cobra.Command, args []string) {
	activeDoc = args[0]
	data, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read screenplay", err)
	}
	doc := screenplay.Extract(string(data))
	if err := index.Build(cmd.Context(), args[0], doc); err != nil {
		exitErr("build index", err)
	}
	telemetry.Event("index", map[string]any{"scenes": len(doc.Scenes)})
	fmt.Printf("indexed %d scenes, %d characters, %d locations\n", len(doc.Scenes), len(doc.Characters), len(doc.Locations))
}
