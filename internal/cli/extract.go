/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"goscreenwriter/internal/screenplay"
	"goscreenwriter/internal/telemetry"
)

func init() {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract scenes, characters, and locations",
		Long:  "Builds the document graph: scenes with dialogue attribution, the character roster, and the location list.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExtract,
	}
	RootCmd.AddCommand(cmd)
}

func runExtract(cmd *cobra.Command, args []string) {
	text, err := readInput(args)
	if err != nil {
		exitErr("extract", err)
	}
	doc := screenplay.Extract(text)
	telemetry.Event("extract", map[string]any{
		"scenes":     len(doc.Scenes),
		"characters": len(doc.Characters),
		"locations":  len(doc.Locations),
	})

	switch formatFlag {
	case "yaml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			exitErr("encode yaml", err)
		}
		fmt.Print(string(b))
	case "text":
		for _, sc := range doc.Scenes {
			fmt.Printf("%3d %s\n", sc.Number, sc.Heading)
			for _, name := range sc.Characters {
				fmt.Printf("      %s\n", name)
			}
		}
	default:
		b, _ := json.MarshalIndent(doc, "", "  ")
		fmt.Println(string(b))
	}
}
