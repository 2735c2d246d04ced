/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package cli implements the goscreenwriter CLI commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"goscreenwriter/internal/config"
	applog "goscreenwriter/internal/log"
	"goscreenwriter/internal/screenplay"
	"goscreenwriter/internal/telemetry"
	"goscreenwriter/internal/vocab"
)

var (
	formatFlag string
	vocabFlag  string

	appCfg config.AppConfig

	// activeDoc holds the screenplay path of the running command for crash
	// reports. Empty when reading from stdin.
	activeDoc string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "goscreenwriter",
	Short: "Screenplay text tools",
	Long:  "Classifies, extracts, and formats screenplay text. Reads a file argument or stdin; prints JSON by default.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applog.Init(applog.FromEnv())
		cfg, err := config.Load()
		if err != nil {
			applog.WithComponent("cli").Warn("config load failed, using defaults", "err", err)
			cfg = config.Defaults()
		}
		appCfg = cfg
		telemetry.InitDefault()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text (extract also accepts yaml)")
	RootCmd.PersistentFlags().StringVar(&vocabFlag, "vocab", "", "Path to a YAML vocabulary pack")
}

// ActiveDoc reports the screenplay path of the command in flight, for crash
// report placement.
func ActiveDoc() string { return activeDoc }

// readInput returns the screenplay text from the first positional argument
// (a file path) or from stdin when no argument is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		activeDoc = args[0]
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read screenplay: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// buildCorpus assembles the suggestion corpus for a document: extracted
// characters and locations, plus any vocabulary pack named with --vocab.
func buildCorpus(text string) (screenplay.Corpus, error) {
	doc := screenplay.Extract(text)
	corpus := screenplay.Corpus{}
	for _, ch := range doc.Characters {
		corpus.Characters = append(corpus.Characters, ch.Name)
	}
	for _, loc := range doc.Locations {
		corpus.Locations = append(corpus.Locations, loc.Name)
	}
	if vocabFlag != "" {
		pack, err := vocab.Load(vocabFlag)
		if err != nil {
			return screenplay.Corpus{}, err
		}
		corpus = vocab.Apply(corpus, pack)
	}
	return corpus, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
