/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */
package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"goscreenwriter/internal/telemetry"
	"goscreenwriter/internal/watch"
)

func init() {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Keep the breakdown index current while editing",
		Long:  "Watches the screenplay for saves, rebuilds the index after each one, and writes a recovery copy when a save empties the file. Runs until interrupted.",
		Args:  cobra.ExactArgs(1),
		Run:   runWatch,
	}
	RootCmd.AddCommand(cmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	activeDoc = args[0]
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetry.Event("watch", map[string]any{})
	if err := watch.NewSession(args[0]).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		exitErr("watch", err)
	}
}
