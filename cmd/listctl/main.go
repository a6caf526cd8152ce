// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// listctl executes list commands (see package script) read from the file named
// by its first argument, or from standard input, against a fresh list.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/DataDog/linkedlist-go/internal/config"
	"github.com/DataDog/linkedlist-go/internal/script"
	"github.com/DataDog/linkedlist-go/list"
	"github.com/DataDog/linkedlist-go/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		_ = log.Criticalf("listctl: %v", err)
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 1 {
		return errors.New("usage: listctl [script]")
	}

	input := stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("could not open script: %w", err)
		}
		defer f.Close()
		input = f
	}

	cfg := config.FromEnv()
	stats, err := script.New(list.NewSingly[string](), cfg).Run(ctx, input, stdout)
	log.Info("listctl: executed %d commands, %d failed", stats.Commands, stats.Failures)
	return err
}
