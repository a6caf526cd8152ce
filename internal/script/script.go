// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package script implements a line-oriented command language that drives a
// [list.List] of strings. It is used by the listctl program.
//
// Every non-blank line that does not start with '#' is one command, made of
// whitespace-separated words:
//
//	len | empty | print | clear
//	contains V | pos V | remove V
//	front V | back V | insert P V
//	popfront | popback | removeat P
//
// Each command produces exactly one line of output; failures are written as
// "error: <message>".
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DataDog/linkedlist-go/internal/config"
	"github.com/DataDog/linkedlist-go/list"
	"github.com/DataDog/linkedlist-go/log"
)

var (
	// ErrSyntax is returned for unknown commands or malformed arguments.
	ErrSyntax = errors.New("syntax error")
	// ErrCommandLimit is returned by [Interpreter.Run] when the input holds more
	// commands than allowed by [config.Config.MaxCommands].
	ErrCommandLimit = errors.New("command limit reached")
)

// CommandError is returned by [Interpreter.Run] when a command fails and
// [config.Config.StopOnError] is set.
type CommandError struct {
	Line    int    // 1-based line number of the command
	Command string // The command text
	Err     error  // The failure
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Stats summarizes an [Interpreter.Run] invocation.
type Stats struct {
	Commands int // Number of commands executed
	Failures int // Number of commands that failed
}

// Interpreter executes commands against a list.
type Interpreter struct {
	list list.List[string]
	cfg  config.Config
}

// New returns an [Interpreter] operating on l.
func New(l list.List[string], cfg config.Config) *Interpreter {
	if cfg.MaxCommands <= 0 {
		cfg.MaxCommands = config.DefaultMaxCommands
	}
	return &Interpreter{list: l, cfg: cfg}
}

// Run reads commands from r until EOF and writes their results to w. It stops
// early if ctx is done, if the command limit is reached, or on the first
// failing command when StopOnError is configured.
func (in *Interpreter) Run(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if stats.Commands == in.cfg.MaxCommands {
			return stats, fmt.Errorf("line %d: %w (%d)", lineNo, ErrCommandLimit, in.cfg.MaxCommands)
		}
		stats.Commands++

		if in.cfg.Trace {
			log.Trace("linkedlist: executing %q", line)
		}
		out, err := in.Exec(line)
		if err != nil {
			stats.Failures++
			log.Debug("linkedlist: line %d: %q failed: %v", lineNo, line, err)
			out = "error: " + err.Error()
		}
		if _, werr := fmt.Fprintln(w, out); werr != nil {
			return stats, werr
		}
		if err != nil && in.cfg.StopOnError {
			return stats, &CommandError{Line: lineNo, Command: line, Err: err}
		}
	}
	return stats, scanner.Err()
}

// Exec executes a single command line and returns its textual result.
func (in *Interpreter) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrSyntax)
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "len":
		if err := arity(name, args, 0); err != nil {
			return "", err
		}
		return strconv.Itoa(in.list.Len()), nil
	case "empty":
		if err := arity(name, args, 0); err != nil {
			return "", err
		}
		return strconv.FormatBool(in.list.IsEmpty()), nil
	case "print":
		if err := arity(name, args, 0); err != nil {
			return "", err
		}
		return fmt.Sprint(in.list), nil
	case "clear":
		if err := arity(name, args, 0); err != nil {
			return "", err
		}
		in.list.Clear()
		return "ok", nil
	case "contains":
		if err := arity(name, args, 1); err != nil {
			return "", err
		}
		return strconv.FormatBool(in.list.Contains(args[0])), nil
	case "pos":
		if err := arity(name, args, 1); err != nil {
			return "", err
		}
		pos, err := in.list.PositionOf(args[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(pos), nil
	case "remove":
		if err := arity(name, args, 1); err != nil {
			return "", err
		}
		if err := in.list.Remove(args[0]); err != nil {
			return "", err
		}
		return "ok", nil
	case "front":
		if err := arity(name, args, 1); err != nil {
			return "", err
		}
		in.list.InsertFront(args[0])
		return "ok", nil
	case "back":
		if err := arity(name, args, 1); err != nil {
			return "", err
		}
		in.list.InsertBack(args[0])
		return "ok", nil
	case "insert":
		if err := arity(name, args, 2); err != nil {
			return "", err
		}
		pos, err := position(args[0])
		if err != nil {
			return "", err
		}
		if err := in.list.InsertAt(pos, args[1]); err != nil {
			return "", err
		}
		return "ok", nil
	case "popfront":
		if err := arity(name, args, 0); err != nil {
			return "", err
		}
		return in.list.RemoveFront()
	case "popback":
		if err := arity(name, args, 0); err != nil {
			return "", err
		}
		return in.list.RemoveBack()
	case "removeat":
		if err := arity(name, args, 1); err != nil {
			return "", err
		}
		pos, err := position(args[0])
		if err != nil {
			return "", err
		}
		return in.list.RemoveAt(pos)
	default:
		return "", fmt.Errorf("%w: unknown command %q", ErrSyntax, name)
	}
}

func arity(name string, args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrSyntax, name, want, len(args))
	}
	return nil
}

func position(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid position %q", ErrSyntax, arg)
	}
	return pos, nil
}
