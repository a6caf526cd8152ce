// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package config

import (
	"os"
	"strconv"

	"github.com/DataDog/linkedlist-go/log"
)

// Configuration environment variables
const (
	// EnvTrace enables tracing of every command executed by the driver.
	EnvTrace = "DD_LINKEDLIST_TRACE"
	// EnvStopOnError makes the driver stop at the first failing command.
	EnvStopOnError = "DD_LINKEDLIST_STOP_ON_ERROR"
	// EnvMaxCommands bounds the number of commands a single run executes.
	EnvMaxCommands = "DD_LINKEDLIST_MAX_COMMANDS"
)

// DefaultMaxCommands is used when EnvMaxCommands is unset or invalid.
const DefaultMaxCommands = 10_000

// Config holds the settings of the command driver.
type Config struct {
	Trace       bool
	StopOnError bool
	MaxCommands int
}

// FromEnv creates and returns a new configuration by reading the env.
func FromEnv() Config {
	return Config{
		Trace:       boolEnv(EnvTrace),
		StopOnError: boolEnv(EnvStopOnError),
		MaxCommands: maxCommandsFromEnv(),
	}
}

func boolEnv(name string) bool {
	enabled, _ := strconv.ParseBool(os.Getenv(name))
	return enabled
}

func maxCommandsFromEnv() int {
	str, present := os.LookupEnv(EnvMaxCommands)
	if !present {
		return DefaultMaxCommands
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		log.Debug("linkedlist: could not parse %s=%q. Defaulting to %d", EnvMaxCommands, str, DefaultMaxCommands)
		return DefaultMaxCommands
	}
	if n <= 0 {
		log.Debug("linkedlist: %s value must be positive. Defaulting to %d", EnvMaxCommands, DefaultMaxCommands)
		return DefaultMaxCommands
	}
	return n
}
