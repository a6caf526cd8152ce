// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

// Package log is the logging facade used by the programs of this module. By
// default it forwards to the datadog-agent logger; [SetBackend] allows routing
// messages elsewhere.
package log

import (
	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"go.uber.org/atomic"
)

// Backend is the set of functions messages are routed to. Errorf and
// Criticalf also return the logged message as an error.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var (
	defaultBackend = Backend{
		Trace:     ddlog.Tracef,
		Debug:     ddlog.Debugf,
		Info:      ddlog.Infof,
		Warn:      func(format string, args ...any) { _ = ddlog.Warnf(format, args...) },
		Errorf:    ddlog.Errorf,
		Criticalf: ddlog.Criticalf,
	}

	backend = atomic.NewPointer(&defaultBackend)
)

// SetBackend replaces the active backend. Fields left nil use the default
// datadog-agent logger.
func SetBackend(b Backend) {
	if b.Trace == nil {
		b.Trace = defaultBackend.Trace
	}
	if b.Debug == nil {
		b.Debug = defaultBackend.Debug
	}
	if b.Info == nil {
		b.Info = defaultBackend.Info
	}
	if b.Warn == nil {
		b.Warn = defaultBackend.Warn
	}
	if b.Errorf == nil {
		b.Errorf = defaultBackend.Errorf
	}
	if b.Criticalf == nil {
		b.Criticalf = defaultBackend.Criticalf
	}
	backend.Store(&b)
}

// ResetBackend restores the default backend.
func ResetBackend() {
	backend.Store(&defaultBackend)
}

func Trace(format string, args ...any) {
	backend.Load().Trace(format, args...)
}

func Debug(format string, args ...any) {
	backend.Load().Debug(format, args...)
}

func Info(format string, args ...any) {
	backend.Load().Info(format, args...)
}

func Warn(format string, args ...any) {
	backend.Load().Warn(format, args...)
}

func Errorf(format string, args ...any) error {
	return backend.Load().Errorf(format, args...)
}

func Criticalf(format string, args ...any) error {
	return backend.Load().Criticalf(format, args...)
}
