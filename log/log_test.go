// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

package log_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/DataDog/linkedlist-go/log"
	"github.com/stretchr/testify/require"
)

type level string

const (
	levelTrace    level = "Trace"
	levelDebug    level = "Debug"
	levelInfo     level = "Info"
	levelWarn     level = "Warn"
	levelError    level = "Errorf"
	levelCritical level = "Criticalf"
)

// recorder captures the last message logged at each level.
type recorder map[level]string

func (r recorder) log(lvl level) func(string, ...any) {
	return func(format string, args ...any) {
		r[lvl] = fmt.Sprintf(format, args...)
	}
}

func (r recorder) logErr(lvl level) func(string, ...any) error {
	return func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		r[lvl] = err.Error()
		return err
	}
}

func (r recorder) backend() log.Backend {
	return log.Backend{
		Trace:     r.log(levelTrace),
		Debug:     r.log(levelDebug),
		Info:      r.log(levelInfo),
		Warn:      r.log(levelWarn),
		Errorf:    r.logErr(levelError),
		Criticalf: r.logErr(levelCritical),
	}
}

func TestBackend(t *testing.T) {
	rec := recorder{}
	log.SetBackend(rec.backend())
	defer log.ResetBackend()

	for name, logger := range map[level]func(string, ...any){
		levelTrace: log.Trace,
		levelDebug: log.Debug,
		levelInfo:  log.Info,
		levelWarn:  log.Warn,
	} {
		t.Run(string(name), func(t *testing.T) {
			defer func() { clear(rec) }()

			randomInt := rand.Int()
			logger("%s %d", name, randomInt)

			require.Equal(t, recorder{name: fmt.Sprintf("%s %d", name, randomInt)}, rec)
		})
	}

	for name, logger := range map[level]func(string, ...any) error{
		levelError:    log.Errorf,
		levelCritical: log.Criticalf,
	} {
		t.Run(string(name), func(t *testing.T) {
			defer func() { clear(rec) }()

			cause := errors.New("cause")
			randomInt := rand.Int()
			err := logger("%s %d: %w", name, randomInt, cause)

			expectedMessage := fmt.Sprintf("%s %d: %v", name, randomInt, cause)
			require.Equal(t, expectedMessage, err.Error())
			require.Equal(t, cause, errors.Unwrap(err))
			require.Equal(t, recorder{name: expectedMessage}, rec)
		})
	}
}

func TestSetBackendPartial(t *testing.T) {
	rec := recorder{}
	log.SetBackend(log.Backend{Debug: rec.log(levelDebug)})
	defer log.ResetBackend()

	// Levels without a function go to the default backend, which must not panic.
	log.Trace("trace %d", 1)
	log.Info("info %d", 2)
	_ = log.Errorf("error %d", 3)

	log.Debug("debug %d", 4)
	require.Equal(t, recorder{levelDebug: "debug 4"}, rec)
}

func TestResetBackend(t *testing.T) {
	rec := recorder{}
	log.SetBackend(rec.backend())
	log.ResetBackend()

	log.Info("dropped")
	require.Empty(t, rec)
}
