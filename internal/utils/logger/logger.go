// Copyright 2023 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// ParseLevel - converts one of the supported level names (debug, info, warn) to zerolog.Level.
func ParseLevel(logLevelStr string) (zerolog.Level, error) {
	switch logLevelStr {
	case zerolog.LevelDebugValue:
		return zerolog.DebugLevel, nil
	case zerolog.LevelInfoValue:
		return zerolog.InfoLevel, nil
	case zerolog.LevelWarnValue:
		return zerolog.WarnLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("log level %s: %w", logLevelStr, ErrUnknownLogLevel)
}

// GetLogger - builds the logger that writes into w. The text format uses the console writer, json
// writes raw events. The debug level adds the caller and pid.
func GetLogger(w io.Writer, logLevelStr string, logFormat string) (zerolog.Logger, error) {
	logLevel, err := ParseLevel(logLevelStr)
	if err != nil {
		return zerolog.Logger{}, err
	}

	var formatWriter io.Writer
	switch logFormat {
	case LogFormatJsonValue:
		formatWriter = w
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Logger{}, fmt.Errorf("log format %s: %w", logFormat, ErrUnknownLogFormat)
	}

	if logLevel == zerolog.DebugLevel {
		return zerolog.New(formatWriter).
			Level(logLevel).
			With().
			Timestamp().
			Caller().
			Int("pid", os.Getpid()).Logger(), nil
	}
	return zerolog.New(formatWriter).
		Level(logLevel).
		With().
		Timestamp().
		Logger(), nil
}

// SetDefaultContextLogger - installs the stderr logger as the global and the default context logger, so
// log.Ctx(ctx) falls back to it when the context carries no logger.
func SetDefaultContextLogger(logLevelStr string, logFormat string) error {
	l, err := GetLogger(os.Stderr, logLevelStr, logFormat)
	if err != nil {
		return fmt.Errorf("get logger: %w", err)
	}
	log.Logger = l
	zerolog.DefaultContextLogger = &l
	return nil
}
