package config

import (
	"errors"
	"time"
)

// log levels, same numbering as zapcore.Level.
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
	FATAL_LEVEL = 5
)

var (
	ErrInvalidLevel      = errors.New("log level must be between -1 (debug) and 5 (fatal)")
	ErrInvalidTimeFormat = errors.New("log time format must be a valid go time layout")
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return ErrInvalidLevel
	}
	if c.TimeFormat == "" {
		return ErrInvalidTimeFormat
	}
	ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	if _, err := time.Parse(c.TimeFormat, ref.Format(c.TimeFormat)); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}
