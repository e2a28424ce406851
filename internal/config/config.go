// Package config loads the translator options shared by the library
// facade and the command line.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gcnrecomp/internal/backend"
	"gcnrecomp/internal/spvasm"
	"gcnrecomp/internal/spvgen"
	"gcnrecomp/internal/stage"
)

var ErrInvalid = errors.New("config: invalid options")

// LogMode selects where the logger writes.
type LogMode string

const (
	LogConsole LogMode = "console"
	LogFile    LogMode = "file"
	LogNone    LogMode = "none"
)

// Options is the on-disk configuration. Fields missing from a file keep
// their Default values.
type Options struct {
	Validate   bool        `json:"validate"`
	Optimize   spvasm.Mode `json:"optimize"`
	Log        LogMode     `json:"log"`
	LogFile    string      `json:"log_file,omitempty"`
	NextGen    bool        `json:"next_gen"`
	DumpDir    string      `json:"dump_dir,omitempty"`
	PrintNames bool        `json:"print_names"`
	MaxSteps   int         `json:"max_steps,omitempty"`
}

func Default() Options {
	return Options{
		Validate: true,
		Optimize: spvasm.ModePerformance,
		Log:      LogConsole,
	}
}

// Load reads a JSON options file over Default. Unknown fields are errors.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses JSON options over Default and checks the result.
func Decode(data []byte) (Options, error) {
	opts := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := opts.Check(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Check reports the first inconsistent field.
func (o Options) Check() error {
	switch o.Log {
	case LogConsole, LogNone:
	case LogFile:
		if o.LogFile == "" {
			return fmt.Errorf("%w: log mode %q needs log_file", ErrInvalid, o.Log)
		}
	default:
		return fmt.Errorf("%w: unknown log mode %q", ErrInvalid, o.Log)
	}
	if o.Optimize > spvasm.ModePerformance {
		return fmt.Errorf("%w: optimize %v", ErrInvalid, o.Optimize)
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps %d", ErrInvalid, o.MaxSteps)
	}
	return nil
}

// Backend returns the pipeline part of the options.
func (o Options) Backend() backend.Options {
	return backend.Options{Validate: o.Validate, Optimize: o.Optimize}
}

// Stage returns the decoding part of the options.
func (o Options) Stage() stage.Options {
	return stage.Options{NextGen: o.NextGen, MaxSteps: o.MaxSteps}
}

// Gen returns the code generator part of the options.
func (o Options) Gen() spvgen.Options {
	return spvgen.Options{PrintNames: o.PrintNames}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the logger for o.Log. The closer releases the log file
// and is never nil.
func NewLogger(o Options) (*slog.Logger, io.Closer, error) {
	switch o.Log {
	case LogConsole:
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), nopCloser{}, nil
	case LogFile:
		f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("config: open log: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, nil)), f, nil
	case LogNone:
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("%w: unknown log mode %q", ErrInvalid, o.Log)
}
