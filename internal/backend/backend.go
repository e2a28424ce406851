// Package backend turns generated SPIR-V assembly into module bytes.
package backend

import (
	"errors"
	"fmt"

	"gcnrecomp/internal/spvasm"
)

// Options mirrors the backend part of the global configuration.
type Options struct {
	Validate bool
	Optimize spvasm.Mode
}

// Pipeline runs assemble, validate and optimize in that order.
type Pipeline struct {
	Options Options
}

// New returns a pipeline for opts.
func New(opts Options) *Pipeline {
	return &Pipeline{Options: opts}
}

// Run assembles source and returns the binary module. Assembly errors are
// *spvasm.AssembleError, validation errors *spvasm.ValidationError and
// optimizer errors *spvasm.OptimizeError, each wrapped with the stage
// that failed.
func (p *Pipeline) Run(source string) ([]byte, error) {
	m, err := p.Module(source)
	if err != nil {
		return nil, err
	}
	return m.Bytes(), nil
}

// Module is Run without the final encoding.
func (p *Pipeline) Module(source string) (*spvasm.Module, error) {
	m, err := spvasm.Assemble(source)
	if err != nil {
		return nil, fmt.Errorf("backend: assemble: %w", err)
	}
	if p.Options.Validate {
		if err := spvasm.Validate(m); err != nil {
			return nil, fmt.Errorf("backend: validate: %w", err)
		}
	}
	if p.Options.Optimize == spvasm.ModeNone {
		return m, nil
	}
	opt, err := spvasm.Optimize(m, p.Options.Optimize)
	if err != nil {
		return nil, fmt.Errorf("backend: optimize: %w", err)
	}
	if p.Options.Validate {
		if err := spvasm.Validate(opt); err != nil {
			return nil, fmt.Errorf("backend: validate optimized: %w", err)
		}
	}
	return opt, nil
}

// Report renders err with the diagnostic payload its kind carries: the
// source window for assembly errors, the disassembly for validation and
// optimizer errors.
func Report(err error) string {
	var (
		ae *spvasm.AssembleError
		ve *spvasm.ValidationError
		oe *spvasm.OptimizeError
	)
	switch {
	case errors.As(err, &ae):
		return err.Error() + "\n" + ae.Report()
	case errors.As(err, &ve):
		return err.Error() + "\n" + ve.Report()
	case errors.As(err, &oe) && oe.Disassembly != "":
		return err.Error() + "\n----\n" + oe.Disassembly
	}
	return err.Error()
}
