// Package stage combines a stage's register snapshot with its binary
// header and usage slots into the binding description the code generator
// and shader identity consume.
package stage

import (
	"errors"
	"fmt"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/shaderbin"
)

var (
	ErrFetchPair         = errors.New("stage: fetch shader and vertex buffer slots must appear together")
	ErrFetchProgram      = errors.New("stage: unsupported fetch shader")
	ErrTooManyAttributes = errors.New("stage: too many vertex attributes")
	ErrTooManyBuffers    = errors.New("stage: too many vertex buffers")
	ErrBadRegister       = errors.New("stage: invalid register value")
)

// MaxAttributes bounds both fetched attributes and coalesced buffers.
const MaxAttributes = 16

// Options controls decoding of fetch programs.
type Options struct {
	NextGen  bool
	MaxSteps int
}

// ReadBinary reads the header and usage table of the program at addr.
func ReadBinary(mem guest.Memory, addr uint64) (*shaderbin.Binary, error) {
	words, err := mem.Words(addr)
	if err != nil {
		return nil, fmt.Errorf("stage: program at 0x%x: %w", addr, err)
	}
	b, err := shaderbin.Read(words)
	if err != nil {
		return nil, fmt.Errorf("stage: program at 0x%x: %w", addr, err)
	}
	return b, nil
}

// readStage reads the binary and enforces that a stage given user data
// declares how it is used.
func readStage(mem guest.Memory, addr uint64, table *bind.UserSgprTable) (*shaderbin.Binary, error) {
	bin, err := ReadBinary(mem, addr)
	if err != nil {
		return nil, err
	}
	if table.Count > 0 {
		if err := bin.RequireSlots(1); err != nil {
			return nil, err
		}
	}
	return bin, nil
}

// bindStage binds the usage slots and places the push-constant range at
// offset in descriptor set set.
func bindStage(bin *shaderbin.Binary, table *bind.UserSgprTable, mem guest.Memory, set int, offset uint32) (*bind.Resources, error) {
	res, err := bind.Bind(bin.Usage.Slots, table, mem)
	if err != nil {
		return nil, withHeader(err, bin.Info)
	}
	if err := bind.ComputeLayout(res); err != nil {
		return nil, withHeader(err, bin.Info)
	}
	res.Layout.DescriptorSet = set
	res.Layout.PushConstantOffset = offset
	if err := bind.CheckAlignment(res.Layout); err != nil {
		return nil, withHeader(err, bin.Info)
	}
	return res, nil
}

func withHeader(err error, h shaderbin.Info) error {
	return fmt.Errorf("%w (shader hash 0x%08x crc 0x%08x)", err, h.Hash0, h.Crc32)
}

// decodeOptions returns gcn options carrying the header identity.
func (o Options) decodeOptions(t gcn.ShaderType, h *shaderbin.Info) gcn.Options {
	opts := gcn.Options{Type: t, NextGen: o.NextGen, MaxSteps: o.MaxSteps}
	if h != nil {
		opts.HasHeader = true
		opts.Hash0 = h.Hash0
		opts.Crc32 = h.Crc32
	}
	return opts
}
