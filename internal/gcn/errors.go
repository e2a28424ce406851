package gcn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownEncoding    = errors.New("gcn: unknown encoding")
	ErrUnknownOpcode      = errors.New("gcn: unknown opcode")
	ErrGenerationMismatch = errors.New("gcn: opcode not valid for ISA generation")
	ErrUnknownTarget      = errors.New("gcn: unknown export target")
	ErrTruncated          = errors.New("gcn: truncated instruction stream")
	ErrMalformedLabel     = errors.New("gcn: malformed branch label")
	ErrTooManySteps       = errors.New("gcn: decode step limit exceeded")
)

// DecodeError is returned for any encoding the decoder cannot handle. It
// carries everything needed to diagnose the shader in the field: the
// position, the raw word, the header identity and the instructions decoded
// before the failure.
type DecodeError struct {
	Err       error
	Family    Family
	HasFamily bool
	Opcode    uint32
	Offset    uint32
	Word      uint32
	Hash0     uint32
	Crc32     uint32
	HasHeader bool
	Dump      string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.HasFamily {
		fmt.Fprintf(&b, ": %s opcode %d", e.Family, e.Opcode)
	}
	fmt.Fprintf(&b, " at 0x%04x (word 0x%08x)", e.Offset, e.Word)
	if e.HasHeader {
		fmt.Fprintf(&b, ", shader hash 0x%08x crc 0x%08x", e.Hash0, e.Crc32)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Report formats the error with the partial program dump.
func (e *DecodeError) Report() string {
	if e.Dump == "" {
		return e.Error()
	}
	return e.Error() + "\n" + e.Dump
}

// AsDecodeError extracts a *DecodeError from err.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	ok := errors.As(err, &de)
	return de, ok
}
