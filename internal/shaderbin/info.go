// Package shaderbin reads the ShaderBinaryInfo header and the resource
// usage table compilers place after a shader's instruction stream.
package shaderbin

import (
	"errors"
	"fmt"
)

var (
	ErrNoEndProgram   = errors.New("shaderbin: no s_endpgm marker")
	ErrNoHeader       = errors.New("shaderbin: binary info header not found")
	ErrBadUsageTable  = errors.New("shaderbin: usage table out of range")
	ErrNoUsageSlots   = errors.New("shaderbin: no usage slots")
	ErrBadUsageSlot   = errors.New("shaderbin: unknown usage slot type")
	ErrShortSignature = errors.New("shaderbin: truncated header")
)

// Signature opens every ShaderBinaryInfo header.
const Signature = "OrbShdr"

// HeaderWords is the header size in 32-bit words.
const HeaderWords = 7

const endProgram uint32 = 0xBF810000

// maxHeaderSearch bounds the forward walk from s_endpgm to the header.
const maxHeaderSearch = 0x4000

// Info is the 28-byte ShaderBinaryInfo header.
type Info struct {
	Version                  uint8  `json:"version"`
	PsslOrCg                 bool   `json:"pssl_or_cg"`
	Cached                   bool   `json:"cached"`
	Type                     uint8  `json:"type"`
	SourceType               uint8  `json:"source_type"`
	Length                   uint32 `json:"length"`
	ChunkUsageBaseOffsetInDW uint8  `json:"chunk_usage_base_offset_in_dw"`
	NumInputUsageSlots       uint8  `json:"num_input_usage_slots"`
	IsSrt                    bool   `json:"is_srt"`
	IsSrtUsedInfoValid       bool   `json:"is_srt_used_info_valid"`
	IsExtendedUsageInfo      bool   `json:"is_extended_usage_info"`
	Hash0                    uint32 `json:"hash0"`
	Hash1                    uint32 `json:"hash1"`
	Crc32                    uint32 `json:"crc32"`
}

func (i Info) String() string {
	return fmt.Sprintf("len=%d type=%d hash=%08x:%08x crc=%08x slots=%d",
		i.Length, i.Type, i.Hash0, i.Hash1, i.Crc32, i.NumInputUsageSlots)
}

// Binary is a located header with its usage table.
type Binary struct {
	Info Info
	// HeaderIndex is the word index of the header from the program start.
	HeaderIndex int
	Usage       Usage
}

func isSignature(w0, w1 uint32) bool {
	return w0 == 0x5362724F && w1&0x00ffffff == 0x00726468
}

// FindInfo walks forward from the first s_endpgm to the header signature
// and parses it. It returns the header's word index.
func FindInfo(words []uint32) (Info, int, error) {
	start := -1
	for i, w := range words {
		if w == endProgram {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return Info{}, 0, ErrNoEndProgram
	}
	limit := min(len(words)-1, start+maxHeaderSearch)
	for i := start; i < limit; i++ {
		if isSignature(words[i], words[i+1]) {
			info, err := parseInfo(NewWordStreamAt(words, i))
			if err != nil {
				return Info{}, 0, err
			}
			return info, i, nil
		}
	}
	return Info{}, 0, ErrNoHeader
}

func parseInfo(s *WordStream) (Info, error) {
	if s.Remaining() < HeaderWords*4 {
		return Info{}, ErrShortSignature
	}
	var info Info
	sig, _ := s.ReadBytes(len(Signature))
	if string(sig) != Signature {
		return Info{}, ErrNoHeader
	}
	info.Version, _ = s.ReadByte()
	bits, _ := s.ReadUint32()
	info.PsslOrCg = bits&1 != 0
	info.Cached = bits&2 != 0
	info.Type = uint8((bits >> 2) & 0xf)
	info.SourceType = uint8((bits >> 6) & 3)
	info.Length = bits >> 8
	info.ChunkUsageBaseOffsetInDW, _ = s.ReadByte()
	info.NumInputUsageSlots, _ = s.ReadByte()
	flags, _ := s.ReadByte()
	info.IsSrt = flags&1 != 0
	info.IsSrtUsedInfoValid = flags&2 != 0
	info.IsExtendedUsageInfo = flags&4 != 0
	if _, err := s.ReadByte(); err != nil {
		return Info{}, err
	}
	info.Hash0, _ = s.ReadUint32()
	info.Hash1, _ = s.ReadUint32()
	info.Crc32, _ = s.ReadUint32()
	return info, nil
}

// Read locates the header and reads the usage masks and slots before it.
func Read(words []uint32) (*Binary, error) {
	info, idx, err := FindInfo(words)
	if err != nil {
		return nil, err
	}
	b := &Binary{Info: info, HeaderIndex: idx}

	masksAt := idx - int(info.ChunkUsageBaseOffsetInDW)
	slotsAt := masksAt - int(info.NumInputUsageSlots)
	if slotsAt < 0 {
		return nil, fmt.Errorf("%w: slots at word %d", ErrBadUsageTable, slotsAt)
	}
	s := NewWordStreamAt(words, masksAt)
	if b.Usage.Masks, err = s.ReadWords(int(info.ChunkUsageBaseOffsetInDW)); err != nil {
		return nil, err
	}
	s.SetPosition(slotsAt * 4)
	for i := 0; i < int(info.NumInputUsageSlots); i++ {
		w, err := s.ReadUint32()
		if err != nil {
			return nil, err
		}
		slot := decodeSlot(w)
		if !slot.Type.Known() {
			return nil, fmt.Errorf("%w: %s at slot %d", ErrBadUsageSlot, slot.Type, i)
		}
		b.Usage.Slots = append(b.Usage.Slots, slot)
	}
	return b, nil
}

// RequireSlots fails when the stage needs resources but the header declares
// fewer than n usage slots.
func (b *Binary) RequireSlots(n int) error {
	if len(b.Usage.Slots) < n {
		return fmt.Errorf("%w: have %d, need %d (hash %08x crc %08x)",
			ErrNoUsageSlots, len(b.Usage.Slots), n, b.Info.Hash0, b.Info.Crc32)
	}
	return nil
}
