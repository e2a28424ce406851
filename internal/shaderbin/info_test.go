package shaderbin

import (
	"errors"
	"testing"

	g "gcnrecomp/internal/gcn/gcntest"
)

var endpgm = g.SOPP(1, 0)

func TestRead(t *testing.T) {
	code := []uint32{g.SOP1(3, 0, 1), endpgm}
	slots := []g.Slot{
		{Type: uint8(SubPtrFetchShader), StartRegister: 0},
		{Type: uint8(PtrVertexBufferTable), StartRegister: 2},
		{Type: uint8(ImmResource), Slot: 1, StartRegister: 4, Flags: 1},
	}
	words := g.Binary(code, slots, g.Header{
		Version: 1, Type: 2, Hash0: 0x11111111, Hash1: 0x22222222, Crc32: 0x33333333,
		Masks: []uint32{0xa, 0xb},
	})

	b, err := Read(words)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if b.HeaderIndex != len(code)+len(slots)+2 {
		t.Errorf("header index = %d", b.HeaderIndex)
	}
	info := b.Info
	if info.Version != 1 || info.Type != 2 || info.Length != 8 {
		t.Errorf("info = %+v", info)
	}
	if info.Hash0 != 0x11111111 || info.Hash1 != 0x22222222 || info.Crc32 != 0x33333333 {
		t.Errorf("hash/crc = %08x %08x %08x", info.Hash0, info.Hash1, info.Crc32)
	}
	if len(b.Usage.Masks) != 2 || b.Usage.Masks[1] != 0xb {
		t.Errorf("masks = %v", b.Usage.Masks)
	}
	if len(b.Usage.Slots) != 3 {
		t.Fatalf("slots = %d, want 3", len(b.Usage.Slots))
	}
	res := b.Usage.Slots[2]
	if res.Type != ImmResource || res.Slot != 1 || res.StartRegister != 4 || res.RegisterCount() != 8 {
		t.Errorf("slot 2 = %+v", res)
	}
	if s, ok := b.Usage.Find(PtrVertexBufferTable); !ok || s.StartRegister != 2 {
		t.Errorf("Find = %+v, %v", s, ok)
	}
	if err := b.RequireSlots(1); err != nil {
		t.Errorf("RequireSlots: %v", err)
	}
}

func TestRead_NoSlots(t *testing.T) {
	words := g.Binary([]uint32{endpgm}, nil, g.Header{Hash0: 7})
	b, err := Read(words)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if err := b.RequireSlots(1); !errors.Is(err, ErrNoUsageSlots) {
		t.Errorf("err = %v, want ErrNoUsageSlots", err)
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  error
	}{
		{"no end", []uint32{g.SOP1(3, 0, 1)}, ErrNoEndProgram},
		{"no header", []uint32{endpgm, 0, 0, 0}, ErrNoHeader},
		{"unknown slot type", g.Binary([]uint32{endpgm}, []g.Slot{{Type: 0x30}}, g.Header{}), ErrBadUsageSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(tt.words); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRead_TableBeforeProgram(t *testing.T) {
	words := g.Binary([]uint32{endpgm}, nil, g.Header{})
	hdr := len(words) - HeaderWords
	words[hdr+3] = words[hdr+3]&^0xffff | 40<<8 // claim 40 slots
	if _, err := Read(words); !errors.Is(err, ErrBadUsageTable) {
		t.Errorf("err = %v, want ErrBadUsageTable", err)
	}
}

func TestWordStream(t *testing.T) {
	s := NewWordStream([]uint32{0x44332211, 0x88776655})
	b, _ := s.ReadByte()
	if b != 0x11 {
		t.Fatalf("byte = %#x", b)
	}
	v, err := s.ReadUint32()
	if err != nil || v != 0x55443322 {
		t.Fatalf("unaligned uint32 = %#x, %v", v, err)
	}
	if s.Remaining() != 3 {
		t.Errorf("remaining = %d", s.Remaining())
	}
	if _, err := s.ReadUint32(); !errors.Is(err, ErrStreamEOF) {
		t.Errorf("err = %v, want EOF", err)
	}
}

func TestUsageSlotAccessors(t *testing.T) {
	s := UsageSlot{Type: ImmRwResource, StartRegister: 18, Flags: 2}
	if s.RegisterCount() != 4 || s.ResourceType() != 1 || !s.Extended() {
		t.Errorf("accessors: count=%d type=%d ext=%v", s.RegisterCount(), s.ResourceType(), s.Extended())
	}
	if UsageType(0x30).Known() {
		t.Error("0x30 should be unknown")
	}
}
