package guest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestImageWords(t *testing.T) {
	im := &Image{Base: 0x1000, Data: []uint32{1, 2, 3, 4}}

	w, err := im.Words(0x1008)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 2 || w[0] != 3 {
		t.Fatalf("got %v, want [3 4]", w)
	}
	if _, err := im.Words(0x1010); !errors.Is(err, ErrUnmapped) {
		t.Errorf("past end: got %v, want ErrUnmapped", err)
	}
	if _, err := im.Words(0x1002); !errors.Is(err, ErrMisaligned) {
		t.Errorf("misaligned: got %v, want ErrMisaligned", err)
	}
}

func TestMapLookup(t *testing.T) {
	m := &Map{}
	if err := m.Add(&Image{Base: 0x2000, Data: []uint32{0xb}}); err != nil {
		t.Fatal(err)
	}
	if err := m.Add(&Image{Base: 0x1000, Data: []uint32{0xa}}); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		addr uint64
		want uint32
	}{
		{0x1000, 0xa},
		{0x2000, 0xb},
	} {
		w, err := m.Words(tc.addr)
		if err != nil {
			t.Fatalf("0x%x: %v", tc.addr, err)
		}
		if w[0] != tc.want {
			t.Errorf("0x%x: got 0x%x, want 0x%x", tc.addr, w[0], tc.want)
		}
	}
	if _, err := m.Words(0x1800); !errors.Is(err, ErrUnmapped) {
		t.Errorf("gap: got %v, want ErrUnmapped", err)
	}
}

func TestMapRejectsOverlap(t *testing.T) {
	m := &Map{}
	if err := m.Add(&Image{Base: 0x1000, Data: make([]uint32, 4)}); err != nil {
		t.Fatal(err)
	}
	if err := m.Add(&Image{Base: 0x1008, Data: make([]uint32, 4)}); !errors.Is(err, ErrOverlap) {
		t.Fatalf("got %v, want ErrOverlap", err)
	}
}

func TestReadWordsShort(t *testing.T) {
	im := &Image{Base: 0, Data: []uint32{1, 2}}
	if _, err := ReadWords(im, 0, 3); !errors.Is(err, ErrShortRead) {
		t.Fatalf("got %v, want ErrShortRead", err)
	}
	w, err := ReadWords(im, 4, 1)
	if err != nil || w[0] != 2 {
		t.Fatalf("got %v %v, want [2]", w, err)
	}
}

func TestNewImageLittleEndian(t *testing.T) {
	im := NewImage(0, []byte{0x78, 0x56, 0x34, 0x12, 0xff})
	if len(im.Data) != 1 || im.Data[0] != 0x12345678 {
		t.Fatalf("got %x, want [12345678]", im.Data)
	}
}

func TestLoadRawPads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.bin")
	if err := os.WriteFile(path, []byte{1, 0, 0, 0, 2}, 0644); err != nil {
		t.Fatal(err)
	}
	im, err := LoadRaw(path, 0x4000)
	if err != nil {
		t.Fatal(err)
	}
	if len(im.Data) != 2 || im.Data[1] != 2 {
		t.Fatalf("got %v, want [1 2]", im.Data)
	}
}

func TestLoadELFRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notelf")
	if err := os.WriteFile(path, []byte("not an ELF file at all"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadELF(path); !errors.Is(err, ErrNotELF) {
		t.Fatalf("got %v, want ErrNotELF", err)
	}
}

func TestPointer(t *testing.T) {
	if got := Pointer(0x89abcdef, 0x1); got != 0x189abcdef {
		t.Fatalf("got 0x%x", got)
	}
}
