package guest

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrNotELF = errors.New("guest: not an ELF file")

// LoadELF maps every PT_LOAD segment of an ELF file at its virtual address.
// Segments are zero-extended to Memsz.
func LoadELF(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("guest: open: %w", err)
	}
	defer f.Close()

	ef, err := elf.NewFile(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotELF, err)
	}
	defer ef.Close()

	m := &Map{}
	for _, p := range ef.Progs {
		if p.Type != elf.PT_LOAD || p.Memsz == 0 {
			continue
		}
		buf := make([]byte, alignUp(p.Memsz, 4))
		n := min(p.Filesz, uint64(len(buf)))
		if _, err := p.ReadAt(buf[:n], 0); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("guest: read segment at 0x%x: %w", p.Vaddr, err)
		}
		if err := m.Add(NewImage(p.Vaddr, buf)); err != nil {
			return nil, err
		}
	}
	if len(m.regions) == 0 {
		return nil, fmt.Errorf("guest: %s has no loadable segments", path)
	}
	return m, nil
}

// LoadRaw maps a flat memory dump at base.
func LoadRaw(path string, base uint64) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("guest: read %s: %w", path, err)
	}
	if len(data)%4 != 0 {
		data = append(data, make([]byte, 4-len(data)%4)...)
	}
	return NewImage(base, data), nil
}

func alignUp(v, a uint64) uint64 {
	return (v + a - 1) &^ (a - 1)
}
