// Package guest models the guest address space the shader binaries live in.
//
// The loader that maps guest ELF images is outside this module; Memory is the
// narrow contract the decoder and binder need from it. Image and Map are the
// in-process implementations used by the CLI and by tests.
package guest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnmapped   = errors.New("guest: address not mapped")
	ErrMisaligned = errors.New("guest: address not 4-byte aligned")
	ErrShortRead  = errors.New("guest: read past end of region")
	ErrOverlap    = errors.New("guest: regions overlap")
)

// Memory gives word-granular read access to guest memory.
type Memory interface {
	// Words returns the mapped words starting at addr up to the end of the
	// region containing it. The slice aliases guest memory and must not be
	// modified.
	Words(addr uint64) ([]uint32, error)
}

// Image is a single contiguous region of guest memory.
type Image struct {
	Base uint64
	Data []uint32
}

// NewImage converts little-endian bytes into an Image at base.
// Trailing bytes that do not fill a word are dropped.
func NewImage(base uint64, data []byte) *Image {
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return &Image{Base: base, Data: words}
}

// End returns the first address past the region.
func (im *Image) End() uint64 { return im.Base + uint64(len(im.Data))*4 }

// Contains reports whether addr falls inside the region.
func (im *Image) Contains(addr uint64) bool {
	return addr >= im.Base && addr < im.End()
}

func (im *Image) Words(addr uint64) ([]uint32, error) {
	if addr&3 != 0 {
		return nil, fmt.Errorf("%w: 0x%x", ErrMisaligned, addr)
	}
	if !im.Contains(addr) {
		return nil, fmt.Errorf("%w: 0x%x", ErrUnmapped, addr)
	}
	return im.Data[(addr-im.Base)/4:], nil
}

// Map is a set of non-overlapping regions sorted by base address.
type Map struct {
	regions []*Image
}

// Add inserts a region. Overlapping regions are rejected.
func (m *Map) Add(im *Image) error {
	for _, r := range m.regions {
		if im.Base < r.End() && r.Base < im.End() {
			return fmt.Errorf("%w: [0x%x,0x%x) and [0x%x,0x%x)", ErrOverlap, im.Base, im.End(), r.Base, r.End())
		}
	}
	m.regions = append(m.regions, im)
	sort.Slice(m.regions, func(i, j int) bool { return m.regions[i].Base < m.regions[j].Base })
	return nil
}

// Regions returns the regions in address order.
func (m *Map) Regions() []*Image { return m.regions }

func (m *Map) Words(addr uint64) ([]uint32, error) {
	i := sort.Search(len(m.regions), func(i int) bool { return m.regions[i].End() > addr })
	if i < len(m.regions) && m.regions[i].Contains(addr) {
		return m.regions[i].Words(addr)
	}
	return nil, fmt.Errorf("%w: 0x%x", ErrUnmapped, addr)
}

// ReadWords copies n words starting at addr.
func ReadWords(mem Memory, addr uint64, n int) ([]uint32, error) {
	words, err := mem.Words(addr)
	if err != nil {
		return nil, err
	}
	if len(words) < n {
		return nil, fmt.Errorf("%w: want %d words at 0x%x, have %d", ErrShortRead, n, addr, len(words))
	}
	out := make([]uint32, n)
	copy(out, words[:n])
	return out, nil
}

// Pointer joins two consecutive 32-bit register values into a 64-bit address.
func Pointer(lo, hi uint32) uint64 {
	return uint64(lo) | uint64(hi)<<32
}
