package shaderbin

import "errors"

var ErrStreamEOF = errors.New("shaderbin: unexpected end of data")

// WordStream reads little-endian values from a byte-addressed view of a
// 32-bit word slice, which is how shader binaries arrive from guest memory.
type WordStream struct {
	words []uint32
	pos   int // byte position
	end   int
}

// NewWordStream creates a stream over words.
func NewWordStream(words []uint32) *WordStream {
	return &WordStream{words: words, end: len(words) * 4}
}

// NewWordStreamAt creates a stream starting at word index.
func NewWordStreamAt(words []uint32, index int) *WordStream {
	s := NewWordStream(words)
	s.SetPosition(index * 4)
	return s
}

// Position returns the current byte position.
func (s *WordStream) Position() int { return s.pos }

// SetPosition sets the byte position.
func (s *WordStream) SetPosition(pos int) {
	if pos > s.end {
		pos = s.end
	}
	s.pos = pos
}

// Remaining returns bytes left to read.
func (s *WordStream) Remaining() int { return s.end - s.pos }

// ReadByte reads a single byte.
func (s *WordStream) ReadByte() (byte, error) {
	if s.pos >= s.end {
		return 0, ErrStreamEOF
	}
	b := byte(s.words[s.pos/4] >> (8 * (s.pos % 4)))
	s.pos++
	return b, nil
}

// ReadBytes reads n bytes into a new slice.
func (s *WordStream) ReadBytes(n int) ([]byte, error) {
	if s.pos+n > s.end {
		return nil, ErrStreamEOF
	}
	out := make([]byte, n)
	for i := range out {
		out[i], _ = s.ReadByte()
	}
	return out, nil
}

// ReadUint32 reads a little-endian uint32 at any byte alignment.
func (s *WordStream) ReadUint32() (uint32, error) {
	if s.pos+4 > s.end {
		return 0, ErrStreamEOF
	}
	if s.pos%4 == 0 {
		v := s.words[s.pos/4]
		s.pos += 4
		return v, nil
	}
	var v uint32
	for i := 0; i < 4; i++ {
		b, _ := s.ReadByte()
		v |= uint32(b) << (8 * i)
	}
	return v, nil
}

// ReadWords reads n aligned words.
func (s *WordStream) ReadWords(n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := s.ReadUint32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
