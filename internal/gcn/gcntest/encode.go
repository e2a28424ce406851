// Package gcntest encodes GCN instructions and shader binaries for tests.
package gcntest

import "encoding/binary"

// Operand codes.
const (
	VccLo   = 106
	M0      = 124
	Null    = 125
	ExecLo  = 126
	Literal = 255
)

// V returns the 9-bit source code of vector register n.
func V(n uint32) uint32 { return 256 + n }

// Int returns the inline-constant code of a small non-negative integer.
func Int(n uint32) uint32 { return 128 + n }

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func SOP2(op, sdst, ssrc0, ssrc1 uint32) uint32 {
	return 0x2<<30 | op<<23 | sdst<<16 | ssrc1<<8 | ssrc0
}

func SOPK(op, sdst uint32, simm uint16) uint32 {
	return 0xB<<28 | op<<23 | sdst<<16 | uint32(simm)
}

func SOP1(op, sdst, ssrc0 uint32) uint32 {
	return 0x17D<<23 | sdst<<16 | op<<8 | ssrc0
}

func SOPC(op, ssrc0, ssrc1 uint32) uint32 {
	return 0x17E<<23 | op<<16 | ssrc1<<8 | ssrc0
}

func SOPP(op uint32, simm int16) uint32 {
	return 0x17F<<23 | op<<16 | uint32(uint16(simm))
}

// SMRD encodes a current-generation scalar memory read. sbase is the first
// SGPR of the (even-aligned) base pair; offset is in dwords when imm is set.
func SMRD(op, sdst, sbase uint32, imm bool, offset uint32) uint32 {
	return 0x18<<27 | op<<22 | sdst<<15 | (sbase/2)<<9 | b2u(imm)<<8 | offset&0xff
}

// SMEM encodes a next-generation scalar memory read with a byte offset.
func SMEM(op, sdata, sbase, offset, soffset uint32) []uint32 {
	return []uint32{
		0x3D<<26 | op<<18 | sdata<<6 | sbase/2,
		soffset<<25 | offset&0x1fffff,
	}
}

func VOP2(op, vdst, src0, vsrc1 uint32) uint32 {
	return op<<25 | vdst<<17 | vsrc1<<9 | src0
}

func VOP1(op, vdst, src0 uint32) uint32 {
	return 0x3F<<25 | vdst<<17 | op<<9 | src0
}

func VOPC(op, src0, vsrc1 uint32) uint32 {
	return 0x3E<<25 | op<<17 | vsrc1<<9 | src0
}

// VOP3 encodes the current-generation 64-bit VALU form. vdst is a VGPR
// index, or an SGPR code for compares.
func VOP3(op, vdst, src0, src1, src2 uint32) []uint32 {
	return []uint32{
		0x34<<26 | op<<17 | vdst,
		src2<<18 | src1<<9 | src0,
	}
}

// VOP3Mods is VOP3 with abs/neg bit masks, clamp and output modifier.
func VOP3Mods(op, vdst, src0, src1, src2, abs, neg uint32, clamp bool, omod uint32) []uint32 {
	return []uint32{
		0x34<<26 | op<<17 | b2u(clamp)<<11 | abs<<8 | vdst,
		neg<<29 | omod<<27 | src2<<18 | src1<<9 | src0,
	}
}

// VOP3Next encodes the next-generation 64-bit VALU form.
func VOP3Next(op, vdst, src0, src1, src2 uint32) []uint32 {
	return []uint32{
		0x35<<26 | op<<16 | vdst,
		src2<<18 | src1<<9 | src0,
	}
}

func VINTRP(op, vdst, vsrc, attr, chan_ uint32) uint32 {
	return 0x32<<26 | vdst<<18 | op<<16 | attr<<10 | chan_<<8 | vsrc
}

func EXP(target, en uint32, done, vm bool, v [4]uint32) []uint32 {
	return []uint32{
		0x3E<<26 | b2u(vm)<<12 | b2u(done)<<11 | target<<4 | en,
		v[3]<<24 | v[2]<<16 | v[1]<<8 | v[0],
	}
}

// Buffer holds the fields of a MUBUF/MTBUF instruction.
type Buffer struct {
	Op      uint32
	VData   uint32
	VAddr   uint32
	SRsrc   uint32 // first SGPR of the V#, multiple of 4
	SOffset uint32 // operand code
	Offset  uint32
	Idxen   bool
	Offen   bool
	Glc     bool
	Dfmt    uint32
	Nfmt    uint32
}

func (b Buffer) w1() uint32 {
	return b.SOffset<<24 | (b.SRsrc/4)<<16 | b.VData<<8 | b.VAddr
}

func (b Buffer) flags() uint32 {
	return b2u(b.Glc)<<14 | b2u(b.Idxen)<<13 | b2u(b.Offen)<<12 | b.Offset&0xfff
}

func MUBUF(b Buffer) []uint32 {
	return []uint32{0x38<<26 | b.Op<<18 | b.flags(), b.w1()}
}

func MTBUF(b Buffer) []uint32 {
	return []uint32{0x3A<<26 | b.Nfmt<<23 | b.Dfmt<<19 | b.Op<<16 | b.flags(), b.w1()}
}

func MIMG(op, dmask, vdata, vaddr, srsrc, ssamp uint32) []uint32 {
	return []uint32{
		0x3C<<26 | op<<18 | dmask<<8,
		(ssamp/4)<<21 | (srsrc/4)<<16 | vdata<<8 | vaddr,
	}
}

func DS(op, vdst, addr, data0, data1, offset0, offset1 uint32, gds bool) []uint32 {
	return []uint32{
		0x36<<26 | op<<18 | b2u(gds)<<17 | offset1<<8 | offset0,
		vdst<<24 | data1<<16 | data0<<8 | addr,
	}
}

// Program accumulates instruction words.
type Program struct {
	Words []uint32
}

func (p *Program) Add(words ...uint32) *Program {
	p.Words = append(p.Words, words...)
	return p
}

// PC returns the byte offset of the next instruction.
func (p *Program) PC() uint32 { return uint32(len(p.Words)) * 4 }

// Bytes encodes words little-endian.
func Bytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// Slot is a usage-slot record.
type Slot struct {
	Type          uint8
	Slot          uint8
	StartRegister uint8
	Flags         uint8
}

func (s Slot) Word() uint32 {
	return uint32(s.Type) | uint32(s.Slot)<<8 | uint32(s.StartRegister)<<16 | uint32(s.Flags)<<24
}

// Header holds the ShaderBinaryInfo fields a test controls.
type Header struct {
	Version uint8
	Type    uint8
	Length  uint32 // defaults to the code size in bytes
	Flags   uint8
	Hash0   uint32
	Hash1   uint32
	Crc32   uint32
	Masks   []uint32
}

// Binary lays out code, usage slots, usage masks and the 28-byte
// ShaderBinaryInfo header the way shader compilers emit them.
func Binary(code []uint32, slots []Slot, h Header) []uint32 {
	out := append([]uint32(nil), code...)
	for _, s := range slots {
		out = append(out, s.Word())
	}
	out = append(out, h.Masks...)

	length := h.Length
	if length == 0 {
		length = uint32(len(code)) * 4
	}
	var hdr [28]byte
	copy(hdr[:7], "OrbShdr")
	hdr[7] = h.Version
	binary.LittleEndian.PutUint32(hdr[8:], uint32(h.Type&0xf)<<2|length<<8)
	hdr[12] = uint8(len(h.Masks))
	hdr[13] = uint8(len(slots))
	hdr[14] = h.Flags
	binary.LittleEndian.PutUint32(hdr[16:], h.Hash0)
	binary.LittleEndian.PutUint32(hdr[20:], h.Hash1)
	binary.LittleEndian.PutUint32(hdr[24:], h.Crc32)
	for i := 0; i < 7; i++ {
		out = append(out, binary.LittleEndian.Uint32(hdr[i*4:]))
	}
	return out
}
