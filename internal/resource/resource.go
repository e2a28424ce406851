// Package resource provides read-only accessors over the bit-packed GCN
// resource descriptors (V#, T#, S#). Descriptors stay as raw words so they
// can be hashed and re-bound without conversion.
package resource

// Buffer is a 4-dword buffer descriptor (V#).
type Buffer [4]uint32

// Texture is an 8-dword image descriptor (T#).
type Texture [8]uint32

// Sampler is a 4-dword sampler descriptor (S#).
type Sampler [4]uint32

// Gds is a GDS pointer: base in the low half, size in the high half.
type Gds uint32

// Extended is a 64-bit pointer to the extended user data buffer.
type Extended [2]uint32

func field(w uint32, lo, width uint) uint32 {
	return (w >> lo) & (1<<width - 1)
}

// Buffer accessors.

func (b Buffer) Base() uint64 {
	return uint64(b[0]) | uint64(field(b[1], 0, 16))<<32
}

func (b Buffer) Stride() uint32       { return field(b[1], 16, 14) }
func (b Buffer) CacheSwizzle() bool   { return field(b[1], 30, 1) != 0 }
func (b Buffer) SwizzleEnabled() bool { return field(b[1], 31, 1) != 0 }
func (b Buffer) NumRecords() uint32   { return b[2] }
func (b Buffer) DstSelX() uint32      { return field(b[3], 0, 3) }
func (b Buffer) DstSelY() uint32      { return field(b[3], 3, 3) }
func (b Buffer) DstSelZ() uint32      { return field(b[3], 6, 3) }
func (b Buffer) DstSelW() uint32      { return field(b[3], 9, 3) }
func (b Buffer) Nfmt() uint32         { return field(b[3], 12, 3) }
func (b Buffer) Dfmt() uint32         { return field(b[3], 15, 4) }
func (b Buffer) ElementSize() uint32  { return field(b[3], 19, 2) }
func (b Buffer) IndexStride() uint32  { return field(b[3], 21, 2) }
func (b Buffer) AddTid() bool         { return field(b[3], 23, 1) != 0 }
func (b Buffer) MemoryType() uint32   { return field(b[3], 27, 3) }
func (b Buffer) Type() uint32         { return field(b[3], 30, 2) }

// DstSel packs the four destination selects, 3 bits each.
func (b Buffer) DstSel() uint32 { return field(b[3], 0, 12) }

// Size is the addressable byte range: num_records elements of stride
// bytes, or num_records bytes for raw buffers.
func (b Buffer) Size() uint64 {
	if s := b.Stride(); s != 0 {
		return uint64(b.NumRecords()) * uint64(s)
	}
	return uint64(b.NumRecords())
}

// WithBase returns a copy pointing at base.
func (b Buffer) WithBase(base uint64) Buffer {
	b[0] = uint32(base)
	b[1] = b[1]&^0xffff | uint32(base>>32)&0xffff
	return b
}

// Texture accessors.

func (t Texture) Base() uint64 {
	return uint64(t[0])<<8 | uint64(field(t[1], 0, 8))<<40
}

func (t Texture) MinLod() uint32     { return field(t[1], 8, 12) }
func (t Texture) Dfmt() uint32       { return field(t[1], 20, 6) }
func (t Texture) Nfmt() uint32       { return field(t[1], 26, 4) }
func (t Texture) MemoryType() uint32 { return field(t[1], 30, 2) }
func (t Texture) Width() uint32      { return field(t[2], 0, 14) + 1 }
func (t Texture) Height() uint32     { return field(t[2], 14, 14) + 1 }
func (t Texture) PerfMod() uint32    { return field(t[2], 28, 3) }
func (t Texture) Interlaced() bool   { return field(t[2], 31, 1) != 0 }
func (t Texture) DstSelX() uint32    { return field(t[3], 0, 3) }
func (t Texture) DstSelY() uint32    { return field(t[3], 3, 3) }
func (t Texture) DstSelZ() uint32    { return field(t[3], 6, 3) }
func (t Texture) DstSelW() uint32    { return field(t[3], 9, 3) }
func (t Texture) DstSel() uint32     { return field(t[3], 0, 12) }
func (t Texture) BaseLevel() uint32  { return field(t[3], 12, 4) }
func (t Texture) LastLevel() uint32  { return field(t[3], 16, 4) }
func (t Texture) TilingIndex() uint32 {
	return field(t[3], 20, 5)
}
func (t Texture) Pow2Pad() bool     { return field(t[3], 25, 1) != 0 }
func (t Texture) Type() uint32      { return field(t[3], 28, 4) }
func (t Texture) Depth() uint32     { return field(t[4], 0, 13) + 1 }
func (t Texture) Pitch() uint32     { return field(t[4], 13, 14) + 1 }
func (t Texture) BaseArray() uint32 { return field(t[5], 0, 13) }
func (t Texture) LastArray() uint32 { return field(t[5], 13, 13) }

// Levels is the number of mip levels in the view.
func (t Texture) Levels() uint32 {
	if t.LastLevel() < t.BaseLevel() {
		return 1
	}
	return t.LastLevel() - t.BaseLevel() + 1
}

// Texture types.
const (
	TextureType1D        = 8
	TextureType2D        = 9
	TextureType3D        = 10
	TextureTypeCube      = 11
	TextureType1DArray   = 12
	TextureType2DArray   = 13
	TextureType2DMsaa    = 14
	TextureType2DMsaaArr = 15
)

// Sampler accessors.

func (s Sampler) ClampX() uint32           { return field(s[0], 0, 3) }
func (s Sampler) ClampY() uint32           { return field(s[0], 3, 3) }
func (s Sampler) ClampZ() uint32           { return field(s[0], 6, 3) }
func (s Sampler) MaxAnisoRatio() uint32    { return field(s[0], 9, 3) }
func (s Sampler) DepthCompareFunc() uint32 { return field(s[0], 12, 3) }
func (s Sampler) ForceUnnormalized() bool  { return field(s[0], 15, 1) != 0 }
func (s Sampler) AnisoThreshold() uint32   { return field(s[0], 16, 3) }
func (s Sampler) ForceDegamma() bool       { return field(s[0], 20, 1) != 0 }
func (s Sampler) AnisoBias() uint32        { return field(s[0], 21, 6) }
func (s Sampler) DisableCubeWrap() bool    { return field(s[0], 28, 1) != 0 }
func (s Sampler) FilterMode() uint32       { return field(s[0], 29, 2) }
func (s Sampler) MinLod() uint32           { return field(s[1], 0, 12) }
func (s Sampler) MaxLod() uint32           { return field(s[1], 12, 12) }
func (s Sampler) LodBias() uint32          { return field(s[2], 0, 14) }
func (s Sampler) XYMagFilter() uint32      { return field(s[2], 20, 2) }
func (s Sampler) XYMinFilter() uint32      { return field(s[2], 22, 2) }
func (s Sampler) ZFilter() uint32          { return field(s[2], 24, 2) }
func (s Sampler) MipFilter() uint32        { return field(s[2], 26, 2) }
func (s Sampler) BorderColorPtr() uint32   { return field(s[3], 0, 12) }
func (s Sampler) BorderColorType() uint32  { return field(s[3], 30, 2) }

// Gds accessors.

func (g Gds) Base() uint32 { return uint32(g) & 0xffff }
func (g Gds) Size() uint32 { return uint32(g) >> 16 }

// Pointer returns the 64-bit address.
func (e Extended) Pointer() uint64 {
	return uint64(e[0]) | uint64(e[1])<<32
}

// IsNull reports whether the pointer is zero.
func (e Extended) IsNull() bool { return e[0] == 0 && e[1] == 0 }
