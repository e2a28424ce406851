package resource

import "testing"

func TestBufferFields(t *testing.T) {
	// base 0x1_2345_6780, stride 12, 100 records, dst_sel xyzw=4567,
	// nfmt 7 (float), dfmt 13 (32_32_32), add_tid set.
	b := Buffer{
		0x23456780,
		0x0001 | 12<<16,
		100,
		4 | 5<<3 | 6<<6 | 7<<9 | 7<<12 | 13<<15 | 1<<23,
	}
	if b.Base() != 0x123456780 {
		t.Errorf("Base = %#x", b.Base())
	}
	if b.Stride() != 12 || b.NumRecords() != 100 || b.Size() != 1200 {
		t.Errorf("stride=%d records=%d size=%d", b.Stride(), b.NumRecords(), b.Size())
	}
	if b.DstSelX() != 4 || b.DstSelY() != 5 || b.DstSelZ() != 6 || b.DstSelW() != 7 {
		t.Errorf("dst_sel = %d%d%d%d", b.DstSelX(), b.DstSelY(), b.DstSelZ(), b.DstSelW())
	}
	if b.Nfmt() != 7 || b.Dfmt() != 13 || !b.AddTid() {
		t.Errorf("nfmt=%d dfmt=%d add_tid=%v", b.Nfmt(), b.Dfmt(), b.AddTid())
	}

	moved := b.WithBase(0x2_0000_0010)
	if moved.Base() != 0x200000010 || moved.Stride() != 12 {
		t.Errorf("WithBase: base=%#x stride=%d", moved.Base(), moved.Stride())
	}
	if b.Base() != 0x123456780 {
		t.Error("WithBase modified the receiver")
	}
}

func TestTextureFields(t *testing.T) {
	tex := Texture{
		0x00100000,              // base >> 8
		0x01 | 10<<20 | 9<<26,   // base hi, dfmt 10, nfmt 9
		(640 - 1) | (480-1)<<14, // width, height
		4 | 5<<3 | 6<<6 | 7<<9 | 0<<12 | 3<<16 | TextureType2D<<28,
		0 | (640-1)<<13, // depth 1, pitch 640
		0, 0, 0,
	}
	if tex.Base() != 0x10000000|1<<40 {
		t.Errorf("Base = %#x", tex.Base())
	}
	if tex.Width() != 640 || tex.Height() != 480 || tex.Depth() != 1 || tex.Pitch() != 640 {
		t.Errorf("dims = %dx%dx%d pitch %d", tex.Width(), tex.Height(), tex.Depth(), tex.Pitch())
	}
	if tex.Dfmt() != 10 || tex.Nfmt() != 9 || tex.Type() != TextureType2D || tex.Levels() != 4 {
		t.Errorf("dfmt=%d nfmt=%d type=%d levels=%d", tex.Dfmt(), tex.Nfmt(), tex.Type(), tex.Levels())
	}
}

func TestSamplerFields(t *testing.T) {
	s := Sampler{
		1 | 2<<3 | 3<<6 | 2<<9 | 1<<15,
		0 | 0xfff<<12,
		1<<20 | 1<<22 | 2<<26,
		5 | 2<<30,
	}
	if s.ClampX() != 1 || s.ClampY() != 2 || s.ClampZ() != 3 || s.MaxAnisoRatio() != 2 || !s.ForceUnnormalized() {
		t.Errorf("word0 fields wrong: %+v", s)
	}
	if s.MaxLod() != 0xfff || s.XYMagFilter() != 1 || s.XYMinFilter() != 1 || s.MipFilter() != 2 {
		t.Errorf("filters wrong")
	}
	if s.BorderColorPtr() != 5 || s.BorderColorType() != 2 {
		t.Errorf("border = %d/%d", s.BorderColorPtr(), s.BorderColorType())
	}
}

func TestGdsAndExtended(t *testing.T) {
	g := Gds(0x0040_0100)
	if g.Base() != 0x100 || g.Size() != 0x40 {
		t.Errorf("gds base=%#x size=%#x", g.Base(), g.Size())
	}
	e := Extended{0x1000, 0x2}
	if e.Pointer() != 0x2_0000_1000 || e.IsNull() {
		t.Errorf("pointer = %#x", e.Pointer())
	}
}
