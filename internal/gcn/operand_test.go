package gcn

import (
	"errors"
	"testing"
)

func invalidOperandCode(code uint16) bool {
	switch {
	case code >= 104 && code <= 105,
		code >= 108 && code <= 123,
		code >= 209 && code <= 239,
		code >= 248 && code <= 251,
		code >= 253 && code <= 254,
		code > 511:
		return true
	}
	return false
}

func TestDecodeOperand_Totality(t *testing.T) {
	for code := uint16(0); code <= 512; code++ {
		op, err := DecodeOperand(code)
		if invalidOperandCode(code) {
			if !errors.Is(err, ErrUnknownOperand) {
				t.Errorf("code %d: err = %v, want ErrUnknownOperand", code, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("code %d: unexpected error %v", code, err)
			continue
		}
		if op.Kind == OperandUnknown {
			t.Errorf("code %d: kind unknown", code)
		}
		if op.Kind.IsConstant() && op.Kind != OperandLiteralConstant && op.Size != 0 {
			t.Errorf("code %d: constant size = %d, want 0", code, op.Size)
		}
		if op.Multiplier != 1 {
			t.Errorf("code %d: multiplier = %v, want 1", code, op.Multiplier)
		}
	}
}

func TestDecodeOperand_RegisterRoundTrip(t *testing.T) {
	for n := 0; n < 104; n++ {
		op, err := DecodeOperand(uint16(n))
		if err != nil || op.Kind != OperandSgpr || op.RegisterID != n || op.Size != 1 {
			t.Fatalf("sgpr %d: got %+v, %v", n, op, err)
		}
	}
	for n := 0; n < 256; n++ {
		op, err := DecodeOperand(uint16(256 + n))
		if err != nil || op.Kind != OperandVgpr || op.RegisterID != n || op.Size != 1 {
			t.Fatalf("vgpr %d: got %+v, %v", n, op, err)
		}
	}
}

func TestDecodeOperand_Constants(t *testing.T) {
	tests := []struct {
		code uint16
		kind OperandKind
		i    int32
		f    float32
	}{
		{128, OperandIntegerInlineConstant, 0, 0},
		{129, OperandIntegerInlineConstant, 1, 0},
		{192, OperandIntegerInlineConstant, 64, 0},
		{193, OperandIntegerInlineConstant, -1, 0},
		{208, OperandIntegerInlineConstant, -16, 0},
		{240, OperandFloatInlineConstant, 0, 0.5},
		{241, OperandFloatInlineConstant, 0, -0.5},
		{242, OperandFloatInlineConstant, 0, 1},
		{243, OperandFloatInlineConstant, 0, -1},
		{244, OperandFloatInlineConstant, 0, 2},
		{245, OperandFloatInlineConstant, 0, -2},
		{246, OperandFloatInlineConstant, 0, 4},
		{247, OperandFloatInlineConstant, 0, -4},
	}
	for _, tt := range tests {
		op, err := DecodeOperand(tt.code)
		if err != nil {
			t.Fatalf("code %d: %v", tt.code, err)
		}
		if op.Kind != tt.kind {
			t.Errorf("code %d: kind = %s, want %s", tt.code, op.Kind, tt.kind)
		}
		if tt.kind == OperandIntegerInlineConstant && op.Constant.I() != tt.i {
			t.Errorf("code %d: value = %d, want %d", tt.code, op.Constant.I(), tt.i)
		}
		if tt.kind == OperandFloatInlineConstant && op.Constant.F() != tt.f {
			t.Errorf("code %d: value = %v, want %v", tt.code, op.Constant.F(), tt.f)
		}
	}
}

func TestDecodeOperand_Special(t *testing.T) {
	tests := []struct {
		code uint16
		kind OperandKind
		name string
	}{
		{106, OperandVccLo, "vcc_lo"},
		{107, OperandVccHi, "vcc_hi"},
		{124, OperandM0, "m0"},
		{125, OperandNull, "null"},
		{126, OperandExecLo, "exec_lo"},
		{127, OperandExecHi, "exec_hi"},
		{252, OperandExecZ, "execz"},
	}
	for _, tt := range tests {
		op, err := DecodeOperand(tt.code)
		if err != nil {
			t.Fatalf("code %d: %v", tt.code, err)
		}
		if op.Kind != tt.kind || op.String() != tt.name {
			t.Errorf("code %d: got %s %q, want %s %q", tt.code, op.Kind, op.String(), tt.kind, tt.name)
		}
	}
	lit, _ := DecodeOperand(255)
	if lit.Kind != OperandLiteralConstant || lit.Size != 1 {
		t.Errorf("literal placeholder = %+v", lit)
	}
}

func TestOperandString(t *testing.T) {
	tests := []struct {
		op   Operand
		want string
	}{
		{Sgpr(4, 1), "s4"},
		{Sgpr(4, 4), "s[4:7]"},
		{Vgpr(0, 1), "v0"},
		{Vgpr(2, 3), "v[2:4]"},
		{Operand{Kind: OperandVccLo, Size: 2}, "vcc"},
		{Operand{Kind: OperandExecLo, Size: 2}, "exec"},
		{Operand{Kind: OperandIntegerInlineConstant, Constant: Constant{Bits: 0xfffffffd}}, "-3"},
		{Operand{Kind: OperandFloatInlineConstant, Constant: Constant{Bits: 0x3f000000}}, "0.5"},
		{Operand{Kind: OperandLiteralConstant, Constant: Constant{Bits: 0x3f800000}}, "0x3f800000"},
		{Operand{Kind: OperandVgpr, RegisterID: 1, Size: 1, Negate: true, Absolute: true}, "-|v1|"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

}

func TestOperandCovers(t *testing.T) {
	op := Vgpr(4, 4)
	if !op.Covers(OperandVgpr, 4) || !op.Covers(OperandVgpr, 7) {
		t.Error("v[4:7] should cover v4 and v7")
	}
	if op.Covers(OperandVgpr, 8) || op.Covers(OperandSgpr, 5) {
		t.Error("v[4:7] should not cover v8 or s5")
	}
}
