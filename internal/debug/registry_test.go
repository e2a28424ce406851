package debug

import (
	"errors"
	"sync"
	"testing"

	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/shaderbin"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"deadbeef:00000001", Key{0xdeadbeef, 1}, false},
		{"0x10:0x20", Key{0x10, 0x20}, false},
		{"deadbeef", Key{}, true},
		{"xyz:1", Key{}, true},
		{"1:100000000", Key{}, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadKey) {
				t.Errorf("ParseKey(%q) err = %v, want ErrBadKey", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, _ := ParseKey(got.String()); back != got {
			t.Errorf("String round trip of %v gave %v", got, back)
		}
	}
}

func TestKeyOf(t *testing.T) {
	k := KeyOf(shaderbin.Info{Hash0: 0x11, Hash1: 0x22, Crc32: 0x33})
	if k != (Key{0x11, 0x33}) {
		t.Fatalf("KeyOf = %v", k)
	}
	if k.String() != "00000011:00000033" {
		t.Fatalf("String = %q", k.String())
	}
}

func TestDisableEnable(t *testing.T) {
	r := NewRegistry()
	a, b := Key{2, 1}, Key{1, 9}
	if r.IsDisabled(a) {
		t.Fatal("fresh registry reports a disabled shader")
	}
	r.Disable(a)
	r.Disable(b)
	if !r.IsDisabled(a) || !r.IsDisabled(b) {
		t.Fatal("Disable had no effect")
	}
	got := r.Disabled()
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Fatalf("Disabled() = %v, want [%v %v]", got, b, a)
	}
	r.Enable(a)
	if r.IsDisabled(a) {
		t.Fatal("Enable had no effect")
	}
	if !r.IsDisabled(b) {
		t.Fatal("Enable cleared an unrelated key")
	}
}

func TestPrintfs(t *testing.T) {
	r := NewRegistry()
	k := Key{7, 7}
	args := []gcn.Operand{gcn.Sgpr(0, 1)}
	r.InjectDebugPrintf(k, gcn.DebugPrintf{PC: 4, Format: "first %u", Types: []gcn.PrintfArg{gcn.PrintfUint}, Args: args})
	r.InjectDebugPrintf(k, gcn.DebugPrintf{PC: 0, Format: "second"})
	args[0] = gcn.Vgpr(3, 1)

	got := r.Printfs(k)
	if len(got) != 2 {
		t.Fatalf("got %d printfs, want 2", len(got))
	}
	if got[0].Format != "first %u" || got[1].Format != "second" {
		t.Fatalf("order not kept: %q, %q", got[0].Format, got[1].Format)
	}
	if got[0].Args[0] != gcn.Sgpr(0, 1) {
		t.Fatalf("registry aliases caller args: %v", got[0].Args[0])
	}
	if len(r.Printfs(Key{7, 8})) != 0 {
		t.Fatal("printfs leaked to another key")
	}

	code := &gcn.Code{}
	r.Apply(k, code)
	if len(code.PrintfsAt(4)) != 1 || len(code.PrintfsAt(0)) != 1 {
		t.Fatalf("Apply attached %d printfs", len(code.DebugPrintfs))
	}

	r.ClearPrintfs(k)
	if len(r.Printfs(k)) != 0 {
		t.Fatal("ClearPrintfs left requests behind")
	}
}

func TestConcurrentUse(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k := Key{uint32(i), 0}
			r.Disable(k)
			r.InjectDebugPrintf(k, gcn.DebugPrintf{Format: "x"})
			_ = r.IsDisabled(k)
			_ = r.Printfs(k)
		}()
	}
	wg.Wait()
	if n := len(r.Disabled()); n != 16 {
		t.Fatalf("got %d disabled, want 16", n)
	}
}
