package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gcnrecomp/internal/spvasm"
)

func TestDefaultIsValid(t *testing.T) {
	o := Default()
	if err := o.Check(); err != nil {
		t.Fatalf("Default().Check() = %v", err)
	}
	if !o.Validate || o.Optimize != spvasm.ModePerformance || o.Log != LogConsole {
		t.Fatalf("unexpected defaults: %+v", o)
	}
}

func TestDecode(t *testing.T) {
	o, err := Decode([]byte(`{"optimize":"size","next_gen":true,"print_names":true,"max_steps":100}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if o.Optimize != spvasm.ModeSize || !o.NextGen || !o.PrintNames || o.MaxSteps != 100 {
		t.Fatalf("got %+v", o)
	}
	if !o.Validate {
		t.Fatal("unset field lost its default")
	}
	if got := o.Stage(); !got.NextGen || got.MaxSteps != 100 {
		t.Fatalf("Stage() = %+v", got)
	}
	if got := o.Backend(); got.Optimize != spvasm.ModeSize || !got.Validate {
		t.Fatalf("Backend() = %+v", got)
	}
	if !o.Gen().PrintNames {
		t.Fatal("Gen() dropped PrintNames")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name, in string
		invalid  bool
	}{
		{"unknown field", `{"bogus":1}`, false},
		{"bad mode", `{"optimize":"fast"}`, false},
		{"bad log", `{"log":"syslog"}`, true},
		{"file without path", `{"log":"file"}`, true},
		{"negative steps", `{"max_steps":-1}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.json")
	if err := os.WriteFile(path, []byte(`{"validate":false,"optimize":"none"}`), 0644); err != nil {
		t.Fatal(err)
	}
	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.Validate || o.Optimize != spvasm.ModeNone {
		t.Fatalf("got %+v", o)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("Load of a missing file succeeded")
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	o := Default()
	o.Log, o.LogFile = LogFile, path
	log, closer, err := NewLogger(o)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Info("translated", "shader", "vs")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=translated shader=vs") {
		t.Fatalf("log file = %q", data)
	}

	for _, mode := range []LogMode{LogConsole, LogNone} {
		o.Log = mode
		if _, c, err := NewLogger(o); err != nil || c == nil {
			t.Fatalf("NewLogger(%s) = %v", mode, err)
		}
	}
	o.Log = "syslog"
	if _, _, err := NewLogger(o); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}
