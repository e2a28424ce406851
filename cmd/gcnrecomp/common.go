package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"gcnrecomp/internal/config"
	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/spvasm"
	"gcnrecomp/internal/stage"
	"gcnrecomp/internal/translator"
)

// memFlags selects the guest memory image.
type memFlags struct {
	elf  *string
	raw  *string
	base *string
}

func addMemFlags(fs *flag.FlagSet) memFlags {
	return memFlags{
		elf:  fs.String("elf", "", "guest image as an ELF file (PT_LOAD segments)"),
		raw:  fs.String("raw", "", "guest image as a flat memory dump"),
		base: fs.String("base", "0", "load address of --raw"),
	}
}

func (m memFlags) load() (guest.Memory, error) {
	switch {
	case *m.elf != "" && *m.raw != "":
		return nil, fmt.Errorf("--elf and --raw are exclusive")
	case *m.elf != "":
		return guest.LoadELF(*m.elf)
	case *m.raw != "":
		base, err := parseAddr(*m.base)
		if err != nil {
			return nil, fmt.Errorf("--base: %w", err)
		}
		return guest.LoadRaw(*m.raw, base)
	}
	return nil, fmt.Errorf("--elf or --raw is required")
}

// parseAddr accepts decimal and 0x-prefixed hex.
func parseAddr(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

// optFlags overrides config file values. Only flags given on the command
// line are applied.
type optFlags struct {
	fs       *flag.FlagSet
	config   *string
	validate *bool
	optimize *string
	log      *string
	logFile  *string
	nextGen  *bool
	dump     *string
	names    *bool
	maxSteps *int
}

func addOptFlags(fs *flag.FlagSet) optFlags {
	return optFlags{
		fs:       fs,
		config:   fs.String("config", "", "JSON options file"),
		validate: fs.Bool("validate", true, "validate generated modules"),
		optimize: fs.String("optimize", "performance", "optimizer mode: none, size or performance"),
		log:      fs.String("log", "console", "log destination: console, file or none"),
		logFile:  fs.String("log-file", "", "log file for --log=file"),
		nextGen:  fs.Bool("next-gen", false, "decode next-generation encodings"),
		dump:     fs.String("dump", "", "directory for translation dumps"),
		names:    fs.Bool("names", false, "print register names and encoding families"),
		maxSteps: fs.Int("max-steps", 0, "decode loop cap (0 = default)"),
	}
}

func (o optFlags) options() (config.Options, error) {
	opts := config.Default()
	if *o.config != "" {
		var err error
		if opts, err = config.Load(*o.config); err != nil {
			return opts, err
		}
	}
	var err error
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "validate":
			opts.Validate = *o.validate
		case "optimize":
			var m spvasm.Mode
			if m, err = spvasm.ParseMode(*o.optimize); err == nil {
				opts.Optimize = m
			}
		case "log":
			opts.Log = config.LogMode(*o.log)
		case "log-file":
			opts.LogFile = *o.logFile
		case "next-gen":
			opts.NextGen = *o.nextGen
		case "dump":
			opts.DumpDir = *o.dump
		case "names":
			opts.PrintNames = *o.names
		case "max-steps":
			opts.MaxSteps = *o.maxSteps
		}
	})
	if err != nil {
		return opts, err
	}
	return opts, opts.Check()
}

// translatorFor builds a translator from the memory and option flags. The
// closer releases the log file.
func translatorFor(m memFlags, o optFlags) (*translator.Translator, io.Closer, error) {
	opts, err := o.options()
	if err != nil {
		return nil, nil, err
	}
	mem, err := m.load()
	if err != nil {
		return nil, nil, err
	}
	log, closer, err := config.NewLogger(opts)
	if err != nil {
		return nil, nil, err
	}
	return translator.New(mem, opts, nil, log), closer, nil
}

func parseShaderType(s string) (gcn.ShaderType, error) {
	for _, t := range []gcn.ShaderType{gcn.TypeVertex, gcn.TypePixel, gcn.TypeCompute, gcn.TypeFetch} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown shader type %q (want vs, ps, cs or fs)", s)
}

// regsFile is the register snapshot a capture tool writes for one draw or
// dispatch.
type regsFile struct {
	VS *stage.VsRegisters `json:"vs,omitempty"`
	PS *stage.PsRegisters `json:"ps,omitempty"`
	CS *stage.CsRegisters `json:"cs,omitempty"`
}

func loadRegs(path string) (*regsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regs: %w", err)
	}
	var r regsFile
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode regs %s: %w", path, err)
	}
	return &r, nil
}

// stageInfo is the input description of every stage in a regs file.
type stageInfo struct {
	VS *stage.VsInputInfo `json:"vs,omitempty"`
	PS *stage.PsInputInfo `json:"ps,omitempty"`
	CS *stage.CsInputInfo `json:"cs,omitempty"`
}

func inputInfo(tr *translator.Translator, r *regsFile) (*stageInfo, error) {
	var si stageInfo
	var err error
	if r.VS != nil {
		if si.VS, err = tr.InputInfoVS(r.VS); err != nil {
			return nil, fmt.Errorf("vs: %w", err)
		}
	}
	if r.PS != nil {
		if si.PS, err = tr.InputInfoPS(r.PS, si.VS); err != nil {
			return nil, fmt.Errorf("ps: %w", err)
		}
	}
	if r.CS != nil {
		if si.CS, err = tr.InputInfoCS(r.CS); err != nil {
			return nil, fmt.Errorf("cs: %w", err)
		}
	}
	if si.VS == nil && si.PS == nil && si.CS == nil {
		return nil, fmt.Errorf("regs file names no stage")
	}
	return &si, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
