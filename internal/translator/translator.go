// Package translator is the entry point a graphics backend uses: it reads
// programs from guest memory, builds their input descriptions and
// identities, and recompiles them into SPIR-V modules.
package translator

import (
	"errors"
	"fmt"
	"log/slog"

	"gcnrecomp/internal/backend"
	"gcnrecomp/internal/config"
	"gcnrecomp/internal/debug"
	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/output"
	"gcnrecomp/internal/shaderbin"
	"gcnrecomp/internal/shaderid"
	"gcnrecomp/internal/spvgen"
	"gcnrecomp/internal/stage"
)

var ErrDisabled = errors.New("translator: shader disabled")

// Translator is safe for concurrent use as long as the guest memory is.
type Translator struct {
	mem  guest.Memory
	opts config.Options
	reg  *debug.Registry
	log  *slog.Logger
	pipe *backend.Pipeline
}

// New returns a translator reading from mem. A nil registry gets a fresh
// one and a nil logger discards.
func New(mem guest.Memory, opts config.Options, reg *debug.Registry, log *slog.Logger) *Translator {
	if reg == nil {
		reg = debug.NewRegistry()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Translator{
		mem:  mem,
		opts: opts,
		reg:  reg,
		log:  log,
		pipe: backend.New(opts.Backend()),
	}
}

func (t *Translator) Options() config.Options   { return t.opts }
func (t *Translator) Registry() *debug.Registry { return t.reg }

// Parse decodes the program at addr. When the program carries a binary
// header, printfs registered for it are attached to the result.
func (t *Translator) Parse(addr uint64, typ gcn.ShaderType) (*gcn.Code, error) {
	words, err := t.mem.Words(addr)
	if err != nil {
		return nil, fmt.Errorf("translator: program at 0x%x: %w", addr, err)
	}
	opts := gcn.Options{Type: typ, NextGen: t.opts.NextGen, MaxSteps: t.opts.MaxSteps}
	bin, herr := shaderbin.Read(words)
	if herr == nil {
		opts.HasHeader = true
		opts.Hash0 = bin.Info.Hash0
		opts.Crc32 = bin.Info.Crc32
	}
	code, err := gcn.Parse(words, opts)
	if err != nil {
		return nil, fmt.Errorf("translator: parse %s at 0x%x: %w", typ, addr, err)
	}
	if herr == nil {
		t.reg.Apply(debug.KeyOf(bin.Info), code)
	}
	return code, nil
}

// Key returns the registry key of the program at addr.
func (t *Translator) Key(addr uint64) (debug.Key, error) {
	bin, err := stage.ReadBinary(t.mem, addr)
	if err != nil {
		return debug.Key{}, err
	}
	return debug.KeyOf(bin.Info), nil
}

// IsDisabled reports whether the program at addr was disabled.
func (t *Translator) IsDisabled(addr uint64) (bool, error) {
	k, err := t.Key(addr)
	if err != nil {
		return false, err
	}
	return t.reg.IsDisabled(k), nil
}

func (t *Translator) Disable(k debug.Key) {
	t.log.Info("shader disabled", "key", k)
	t.reg.Disable(k)
}

func (t *Translator) InjectDebugPrintf(k debug.Key, p gcn.DebugPrintf) {
	t.reg.InjectDebugPrintf(k, p)
}

func (t *Translator) InputInfoVS(regs *stage.VsRegisters) (*stage.VsInputInfo, error) {
	return stage.InputInfoVS(regs, t.mem, t.opts.Stage())
}

// InputInfoPS takes the companion vertex stage so the pixel stage's
// descriptor set and push-constant range follow it. vs may be nil.
func (t *Translator) InputInfoPS(regs *stage.PsRegisters, vs *stage.VsInputInfo) (*stage.PsInputInfo, error) {
	return stage.InputInfoPS(regs, vs, t.mem)
}

func (t *Translator) InputInfoCS(regs *stage.CsRegisters) (*stage.CsInputInfo, error) {
	return stage.InputInfoCS(regs, t.mem)
}

// IDVS, IDPS and IDCS include the printfs currently queued for the
// program, so injecting or clearing one yields a new identity.
func (t *Translator) IDVS(info *stage.VsInputInfo) shaderid.ID {
	if info.Embedded {
		return shaderid.ComputeVS(info)
	}
	return t.withPrintfs(shaderid.ComputeVS(info), info.Header)
}

func (t *Translator) IDPS(info *stage.PsInputInfo) shaderid.ID {
	if info.Embedded {
		return shaderid.ComputePS(info)
	}
	return t.withPrintfs(shaderid.ComputePS(info), info.Header)
}

func (t *Translator) IDCS(info *stage.CsInputInfo) shaderid.ID {
	return t.withPrintfs(shaderid.ComputeCS(info), info.Header)
}

func (t *Translator) withPrintfs(id shaderid.ID, h shaderbin.Info) shaderid.ID {
	return shaderid.WithPrintfs(id, t.reg.Printfs(debug.KeyOf(h)))
}

// RecompileVS returns the SPIR-V module for the vertex stage.
func (t *Translator) RecompileVS(regs *stage.VsRegisters, info *stage.VsInputInfo) ([]byte, error) {
	if info.Embedded {
		src, err := spvgen.EmbeddedVS(info.EmbeddedID, t.opts.Gen())
		if err != nil {
			return nil, fmt.Errorf("translator: %w", err)
		}
		return t.assemble(embeddedName("vs", info.EmbeddedID), src, nil, info)
	}
	name, err := t.check("vs", info.Header)
	if err != nil {
		return nil, err
	}
	code, err := t.Parse(regs.DataAddr, gcn.TypeVertex)
	if err != nil {
		return nil, err
	}
	src, err := spvgen.VS(code, info, t.opts.Gen())
	if err != nil {
		return nil, t.failed(name, code, info, err)
	}
	return t.assemble(name, src, code, info)
}

// RecompilePS returns the SPIR-V module for the pixel stage.
func (t *Translator) RecompilePS(regs *stage.PsRegisters, info *stage.PsInputInfo) ([]byte, error) {
	if info.Embedded {
		src, err := spvgen.EmbeddedPS(info.EmbeddedID, t.opts.Gen())
		if err != nil {
			return nil, fmt.Errorf("translator: %w", err)
		}
		return t.assemble(embeddedName("ps", info.EmbeddedID), src, nil, info)
	}
	name, err := t.check("ps", info.Header)
	if err != nil {
		return nil, err
	}
	code, err := t.Parse(regs.DataAddr, gcn.TypePixel)
	if err != nil {
		return nil, err
	}
	src, err := spvgen.PS(code, info, t.opts.Gen())
	if err != nil {
		return nil, t.failed(name, code, info, err)
	}
	return t.assemble(name, src, code, info)
}

// RecompileCS returns the SPIR-V module for a compute dispatch.
func (t *Translator) RecompileCS(regs *stage.CsRegisters, info *stage.CsInputInfo) ([]byte, error) {
	name, err := t.check("cs", info.Header)
	if err != nil {
		return nil, err
	}
	code, err := t.Parse(regs.DataAddr, gcn.TypeCompute)
	if err != nil {
		return nil, err
	}
	src, err := spvgen.CS(code, info, t.opts.Gen())
	if err != nil {
		return nil, t.failed(name, code, info, err)
	}
	return t.assemble(name, src, code, info)
}

// DumpInstructions renders code with the configured name printing.
func (t *Translator) DumpInstructions(code *gcn.Code) string {
	return code.Dump(gcn.DumpOptions{PrintNames: t.opts.PrintNames})
}

// DumpInputInfo renders any of the stage input descriptions.
func (t *Translator) DumpInputInfo(info any) string { return output.Sdump(info) }

func shaderName(prefix string, h shaderbin.Info) string {
	return fmt.Sprintf("%s_%08x_%08x", prefix, h.Hash0, h.Crc32)
}

func embeddedName(prefix string, id uint32) string {
	return fmt.Sprintf("%s_embedded_%d", prefix, id)
}

func (t *Translator) check(prefix string, h shaderbin.Info) (string, error) {
	k := debug.KeyOf(h)
	if t.reg.IsDisabled(k) {
		return "", fmt.Errorf("%w: %s %s", ErrDisabled, prefix, k)
	}
	return shaderName(prefix, h), nil
}

// failed logs a code generation error and dumps what was decoded.
func (t *Translator) failed(name string, code *gcn.Code, info any, err error) error {
	t.log.Error("code generation failed", "shader", name, "err", err)
	t.dump(name, "", nil, code, info)
	return fmt.Errorf("translator: %s: %w", name, err)
}

func (t *Translator) assemble(name, src string, code *gcn.Code, info any) ([]byte, error) {
	module, err := t.pipe.Run(src)
	if err != nil {
		t.log.Error("backend failed", "shader", name, "report", backend.Report(err))
		t.dump(name, src, nil, code, info)
		return nil, fmt.Errorf("translator: %s: %w", name, err)
	}
	t.log.Debug("recompiled", "shader", name, "bytes", len(module))
	t.dump(name, src, module, code, info)
	return module, nil
}

// dump writes whatever artifacts exist to DumpDir. Failures are logged,
// never returned: a dump must not change the translation result.
func (t *Translator) dump(name, src string, module []byte, code *gcn.Code, info any) {
	dir := t.opts.DumpDir
	if dir == "" {
		return
	}
	var errs []error
	if code != nil {
		errs = append(errs, output.WriteInstructions(dir, name, code, gcn.DumpOptions{PrintNames: t.opts.PrintNames}))
	}
	if info != nil {
		errs = append(errs, output.WriteInputInfo(dir, name, info))
	}
	if src != "" {
		errs = append(errs, output.WriteSource(dir, name, src))
	}
	if module != nil {
		errs = append(errs,
			output.WriteBinary(dir, name, module),
			output.WriteDisassembly(dir, name, module))
	}
	if err := errors.Join(errs...); err != nil {
		t.log.Warn("dump failed", "shader", name, "err", err)
	}
}
