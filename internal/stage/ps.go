package stage

import (
	"fmt"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/shaderbin"
)

type PsInputInfo struct {
	Embedded   bool   `json:"embedded"`
	EmbeddedID uint32 `json:"embedded_id"`

	// Interpolators holds SPI_PS_INPUT_CNTL for each interpolated input.
	Interpolators []uint32 `json:"interpolators"`
	InputEna      uint32   `json:"input_ena"`
	InputAddr     uint32   `json:"input_addr"`

	PosXY     bool `json:"pos_xy"`
	PixelKill bool `json:"pixel_kill"`
	ZExport   bool `json:"z_export"`

	// TargetOutputMode is the SPI_SHADER_COL_FORMAT nibble per MRT.
	TargetOutputMode [8]uint32 `json:"target_output_mode"`
	ShaderMask       uint32    `json:"shader_mask"`

	Resources bind.Resources `json:"resources"`
	Header    shaderbin.Info `json:"header"`
}

// Interpolator returns input i's settings.
func (info *PsInputInfo) Interpolator(i int) Interpolator {
	return Interpolator(info.Interpolators[i])
}

// InputInfoPS builds the pixel stage input description. vs is the
// companion vertex stage; when it bound descriptors in set 0 the pixel
// stage moves to set 1, and its push constants always follow the vertex
// range.
func InputInfoPS(regs *PsRegisters, vs *VsInputInfo, mem guest.Memory) (*PsInputInfo, error) {
	if regs.Embedded {
		return &PsInputInfo{Embedded: true, EmbeddedID: regs.EmbeddedID}, nil
	}
	n := regs.NumInterp()
	if n > len(regs.Interpolators) {
		return nil, fmt.Errorf("%w: num_interp %d", ErrBadRegister, n)
	}
	bin, err := readStage(mem, regs.DataAddr, &regs.UserSgpr)
	if err != nil {
		return nil, err
	}
	info := &PsInputInfo{
		Interpolators: append([]uint32(nil), regs.Interpolators[:n]...),
		InputEna:      regs.InputEna,
		InputAddr:     regs.InputAddr,
		PosXY:         regs.InputEna&(InputPosX|InputPosY) != 0,
		PixelKill:     regs.DbShaderControl&KillEnable != 0,
		ZExport:       regs.DbShaderControl&ZExportEnable != 0,
		ShaderMask:    regs.ShaderMask,
		Header:        bin.Info,
	}
	for i := range info.TargetOutputMode {
		info.TargetOutputMode[i] = (regs.ColFormat >> (4 * i)) & 0xf
	}

	set, offset := 0, uint32(0)
	if vs != nil {
		l := vs.Resources.Layout
		if l.Bindings() > 0 {
			set = l.DescriptorSet + 1
		}
		offset = l.PushConstantOffset + l.PushConstantSize
	}
	res, err := bindStage(bin, &regs.UserSgpr, mem, set, offset)
	if err != nil {
		return nil, err
	}
	info.Resources = *res
	return info, nil
}
