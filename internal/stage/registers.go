package stage

import "gcnrecomp/internal/bind"

// VsRegisters is the vertex stage register state the command processor
// captured for a draw.
type VsRegisters struct {
	DataAddr   uint64 `json:"data_addr"`
	Embedded   bool   `json:"embedded,omitempty"`
	EmbeddedID uint32 `json:"embedded_id,omitempty"`

	Rsrc1       uint32 `json:"rsrc1"`
	Rsrc2       uint32 `json:"rsrc2"`
	OutConfig   uint32 `json:"out_config"` // SPI_VS_OUT_CONFIG
	PosFormat   uint32 `json:"pos_format"` // SPI_SHADER_POS_FORMAT
	ClVsOutCntl uint32 `json:"cl_vs_out_cntl"`

	UserSgpr bind.UserSgprTable `json:"user_sgpr"`
}

// ExportCount is the number of parameter exports (vs_export_count + 1).
func (r *VsRegisters) ExportCount() int { return int((r.OutConfig>>1)&0x1f) + 1 }

// PsRegisters is the pixel stage register state.
type PsRegisters struct {
	DataAddr   uint64 `json:"data_addr"`
	Embedded   bool   `json:"embedded,omitempty"`
	EmbeddedID uint32 `json:"embedded_id,omitempty"`

	Rsrc1           uint32     `json:"rsrc1"`
	Rsrc2           uint32     `json:"rsrc2"`
	InputEna        uint32     `json:"input_ena"`
	InputAddr       uint32     `json:"input_addr"`
	InControl       uint32     `json:"in_control"` // SPI_PS_IN_CONTROL, num_interp in [5:0]
	BarycCntl       uint32     `json:"baryc_cntl"`
	ZFormat         uint32     `json:"z_format"`
	ColFormat       uint32     `json:"col_format"` // SPI_SHADER_COL_FORMAT, 4 bits per MRT
	DbShaderControl uint32     `json:"db_shader_control"`
	ShaderMask      uint32     `json:"shader_mask"`   // CB_SHADER_MASK
	Interpolators   [32]uint32 `json:"interpolators"` // SPI_PS_INPUT_CNTL_n

	UserSgpr bind.UserSgprTable `json:"user_sgpr"`
}

// NumInterp is the number of interpolated parameters.
func (r *PsRegisters) NumInterp() int { return int(r.InControl & 0x3f) }

// CsRegisters is the compute stage register state.
type CsRegisters struct {
	DataAddr uint64 `json:"data_addr"`

	Rsrc1      uint32 `json:"rsrc1"`
	Rsrc2      uint32 `json:"rsrc2"`
	NumThreadX uint32 `json:"num_thread_x"`
	NumThreadY uint32 `json:"num_thread_y"`
	NumThreadZ uint32 `json:"num_thread_z"`

	UserSgpr bind.UserSgprTable `json:"user_sgpr"`
}

// PS input enable bits (SPI_PS_INPUT_ENA).
const (
	InputPerspSample   = 1 << 0
	InputPerspCenter   = 1 << 1
	InputPerspCentroid = 1 << 2
	InputLinearSample  = 1 << 4
	InputLinearCenter  = 1 << 5
	InputPosX          = 1 << 8
	InputPosY          = 1 << 9
	InputPosZ          = 1 << 10
	InputPosW          = 1 << 11
	InputFrontFace     = 1 << 12
)

// DB_SHADER_CONTROL bits.
const (
	ZExportEnable = 1 << 0
	KillEnable    = 1 << 6
)

// Interpolator is one SPI_PS_INPUT_CNTL value.
type Interpolator uint32

func (i Interpolator) Offset() uint32       { return uint32(i) & 0x3f }
func (i Interpolator) DefaultValue() uint32 { return (uint32(i) >> 8) & 3 }
func (i Interpolator) Flat() bool           { return (uint32(i)>>10)&1 != 0 }
