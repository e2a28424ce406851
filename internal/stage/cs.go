package stage

import (
	"fmt"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/shaderbin"
)

type CsInputInfo struct {
	ThreadsNum      [3]uint32 `json:"threads_num"`
	GroupID         [3]bool   `json:"group_id"`
	ThreadGroupSize bool      `json:"thread_group_size"`
	// ThreadIDs is the number of thread-id components in v0..v2.
	ThreadIDs int `json:"thread_ids"`
	// LdsSize is COMPUTE_PGM_RSRC2.LDS_SIZE, in 128-dword granules.
	LdsSize   uint32 `json:"lds_size"`
	UserSgprs int    `json:"user_sgprs"`

	Resources bind.Resources `json:"resources"`
	Header    shaderbin.Info `json:"header"`
}

// InputInfoCS builds the compute stage input description from
// COMPUTE_PGM_RSRC2 and the thread-group dimensions.
func InputInfoCS(regs *CsRegisters, mem guest.Memory) (*CsInputInfo, error) {
	if regs.NumThreadX == 0 || regs.NumThreadY == 0 || regs.NumThreadZ == 0 {
		return nil, fmt.Errorf("%w: thread group %dx%dx%d", ErrBadRegister,
			regs.NumThreadX, regs.NumThreadY, regs.NumThreadZ)
	}
	bin, err := readStage(mem, regs.DataAddr, &regs.UserSgpr)
	if err != nil {
		return nil, err
	}
	r := regs.Rsrc2
	info := &CsInputInfo{
		ThreadsNum:      [3]uint32{regs.NumThreadX, regs.NumThreadY, regs.NumThreadZ},
		GroupID:         [3]bool{r&(1<<7) != 0, r&(1<<8) != 0, r&(1<<9) != 0},
		ThreadGroupSize: r&(1<<10) != 0,
		ThreadIDs:       int((r>>11)&3) + 1,
		LdsSize:         (r >> 15) & 0x1ff,
		UserSgprs:       int((r >> 1) & 0x1f),
		Header:          bin.Info,
	}
	res, err := bindStage(bin, &regs.UserSgpr, mem, 0, 0)
	if err != nil {
		return nil, err
	}
	info.Resources = *res
	return info, nil
}
