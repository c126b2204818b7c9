package http

import "taskextreme-ai/internal/generation"

// --- Request DTOs ---

type generateReq struct {
	Desc    string         `json:"desc"`
	Sheet   string         `json:"sheet"`
	Context generateReqCtx `json:"context"`
	PDF     []byte         `json:"-"` // multipart only
}

type generateReqCtx struct {
	Deadline string `json:"deadline"`
}

func (r generateReq) toInput() generation.GenerateInput {
	return generation.GenerateInput{
		RawText:         r.Desc,
		PDF:             r.PDF,
		SheetReference:  r.Sheet,
		ContextDeadline: r.Context.Deadline,
	}
}

// --- Response DTOs ---

type generateResp struct {
	Tasks string `json:"tasks"`
}

func (h *handler) newGenerateResp(out generation.GenerateOutput) generateResp {
	return generateResp{Tasks: out.Tasks}
}
