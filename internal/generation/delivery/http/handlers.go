package http

import (
	"github.com/gin-gonic/gin"

	"taskextreme-ai/pkg/response"
)

// Generate godoc
// @Summary     Generate task drafts
// @Description Turns a project description, PDF or spreadsheet reference into a JSON array of task drafts.
// @Description "tasks" holds the extracted array, or the model's raw reply when no array could be extracted.
// @Tags        Generation
// @Accept      json,mpfd,x-www-form-urlencoded
// @Produce     json
// @Param       desc             formData string false "Project description"
// @Param       pdf              formData file   false "Project document"
// @Param       sheet            formData string false "Spreadsheet URL or name"
// @Param       context.deadline formData string false "Project deadline (YYYY-MM-DD or phrase like 'next friday')"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.ErrorResp "No valid input provided."
// @Failure     413 {object} response.ErrorResp "Request body too large"
// @Failure     429 {object} response.ErrorResp "Too many requests"
// @Failure     500 {object} response.ErrorResp "Upstream or internal error"
// @Router      /api/ai-generate-tasks [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processGenerateReq: %v", err)
		status, msg := h.mapError(err)
		response.Error(c, status, msg)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		status, msg := h.mapError(err)
		if status >= 500 {
			h.l.Errorf(ctx, "uc.Generate: %v", err)
		} else {
			h.l.Warnf(ctx, "uc.Generate: %v", err)
		}
		response.Error(c, status, msg)
		return
	}

	h.l.Infof(ctx, "Generate: source=%s extracted=%t drafts=%d", output.Source, output.Extracted, output.DraftCount)
	response.OK(c, h.newGenerateResp(output))
}
