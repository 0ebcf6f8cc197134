package handler

import (
	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/service"
	"hubdispatch/backend/pkg/response"
)

// ArchiveHandler backs the Mgmt-only archive reads (spec §4.9, §6).
type ArchiveHandler struct {
	svc service.ArchiveService
}

// NewArchiveHandler builds an ArchiveHandler.
func NewArchiveHandler(svc service.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{svc: svc}
}

// Dates lists every ops_date the archive holds, newest first.
// GET /archive/dates
func (h *ArchiveHandler) Dates(c *gin.Context) {
	dates, err := h.svc.Dates(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"dates": dates})
}

// Rows returns the archived flight rows for one ops_date.
// GET /archive/rows?opsDate=YYYY-MM-DD
func (h *ArchiveHandler) Rows(c *gin.Context) {
	opsDate := c.Query("opsDate")
	if opsDate == "" {
		response.FailWith(c, 400, "opsDate is required.")
		return
	}

	rows, err := h.svc.Rows(c.Request.Context(), opsDate)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"rows": rows})
}
