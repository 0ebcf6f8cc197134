package handler

import (
	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/service"
	"hubdispatch/backend/pkg/response"
)

// AdminHandler backs the manual sync trigger used for testing (spec §4.9).
type AdminHandler struct {
	svc service.AdminService
}

// NewAdminHandler builds an AdminHandler.
func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Sync runs one FIDS fetch-and-reconcile cycle synchronously and reports
// how many rows it inserted or updated.
// POST /admin/sync
func (h *AdminHandler) Sync(c *gin.Context) {
	result, err := h.svc.Sync(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"inserted": result.Inserted, "updated": result.Updated})
}
