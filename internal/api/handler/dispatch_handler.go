package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/opswindow"
	"hubdispatch/backend/internal/service"
	"hubdispatch/backend/pkg/response"
)

// DispatchHandler backs the Dispatch board's routes (spec §4.9, §6).
type DispatchHandler struct {
	svc service.DispatchService
}

// NewDispatchHandler builds a DispatchHandler.
func NewDispatchHandler(svc service.DispatchService) *DispatchHandler {
	return &DispatchHandler{svc: svc}
}

// Rows lists the flights currently in scope for the Dispatch board.
// GET /dispatch/rows
func (h *DispatchHandler) Rows(c *gin.Context) {
	params := opswindow.QueryParams{
		FromTime: c.Query("fromTime"),
		ToTime:   c.Query("toTime"),
		OpsDay:   c.Query("opsDay"),
	}

	now := time.Now()
	rows, err := h.svc.Rows(c.Request.Context(), now, params)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"rows": rows, "generatedAt": now.UTC()})
}

// dispatchUpdateRequest is the PATCH /dispatch/update body.
type dispatchUpdateRequest struct {
	Key     string  `json:"key" binding:"required"`
	Wchr    *int    `json:"wchr"`
	Wchc    *int    `json:"wchc"`
	Comment *string `json:"comment"`
}

// Update applies a partial edit to a flight's Dispatch-owned fields.
// PATCH /dispatch/update
func (h *DispatchHandler) Update(c *gin.Context) {
	var req dispatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWith(c, 400, "invalid request body.")
		return
	}

	upd := service.DispatchUpdate{Wchr: req.Wchr, Wchc: req.Wchc, Comment: req.Comment}
	if err := h.svc.Update(c.Request.Context(), req.Key, upd); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, nil)
}

// ackRequest is the POST /dispatch/ack body.
type ackRequest struct {
	Key string `json:"key" binding:"required"`
}

// Ack marks a flight acknowledged on the Dispatch board.
// POST /dispatch/ack
func (h *DispatchHandler) Ack(c *gin.Context) {
	var req ackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWith(c, 400, "invalid request body.")
		return
	}

	if err := h.svc.Ack(c.Request.Context(), req.Key); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, nil)
}
