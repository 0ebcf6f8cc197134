package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/opswindow"
	"hubdispatch/backend/internal/service"
	"hubdispatch/backend/pkg/response"
)

// LeadHandler backs the Lead board's routes (spec §4.9, §6).
type LeadHandler struct {
	svc service.LeadService
}

// NewLeadHandler builds a LeadHandler.
func NewLeadHandler(svc service.LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// Init returns the static zone list a Lead board can be scoped to.
// GET /lead/init
func (h *LeadHandler) Init(c *gin.Context) {
	response.OK(c, gin.H{"zones": service.Zones})
}

// Rows lists the flights currently in scope for a Lead board.
// GET /lead/rows
func (h *LeadHandler) Rows(c *gin.Context) {
	filter := service.LeadRowsFilter{
		Zone: c.Query("zone"),
		Type: c.Query("type"),
		Q:    c.Query("q"),
		QueryParams: opswindow.QueryParams{
			FromTime: c.Query("fromTime"),
			ToTime:   c.Query("toTime"),
			OpsDay:   c.Query("opsDay"),
		},
	}

	now := time.Now()
	rows, err := h.svc.Rows(c.Request.Context(), now, filter)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"rows": rows, "generatedAt": now.UTC()})
}

// leadUpdateRequest is the PATCH /lead/update body.
type leadUpdateRequest struct {
	Key        string  `json:"key" binding:"required"`
	Assignment *string `json:"assignment"`
	Pax        *int    `json:"pax"`
	Watchlist  *string `json:"watchlist"`
}

// Update applies a partial edit to a flight's Lead-owned fields.
// PATCH /lead/update
func (h *LeadHandler) Update(c *gin.Context) {
	var req leadUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWith(c, 400, "invalid request body.")
		return
	}

	claims, ok := mustGetClaims(c)
	if !ok {
		return
	}

	upd := service.LeadUpdate{Assignment: req.Assignment, Pax: req.Pax, Watchlist: req.Watchlist}
	if err := h.svc.Update(c.Request.Context(), req.Key, claims.Username, upd); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, nil)
}

// leadAckRequest is the POST /lead/ack body.
type leadAckRequest struct {
	Key  string `json:"key" binding:"required"`
	Zone string `json:"zone" binding:"required"`
}

// Ack marks a flight acknowledged on the named zone's board.
// POST /lead/ack
func (h *LeadHandler) Ack(c *gin.Context) {
	var req leadAckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWith(c, 400, "invalid request body.")
		return
	}

	if err := h.svc.Ack(c.Request.Context(), req.Key, req.Zone); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, nil)
}
