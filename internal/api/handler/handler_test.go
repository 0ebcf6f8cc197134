package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/opswindow"
	"hubdispatch/backend/internal/repository"
	"hubdispatch/backend/internal/service"
	"hubdispatch/backend/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock AuthService ──

type mockAuthService struct {
	tok    string
	user   *model.User
	access map[token.App]bool
	err    error
}

func (m *mockAuthService) Login(_ context.Context, _, _ string) (string, *model.User, map[token.App]bool, error) {
	return m.tok, m.user, m.access, m.err
}

// ── mock DispatchService ──

type mockDispatchService struct {
	rows   []model.Flight
	rowErr error

	updateErr error
	ackErr    error
}

func (m *mockDispatchService) Rows(_ context.Context, _ time.Time, _ opswindow.QueryParams) ([]model.Flight, error) {
	return m.rows, m.rowErr
}
func (m *mockDispatchService) Update(_ context.Context, _ string, _ service.DispatchUpdate) error {
	return m.updateErr
}
func (m *mockDispatchService) Ack(_ context.Context, _ string) error {
	return m.ackErr
}

// ── mock LeadService ──

type mockLeadService struct {
	rows      []model.Flight
	rowErr    error
	gotFilter service.LeadRowsFilter

	updateErr error
	ackErr    error
}

func (m *mockLeadService) Rows(_ context.Context, _ time.Time, filter service.LeadRowsFilter) ([]model.Flight, error) {
	m.gotFilter = filter
	return m.rows, m.rowErr
}
func (m *mockLeadService) Update(_ context.Context, _, _ string, _ service.LeadUpdate) error {
	return m.updateErr
}
func (m *mockLeadService) Ack(_ context.Context, _, _ string) error {
	return m.ackErr
}

// ── mock ArchiveService ──

type mockArchiveService struct {
	dates    []repository.DateCount
	datesErr error
	rows     []model.Flight
	rowsErr  error
}

func (m *mockArchiveService) Dates(_ context.Context) ([]repository.DateCount, error) {
	return m.dates, m.datesErr
}
func (m *mockArchiveService) Rows(_ context.Context, _ string) ([]model.Flight, error) {
	return m.rows, m.rowsErr
}
