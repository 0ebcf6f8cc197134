package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"hubdispatch/backend/internal/apperr"
	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/opswindow"
	"hubdispatch/backend/internal/patchoverlay"
	"hubdispatch/backend/internal/repository"
)

// Zones is the static list returned by /lead/init — the five physical
// zones a Lead board can be scoped to (spec §4.9). Dispatch is a separate
// global board and is not one of these.
var Zones = []string{
	string(model.ZonePierA),
	string(model.ZoneTB),
	string(model.ZoneGates),
	string(model.ZoneT1),
	string(model.ZoneUnassigned),
}

// LeadRowsFilter is the query the Lead rows read accepts (spec §6).
type LeadRowsFilter struct {
	Zone string // zone name, or "ALL"
	Type string // "ARR", "DEP", or "ALL"
	Q    string // flight-number substring search
	opswindow.QueryParams
}

// LeadUpdate is the partial-update body for PATCH /lead/update.
type LeadUpdate struct {
	Assignment *string
	Pax        *int
	Watchlist  *string
}

// LeadService backs the Lead board's reads and writes.
type LeadService interface {
	Rows(ctx context.Context, now time.Time, filter LeadRowsFilter) ([]model.Flight, error)
	Update(ctx context.Context, key, editedBy string, upd LeadUpdate) error
	Ack(ctx context.Context, key, zone string) error
}

type leadService struct {
	repo    *repository.Repository
	overlay *patchoverlay.Overlay
	loc     *time.Location
}

// NewLeadService builds a LeadService.
func NewLeadService(repo *repository.Repository, overlay *patchoverlay.Overlay, loc *time.Location) LeadService {
	return &leadService{repo: repo, overlay: overlay, loc: loc}
}

func (s *leadService) Rows(ctx context.Context, now time.Time, filter LeadRowsFilter) ([]model.Flight, error) {
	window, err := opswindow.QueryWindow(now, s.loc, filter.QueryParams)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	flights, err := s.repo.Flight.ListByTimeRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, apperr.Internal(err.Error())
	}

	q := strings.ToLower(strings.ReplaceAll(filter.Q, " ", ""))

	var rows []model.Flight
	for _, f := range flights {
		matched, board := matchZoneAndBoard(f, filter.Zone)
		if !matched {
			continue
		}
		if filter.Type != "" && filter.Type != "ALL" && string(f.Type) != filter.Type {
			continue
		}
		if q != "" {
			number := strings.ToLower(strings.ReplaceAll(f.FlightNo, " ", ""))
			if !strings.Contains(number, q) {
				continue
			}
		}
		if f.AckForBoard(board) {
			continue
		}

		if patch, ok := s.overlay.Get(f.Key); ok {
			f = applyPatch(f, patch)
		}
		rows = append(rows, f)
	}
	return rows, nil
}

// matchZoneAndBoard reports whether a row belongs under the requested
// zone filter and, if so, which board's ACK flag gates its visibility —
// the row's current zone's board, or its carry-over zone's board when the
// match came from zone_prev (spec §4.5, §4.9).
func matchZoneAndBoard(f model.Flight, zoneFilter string) (bool, model.Board) {
	if zoneFilter == "" || zoneFilter == "ALL" {
		return true, model.BoardForZone(f.ZoneCurrent)
	}
	if string(f.ZoneCurrent) == zoneFilter {
		return true, model.BoardForZone(f.ZoneCurrent)
	}
	if f.ZonePrev == zoneFilter {
		return true, model.BoardForZone(model.Zone(f.ZonePrev))
	}
	return false, ""
}

func (s *leadService) Update(ctx context.Context, key, editedBy string, upd LeadUpdate) error {
	fields := map[string]any{}
	patch := map[string]any{}

	if upd.Assignment != nil {
		now := time.Now().UTC()
		fields["assignment"] = *upd.Assignment
		fields["assign_edited_by"] = editedBy
		fields["assign_edited_at"] = now
		patch["assignment"] = *upd.Assignment
		patch["assignEditedBy"] = editedBy
		patch["assignEditedAt"] = now
	}
	if upd.Pax != nil {
		fields["pax_assisted"] = *upd.Pax
		patch["paxAssisted"] = *upd.Pax
	}
	if upd.Watchlist != nil {
		fields["watchlist"] = *upd.Watchlist
		patch["watchlist"] = *upd.Watchlist
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.Flight.UpdateFields(ctx, key, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("flight not found")
		}
		return apperr.Internal(err.Error())
	}
	s.overlay.Put(key, patch)
	return nil
}

func (s *leadService) Ack(ctx context.Context, key, zone string) error {
	existing, err := s.repo.Flight.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("flight not found")
		}
		return apperr.Internal(err.Error())
	}

	board := model.BoardForZone(model.Zone(zone))
	fields := map[string]any{ackColumn(board): true}
	patch := map[string]any{ackPatchKey(board): true}

	clearCarryOver := existing.ZonePrev == zone && string(existing.ZoneCurrent) != zone
	if clearCarryOver {
		fields["zone_prev"] = ""
		patch["zonePrev"] = ""
	}

	if err := s.repo.Flight.UpdateFields(ctx, key, fields); err != nil {
		return apperr.Internal(err.Error())
	}
	s.overlay.Put(key, patch)
	return nil
}

func ackColumn(b model.Board) string {
	switch b {
	case model.BoardPierA:
		return "piera_ack"
	case model.BoardTB:
		return "tb_ack"
	case model.BoardT1:
		return "t1_ack"
	case model.BoardGates:
		return "gates_ack"
	case model.BoardDispatch:
		return "dispatch_ack"
	default:
		return "unassigned_ack"
	}
}

func ackPatchKey(b model.Board) string {
	switch b {
	case model.BoardPierA:
		return "pieraAck"
	case model.BoardTB:
		return "tbAck"
	case model.BoardT1:
		return "t1Ack"
	case model.BoardGates:
		return "gatesAck"
	case model.BoardDispatch:
		return "dispatchAck"
	default:
		return "unassignedAck"
	}
}
