package service

import (
	"context"
	"testing"
	"time"

	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/patchoverlay"
)

func TestLeadRows_CarryOverVisibleUntilOldBoardAcks(t *testing.T) {
	loc := torontoLoc(t)
	now := time.Date(2025, 2, 25, 9, 0, 0, 0, loc)
	est := now.UTC()

	flights := newFakeFlightRepo(&model.Flight{
		Key: "k1", EstUTC: est, FlightNo: "WS 816",
		ZoneCurrent: model.ZonePierA, ZonePrev: string(model.ZoneTB),
	})
	svc := NewLeadService(newTestRepo(flights), patchoverlay.New(), loc)

	rows, err := svc.Rows(context.Background(), now, LeadRowsFilter{Zone: string(model.ZoneTB), Type: "ALL"})
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 (carry-over row visible on TB board)", len(rows))
	}
}

func TestLeadRows_ExcludesAlreadyAckedBoard(t *testing.T) {
	loc := torontoLoc(t)
	now := time.Date(2025, 2, 25, 9, 0, 0, 0, loc)
	est := now.UTC()

	flights := newFakeFlightRepo(&model.Flight{
		Key: "k1", EstUTC: est, FlightNo: "WS 816",
		ZoneCurrent: model.ZonePierA, PieraAck: true,
	})
	svc := NewLeadService(newTestRepo(flights), patchoverlay.New(), loc)

	rows, err := svc.Rows(context.Background(), now, LeadRowsFilter{Zone: string(model.ZonePierA), Type: "ALL"})
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("len(rows) = %d, want 0 (board already acked)", len(rows))
	}
}

func TestLeadRows_FlightNumberSearch(t *testing.T) {
	loc := torontoLoc(t)
	now := time.Date(2025, 2, 25, 9, 0, 0, 0, loc)
	est := now.UTC()

	flights := newFakeFlightRepo(
		&model.Flight{Key: "k1", EstUTC: est, FlightNo: "WS 816", ZoneCurrent: model.ZonePierA},
		&model.Flight{Key: "k2", EstUTC: est, FlightNo: "DL 45", ZoneCurrent: model.ZonePierA},
	)
	svc := NewLeadService(newTestRepo(flights), patchoverlay.New(), loc)

	rows, err := svc.Rows(context.Background(), now, LeadRowsFilter{Zone: "ALL", Type: "ALL", Q: "ws8"})
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 || rows[0].FlightNo != "WS 816" {
		t.Fatalf("rows = %+v, want just WS 816", rows)
	}
}

func TestLeadAck_ClearsCarryOverWhenOwingBoardAcks(t *testing.T) {
	loc := torontoLoc(t)
	flights := newFakeFlightRepo(&model.Flight{
		Key: "k1", ZoneCurrent: model.ZonePierA, ZonePrev: string(model.ZoneTB),
	})
	overlay := patchoverlay.New()
	svc := NewLeadService(newTestRepo(flights), overlay, loc)

	if err := svc.Ack(context.Background(), "k1", string(model.ZoneTB)); err != nil {
		t.Fatalf("Ack: %v", err)
	}

	stored := flights.rows["k1"]
	if !stored.TbAck {
		t.Error("expected TbAck=true")
	}
	if stored.ZonePrev != "" {
		t.Errorf("ZonePrev = %q, want cleared", stored.ZonePrev)
	}
}

func TestLeadAck_DoesNotClearCarryOverForDifferentZone(t *testing.T) {
	loc := torontoLoc(t)
	flights := newFakeFlightRepo(&model.Flight{
		Key: "k1", ZoneCurrent: model.ZonePierA, ZonePrev: string(model.ZoneTB),
	})
	svc := NewLeadService(newTestRepo(flights), patchoverlay.New(), loc)

	if err := svc.Ack(context.Background(), "k1", string(model.ZonePierA)); err != nil {
		t.Fatalf("Ack: %v", err)
	}

	stored := flights.rows["k1"]
	if !stored.PieraAck {
		t.Error("expected PieraAck=true")
	}
	if stored.ZonePrev != string(model.ZoneTB) {
		t.Errorf("ZonePrev = %q, want TB to remain until TB acks", stored.ZonePrev)
	}
}
