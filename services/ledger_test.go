package services

import (
	"testing"

	"hotel-assistant/models"
)

func TestReservationLedgerInDateRangeIsHalfOpen(t *testing.T) {
	ledger := NewReservationLedger([]models.Reservation{
		stay(1, "A", "Standard", "2025-11-20", "2025-11-23", models.ReservationStatusConfirmed),
		stay(2, "B", "Standard", "2025-11-23", "2025-11-25", models.ReservationStatusCancelled),
	})

	cases := []struct {
		name     string
		start    string
		end      string
		expected []uint
	}{
		{name: "checkout day excluded", start: "2025-11-23", end: "2025-11-24", expected: []uint{2}},
		{name: "range ends on checkin", start: "2025-11-18", end: "2025-11-20", expected: nil},
		{name: "spans both", start: "2025-11-22", end: "2025-11-24", expected: []uint{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.InDateRange(day(tc.start), day(tc.end))
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d reservations, got %d", len(tc.expected), len(got))
			}
			for i, id := range tc.expected {
				if got[i].ID != id {
					t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestReservationLedgerNormalizesLegacyStatuses(t *testing.T) {
	r := stay(1, "Mario Rossi", "Standard", "2025-11-20", "2025-11-23", "Confermata")
	ledger := NewReservationLedger([]models.Reservation{r})
	if got := ledger.All()[0].Status; got != models.ReservationStatusConfirmed {
		t.Fatalf("expected Confirmed, got %q", got)
	}
}

func TestReservationLedgerForGuest(t *testing.T) {
	ledger := sampleSnapshot(t).Ledger

	if got := ledger.ForGuest("  mario   ROSSI "); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected reservation 1, got %+v", got)
	}
	if got := ledger.ForGuest("Rossi"); len(got) != 0 {
		t.Fatalf("partial names must not match, got %d", len(got))
	}
	if got := ledger.ForRoomType("suite"); len(got) != 2 {
		t.Fatalf("expected 2 suite reservations, got %d", len(got))
	}
}

func TestReservationLedgerConfirmedSpan(t *testing.T) {
	start, end, ok := sampleSnapshot(t).Ledger.ConfirmedSpan()
	if !ok {
		t.Fatal("expected a span")
	}
	if !start.Equal(day("2025-11-20")) || !end.Equal(day("2026-01-02")) {
		t.Fatalf("unexpected span %s - %s", start, end)
	}

	if _, _, ok := NewReservationLedger(nil).ConfirmedSpan(); ok {
		t.Fatal("empty ledger has no span")
	}
}
