package services

import (
	"errors"
	"testing"

	"hotel-assistant/config"
	"hotel-assistant/models"
)

func TestAvailableUnits(t *testing.T) {
	snapshot := sampleSnapshot(t)
	calc := NewAvailabilityCalculator(snapshot.Catalog, snapshot.Ledger)

	cases := []struct {
		name     string
		roomType string
		start    string
		end      string
		expected int
	}{
		{name: "confirmed stay occupies", roomType: "Standard", start: "2025-11-21", end: "2025-11-22", expected: 5},
		{name: "checkout day is free", roomType: "Standard", start: "2025-11-23", end: "2025-11-24", expected: 6},
		{name: "cancelled stay ignored", roomType: "Standard", start: "2025-12-12", end: "2025-12-13", expected: 6},
		{name: "pending stay ignored", roomType: "Suite", start: "2025-12-01", end: "2025-12-05", expected: 1},
		{name: "single suite taken", roomType: "suite", start: "2025-12-20", end: "2025-12-22", expected: 0},
		{name: "two overlapping stays", roomType: "Deluxe", start: "2025-12-22", end: "2025-12-27", expected: 2},
		{name: "no reservations", roomType: "Executive", start: "2026-03-01", end: "2026-03-10", expected: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.AvailableUnits(tc.roomType, day(tc.start), day(tc.end))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Available != tc.expected {
				t.Fatalf("expected %d available, got %d", tc.expected, got.Available)
			}
			if got.Available > got.TotalUnits {
				t.Fatalf("available %d exceeds total %d", got.Available, got.TotalUnits)
			}
			if got.Overbooked {
				t.Fatal("sample data is never overbooked")
			}
		})
	}
}

func TestAvailableUnitsErrors(t *testing.T) {
	snapshot := sampleSnapshot(t)
	calc := NewAvailabilityCalculator(snapshot.Catalog, snapshot.Ledger)

	if _, err := calc.AvailableUnits("Imperial", day("2025-11-21"), day("2025-11-22")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := calc.AvailableUnits("Standard", day("2025-11-21"), day("2025-11-21")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestAvailableUnitsFlagsOverbooking(t *testing.T) {
	snapshot, err := NewSnapshot(
		[]models.RoomType{{Name: "Suite", TotalUnits: 1, Capacity: 2}},
		[]models.Reservation{
			stay(1, "A", "Suite", "2025-12-01", "2025-12-04", models.ReservationStatusConfirmed),
			stay(2, "B", "Suite", "2025-12-02", "2025-12-05", models.ReservationStatusConfirmed),
		},
	)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	got, err := NewAvailabilityCalculator(snapshot.Catalog, snapshot.Ledger).AvailableUnits("Suite", day("2025-12-02"), day("2025-12-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Available != 0 || !got.Overbooked || got.OverbookedBy != 1 {
		t.Fatalf("expected 0 available with overbooking by 1, got %+v", got)
	}
}

func TestCancellationFreesExactlyOneUnit(t *testing.T) {
	types := config.SampleRoomTypes()
	before, _ := NewSnapshot(types, config.SampleReservations())
	after, _ := NewSnapshot(types, withStatus(config.SampleReservations(), 1, models.ReservationStatusCancelled))
	pending, _ := NewSnapshot(types, withStatus(config.SampleReservations(), 1, models.ReservationStatusPending))

	start, end := day("2025-11-20"), day("2025-11-23")
	b, _ := NewAvailabilityCalculator(before.Catalog, before.Ledger).AvailableUnits("Standard", start, end)
	a, _ := NewAvailabilityCalculator(after.Catalog, after.Ledger).AvailableUnits("Standard", start, end)
	p, _ := NewAvailabilityCalculator(pending.Catalog, pending.Ledger).AvailableUnits("Standard", start, end)

	if a.Available != b.Available+1 {
		t.Fatalf("cancelling should free one unit: before %d after %d", b.Available, a.Available)
	}
	if p.Available != a.Available {
		t.Fatalf("pending must not hold a unit: pending %d cancelled %d", p.Available, a.Available)
	}
}
