package services

import (
	"log/slog"
	"time"

	"hotel-assistant/models"
	"hotel-assistant/utils"
)

// Availability is the free-unit count of a room type over a date range.
type Availability struct {
	RoomType   string `json:"roomType"`
	TotalUnits int    `json:"totalUnits"`
	Occupied   int    `json:"occupied"`
	Available  int    `json:"available"`
	// Overbooked is set when confirmed stays outnumber the physical units;
	// Available is then reported as 0 and OverbookedBy carries the excess.
	Overbooked   bool `json:"overbooked"`
	OverbookedBy int  `json:"overbookedBy,omitempty"`
}

// AvailabilityCalculator derives free-room counts from a catalog and a ledger.
type AvailabilityCalculator struct {
	catalog *RoomCatalog
	ledger  *ReservationLedger
}

func NewAvailabilityCalculator(catalog *RoomCatalog, ledger *ReservationLedger) *AvailabilityCalculator {
	return &AvailabilityCalculator{catalog: catalog, ledger: ledger}
}

// AvailableUnits counts the units of roomType not held by a confirmed stay
// overlapping [start, end). Pending and cancelled reservations never hold a unit.
func (a *AvailabilityCalculator) AvailableUnits(roomType string, start, end time.Time) (Availability, error) {
	rt, err := a.catalog.Lookup(roomType)
	if err != nil {
		return Availability{}, err
	}
	start, end = utils.CivilDate(start), utils.CivilDate(end)
	if !start.Before(end) {
		return Availability{}, rangeError(start, end)
	}

	occupied := 0
	for _, r := range a.ledger.ForRoomType(rt.Name) {
		if r.Occupies(start, end) {
			occupied++
		}
	}

	result := Availability{
		RoomType:   rt.Name,
		TotalUnits: rt.TotalUnits,
		Occupied:   occupied,
		Available:  rt.TotalUnits - occupied,
	}
	if result.Available < 0 {
		result.Overbooked = true
		result.OverbookedBy = -result.Available
		result.Available = 0
		slog.Warn("room type overbooked",
			slog.String("room_type", rt.Name),
			slog.String("start", utils.FormatDate(start)),
			slog.String("end", utils.FormatDate(end)),
			slog.Int("units", rt.TotalUnits),
			slog.Int("confirmed", occupied),
		)
	}
	return result, nil
}

// dailyOccupied returns, for each day of [start, end), the number of
// confirmed stays of rt covering that day.
func dailyOccupied(ledger *ReservationLedger, rt models.RoomType, start, end time.Time) []int {
	days := utils.DaysBetween(start, end)
	if days <= 0 {
		return nil
	}
	// difference array over the range, one slot past the end
	delta := make([]int, days+1)
	for _, r := range ledger.ForRoomType(rt.Name) {
		if !r.Occupies(start, end) {
			continue
		}
		from := utils.DaysBetween(start, r.Arrival())
		if from < 0 {
			from = 0
		}
		to := utils.DaysBetween(start, r.Departure())
		if to > days {
			to = days
		}
		delta[from]++
		delta[to]--
	}
	counts := make([]int, days)
	running := 0
	for i := 0; i < days; i++ {
		running += delta[i]
		counts[i] = running
	}
	return counts
}
