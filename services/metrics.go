package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"hotel-assistant/models"
	"hotel-assistant/utils"
)

// RoomTypeCount is one row of a popularity ranking.
type RoomTypeCount struct {
	RoomType string `json:"roomType"`
	Count    int    `json:"count"`
}

// DemandDay is a day on which a room type's occupancy exceeded a threshold.
type DemandDay struct {
	Date     string  `json:"date"`
	RoomType string  `json:"roomType"`
	Rate     float64 `json:"rate"`
}

// MetricsOptions tunes policy choices of the metrics engine.
type MetricsOptions struct {
	// PopularityConfirmedOnly restricts popularity counts to confirmed
	// reservations; otherwise every status counts as a request.
	PopularityConfirmedOnly bool
}

// MetricsEngine derives occupancy, revenue and popularity figures.
type MetricsEngine struct {
	catalog *RoomCatalog
	ledger  *ReservationLedger
	opts    MetricsOptions
}

func NewMetricsEngine(catalog *RoomCatalog, ledger *ReservationLedger, opts MetricsOptions) *MetricsEngine {
	return &MetricsEngine{catalog: catalog, ledger: ledger, opts: opts}
}

// OccupancyRate is the time-weighted average, over each day of [start, end),
// of confirmed-occupied units divided by total units. Overbooked days count as
// fully occupied so the rate stays within [0, 1].
func (m *MetricsEngine) OccupancyRate(roomType string, start, end time.Time) (float64, error) {
	start, end = utils.CivilDate(start), utils.CivilDate(end)
	if !start.Before(end) {
		return 0, rangeError(start, end)
	}
	rt, err := m.catalog.Lookup(roomType)
	if err != nil {
		return 0, err
	}
	counts := dailyOccupied(m.ledger, rt, start, end)
	sum := 0.0
	for _, occupied := range counts {
		sum += dayRate(occupied, rt.TotalUnits)
	}
	return sum / float64(len(counts)), nil
}

// HotelOccupancyRate is OccupancyRate across every room type, each day
// weighted by unit count.
func (m *MetricsEngine) HotelOccupancyRate(start, end time.Time) (float64, error) {
	start, end = utils.CivilDate(start), utils.CivilDate(end)
	if !start.Before(end) {
		return 0, rangeError(start, end)
	}
	totalUnits := m.catalog.TotalUnits()
	days := utils.DaysBetween(start, end)
	if totalUnits == 0 {
		return 0, nil
	}
	occupiedPerDay := make([]int, days)
	for _, rt := range m.catalog.ListAll() {
		for i, occupied := range dailyOccupied(m.ledger, rt, start, end) {
			if occupied > rt.TotalUnits {
				occupied = rt.TotalUnits
			}
			occupiedPerDay[i] += occupied
		}
	}
	sum := 0.0
	for _, occupied := range occupiedPerDay {
		sum += dayRate(occupied, totalUnits)
	}
	return sum / float64(days), nil
}

// EstimatedRevenue sums the total amount of reservations with the given
// status whose check-in falls in [start, end). A stay's whole amount is
// attributed to its arrival date.
func (m *MetricsEngine) EstimatedRevenue(start, end time.Time, status models.ReservationStatus) (decimal.Decimal, error) {
	start, end = utils.CivilDate(start), utils.CivilDate(end)
	if !start.Before(end) {
		return decimal.Zero, rangeError(start, end)
	}
	if status == models.ReservationStatusUnknown {
		status = models.ReservationStatusConfirmed
	}
	total := decimal.Zero
	for _, r := range m.ledger.ArrivingIn(start, end) {
		if r.Status == status {
			total = total.Add(r.Total)
		}
	}
	return total, nil
}

// MostRequestedRoomTypes ranks room types by reservations arriving in
// [start, end), descending by count with ties broken by name. topN <= 0
// returns the full ranking.
func (m *MetricsEngine) MostRequestedRoomTypes(start, end time.Time, topN int) ([]RoomTypeCount, error) {
	start, end = utils.CivilDate(start), utils.CivilDate(end)
	if !start.Before(end) {
		return nil, rangeError(start, end)
	}
	counts := make(map[string]int)
	for _, r := range m.ledger.ArrivingIn(start, end) {
		if m.opts.PopularityConfirmedOnly && r.Status != models.ReservationStatusConfirmed {
			continue
		}
		name := r.RoomType
		if rt, err := m.catalog.Lookup(name); err == nil {
			name = rt.Name
		}
		counts[name]++
	}

	ranking := make([]RoomTypeCount, 0, len(counts))
	for name, count := range counts {
		ranking = append(ranking, RoomTypeCount{RoomType: name, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].RoomType < ranking[j].RoomType
	})
	if topN > 0 && len(ranking) > topN {
		ranking = ranking[:topN]
	}
	return ranking, nil
}

// HighDemandPeriods lists the days, across the span of all confirmed stays,
// on which a room type's single-day occupancy exceeded threshold.
func (m *MetricsEngine) HighDemandPeriods(threshold float64) []DemandDay {
	start, end, ok := m.ledger.ConfirmedSpan()
	if !ok {
		return nil
	}
	days, _ := m.HighDemandPeriodsBetween(start, end, threshold)
	return days
}

// HighDemandPeriodsBetween is HighDemandPeriods restricted to [start, end).
// Results are ordered by date, then room type name.
func (m *MetricsEngine) HighDemandPeriodsBetween(start, end time.Time, threshold float64) ([]DemandDay, error) {
	start, end = utils.CivilDate(start), utils.CivilDate(end)
	if !start.Before(end) {
		return nil, rangeError(start, end)
	}
	var out []DemandDay
	for _, rt := range m.catalog.ListAll() {
		for i, occupied := range dailyOccupied(m.ledger, rt, start, end) {
			rate := dayRate(occupied, rt.TotalUnits)
			if rate > threshold {
				out = append(out, DemandDay{
					Date:     utils.FormatDate(utils.AddDays(start, i)),
					RoomType: rt.Name,
					Rate:     rate,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].RoomType < out[j].RoomType
	})
	return out, nil
}

func dayRate(occupied, units int) float64 {
	if units <= 0 || occupied <= 0 {
		return 0
	}
	if occupied >= units {
		return 1
	}
	return float64(occupied) / float64(units)
}

func rangeError(start, end time.Time) error {
	return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidRange, utils.FormatDate(start), utils.FormatDate(end))
}
