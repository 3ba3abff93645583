package services

import (
	"sort"
	"strings"
	"time"

	"hotel-assistant/models"
)

// ReservationLedger is a read-only view over reservation records ordered by id.
type ReservationLedger struct {
	reservations []models.Reservation
}

// NewReservationLedger copies the given reservations, normalising status
// labels and ordering by id.
func NewReservationLedger(reservations []models.Reservation) *ReservationLedger {
	items := make([]models.Reservation, len(reservations))
	copy(items, reservations)
	for i := range items {
		if status := models.NormalizeReservationStatus(string(items[i].Status)); status != models.ReservationStatusUnknown {
			items[i].Status = status
		}
		items[i].RoomType = strings.TrimSpace(items[i].RoomType)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return &ReservationLedger{reservations: items}
}

// All returns every reservation.
func (l *ReservationLedger) All() []models.Reservation {
	out := make([]models.Reservation, len(l.reservations))
	copy(out, l.reservations)
	return out
}

// ForRoomType returns the reservations of a room type, any status.
func (l *ReservationLedger) ForRoomType(name string) []models.Reservation {
	key := catalogKey(name)
	var out []models.Reservation
	for _, r := range l.reservations {
		if catalogKey(r.RoomType) == key {
			out = append(out, r)
		}
	}
	return out
}

// InDateRange returns the reservations whose stay intersects [start, end),
// any status.
func (l *ReservationLedger) InDateRange(start, end time.Time) []models.Reservation {
	var out []models.Reservation
	for _, r := range l.reservations {
		if r.Overlaps(start, end) {
			out = append(out, r)
		}
	}
	return out
}

// ArrivingIn returns the reservations whose check-in falls in [start, end).
func (l *ReservationLedger) ArrivingIn(start, end time.Time) []models.Reservation {
	var out []models.Reservation
	for _, r := range l.reservations {
		arrival := r.Arrival()
		if !arrival.Before(start) && arrival.Before(end) {
			out = append(out, r)
		}
	}
	return out
}

// ForGuest returns the reservations whose guest name equals name, ignoring
// case and surrounding or repeated whitespace, ordered by check-in.
func (l *ReservationLedger) ForGuest(name string) []models.Reservation {
	key := guestKey(name)
	if key == "" {
		return nil
	}
	var out []models.Reservation
	for _, r := range l.reservations {
		if guestKey(r.GuestName) == key {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Arrival().Before(out[j].Arrival()) })
	return out
}

// ConfirmedSpan returns the smallest [start, end) covering every confirmed
// stay. ok is false when there are none.
func (l *ReservationLedger) ConfirmedSpan() (start, end time.Time, ok bool) {
	for _, r := range l.reservations {
		if r.Status != models.ReservationStatusConfirmed {
			continue
		}
		if !ok || r.Arrival().Before(start) {
			start = r.Arrival()
		}
		if !ok || r.Departure().After(end) {
			end = r.Departure()
		}
		ok = true
	}
	return start, end, ok
}

func guestKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
