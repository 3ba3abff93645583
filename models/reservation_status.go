package models

import "strings"

// ReservationStatus is the lifecycle state of a reservation. Only confirmed
// reservations occupy a physical unit.
type ReservationStatus string

const (
	ReservationStatusUnknown   ReservationStatus = ""
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// legacy labels come from the original Italian data set
var reservationStatusAliases = map[string]ReservationStatus{
	"confirmed":  ReservationStatusConfirmed,
	"confermata": ReservationStatusConfirmed,
	"pending":    ReservationStatusPending,
	"in attesa":  ReservationStatusPending,
	"cancelled":  ReservationStatusCancelled,
	"canceled":   ReservationStatusCancelled,
	"cancellata": ReservationStatusCancelled,
}

// NormalizeReservationStatus returns the canonical status for raw, or
// ReservationStatusUnknown when the label is not recognised.
func NormalizeReservationStatus(raw string) ReservationStatus {
	key := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if status, ok := reservationStatusAliases[key]; ok {
		return status
	}
	return ReservationStatusUnknown
}

// Valid reports whether s is one of the three canonical statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusConfirmed, ReservationStatusPending, ReservationStatusCancelled:
		return true
	}
	return false
}
