package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"hotel-assistant/utils"
)

// Reservation is a single stay booked against a room type. The stay occupies
// the half-open interval [CheckIn, CheckOut).
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestName  string            `gorm:"column:guest_name;size:128;not null;index" json:"guestName" validate:"notblank"`
	RoomType   string            `gorm:"column:room_type;size:64;not null;index" json:"roomType" validate:"notblank"`
	CheckIn    datatypes.Date    `gorm:"column:check_in;not null;index" json:"checkIn"`
	CheckOut   datatypes.Date    `gorm:"column:check_out;not null" json:"checkOut"`
	Nights     int               `gorm:"column:nights;not null" json:"nights" validate:"gte=1"`
	GuestCount int               `gorm:"column:guest_count;not null" json:"guestCount" validate:"gte=1"`
	DailyRate  decimal.Decimal   `gorm:"column:daily_rate;type:decimal(12,2);not null" json:"dailyRate"`
	Total      decimal.Decimal   `gorm:"column:total_amount;type:decimal(12,2);not null" json:"totalAmount"`
	Status     ReservationStatus `gorm:"column:status;size:32;not null;index" json:"status" validate:"oneof=Confirmed Pending Cancelled"`
	BookedOn   datatypes.Date    `gorm:"column:booked_on;not null" json:"bookedOn"`

	CreatedAt time.Time `json:"-"`
}

// Arrival returns the check-in date at UTC midnight.
func (r Reservation) Arrival() time.Time { return utils.CivilDate(time.Time(r.CheckIn)) }

// Departure returns the check-out date at UTC midnight.
func (r Reservation) Departure() time.Time { return utils.CivilDate(time.Time(r.CheckOut)) }

// Booked returns the booking date at UTC midnight.
func (r Reservation) Booked() time.Time { return utils.CivilDate(time.Time(r.BookedOn)) }

// Occupies reports whether the reservation holds a unit: confirmed and its
// stay intersects [start, end).
func (r Reservation) Occupies(start, end time.Time) bool {
	return r.Status == ReservationStatusConfirmed && r.Overlaps(start, end)
}

// Overlaps reports whether [CheckIn, CheckOut) intersects [start, end),
// whatever the status. An empty or inverted stay overlaps nothing.
func (r Reservation) Overlaps(start, end time.Time) bool {
	arrival, departure := r.Arrival(), r.Departure()
	if !arrival.Before(departure) {
		return false
	}
	return arrival.Before(end) && departure.After(start)
}
