package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"hotel-assistant/config"
	"hotel-assistant/models"
	"hotel-assistant/utils"
)

func day(raw string) time.Time { return utils.MustParseDate(raw) }

func sampleSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	snapshot, err := NewSnapshot(config.SampleRoomTypes(), config.SampleReservations())
	if err != nil {
		t.Fatalf("sample snapshot: %v", err)
	}
	return snapshot
}

func stay(id uint, guest, roomType, checkIn, checkOut string, status models.ReservationStatus) models.Reservation {
	in, out := day(checkIn), day(checkOut)
	nights := utils.DaysBetween(in, out)
	rate := decimal.NewFromInt(100)
	return models.Reservation{
		ID:         id,
		GuestName:  guest,
		RoomType:   roomType,
		CheckIn:    datatypes.Date(in),
		CheckOut:   datatypes.Date(out),
		Nights:     nights,
		GuestCount: 1,
		DailyRate:  rate,
		Total:      rate.Mul(decimal.NewFromInt(int64(nights))),
		Status:     status,
		BookedOn:   datatypes.Date(in.AddDate(0, 0, -7)),
	}
}

func withStatus(reservations []models.Reservation, id uint, status models.ReservationStatus) []models.Reservation {
	out := make([]models.Reservation, len(reservations))
	copy(out, reservations)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
