package config

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-assistant/models"
	"hotel-assistant/utils"
)

// SampleRoomTypes is the Chalet Monte Bianco inventory.
func SampleRoomTypes() []models.RoomType {
	return []models.RoomType{
		{ID: 1, Name: "Standard", TotalUnits: 6, Capacity: 2},
		{ID: 2, Name: "Deluxe", TotalUnits: 4, Capacity: 2},
		{ID: 3, Name: "Executive", TotalUnits: 4, Capacity: 2},
		{ID: 4, Name: "Junior Suite", TotalUnits: 2, Capacity: 4},
		{ID: 5, Name: "Suite", TotalUnits: 1, Capacity: 2},
	}
}

type sampleStay struct {
	guest, roomType, checkIn, checkOut string
	nights, guests                     int
	rate, total                        string
	status                             models.ReservationStatus
	bookedOn                           string
}

var sampleStays = []sampleStay{
	{"Mario Rossi", "Standard", "2025-11-20", "2025-11-23", 3, 2, "210", "630", models.ReservationStatusConfirmed, "2025-10-29"},
	{"Lucia Bianchi", "Deluxe", "2025-11-25", "2025-11-28", 3, 2, "400", "1200", models.ReservationStatusConfirmed, "2025-10-27"},
	{"Giovanni Verdi", "Suite", "2025-12-01", "2025-12-05", 4, 2, "900", "3600", models.ReservationStatusPending, "2025-10-30"},
	{"Elena Neri", "Executive", "2025-11-22", "2025-11-24", 2, 2, "250", "500", models.ReservationStatusConfirmed, "2025-10-25"},
	{"Roberto Gialli", "Junior Suite", "2025-11-29", "2025-12-03", 4, 4, "600", "2400", models.ReservationStatusConfirmed, "2025-10-24"},
	{"Chiara Blu", "Standard", "2025-12-12", "2025-12-13", 1, 2, "90", "90", models.ReservationStatusCancelled, "2025-10-22"},
	{"Luca Viola", "Deluxe", "2025-12-14", "2025-12-17", 3, 2, "380", "1140", models.ReservationStatusConfirmed, "2025-10-20"},
	{"Alessia Rossa", "Executive", "2025-12-18", "2025-12-21", 3, 2, "300", "900", models.ReservationStatusConfirmed, "2025-10-18"},
	{"Giulia Azzurra", "Junior Suite", "2025-12-10", "2025-12-15", 5, 4, "700", "3500", models.ReservationStatusPending, "2025-11-01"},
	{"Andrea Neri", "Suite", "2025-12-20", "2025-12-22", 2, 2, "950", "1900", models.ReservationStatusConfirmed, "2025-10-30"},
	{"Marco Galli", "Standard", "2025-12-15", "2025-12-17", 2, 2, "200", "400", models.ReservationStatusConfirmed, "2025-11-02"},
	{"Paola Bruni", "Deluxe", "2025-12-23", "2025-12-26", 3, 2, "420", "1260", models.ReservationStatusConfirmed, "2025-11-05"},
	{"Stefano Fabbri", "Executive", "2025-12-25", "2025-12-28", 3, 2, "270", "810", models.ReservationStatusConfirmed, "2025-11-02"},
	{"Pietro Riva", "Standard", "2025-12-20", "2025-12-24", 4, 2, "300", "1200", models.ReservationStatusConfirmed, "2025-11-10"},
	{"Giada Rossi", "Deluxe", "2025-12-22", "2025-12-26", 4, 2, "480", "1920", models.ReservationStatusConfirmed, "2025-11-12"},
	{"Valentina Grassi", "Executive", "2025-12-28", "2026-01-02", 5, 2, "550", "2750", models.ReservationStatusConfirmed, "2025-11-15"},
}

// SampleReservations returns the sample reservations with ids 1..16.
func SampleReservations() []models.Reservation {
	out := make([]models.Reservation, 0, len(sampleStays))
	for i, s := range sampleStays {
		out = append(out, models.Reservation{
			ID:         uint(i + 1),
			GuestName:  s.guest,
			RoomType:   s.roomType,
			CheckIn:    datatypes.Date(utils.MustParseDate(s.checkIn)),
			CheckOut:   datatypes.Date(utils.MustParseDate(s.checkOut)),
			Nights:     s.nights,
			GuestCount: s.guests,
			DailyRate:  decimal.RequireFromString(s.rate),
			Total:      decimal.RequireFromString(s.total),
			Status:     s.status,
			BookedOn:   datatypes.Date(utils.MustParseDate(s.bookedOn)),
		})
	}
	return out
}

// SeedDatabase inserts the sample data into empty tables.
func SeedDatabase(db *gorm.DB) error {
	var rtCount int64
	if err := db.Model(&models.RoomType{}).Count(&rtCount).Error; err != nil {
		return fmt.Errorf("count room types: %w", err)
	}
	if rtCount == 0 {
		types := SampleRoomTypes()
		if err := db.Create(&types).Error; err != nil {
			return fmt.Errorf("seed room types: %w", err)
		}
		slog.Info("room types seeded", slog.Int("count", len(types)))
	}

	var resCount int64
	if err := db.Model(&models.Reservation{}).Count(&resCount).Error; err != nil {
		return fmt.Errorf("count reservations: %w", err)
	}
	if resCount == 0 {
		reservations := SampleReservations()
		if err := db.Create(&reservations).Error; err != nil {
			return fmt.Errorf("seed reservations: %w", err)
		}
		slog.Info("reservations seeded", slog.Int("count", len(reservations)))
	}
	return nil
}
