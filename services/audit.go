package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"hotel-assistant/models"
	"hotel-assistant/utils"
)

// amountTolerance absorbs rounding between dailyRate × nights and the stored total.
var amountTolerance = decimal.NewFromFloat(0.01)

var reservationValidator = newReservationValidator()

func newReservationValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Violation is a reservation record breaking a data-model invariant.
type Violation struct {
	ReservationID uint   `json:"reservationId"`
	Field         string `json:"field"`
	Problem       string `json:"problem"`
}

// Audit checks every reservation against the catalog and the record
// invariants. It never modifies the ledger.
func (l *ReservationLedger) Audit(catalog *RoomCatalog) []Violation {
	var out []Violation
	for _, r := range l.reservations {
		out = append(out, auditReservation(catalog, r)...)
	}
	return out
}

func auditReservation(catalog *RoomCatalog, r models.Reservation) []Violation {
	var out []Violation
	add := func(field, format string, args ...any) {
		out = append(out, Violation{ReservationID: r.ID, Field: field, Problem: fmt.Sprintf(format, args...)})
	}

	if err := reservationValidator.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				add(lowerFirst(fe.Field()), "fails %s check (value %v)", fe.Tag(), fe.Value())
			}
		} else {
			add("record", "%v", err)
		}
	}

	arrival, departure := r.Arrival(), r.Departure()
	if !arrival.Before(departure) {
		add("checkOut", "check-out %s is not after check-in %s", utils.FormatDate(departure), utils.FormatDate(arrival))
	} else if nights := utils.DaysBetween(arrival, departure); nights != r.Nights {
		add("nights", "recorded %d nights, stay lasts %d", r.Nights, nights)
	}
	if r.Booked().After(arrival) {
		add("bookedOn", "booked on %s after check-in %s", utils.FormatDate(r.Booked()), utils.FormatDate(arrival))
	}

	if r.DailyRate.IsNegative() {
		add("dailyRate", "negative rate %s", r.DailyRate.StringFixed(2))
	}
	if r.Total.IsNegative() {
		add("totalAmount", "negative total %s", r.Total.StringFixed(2))
	}
	expected := r.DailyRate.Mul(decimal.NewFromInt(int64(r.Nights)))
	if expected.Sub(r.Total).Abs().GreaterThan(amountTolerance) {
		add("totalAmount", "total %s differs from %s × %d nights", r.Total.StringFixed(2), r.DailyRate.StringFixed(2), r.Nights)
	}

	if r.RoomType != "" {
		rt, err := catalog.Lookup(r.RoomType)
		if err != nil {
			add("roomType", "room type %q is not in the catalog", r.RoomType)
		} else if r.GuestCount > rt.Capacity {
			add("guestCount", "%d guests exceed %s capacity %d", r.GuestCount, rt.Name, rt.Capacity)
		}
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
