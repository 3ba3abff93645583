package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hotel-assistant/models"
	"hotel-assistant/utils"
)

// QueryKind names an intent the engine can answer.
type QueryKind string

const (
	QueryAvailability QueryKind = "availability"
	QueryOccupancy    QueryKind = "occupancy"
	QueryRevenue      QueryKind = "revenue"
	QueryPopularity   QueryKind = "popularity"
	QueryGuestLookup  QueryKind = "guest_lookup"
	QueryHighDemand   QueryKind = "high_demand"
)

var queryKindAliases = map[string]QueryKind{
	"availability": QueryAvailability,
	"occupancy":    QueryOccupancy,
	"revenue":      QueryRevenue,
	"popularity":   QueryPopularity,
	"guest_lookup": QueryGuestLookup,
	"guestlookup":  QueryGuestLookup,
	"high_demand":  QueryHighDemand,
	"highdemand":   QueryHighDemand,
}

// NormalizeQueryKind maps loosely formatted kinds ("Guest-Lookup",
// " OCCUPANCY ") onto the canonical constants. ok is false for anything else.
func NormalizeQueryKind(raw string) (QueryKind, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	kind, ok := queryKindAliases[key]
	return kind, ok
}

// DateRange is the half-open interval [Start, End) of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// QueryIntent is the structured request produced by the natural-language
// layer. Optional parameters are nil when absent.
type QueryIntent struct {
	Kind      string
	RoomType  *string
	Start     *time.Time
	End       *time.Time
	GuestName *string
	TopN      *int
	Status    *string
	Threshold *float64
}

// Range returns the intent's date range when both ends are present.
func (q QueryIntent) Range() (DateRange, bool) {
	if q.Start == nil || q.End == nil {
		return DateRange{}, false
	}
	return DateRange{Start: utils.CivilDate(*q.Start), End: utils.CivilDate(*q.End)}, true
}

func (q QueryIntent) roomType() string {
	if q.RoomType == nil {
		return ""
	}
	return strings.TrimSpace(*q.RoomType)
}

func (q QueryIntent) guestName() string {
	if q.GuestName == nil {
		return ""
	}
	return strings.TrimSpace(*q.GuestName)
}

// AnswerKind discriminates the Answer variants.
type AnswerKind string

const (
	AnswerAvailability  AnswerKind = "availability"
	AnswerRate          AnswerKind = "rate"
	AnswerMoney         AnswerKind = "money"
	AnswerRanking       AnswerKind = "ranking"
	AnswerReservation   AnswerKind = "reservation"
	AnswerReservations  AnswerKind = "reservations"
	AnswerDemand        AnswerKind = "high_demand"
	AnswerNoMatch       AnswerKind = "no_match"
	AnswerClarification AnswerKind = "clarification_needed"
	AnswerOutOfDomain   AnswerKind = "out_of_domain"
	AnswerError         AnswerKind = "error"
)

// Failure codes carried by error answers.
const (
	FailureInvalidRange     = "invalid_range"
	FailureUnknownRoomType  = "unknown_room_type"
	FailureNotFound         = "not_found"
	FailureStoreUnavailable = "store_unavailable"
	FailureInternal         = "internal"
)

// Failure describes an error answer.
type Failure struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ReservationView is a reservation rendered with plain calendar dates.
type ReservationView struct {
	ID          uint            `json:"id"`
	GuestName   string          `json:"guestName"`
	RoomType    string          `json:"roomType"`
	CheckIn     string          `json:"checkIn"`
	CheckOut    string          `json:"checkOut"`
	Nights      int             `json:"nights"`
	GuestCount  int             `json:"guestCount"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	BookedOn    string          `json:"bookedOn"`
}

// NewReservationView renders r.
func NewReservationView(r models.Reservation) ReservationView {
	return ReservationView{
		ID:          r.ID,
		GuestName:   r.GuestName,
		RoomType:    r.RoomType,
		CheckIn:     utils.FormatDate(r.Arrival()),
		CheckOut:    utils.FormatDate(r.Departure()),
		Nights:      r.Nights,
		GuestCount:  r.GuestCount,
		DailyRate:   r.DailyRate,
		TotalAmount: r.Total,
		Status:      string(r.Status),
		BookedOn:    utils.FormatDate(r.Booked()),
	}
}

// Answer is the discriminated result of QueryResolver.Resolve. Exactly the
// fields belonging to Kind are populated.
type Answer struct {
	Kind  AnswerKind `json:"kind"`
	Query QueryKind  `json:"query,omitempty"`

	RoomType string `json:"roomType,omitempty"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`

	Availability *Availability     `json:"availability,omitempty"`
	Rate         *float64          `json:"rate,omitempty"`
	Amount       *decimal.Decimal  `json:"amount,omitempty"`
	Status       string            `json:"status,omitempty"`
	Ranking      []RoomTypeCount   `json:"ranking"`
	Reservation  *ReservationView  `json:"reservation,omitempty"`
	Reservations []ReservationView `json:"reservations,omitempty"`
	Demand       []DemandDay       `json:"demand"`
	Threshold    *float64          `json:"threshold,omitempty"`

	MissingFields []string `json:"missingFields,omitempty"`
	Reason        string   `json:"reason,omitempty"`
	Failure       *Failure `json:"failure,omitempty"`

	cause error
}

// Err returns the error behind an AnswerError, or nil for every other kind.
func (a Answer) Err() error { return a.cause }

// Terminal reports whether the answer carries no figures: a clarification
// request, an out-of-domain notice, a no-match or an error.
func (a Answer) Terminal() bool {
	switch a.Kind {
	case AnswerClarification, AnswerOutOfDomain, AnswerNoMatch, AnswerError:
		return true
	}
	return false
}

func clarification(kind QueryKind, missing ...string) Answer {
	return Answer{Kind: AnswerClarification, Query: kind, MissingFields: missing}
}

func outOfDomain(kind QueryKind, reason string) Answer {
	return Answer{Kind: AnswerOutOfDomain, Query: kind, Reason: reason}
}
