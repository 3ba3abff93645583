package services

import (
	"fmt"
	"math"

	"hotel-assistant/models"
)

// QueryValidator checks an intent before any calculation runs.
type QueryValidator struct{}

func NewQueryValidator() *QueryValidator {
	return &QueryValidator{}
}

// Precheck validates everything that needs no data: the kind, the fields the
// kind requires, the date range ordering and parameter domains. It returns
// the canonical kind, a terminal answer when the request cannot proceed, or
// ErrInvalidRange.
func (v *QueryValidator) Precheck(intent QueryIntent) (QueryKind, *Answer, error) {
	if intent.Kind == "" {
		answer := clarification("", "kind")
		return "", &answer, nil
	}
	kind, ok := NormalizeQueryKind(intent.Kind)
	if !ok {
		answer := outOfDomain("", fmt.Sprintf("%q is not a question about rooms or reservations", intent.Kind))
		return "", &answer, nil
	}

	if missing := missingFields(kind, intent); len(missing) > 0 {
		answer := clarification(kind, missing...)
		return kind, &answer, nil
	}

	if r, ok := intent.Range(); ok && !r.Start.Before(r.End) {
		return kind, nil, rangeError(r.Start, r.End)
	}

	if kind == QueryRevenue && intent.Status != nil {
		if models.NormalizeReservationStatus(*intent.Status) == models.ReservationStatusUnknown {
			answer := outOfDomain(kind, fmt.Sprintf("reservation status %q is not tracked", *intent.Status))
			return kind, &answer, nil
		}
	}
	if kind == QueryHighDemand && intent.Threshold != nil {
		if t := *intent.Threshold; math.IsNaN(t) || t < 0 || t > 1 {
			answer := outOfDomain(kind, fmt.Sprintf("occupancy threshold %v is outside 0..1", t))
			return kind, &answer, nil
		}
	}
	return kind, nil, nil
}

// CheckRoomType fails with ErrUnknownRoomType when the intent names a room
// type absent from catalog.
func (v *QueryValidator) CheckRoomType(catalog *RoomCatalog, intent QueryIntent) error {
	name := intent.roomType()
	if name == "" {
		return nil
	}
	if !catalog.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownRoomType, name)
	}
	return nil
}

func missingFields(kind QueryKind, intent QueryIntent) []string {
	var missing []string
	needsRange := false
	switch kind {
	case QueryAvailability:
		if intent.roomType() == "" {
			missing = append(missing, "roomType")
		}
		needsRange = true
	case QueryOccupancy, QueryRevenue, QueryPopularity:
		needsRange = true
	case QueryGuestLookup:
		if intent.guestName() == "" {
			missing = append(missing, "guestName")
		}
	case QueryHighDemand:
		// the range is optional, but half a range is ambiguous
		needsRange = intent.Start != nil || intent.End != nil
	}
	if needsRange {
		if intent.Start == nil {
			missing = append(missing, "start")
		}
		if intent.End == nil {
			missing = append(missing, "end")
		}
	}
	return missing
}
