package services

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func TestQueryValidatorPrecheck(t *testing.T) {
	start, end := day("2025-11-21"), day("2025-11-22")

	cases := []struct {
		name        string
		intent      QueryIntent
		wantKind    AnswerKind
		wantMissing []string
	}{
		{name: "missing kind", intent: QueryIntent{}, wantKind: AnswerClarification, wantMissing: []string{"kind"}},
		{name: "unsupported kind", intent: QueryIntent{Kind: "weather"}, wantKind: AnswerOutOfDomain},
		{name: "availability needs everything", intent: QueryIntent{Kind: "availability"}, wantKind: AnswerClarification, wantMissing: []string{"roomType", "start", "end"}},
		{name: "occupancy half range", intent: QueryIntent{Kind: "occupancy", Start: &start}, wantKind: AnswerClarification, wantMissing: []string{"end"}},
		{name: "revenue needs range", intent: QueryIntent{Kind: "revenue"}, wantKind: AnswerClarification, wantMissing: []string{"start", "end"}},
		{name: "guest lookup needs name", intent: QueryIntent{Kind: "Guest-Lookup", GuestName: ptr("  ")}, wantKind: AnswerClarification, wantMissing: []string{"guestName"}},
		{name: "high demand half range", intent: QueryIntent{Kind: "high_demand", End: &end}, wantKind: AnswerClarification, wantMissing: []string{"start"}},
		{name: "revenue unknown status", intent: QueryIntent{Kind: "revenue", Start: &start, End: &end, Status: ptr("refunded")}, wantKind: AnswerOutOfDomain},
		{name: "threshold out of bounds", intent: QueryIntent{Kind: "high_demand", Threshold: ptr(1.5)}, wantKind: AnswerOutOfDomain},
		{name: "threshold not a number", intent: QueryIntent{Kind: "high_demand", Threshold: ptr(math.NaN())}, wantKind: AnswerOutOfDomain},
	}

	v := NewQueryValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, answer, err := v.Precheck(tc.intent)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if answer == nil {
				t.Fatal("expected a terminal answer")
			}
			if answer.Kind != tc.wantKind {
				t.Fatalf("expected %s, got %s", tc.wantKind, answer.Kind)
			}
			if tc.wantMissing != nil && !reflect.DeepEqual(answer.MissingFields, tc.wantMissing) {
				t.Fatalf("expected missing %v, got %v", tc.wantMissing, answer.MissingFields)
			}
		})
	}
}

func TestQueryValidatorPrecheckPasses(t *testing.T) {
	start, end := day("2025-11-21"), day("2025-11-22")
	intents := []QueryIntent{
		{Kind: "availability", RoomType: ptr("Standard"), Start: &start, End: &end},
		{Kind: "OCCUPANCY", Start: &start, End: &end},
		{Kind: "revenue", Start: &start, End: &end, Status: ptr("In attesa")},
		{Kind: "popularity", Start: &start, End: &end, TopN: ptr(3)},
		{Kind: "guest lookup", GuestName: ptr("Mario Rossi")},
		{Kind: "high_demand"},
	}
	v := NewQueryValidator()
	for _, intent := range intents {
		kind, answer, err := v.Precheck(intent)
		if err != nil || answer != nil {
			t.Fatalf("%q: expected pass, got answer %+v err %v", intent.Kind, answer, err)
		}
		if kind == "" {
			t.Fatalf("%q: kind not normalised", intent.Kind)
		}
	}
}

func TestQueryValidatorRejectsMalformedRange(t *testing.T) {
	same := day("2025-11-21")
	before := same.Add(-24 * time.Hour)
	v := NewQueryValidator()

	for _, end := range []time.Time{same, before} {
		_, _, err := v.Precheck(QueryIntent{Kind: "occupancy", Start: &same, End: &end})
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange for end %s, got %v", end, err)
		}
	}
}

func TestQueryValidatorCheckRoomType(t *testing.T) {
	catalog := sampleSnapshot(t).Catalog
	v := NewQueryValidator()

	if err := v.CheckRoomType(catalog, QueryIntent{RoomType: ptr("Imperial")}); !errors.Is(err, ErrUnknownRoomType) {
		t.Fatalf("expected ErrUnknownRoomType, got %v", err)
	}
	if err := v.CheckRoomType(catalog, QueryIntent{RoomType: ptr("deluxe")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.CheckRoomType(catalog, QueryIntent{}); err != nil {
		t.Fatalf("room type is optional: %v", err)
	}
}
