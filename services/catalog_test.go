package services

import (
	"errors"
	"testing"

	"hotel-assistant/config"
	"hotel-assistant/models"
)

func TestNewRoomCatalogRejectsBrokenInvariants(t *testing.T) {
	cases := []struct {
		name  string
		types []models.RoomType
	}{
		{name: "duplicate name", types: []models.RoomType{{Name: "Suite", TotalUnits: 1, Capacity: 2}, {Name: " suite ", TotalUnits: 2, Capacity: 2}}},
		{name: "zero units", types: []models.RoomType{{Name: "Suite", TotalUnits: 0, Capacity: 2}}},
		{name: "zero capacity", types: []models.RoomType{{Name: "Suite", TotalUnits: 1, Capacity: 0}}},
		{name: "blank name", types: []models.RoomType{{Name: "  ", TotalUnits: 1, Capacity: 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRoomCatalog(tc.types); !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestRoomCatalogLookup(t *testing.T) {
	catalog, err := NewRoomCatalog(config.SampleRoomTypes())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	rt, err := catalog.Lookup("junior suite")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rt.Name != "Junior Suite" || rt.TotalUnits != 2 || rt.Capacity != 4 {
		t.Fatalf("unexpected room type %+v", rt)
	}

	if _, err := catalog.Lookup("Imperial"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoomCatalogListAllKeepsInsertionOrder(t *testing.T) {
	catalog, err := NewRoomCatalog(config.SampleRoomTypes())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	expected := []string{"Standard", "Deluxe", "Executive", "Junior Suite", "Suite"}
	all := catalog.ListAll()
	if len(all) != len(expected) {
		t.Fatalf("expected %d room types, got %d", len(expected), len(all))
	}
	for i, name := range expected {
		if all[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, all[i].Name)
		}
	}
	if total := catalog.TotalUnits(); total != 17 {
		t.Fatalf("expected 17 units, got %d", total)
	}
}
