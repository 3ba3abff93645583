package services

import (
	"fmt"
	"strings"

	"hotel-assistant/models"
)

// RoomCatalog holds the room type definitions in insertion order. It is
// immutable once built.
type RoomCatalog struct {
	types  []models.RoomType
	byName map[string]int
}

// NewRoomCatalog validates and indexes the given room types. Names must be
// unique and non-empty; unit counts and capacities must be positive.
func NewRoomCatalog(types []models.RoomType) (*RoomCatalog, error) {
	c := &RoomCatalog{
		types:  make([]models.RoomType, 0, len(types)),
		byName: make(map[string]int, len(types)),
	}
	for _, rt := range types {
		rt.Name = strings.TrimSpace(rt.Name)
		if rt.Name == "" {
			return nil, fmt.Errorf("%w: room type with empty name", ErrInvalidCatalog)
		}
		if rt.TotalUnits < 1 {
			return nil, fmt.Errorf("%w: %q has %d units", ErrInvalidCatalog, rt.Name, rt.TotalUnits)
		}
		if rt.Capacity < 1 {
			return nil, fmt.Errorf("%w: %q has capacity %d", ErrInvalidCatalog, rt.Name, rt.Capacity)
		}
		key := catalogKey(rt.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: duplicate room type %q", ErrInvalidCatalog, rt.Name)
		}
		c.byName[key] = len(c.types)
		c.types = append(c.types, rt)
	}
	return c, nil
}

// Lookup returns the room type with the given name, matched case-insensitively.
func (c *RoomCatalog) Lookup(name string) (models.RoomType, error) {
	idx, ok := c.byName[catalogKey(name)]
	if !ok {
		return models.RoomType{}, fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(name))
	}
	return c.types[idx], nil
}

// Has reports whether name is a known room type.
func (c *RoomCatalog) Has(name string) bool {
	_, ok := c.byName[catalogKey(name)]
	return ok
}

// ListAll returns the room types in insertion order.
func (c *RoomCatalog) ListAll() []models.RoomType {
	out := make([]models.RoomType, len(c.types))
	copy(out, c.types)
	return out
}

// TotalUnits sums the units of every room type.
func (c *RoomCatalog) TotalUnits() int {
	total := 0
	for _, rt := range c.types {
		total += rt.TotalUnits
	}
	return total
}

func catalogKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
