package services

import "errors"

var (
	// ErrNotFound indicates a room type name absent from the catalog.
	ErrNotFound = errors.New("room type not found")
	// ErrInvalidRange indicates a date range whose start is not before its end.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrUnknownRoomType indicates a query naming a room type the hotel does not have.
	ErrUnknownRoomType = errors.New("unknown room type")
	// ErrStoreUnavailable indicates the reservation data could not be read. It
	// is the only failure worth retrying.
	ErrStoreUnavailable = errors.New("reservation store unavailable")
	// ErrInvalidCatalog indicates room type rows breaking the catalog invariants.
	ErrInvalidCatalog = errors.New("invalid room catalog")
)
