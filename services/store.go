package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-assistant/models"
)

// Snapshot is a consistent view of the catalog and the ledger taken by one read.
type Snapshot struct {
	Catalog *RoomCatalog
	Ledger  *ReservationLedger
}

// NewSnapshot builds a snapshot from raw rows.
func NewSnapshot(types []models.RoomType, reservations []models.Reservation) (*Snapshot, error) {
	catalog, err := NewRoomCatalog(types)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Catalog: catalog, Ledger: NewReservationLedger(reservations)}, nil
}

// Store supplies snapshots. Implementations perform one bounded read per call
// and report any failure as ErrStoreUnavailable.
type Store interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// GormStore reads both tables inside a single read-only transaction.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		types        []models.RoomType
		reservations []models.Reservation
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").Find(&types).Error; err != nil {
			return fmt.Errorf("load room types: %w", err)
		}
		if err := tx.Order("id ASC").Find(&reservations).Error; err != nil {
			return fmt.Errorf("load reservations: %w", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) {
			slog.Error("mysql read failed", slog.Int("mysql_code", int(myErr.Number)), slog.String("message", myErr.Message))
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	snapshot, err := NewSnapshot(types, reservations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	slog.Debug("reservation snapshot loaded", slog.Int("room_types", len(types)), slog.Int("reservations", len(reservations)))
	return snapshot, nil
}

// MemoryStore serves a fixed data set held in memory.
type MemoryStore struct {
	types        []models.RoomType
	reservations []models.Reservation
}

func NewMemoryStore(types []models.RoomType, reservations []models.Reservation) *MemoryStore {
	return &MemoryStore{types: types, reservations: reservations}
}

func (s *MemoryStore) Snapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	snapshot, err := NewSnapshot(s.types, s.reservations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return snapshot, nil
}
