package repository

import (
	"context"
	"database/sql"
	"time"

	"smart_fridge/internal/models"
)

// EventRepo is the append-only activity log.
type EventRepo interface {
	Append(ctx context.Context, e models.FridgeEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.FridgeEvent, error)
}

type Repository struct {
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
	}
}
