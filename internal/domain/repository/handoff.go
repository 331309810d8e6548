package repository

import (
	"context"
	"time"

	"github.com/salwa-health/rentalboard/internal/domain/model"
)

// HandoffRepository stores one-shot records carried between views. Take
// deletes on read so a record is consumed at most once.
type HandoffRepository interface {
	Put(ctx context.Context, h model.Handoff) error
	Take(ctx context.Context, token string) (*model.Handoff, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
