package repository

import (
	"context"
	"time"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const createNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES (@kind, @topic, @payload, @run_at, 'queued')`

// NotificationRepository enqueues outbox rows written in the same transaction as the booking.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	args := pgx.NamedArgs{
		"kind":    kind,
		"topic":   topic,
		"payload": payload,
		"run_at":  runAt,
	}

	if _, err := tx.Exec(ctx, createNotificationJobSQL, args); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
