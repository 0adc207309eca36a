package eventrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Insert writes the event once. The primary key on the external id is the lock: a second
// insert for the same id, concurrent or not, fails with domain.ErrDuplicateEvent.
func (r *Repository) Insert(ctx context.Context, event *domain.ProcessedEvent) error {
	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	query := `
        INSERT INTO processed_webhook_events (id, type, source, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, event.ID, event.Type, event.Source, metadata, event.CreatedAt)
	if pg.IsUniqueViolation(err) {
		return domain.ErrDuplicateEvent
	}
	if err != nil {
		zap.L().Error("can't insert processed event", zap.String("eventID", event.ID), zap.Error(err))
		return err
	}
	return nil
}
