package auditrepo

import (
	"context"

	"github.com/google/uuid"
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

func (r *Repository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	query := `
        INSERT INTO audit_logs (id, actor_id, actor_role, action, entity_type, entity_id, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.ActorID, entry.ActorRole, entry.Action, entry.EntityType, entry.EntityID, metadata, entry.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't append audit entry", zap.String("action", entry.Action), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]domain.AuditEntry, error) {
	query := `
        SELECT id, actor_id, actor_role, action, entity_type, entity_id, metadata, created_at
        FROM audit_logs
        WHERE entity_type = $1 AND entity_id = $2
        ORDER BY created_at DESC, id
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, entityType, entityID, limit)
	if err != nil {
		zap.L().Error("can't list audit entries", zap.String("entityID", entityID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorRole, &e.Action, &e.EntityType, &e.EntityID, &e.Metadata, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan audit row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
