package history

import (
	"context"
	"fmt"

	"meddelivery/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append добавляет запись в журнал статусов. Журнал append-only,
// записи никогда не обновляются и не удаляются.
func (r *Repository) Append(ctx context.Context, entry entities.StatusEntry) error {
	query := `
		INSERT INTO status_history (entity_kind, entity_id, status, updated_by, notes)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(ctx, query,
		string(entry.Kind),
		entry.EntityID,
		entry.Status,
		entry.UpdatedBy,
		entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("unexpected history repository append error: %w", err)
	}

	return nil
}

func (r *Repository) ListByEntity(ctx context.Context, kind entities.EntityKind, entityID int64) ([]entities.StatusEntry, error) {
	query := `
		SELECT id, entity_kind, entity_id, status, updated_by, notes, created_at
		FROM status_history
		WHERE entity_kind = $1 AND entity_id = $2
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, string(kind), entityID)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}
	defer rows.Close()

	var entries []entities.StatusEntry
	for rows.Next() {
		var entry entities.StatusEntry
		var entryKind string
		err := rows.Scan(
			&entry.ID,
			&entryKind,
			&entry.EntityID,
			&entry.Status,
			&entry.UpdatedBy,
			&entry.Notes,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository scan error: %w", err)
		}
		entry.Kind = entities.EntityKind(entryKind)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository rows error: %w", err)
	}

	return entries, nil
}
