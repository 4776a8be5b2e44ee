package queries

import (
	"context"

	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPerformersQueryHandler reads performers straight from the database.
type GetAllPerformersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllPerformersQueryHandler(db *gorm.DB) GetAllPerformersQueryHandler {
	return GetAllPerformersQueryHandler{db: db}
}

// Handle returns performers sorted by name.
func (h GetAllPerformersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPerformersQuery,
) ([]PerformerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	performers := make([]PerformerResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			role,
			avatar
		FROM performers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PerformerResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &p.Name, &p.Role, &p.Avatar); err != nil {
			return nil, err
		}

		performerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		p.ID = performerID
		performers = append(performers, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performers, nil
}
