// Package sequencerepo issues gap-free, strictly increasing numbers from a
// counter row per sequence name.
package sequencerepo

import (
	"context"
	"strings"

	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// SequenceDTO is one named counter. Value is the last number handed out.
type SequenceDTO struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormNumberSequence implements ports.NumberSequence. The upsert takes a row
// lock on the counter, so concurrent transactions receive distinct values
// and a rolled back transaction returns its value to the sequence.
type GormNumberSequence struct {
	db *gorm.DB
}

func NewGormNumberSequence(db *gorm.DB) *GormNumberSequence {
	return &GormNumberSequence{db: db}
}

func (s *GormNumberSequence) Next(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, errs.NewValueIsRequiredError("sequence name")
	}

	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`, name).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
