package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"uniqueIndex"`
	Type              string
	Benefits          []string `gorm:"serializer:json"`
	ApplicationTiming string
	EfficacyScore     int
	Link              string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
