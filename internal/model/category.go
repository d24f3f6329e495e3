package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Category classifies products. ProductIDs is a denormalized back-reference:
// it holds the ids of products whose CategoryID points here, has set
// semantics (no duplicates), and is mutated only by the event reconciliation
// handlers — never directly by client requests. Between a product mutation
// and its handler completing, the array can be transiently stale.
type Category struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string         `gorm:"uniqueIndex;not null" json:"name"`
	UserID     string         `gorm:"not null" json:"userId"`
	ProductIDs pq.StringArray `gorm:"type:text[];column:product_ids" json:"productId"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }
