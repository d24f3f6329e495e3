package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Gender values accepted for a product.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderKid    = "kid"
	GenderUnisex = "unisex"
)

// Product is a catalog item. CategoryID is nullable: when the referenced
// category is deleted, the reconciliation handler clears the reference and
// the product becomes uncategorized (it is never cascade-deleted).
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"uniqueIndex;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);default:10" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Description *string         `json:"description,omitempty"`
	Sizes       pq.StringArray  `gorm:"type:text[];not null" json:"sizes"`
	Gender      string          `gorm:"not null" json:"gender"`
	Tags        pq.StringArray  `gorm:"type:text[]" json:"tags,omitempty"`
	UserID      string          `gorm:"not null" json:"userId"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }
