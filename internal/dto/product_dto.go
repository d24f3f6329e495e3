package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string           `json:"name"        validate:"required,min=1,max=120"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,gt=0"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
	Sizes       []string         `json:"sizes"       validate:"required,min=1,dive,required"`
	Gender      string           `json:"gender"      validate:"required,oneof=men women kid unisex"`
	Tags        []string         `json:"tags"        validate:"omitempty,dive,required"`
	CategoryID  string           `json:"categoryId"  validate:"required"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=1,max=120"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,gt=0"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
	Sizes       []string         `json:"sizes"       validate:"omitempty,min=1,dive,required"`
	Gender      *string          `json:"gender"      validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string         `json:"tags"        validate:"omitempty,dive,required"`
	CategoryID  *string          `json:"categoryId"`
}
