// Package event implements the in-process publish/subscribe bus that keeps
// the Product and Category collections loosely synchronized. Each lifecycle
// event carries a typed payload; subscribers react asynchronously and their
// failures never reach the publisher.
package event

// Event names. Handlers are registered against these keys; the constants are
// the internal wire contract between the product and category services.
const (
	ProductCreatedName  = "PRODUCT_CREATED"
	ProductDeletedName  = "PRODUCT_DELETED"
	CategoryDeletedName = "CATEGORY_DELETED"
)

// Event is the closed union of bus payloads. Only the three lifecycle
// events below implement it.
type Event interface {
	Name() string
}

// ProductCreated is published after a product has been durably created
// (or re-categorized via update).
type ProductCreated struct {
	ProductID  string
	CategoryID string
}

func (ProductCreated) Name() string { return ProductCreatedName }

// ProductDeleted is published after a product has been durably deleted.
type ProductDeleted struct {
	ProductID string
}

func (ProductDeleted) Name() string { return ProductDeletedName }

// CategoryDeleted is published after a category has been durably deleted.
type CategoryDeleted struct {
	CategoryID string
}

func (CategoryDeleted) Name() string { return CategoryDeletedName }
