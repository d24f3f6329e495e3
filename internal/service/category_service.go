package service

import (
	"context"
	"fmt"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/dto"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/event"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/model"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/repository"

	"github.com/google/uuid"
)

// CategoryService defines business operations for categories. It also owns
// the reconciliation handlers that keep the denormalized product_ids array in
// sync with product lifecycle events.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*model.Category, error)
	FindAll(ctx context.Context, p dto.Pagination) (*dto.PaginatedResult[model.Category], error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*model.Category, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
	bus  *event.Bus
}

// NewCategoryService builds the service and subscribes its reconciliation
// handlers for the lifetime of the process.
func NewCategoryService(repo repository.CategoryRepository, bus *event.Bus) CategoryService {
	s := &categoryService{repo: repo, bus: bus}
	bus.Subscribe(event.ProductCreatedName, s.onProductCreated)
	bus.Subscribe(event.ProductDeletedName, s.onProductDeleted)
	return s
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*model.Category, error) {
	c := &model.Category{
		Name:   capitalize(req.Name),
		UserID: userID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, classifyStoreErr(err)
	}
	return c, nil
}

func (s *categoryService) FindAll(ctx context.Context, p dto.Pagination) (*dto.PaginatedResult[model.Category], error) {
	list, total, err := s.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return paginate(list, total, p), nil
}

func (s *categoryService) FindOne(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*model.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if req.Name != nil {
		c.Name = capitalize(*req.Name)
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, classifyStoreErr(err)
	}
	return c, nil
}

// Remove hard-deletes the category and publishes CATEGORY_DELETED so that
// referencing products get uncategorized. The event goes out only after the
// delete has been acknowledged by the store.
func (s *categoryService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return classifyStoreErr(err)
	}
	s.bus.Publish(ctx, event.CategoryDeleted{CategoryID: id.String()})
	return nil
}

// ── Reconciliation handlers ───────────────────────────────────────────────────
// Errors returned here are logged by the bus and dropped; they never reach
// the request that triggered the event.

func (s *categoryService) onProductCreated(ctx context.Context, e event.Event) error {
	payload, ok := e.(event.ProductCreated)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e, e.Name())
	}
	categoryID, err := uuid.Parse(payload.CategoryID)
	if err != nil {
		return fmt.Errorf("product created: bad category id %q: %w", payload.CategoryID, err)
	}
	productID, err := uuid.Parse(payload.ProductID)
	if err != nil {
		return fmt.Errorf("product created: bad product id %q: %w", payload.ProductID, err)
	}
	if err := s.repo.AddProductRef(ctx, categoryID, productID); err != nil {
		return fmt.Errorf("add product ref %s -> %s: %w", productID, categoryID, err)
	}
	return nil
}

func (s *categoryService) onProductDeleted(ctx context.Context, e event.Event) error {
	payload, ok := e.(event.ProductDeleted)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e, e.Name())
	}
	productID, err := uuid.Parse(payload.ProductID)
	if err != nil {
		return fmt.Errorf("product deleted: bad product id %q: %w", payload.ProductID, err)
	}
	if err := s.repo.RemoveProductRef(ctx, productID); err != nil {
		return fmt.Errorf("remove product ref %s: %w", productID, err)
	}
	return nil
}
