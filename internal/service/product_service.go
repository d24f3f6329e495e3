package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/dto"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/event"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/model"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductService defines business operations for products. It publishes
// PRODUCT_CREATED / PRODUCT_DELETED lifecycle events and reacts to
// CATEGORY_DELETED by clearing dangling category references.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest, userID string) (*model.Product, error)
	FindAll(ctx context.Context, p dto.Pagination) (*dto.PaginatedResult[model.Product], error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*model.Product, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	bus        *event.Bus
	cache      *productCache
}

// NewProductService builds the service and subscribes its reconciliation
// handler. rdb may be nil, which disables the read-through cache.
func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository, bus *event.Bus, rdb *redis.Client, opts ...CacheOption) ProductService {
	s := &productService{
		repo:       repo,
		categories: categories,
		bus:        bus,
		cache:      newProductCache(rdb, opts...),
	}
	bus.Subscribe(event.CategoryDeletedName, s.onCategoryDeleted)
	return s
}

// resolveCategory parses and verifies the categoryId supplied by a client.
// Bad format is a validation error; an absent category is a not-found error.
func (s *productService) resolveCategory(ctx context.Context, raw string) (uuid.UUID, error) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, validationErr("invalid category ID format %q", raw)
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: category with id %s", ErrNotFound, categoryID)
		}
		return uuid.Nil, classifyStoreErr(err)
	}
	return categoryID, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest, userID string) (*model.Product, error) {
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:        capitalize(req.Name),
		Description: req.Description,
		Sizes:       pq.StringArray(req.Sizes),
		Gender:      req.Gender,
		Tags:        pq.StringArray(req.Tags),
		UserID:      userID,
		CategoryID:  &categoryID,
	}
	// Price and stock defaults (10 and 0) are applied by the store layer when
	// the client omits them.
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, classifyStoreErr(err)
	}

	// Publish only after the create has been durably acknowledged.
	s.bus.Publish(ctx, event.ProductCreated{
		ProductID:  p.ID.String(),
		CategoryID: categoryID.String(),
	})
	return p, nil
}

func (s *productService) FindAll(ctx context.Context, p dto.Pagination) (*dto.PaginatedResult[model.Product], error) {
	list, total, err := s.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return paginate(list, total, p), nil
}

func (s *productService) FindOne(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if p := s.cache.get(ctx, id); p != nil {
		return p, nil
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	s.cache.set(ctx, p)
	return p, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	var republish bool
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = &categoryID
		republish = true
	}
	if req.Name != nil {
		p.Name = capitalize(*req.Name)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Sizes != nil {
		p.Sizes = pq.StringArray(req.Sizes)
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.Tags != nil {
		p.Tags = pq.StringArray(req.Tags)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, classifyStoreErr(err)
	}
	s.cache.del(ctx, id)

	// Re-categorization reuses the created event so the new category picks up
	// the back-reference. The old category keeps a stale entry until the
	// product is deleted; the add is idempotent so replays are harmless.
	if republish {
		s.bus.Publish(ctx, event.ProductCreated{
			ProductID:  p.ID.String(),
			CategoryID: p.CategoryID.String(),
		})
	}
	return p, nil
}

func (s *productService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return classifyStoreErr(err)
	}
	s.cache.del(ctx, id)
	s.bus.Publish(ctx, event.ProductDeleted{ProductID: id.String()})
	return nil
}

// onCategoryDeleted uncategorizes every product referencing the deleted
// category. Products themselves survive. Errors are logged by the bus and
// never surface to the deleting request.
func (s *productService) onCategoryDeleted(ctx context.Context, e event.Event) error {
	payload, ok := e.(event.CategoryDeleted)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e, e.Name())
	}
	categoryID, err := uuid.Parse(payload.CategoryID)
	if err != nil {
		return fmt.Errorf("category deleted: bad category id %q: %w", payload.CategoryID, err)
	}
	ids, err := s.repo.ClearCategoryRef(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("clear category ref %s: %w", categoryID, err)
	}
	for _, id := range ids {
		s.cache.del(ctx, id)
	}
	if len(ids) > 0 {
		log.Info().
			Str("category_id", categoryID.String()).
			Int("products", len(ids)).
			Msg("uncategorized products after category delete")
	}
	return nil
}
