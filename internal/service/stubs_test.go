package service

import (
	"context"
	"strings"
	"sync"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory CategoryRepository stub ────────────────────────────────────────
// Mirrors the store contract the services rely on: duplicate names surface as
// gorm.ErrDuplicatedKey, missing rows as gorm.ErrRecordNotFound. A mutex
// guards state because reconciliation handlers run on the bus goroutine.

type stubCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*model.Category
	order      []uuid.UUID

	addRefErr error // injected AddProductRef failure
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) List(_ context.Context, limit, offset int) ([]model.Category, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := int64(len(r.order))
	var page []model.Category
	for i := offset; i < len(r.order) && len(page) < limit; i++ {
		page = append(page, *r.categories[r.order[i]])
	}
	return page, total, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.categories {
		if existing.Name == c.Name && id != c.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	if _, ok := r.categories[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.categories, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubCategoryRepo) SearchByName(_ context.Context, term string) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Category
	for _, id := range r.order {
		c := r.categories[id]
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *stubCategoryRepo) AddProductRef(_ context.Context, categoryID, productID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addRefErr != nil {
		return r.addRefErr
	}
	c, ok := r.categories[categoryID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, pid := range c.ProductIDs {
		if pid == productID.String() {
			return nil
		}
	}
	c.ProductIDs = append(c.ProductIDs, productID.String())
	return nil
}

func (r *stubCategoryRepo) RemoveProductRef(_ context.Context, productID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		for i, pid := range c.ProductIDs {
			if pid == productID.String() {
				c.ProductIDs = append(c.ProductIDs[:i], c.ProductIDs[i+1:]...)
				break
			}
		}
	}
	return nil
}

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
	order    []uuid.UUID
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context, limit, offset int) ([]model.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := int64(len(r.order))
	var page []model.Product
	for i := offset; i < len(r.order) && len(page) < limit; i++ {
		page = append(page, *r.products[r.order[i]])
	}
	return page, total, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.products {
		if existing.Name == p.Name && id != p.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubProductRepo) SearchByName(_ context.Context, term string) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Product
	for _, id := range r.order {
		p := r.products[id]
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProductRepo) ClearCategoryRef(_ context.Context, categoryID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var affected []uuid.UUID
	for _, p := range r.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			p.CategoryID = nil
			affected = append(affected, p.ID)
		}
	}
	return affected, nil
}
