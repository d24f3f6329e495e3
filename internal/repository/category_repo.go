package repository

import (
	"context"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository defines the data access contract for categories.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, limit, offset int) ([]model.Category, int64, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, term string) ([]model.Category, error)

	// Reconciliation helpers — called only by event handlers.
	AddProductRef(ctx context.Context, categoryID, productID uuid.UUID) error
	RemoveProductRef(ctx context.Context, productID uuid.UUID) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context, limit, offset int) ([]model.Category, int64, error) {
	var list []model.Category
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Category{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at ASC, id ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepo) SearchByName(ctx context.Context, term string) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("name ASC").
		Find(&list).Error
	return list, err
}

// AddProductRef appends productID to the category's product_ids array unless
// it is already present (idempotent set-add). Returns ErrRecordNotFound when
// the category has vanished so the caller can log the dropped reconciliation.
func (r *categoryRepo) AddProductRef(ctx context.Context, categoryID, productID uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ? AND NOT (? = ANY(COALESCE(product_ids, '{}')))", categoryID, productID.String()).
		Update("product_ids", gorm.Expr("array_append(COALESCE(product_ids, '{}'), ?)", productID.String()))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the id is already in the set (fine) or the category is gone.
		var n int64
		if err := r.db.WithContext(ctx).Model(&model.Category{}).
			Where("id = ?", categoryID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// RemoveProductRef removes productID from every category whose product_ids
// array contains it.
func (r *categoryRepo) RemoveProductRef(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Where("? = ANY(COALESCE(product_ids, '{}'))", productID.String()).
		Update("product_ids", gorm.Expr("array_remove(product_ids, ?)", productID.String())).Error
}
