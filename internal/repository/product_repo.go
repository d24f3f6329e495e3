package repository

import (
	"context"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, limit, offset int) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, term string) ([]model.Product, error)

	// ClearCategoryRef unsets category_id on every product referencing the
	// deleted category and returns the ids of the affected products so the
	// caller can invalidate cached copies. Products are never deleted here.
	ClearCategoryRef(ctx context.Context, categoryID uuid.UUID) ([]uuid.UUID, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]model.Product, int64, error) {
	var list []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at ASC, id ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("name ASC").
		Find(&list).Error
	return list, err
}

func (r *productRepo) ClearCategoryRef(ctx context.Context, categoryID uuid.UUID) ([]uuid.UUID, error) {
	var affected []model.Product
	err := r.db.WithContext(ctx).Model(&affected).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(affected))
	for _, p := range affected {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
