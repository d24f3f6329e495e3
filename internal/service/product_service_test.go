package service

import (
	"context"
	"testing"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/dto"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/event"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFixture(t *testing.T) (*stubCategoryRepo, *stubProductRepo, *event.Bus, CategoryService, ProductService) {
	t.Helper()
	categoryRepo := newStubCategoryRepo()
	productRepo := newStubProductRepo()
	bus := event.NewBus()
	categorySvc := NewCategoryService(categoryRepo, bus)
	productSvc := NewProductService(productRepo, categoryRepo, bus, nil)
	return categoryRepo, productRepo, bus, categorySvc, productSvc
}

func createTestCategory(t *testing.T, svc CategoryService, name string) *model.Category {
	t.Helper()
	c, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: name}, "user-1")
	require.NoError(t, err)
	return c
}

func TestProductCreate(t *testing.T) {
	_, _, bus, categorySvc, productSvc := newTestFixture(t)
	ctx := context.Background()

	cat := createTestCategory(t, categorySvc, "Food")

	price := decimal.NewFromFloat(20.5)
	stock := 3
	p, err := productSvc.Create(ctx, dto.CreateProductRequest{
		Name:       "oreos",
		Price:      &price,
		Stock:      &stock,
		Sizes:      []string{"300g", "500g"},
		Gender:     model.GenderUnisex,
		CategoryID: cat.ID.String(),
	}, "user-1")
	require.NoError(t, err)
	bus.Wait()

	assert.Equal(t, "Oreos", p.Name)
	assert.Equal(t, "user-1", p.UserID)
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, cat.ID, *p.CategoryID)
	assert.True(t, price.Equal(p.Price))
}

func TestProductCreateInvalidCategoryID(t *testing.T) {
	_, _, _, _, productSvc := newTestFixture(t)

	_, err := productSvc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Oreos",
		Sizes:      []string{"300g"},
		Gender:     model.GenderUnisex,
		CategoryID: "not-a-uuid",
	}, "user-1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductCreateMissingCategory(t *testing.T) {
	_, _, _, _, productSvc := newTestFixture(t)

	_, err := productSvc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Oreos",
		Sizes:      []string{"300g"},
		Gender:     model.GenderUnisex,
		CategoryID: uuid.NewString(),
	}, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductCreateDuplicateName(t *testing.T) {
	_, _, bus, categorySvc, productSvc := newTestFixture(t)
	ctx := context.Background()

	cat := createTestCategory(t, categorySvc, "Food")
	req := dto.CreateProductRequest{
		Name:       "Oreos",
		Sizes:      []string{"300g"},
		Gender:     model.GenderUnisex,
		CategoryID: cat.ID.String(),
	}

	_, err := productSvc.Create(ctx, req, "user-1")
	require.NoError(t, err)
	bus.Wait()

	_, err = productSvc.Create(ctx, req, "user-1")
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestProductUpdatePartial(t *testing.T) {
	_, _, bus, categorySvc, productSvc := newTestFixture(t)
	ctx := context.Background()

	cat := createTestCategory(t, categorySvc, "Food")
	p, err := productSvc.Create(ctx, dto.CreateProductRequest{
		Name:       "Oreos",
		Sizes:      []string{"300g"},
		Gender:     model.GenderUnisex,
		CategoryID: cat.ID.String(),
	}, "user-1")
	require.NoError(t, err)
	bus.Wait()

	name := "choco oreos"
	stock := 42
	updated, err := productSvc.Update(ctx, p.ID, dto.UpdateProductRequest{Name: &name, Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, "Choco oreos", updated.Name)
	assert.Equal(t, 42, updated.Stock)
	// untouched fields survive
	assert.Equal(t, model.GenderUnisex, updated.Gender)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, cat.ID, *updated.CategoryID)
}

func TestProductUpdateRecategorizePublishesCreatedEvent(t *testing.T) {
	categoryRepo, _, bus, categorySvc, productSvc := newTestFixture(t)
	ctx := context.Background()

	oldCat := createTestCategory(t, categorySvc, "Food")
	newCat := createTestCategory(t, categorySvc, "Snacks")

	p, err := productSvc.Create(ctx, dto.CreateProductRequest{
		Name:       "Oreos",
		Sizes:      []string{"300g"},
		Gender:     model.GenderUnisex,
		CategoryID: oldCat.ID.String(),
	}, "user-1")
	require.NoError(t, err)
	bus.Wait()

	newID := newCat.ID.String()
	_, err = productSvc.Update(ctx, p.ID, dto.UpdateProductRequest{CategoryID: &newID})
	require.NoError(t, err)
	bus.Wait()

	got, err := categoryRepo.FindByID(ctx, newCat.ID)
	require.NoError(t, err)
	assert.Contains(t, got.ProductIDs, p.ID.String())
}

func TestProductRemoveNotFound(t *testing.T) {
	_, _, _, _, productSvc := newTestFixture(t)

	err := productSvc.Remove(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductRemovePublishesDeletedEvent(t *testing.T) {
	_, productRepo, bus, categorySvc, productSvc := newTestFixture(t)
	ctx := context.Background()

	cat := createTestCategory(t, categorySvc, "Food")
	p, err := productSvc.Create(ctx, dto.CreateProductRequest{
		Name:       "Oreos",
		Sizes:      []string{"300g"},
		Gender:     model.GenderUnisex,
		CategoryID: cat.ID.String(),
	}, "user-1")
	require.NoError(t, err)
	bus.Wait()

	seen := make(chan event.Event, 1)
	bus.Subscribe(event.ProductDeletedName, func(_ context.Context, e event.Event) error {
		seen <- e
		return nil
	})

	require.NoError(t, productSvc.Remove(ctx, p.ID))
	bus.Wait()

	payload, ok := (<-seen).(event.ProductDeleted)
	require.True(t, ok)
	assert.Equal(t, p.ID.String(), payload.ProductID)

	_, err = productRepo.FindByID(ctx, p.ID)
	assert.Error(t, err)
}
