package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/model"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collections searchable through GET /search/:collection/:term.
const (
	CollectionProduct    = "product"
	CollectionCategories = "categories"
)

var allowedCollections = []string{CollectionProduct, CollectionCategories}

// patternMeta matches characters with special meaning in pattern matching
// (regex and SQL LIKE). Terms containing any of them are rejected as a
// client error rather than executed literally or escaped.
var patternMeta = regexp.MustCompile(`[-/\\^$*+?.()|\[\]{}%_]`)

// SearchService dispatches a term over both stores: a term that parses as a
// store identifier does an exact id lookup, anything else becomes a
// case-insensitive substring match on name.
type SearchService interface {
	Search(ctx context.Context, collection, term string) (any, error)
}

type searchService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewSearchService(products repository.ProductRepository, categories repository.CategoryRepository) SearchService {
	return &searchService{products: products, categories: categories}
}

func (s *searchService) Search(ctx context.Context, collection, term string) (any, error) {
	switch collection {
	case CollectionProduct:
		return s.searchProducts(ctx, term)
	case CollectionCategories:
		return s.searchCategories(ctx, term)
	default:
		return nil, validationErr("allowed collections are %v", allowedCollections)
	}
}

func checkTerm(term string) error {
	if patternMeta.MatchString(term) {
		return validationErr("syntax error: term %q contains disallowed characters", term)
	}
	return nil
}

func (s *searchService) searchProducts(ctx context.Context, term string) ([]model.Product, error) {
	if id, err := uuid.Parse(term); err == nil {
		p, err := s.products.FindByID(ctx, id)
		switch {
		case err == nil:
			return []model.Product{*p}, nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return []model.Product{}, nil
		default:
			return nil, classifyStoreErr(err)
		}
	}
	if err := checkTerm(term); err != nil {
		return nil, err
	}
	list, err := s.products.SearchByName(ctx, term)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if list == nil {
		list = []model.Product{}
	}
	return list, nil
}

func (s *searchService) searchCategories(ctx context.Context, term string) ([]model.Category, error) {
	if id, err := uuid.Parse(term); err == nil {
		c, err := s.categories.FindByID(ctx, id)
		switch {
		case err == nil:
			return []model.Category{*c}, nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return []model.Category{}, nil
		default:
			return nil, classifyStoreErr(err)
		}
	}
	if err := checkTerm(term); err != nil {
		return nil, err
	}
	list, err := s.categories.SearchByName(ctx, term)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if list == nil {
		list = []model.Category{}
	}
	return list, nil
}
