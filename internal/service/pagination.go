package service

import (
	"math"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/dto"
)

// paginate wraps a page of items in the list envelope shared by both
// collections: currentPage = offset/limit + 1, totalPages = ceil(total/limit).
func paginate[T any](items []T, total int64, p dto.Pagination) *dto.PaginatedResult[T] {
	if items == nil {
		items = []T{}
	}
	return &dto.PaginatedResult[T]{
		Items:       items,
		Total:       total,
		CurrentPage: p.Offset/p.Limit + 1,
		TotalPages:  int(math.Ceil(float64(total) / float64(p.Limit))),
	}
}
