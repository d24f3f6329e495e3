package dto

// Pagination carries the limit/offset query parameters shared by all list
// endpoints.
type Pagination struct {
	Limit  int `form:"limit,default=10" validate:"min=1,max=100"`
	Offset int `form:"offset,default=0" validate:"min=0"`
}

// PaginatedResult is the envelope returned by every list endpoint.
// CurrentPage is offset/limit+1; TotalPages is ceil(total/limit).
type PaginatedResult[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}
