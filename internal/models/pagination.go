package models

const DefaultPageSize = 10

// PaginatedResponse follows the page-number envelope: Next and Previous hold
// the neighbouring page numbers, or null at either end.
type PaginatedResponse[T any] struct {
	Count    int  `json:"count"`
	Next     *int `json:"next"`
	Previous *int `json:"previous"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	Results  []T  `json:"results"`
}

func NewPaginatedResponse[T any](results []T, total, page, pageSize int) *PaginatedResponse[T] {

	if results == nil {
		results = []T{}
	}

	resp := &PaginatedResponse[T]{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	}

	if page > 1 {
		prev := page - 1
		resp.Previous = &prev
	}

	if page < TotalPages(total, pageSize) {
		next := page + 1
		resp.Next = &next
	}

	return resp
}

// TotalPages never reports fewer than one page, an empty set still has page 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}

	return (total + pageSize - 1) / pageSize
}
