package dto

// Pagination is the envelope for paginated list results. Page is
// 1-based; Total counts every match for the same filter, so callers can
// render page controls even for a page past the end of the result set.
type Pagination[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	Total      int64 `json:"total"`
}

// NewPagination computes TotalPages from the total count and page size.
func NewPagination[T any](data []T, page, pageSize int, total int64) Pagination[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	if data == nil {
		data = []T{}
	}
	return Pagination[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}
