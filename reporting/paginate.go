package reporting

import (
	"errors"
	"slices"
)

// DefaultPageSize rows per page when none is chosen.
const DefaultPageSize = 10

// PageSizeOptions page sizes offered by every table.
var PageSizeOptions = []int{10, 20, 50, 100, 200}

// ErrInvalidPageSize is returned for a page size outside PageSizeOptions.
var ErrInvalidPageSize = errors.New("invalid page size")

// ValidatePageSize checks size against PageSizeOptions.
func ValidatePageSize(size int) error {
	if !slices.Contains(PageSizeOptions, size) {
		return ErrInvalidPageSize
	}
	return nil
}

// Pagination slice bounds and navigation state of one page.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalCount int  `json:"total_count"`
	PageCount  int  `json:"page_count"`
	StartIndex int  `json:"start_index"`
	EndIndex   int  `json:"end_index"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Paginate computes the window of page over total items. pageCount is
// ceil(total/size) and is 0 for an empty collection. EndIndex is not clamped;
// use Bounds to slice.
func Paginate(total, page, size int) Pagination {
	if total < 0 {
		total = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	pageCount := (total + size - 1) / size
	start := (page - 1) * size

	return Pagination{
		Page:       page,
		PageSize:   size,
		TotalCount: total,
		PageCount:  pageCount,
		StartIndex: start,
		EndIndex:   start + size,
		HasPrev:    page > 1,
		HasNext:    page < pageCount,
	}
}

// Bounds clamps the window to a collection of length n.
func (p Pagination) Bounds(n int) (int, int) {
	start := min(max(p.StartIndex, 0), n)
	end := min(max(p.EndIndex, start), n)
	return start, end
}

// ClampPage returns min(page, max(1, pageCount)) for total items at size, and at least 1.
func ClampPage(page, total, size int) int {
	p := Paginate(total, 1, size)
	page = min(page, max(1, p.PageCount))
	return max(page, 1)
}
