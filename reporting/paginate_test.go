package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_TwelveRecordsPageSizeTen(t *testing.T) {
	p := Paginate(12, 1, 10)

	assert.Equal(t, 2, p.PageCount)
	assert.Equal(t, 0, p.StartIndex)
	assert.Equal(t, 10, p.EndIndex)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)

	last := Paginate(12, 2, 10)
	start, end := last.Bounds(12)
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(0, 1, 10)

	assert.Equal(t, 0, p.PageCount)
	assert.Equal(t, 0, p.StartIndex)
	assert.Less(t, p.StartIndex, p.EndIndex)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)

	start, end := p.Bounds(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestPaginate_IndicesAreOrdered(t *testing.T) {
	for total := 0; total <= 45; total++ {
		for _, size := range PageSizeOptions {
			for page := 1; page <= 5; page++ {
				p := Paginate(total, page, size)
				assert.GreaterOrEqual(t, p.StartIndex, 0)
				assert.Less(t, p.StartIndex, p.EndIndex)

				start, end := p.Bounds(total)
				assert.LessOrEqual(t, start, end)
				assert.LessOrEqual(t, end, total)
			}
		}
	}
}

func TestPaginate_NormalizesInput(t *testing.T) {
	p := Paginate(5, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)

	p = Paginate(-3, -1, 20)
	assert.Equal(t, 0, p.TotalCount)
	assert.Equal(t, 1, p.Page)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int
		size  int
		want  int
	}{
		{"within range", 2, 25, 10, 2},
		{"past end after size change", 5, 45, 20, 3},
		{"empty collection", 4, 0, 10, 1},
		{"below one", 0, 10, 10, 1},
		{"kept when size shrinks", 2, 100, 10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.total, tt.size))
		})
	}
}

func TestValidatePageSize(t *testing.T) {
	for _, size := range PageSizeOptions {
		assert.NoError(t, ValidatePageSize(size))
	}
	assert.ErrorIs(t, ValidatePageSize(15), ErrInvalidPageSize)
	assert.ErrorIs(t, ValidatePageSize(0), ErrInvalidPageSize)
}
