package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prompt-gallery/dto"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name           string
		total          int64
		pageSize       int
		wantTotalPages int
	}{
		{"exact fit", 48, 24, 2},
		{"partial last page", 49, 24, 3},
		{"single page", 5, 24, 1},
		{"empty", 0, 24, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := dto.NewPagination([]string{"a"}, 1, tc.pageSize, tc.total)
			assert.Equal(t, tc.wantTotalPages, p.TotalPages)
			assert.Equal(t, tc.total, p.Total)
		})
	}
}

func TestNewPaginationNilData(t *testing.T) {
	p := dto.NewPagination[string](nil, 1, 24, 0)
	assert.NotNil(t, p.Data)
	assert.Empty(t, p.Data)
}
