package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Pagination
		wantPage  int
		wantLimit int
	}{
		{"zero values", Pagination{}, 1, DefaultLimit},
		{"negative page", Pagination{Page: -2, Limit: 10}, 1, 10},
		{"over max limit", Pagination{Page: 1, Limit: 500}, 1, MaxLimit},
		{"valid passes through", Pagination{Page: 3, Limit: 15}, 3, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	// 37 rows at limit 15: page 1 covers rows 0-14, page 3 starts at 30
	// and leaves 7 rows.
	total := 37
	p1 := Pagination{Page: 1, Limit: 15}.Normalize()
	p3 := Pagination{Page: 3, Limit: 15}.Normalize()

	assert.Equal(t, 0, p1.Offset())
	assert.Equal(t, 30, p3.Offset())
	assert.Equal(t, 7, total-p3.Offset())
}
