package repositories

import "testing"

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		pagination Pagination
		limit      int
		offset     int
		ok         bool
	}{
		{"não pedida", Pagination{}, 0, 0, false},
		{"só page", Pagination{Page: 3}, 20, 40, true},
		{"só pageSize", Pagination{PageSize: 5}, 5, 0, true},
		{"limite máximo", Pagination{Page: 2, PageSize: 500}, 100, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, ok := tt.pagination.Normalize()
			if limit != tt.limit || offset != tt.offset || ok != tt.ok {
				t.Errorf("got (%d, %d, %v), want (%d, %d, %v)", limit, offset, ok, tt.limit, tt.offset, tt.ok)
			}
		})
	}
}
