package pagination_test

import (
	"net/url"
	"testing"

	"github.com/vitalwave/mediguide/pkg/pagination"
)

func testConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"oversized page size", 1, 500, 1, 100},
		{"valid values", 2, 50, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(testConfig())

			if req.Page != tt.wantPage || req.PageSize != tt.wantPageSize {
				t.Errorf("Normalize() = %+v, want page %d size %d", req, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 20}
	if got := req.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "10")

	req := pagination.PageRequestFromQuery(values, testConfig())
	if req.Page != 2 || req.PageSize != 10 {
		t.Errorf("PageRequestFromQuery() = %+v, want page 2 size 10", req)
	}

	req = pagination.PageRequestFromQuery(url.Values{}, testConfig())
	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("PageRequestFromQuery() empty = %+v, want normalized defaults", req)
	}
}

func TestNewPageResult(t *testing.T) {
	result := pagination.NewPageResult([]int{1, 2, 3}, 45, 1, 20)

	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.TotalPages)
	}

	empty := pagination.NewPageResult[int](nil, 0, 1, 20)
	if empty.Data == nil {
		t.Error("Data = nil, want empty slice")
	}
	if empty.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", empty.TotalPages)
	}
}
