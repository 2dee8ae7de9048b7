package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		request      pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"valid values unchanged", pagination.PageRequest{Page: 2, PageSize: 25}, 2, 25},
		{"zero page becomes 1", pagination.PageRequest{Page: 0, PageSize: 25}, 1, 25},
		{"negative page becomes 1", pagination.PageRequest{Page: -1, PageSize: 25}, 1, 25},
		{"zero page size gets default", pagination.PageRequest{Page: 1}, 1, 20},
		{"page size exceeding max gets capped", pagination.PageRequest{Page: 1, PageSize: 200}, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.request.Normalize(cfg)

			if tt.request.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.request.Page, tt.wantPage)
			}
			if tt.request.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.request.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{
		"page":      {"3"},
		"page_size": {"10"},
		"search":    {"salad"},
		"sort":      {"name,-price, ,-"},
	}

	req := pagination.PageRequestFromQuery(values, cfg)

	if req.Page != 3 || req.PageSize != 10 {
		t.Errorf("Page = %d, PageSize = %d", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "salad" {
		t.Errorf("Search = %v", req.Search)
	}
	if len(req.Sort) != 2 {
		t.Fatalf("Sort = %v, want 2 fields", req.Sort)
	}
	if req.Sort[0].Field != "name" || req.Sort[0].Descending {
		t.Errorf("Sort[0] = %+v", req.Sort[0])
	}
	if req.Sort[1].Field != "price" || !req.Sort[1].Descending {
		t.Errorf("Sort[1] = %+v", req.Sort[1])
	}
}

func TestPageRequestFromQuery_Defaults(t *testing.T) {
	req := pagination.PageRequestFromQuery(url.Values{}, cfg)

	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("Page = %d, PageSize = %d", req.Page, req.PageSize)
	}
	if req.Search != nil {
		t.Error("Search should be nil")
	}
	if req.Sort != nil {
		t.Error("Sort should be nil")
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact pages", 100, 20, 5},
		{"partial last page", 101, 20, 6},
		{"empty", 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[string](nil, tt.total, 1, tt.pageSize)

			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.Data == nil {
				t.Error("Data should be an empty slice, not nil")
			}
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		req  pagination.PageRequest
		want []int
	}{
		{"first page", pagination.PageRequest{Page: 1, PageSize: 2}, []int{1, 2}},
		{"last partial page", pagination.PageRequest{Page: 3, PageSize: 2}, []int{5}},
		{"past the end", pagination.PageRequest{Page: 9, PageSize: 2}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.Slice(items, tt.req)

			if result.Total != 5 {
				t.Errorf("Total = %d, want 5", result.Total)
			}
			if len(result.Data) != len(tt.want) {
				t.Fatalf("Data = %v, want %v", result.Data, tt.want)
			}
			for i := range tt.want {
				if result.Data[i] != tt.want[i] {
					t.Errorf("Data = %v, want %v", result.Data, tt.want)
				}
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "50")

	c := &pagination.Config{}
	if err := c.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_SIZE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if c.DefaultPageSize != 50 || c.MaxPageSize != 100 {
		t.Errorf("config = %+v", c)
	}

	bad := &pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() should reject default_page_size above max_page_size")
	}
}
