package controllers

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 0, 10},
		{"explicit", "?page=2&limit=5", 2, 5},
		{"negative page", "?page=-3&limit=5", 0, 5},
		{"zero limit", "?limit=0", 0, 10},
		{"limit capped", "?limit=100000", 0, maxPageLimit},
		{"huge page", "?page=4611686018427387904&limit=3", 4611686018427387904, 3},
		{"garbage", "?page=abc&limit=xyz", 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/v1/bookings"+tt.query, nil)
			page, limit := pageParams(c)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("pageParams() = %d, %d; want %d, %d", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name        string
		page, limit int
		want        []int
	}{
		{"first page", 0, 2, []int{1, 2}},
		{"last partial page", 2, 2, []int{5}},
		{"past the end", 3, 2, []int{}},
		{"whole list", 0, 10, []int{1, 2, 3, 4, 5}},
		{"page overflows offset", 1 << 62, 3, []int{}},
		{"max int page", int(^uint(0) >> 1), maxPageLimit, []int{}},
		{"negative page", -1, 2, []int{}},
		{"zero limit", 0, 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paginate(items, tt.page, tt.limit); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("paginate(%d, %d) = %v, want %v", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}
