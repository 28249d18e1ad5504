package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		expectedPage int
		expectedSize int
	}{
		{"defaults when absent", "", 1, DefaultPageSize},
		{"explicit values", "page=3&size=50", 3, 50},
		{"zero page falls back", "page=0&size=10", 1, 10},
		{"negative page falls back", "page=-2", 1, DefaultPageSize},
		{"size above max falls back", "size=500", 1, DefaultPageSize},
		{"non-numeric values fall back", "page=abc&size=xyz", 1, DefaultPageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, size := ParsePaginationParams(testContext(tc.query))
			assert.Equal(t, tc.expectedPage, page)
			assert.Equal(t, tc.expectedSize, size)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	testCases := []struct {
		name           string
		page, size     int
		expectedOffset uint64
		expectedLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"third page", 3, 20, 40, 20},
		{"page zero treated as first", 0, 10, 0, 10},
		{"oversized limit clamped", 2, 1000, 20, DefaultPageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tc.page, tc.size)
			assert.Equal(t, tc.expectedOffset, offset)
			assert.Equal(t, tc.expectedLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 1, 20)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 20, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)
}

func TestNewPaginationInfoEmpty(t *testing.T) {
	info := NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 1, info.CurrentPage)
}

func TestNewPaginationInfoPageBeyondEnd(t *testing.T) {
	info := NewPaginationInfo(10, 5, 20)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 1, info.CurrentPage)
}
