package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// PaginatedResponse wraps one page of a list with navigation metadata.
type PaginatedResponse struct {
	Data       any   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// parsePagination reads the page and page_size query parameters. Values
// outside bounds (page < 1, page_size < 1 or > 100) are rejected with a
// 400 rather than clamped. A page past the end of the data is not an error;
// it yields an empty slice with correct totals.
func parsePagination(c *gin.Context) (page, pageSize int, ok bool) {
	page = defaultPage
	pageSize = defaultPageSize

	if pageStr := c.Query("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			respondBadRequest(c, "page must be a positive integer")
			return 0, 0, false
		}
		page = p
	}

	if sizeStr := c.Query("page_size"); sizeStr != "" {
		s, err := strconv.Atoi(sizeStr)
		if err != nil || s < 1 || s > maxPageSize {
			respondBadRequest(c, "page_size must be between 1 and 100")
			return 0, 0, false
		}
		pageSize = s
	}

	return page, pageSize, true
}

// newPaginatedResponse assembles the standard list envelope.
func newPaginatedResponse(data any, total int64, page, pageSize int) PaginatedResponse {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
