package helpers

import (
	"math"
	"strconv"

	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// Page is a normalized pagination request
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of items to skip
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// NormalizePage clamps page and size into the supported range
func NormalizePage(page, size int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return Page{Number: page, Size: size}
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page Page) dto.PaginationInfo {
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(page.Size)))
	} else if page.Number == 1 {
		totalPages = 1
	}

	currentPage := page.Number
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    page.Size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams extracts page and pageSize query parameters; size is accepted as an alias
func ParsePaginationParams(c *gin.Context) Page {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = DefaultPage
	}

	sizeStr := c.Query("pageSize")
	if sizeStr == "" {
		sizeStr = c.Query("size")
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		size = DefaultPageSize
	}

	return NormalizePage(page, size)
}

// CalculateSliceIndices calculates the start and end indices for slicing an in-memory list
func CalculateSliceIndices(page Page, totalItems int) (start, end int) {
	start = page.Offset()
	end = start + page.Size

	if start >= totalItems {
		return totalItems, totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
