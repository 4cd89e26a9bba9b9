package pagination

import (
	"encoding/json"
	"math"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Metadata describes one page of a list response. It is embedded in the
// body next to the items and mirrored in the X-Pagination header.
type Metadata struct {
	CurrentPage int   `json:"currentPage"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// NewMetadata computes page metadata for a total row count
func NewMetadata(totalCount int64, currentPage, pageSize int) Metadata {
	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))
	return Metadata{
		CurrentPage: currentPage,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// Params reads pageNumber and pageSize query parameters, clamping the
// size so a single request cannot pull the whole table.
func Params(c *fiber.Ctx) (page, size int) {
	page = c.QueryInt("pageNumber", 1)
	if page < 1 {
		page = 1
	}
	size = c.QueryInt("pageSize", defaultPageSize)
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// Offset returns the number of rows to skip for the page
func Offset(page, size int) int {
	return (page - 1) * size
}

// SetHeader writes the metadata as a JSON X-Pagination response header
func SetHeader(c *fiber.Ctx, meta Metadata) {
	encoded, err := json.Marshal(meta)
	if err != nil {
		return
	}
	c.Set("X-Pagination", string(encoded))
}
