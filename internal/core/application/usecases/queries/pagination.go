// Package queries contains the read side of the application. Query handlers read
// straight from PostgreSQL through GORM raw SQL and return flat views; they never load
// aggregates.
package queries

import (
	"ordering/internal/pkg/errs"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPageNumber keeps the offset far below the range of a 32-bit int.
	MaxPageNumber = 1_000_000
)

// Page selects a window of a list. Numbering starts at 1.
type Page struct {
	number int
	size   int
}

// NewPage validates the window. Zero values select page 1 and DefaultPageSize.
func NewPage(number, size int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if number < 1 || number > MaxPageNumber {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, MaxPageNumber)
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", size, 1, MaxPageSize)
	}
	return Page{number: number, size: size}, nil
}

func (p Page) Number() int { return p.number }
func (p Page) Size() int   { return p.size }
func (p Page) Offset() int { return (p.number - 1) * p.size }

// PageInfo describes where a page sits in the full result.
type PageInfo struct {
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

func newPageInfo(p Page, total int64) PageInfo {
	pages := int((total + int64(p.size) - 1) / int64(p.size))
	return PageInfo{Total: total, Page: p.number, PageSize: p.size, TotalPages: pages}
}

func (i PageInfo) HasNextPage() bool { return i.Page < i.TotalPages }
func (i PageInfo) HasPrevPage() bool { return i.Page > 1 }
