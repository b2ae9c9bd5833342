package pagination

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPageNumber keeps Offset within a 32-bit signed integer at any size.
	MaxPageNumber = math.MaxInt32 / MaxPageSize
)

// Page describes a 1-based page request after defaults and bounds are applied.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes a client-supplied page number and size. Non-positive
// values fall back to the first page and DefaultPageSize; numbers above
// MaxPageNumber and sizes above MaxPageSize are clamped.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of size hold total items.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
