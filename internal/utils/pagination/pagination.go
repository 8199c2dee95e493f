// Package pagination turns 1-based page requests into limit/offset windows.
package pagination

import "math"

// Window is a normalized page request.
type Window struct {
	Page     int
	PageSize int
}

// Normalize applies defaults and caps: page < 1 becomes 1, pageSize < 1 becomes
// defaultSize and pageSize > maxSize becomes maxSize. page is capped so Offset
// never overflows.
func Normalize(page, pageSize, defaultSize, maxSize int) Window {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}
	if pageSize > 0 && page-1 > math.MaxInt/pageSize {
		page = math.MaxInt/pageSize + 1
	}
	return Window{Page: page, PageSize: pageSize}
}

// Limit is the number of rows to fetch.
func (w Window) Limit() int {
	return w.PageSize
}

// Offset is the number of rows to skip.
func (w Window) Offset() int {
	return (w.Page - 1) * w.PageSize
}
