package dto

// PagedResult is the envelope for every paginated listing.
type PagedResult[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// ClampPage floors page to at least 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPageSize clamps size into [1, 50], substituting def when unset.
func ClampPageSize(size, def int) int {
	if size == 0 {
		size = def
	}
	if size < 1 {
		return 1
	}
	if size > 50 {
		return 50
	}
	return size
}

// Paginate slices items for the given page, preserving order.
func Paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
