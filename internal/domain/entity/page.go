package entity

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// Pagination requests a page. Page numbers start at 1.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize fills in page 1 and the default limit.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}

	return p
}

// DefaultPageSize is used when a caller does not ask for a specific page size.
const DefaultPageSize = 20
