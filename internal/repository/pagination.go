package repository

// Pagination bounds list queries. Page is 1-based.
type Pagination struct {
	Page  int
	Limit int
}

const (
	// DefaultLimit is the page size when the caller supplies none.
	DefaultLimit = 15
	// MaxLimit caps the page size a caller may request.
	MaxLimit = 100
)

// Normalize clamps page and limit into their valid ranges.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
