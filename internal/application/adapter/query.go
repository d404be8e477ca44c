package adapter

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder returns SortAsc or SortDesc, or fallback for anything else.
func ParseSortOrder(value string, fallback SortOrder) SortOrder {
	switch SortOrder(value) {
	case SortAsc, SortDesc:
		return SortOrder(value)
	}
	return fallback
}

// ListSort names the field to sort by, using the API field name (e.g. "dueDate").
type ListSort struct {
	Field string
	Order SortOrder
}

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination defines page-based pagination options.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination clamps page and limit into their valid ranges.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit), never less than 1.
func (p Pagination) TotalPages(total int64) int {
	if p.Limit <= 0 || total == 0 {
		return 1
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
