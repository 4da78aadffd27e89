package request

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// PaginatedRequest carries page/per_page query params. Out-of-range values
// are clamped rather than rejected so list endpoints never 400 on paging.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Limit() int {
	switch {
	case p.PerPage < 1:
		return defaultPerPage
	case p.PerPage > maxPerPage:
		return maxPerPage
	default:
		return p.PerPage
	}
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 2 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}
