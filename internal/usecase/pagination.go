package usecase

import "fmt"

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// PageRequest is a 1-based page selector. Zero values fall back to defaults.
type PageRequest struct {
	Page  int
	Limit int
}

type PageInfo struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// ListLimits bounds page sizes for list endpoints.
type ListLimits struct {
	Default int
	Max     int
}

func (l ListLimits) normalize() ListLimits {
	if l.Max <= 0 {
		l.Max = maxListLimit
	}
	if l.Default <= 0 {
		l.Default = defaultListLimit
	}
	if l.Default > l.Max {
		l.Default = l.Max
	}
	return l
}

func (l ListLimits) resolve(req PageRequest) (PageRequest, error) {
	l = l.normalize()
	if req.Page < 0 {
		return PageRequest{}, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if req.Limit < 0 {
		return PageRequest{}, fmt.Errorf("%w: limit must be >= 1", ErrInvalidInput)
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = l.Default
	}
	if req.Limit > l.Max {
		req.Limit = l.Max
	}
	return req, nil
}

func (r PageRequest) offset() int {
	return (r.Page - 1) * r.Limit
}

func newPageInfo(req PageRequest, total int) PageInfo {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return PageInfo{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
