package service

import (
	"github.com/evmlabs/walletd/internal/constant"
)

// Pagination mirrors the wire shape, absent neighbours are null.
type Pagination struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	NextPage *int  `json:"next_page"`
	PrevPage *int  `json:"prev_page"`
}

func validatePagination(page, limit int) error {
	if page < 1 {
		return &InvalidPaginationError{Reason: "page number must be greater than 0"}
	}
	if limit < 1 {
		return &InvalidPaginationError{Reason: "limit must be greater than 0"}
	}
	if limit > constant.MaxPageLimit {
		return &InvalidPaginationError{Reason: "limit must be less than 1000"}
	}
	return nil
}

func paginate(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	p := Pagination{Total: total, Page: page}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}
