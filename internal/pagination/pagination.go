// Package pagination implements the offset/limit paging contract shared by
// every filtered listing and report endpoint.
package pagination

import (
	"errors"
	"fmt"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

var (
	ErrPageOutOfRange    = errors.New("page must be >= 1")
	ErrPerPageOutOfRange = fmt.Errorf("per_page must be between 1 and %d", MaxPerPage)
)

// Params are the caller-supplied paging inputs, validated before any query
// runs.
type Params struct {
	Page    int
	PerPage int
}

func (p Params) Validate() error {
	if p.Page < 1 {
		return ErrPageOutOfRange
	}
	if p.PerPage < 1 || p.PerPage > MaxPerPage {
		return ErrPerPageOutOfRange
	}
	return nil
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Meta describes one page of a filtered result set.
type Meta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Remaining  int `json:"remaining"`
}

// NewMeta computes page metadata from the total matching-row count and the
// number of items actually returned. A zero-row result still reports one
// empty page. Remaining uses the returned count, not PerPage, so the final
// partial page reports zero rather than a negative overshoot.
func NewMeta(p Params, total, returned int) Meta {
	totalPages := 1
	if total > 0 {
		totalPages = (total + p.PerPage - 1) / p.PerPage
	}

	remaining := total - p.Offset() - returned
	if remaining < 0 {
		remaining = 0
	}

	return Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		Remaining:  remaining,
	}
}

// Page is the uniform {data, meta} envelope for paginated responses.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// NewPage wraps items with their metadata, normalizing a nil slice to an
// empty one so the envelope always serializes "data": [].
func NewPage[T any](items []T, meta Meta) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Data: items, Meta: meta}
}
