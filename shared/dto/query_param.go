package dto

import (
	"net/http"
	"stayledger/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, a missing page or limit falls back to the package defaults;
// otherwise a zero limit means no pagination.
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, false)
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

func (q QueryParams) Descending() bool {
	return q.SortDir == SortDirDesc
}

// Paginate returns the requested page of items. A zero limit returns items unchanged.
func Paginate[T any](items []T, q QueryParams) []T {
	if q.Limit <= 0 {
		return items
	}

	page := max(q.Page, constant.DefaultValuePage)

	start := (page - 1) * q.Limit
	if start >= len(items) {
		return []T{}
	}

	return items[start:min(start+q.Limit, len(items))]
}
