package utils

import (
	"net/http"
	"strconv"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

func ParsePagination(r *http.Request) requests.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamPage))
	if err != nil || page < 1 {
		page = defaultPage
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamPageSize))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return requests.Pagination{Page: page, PageSize: pageSize}
}
