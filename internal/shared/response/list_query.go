package response

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListQuery is the q/sort_by/sort_dir/page/page_size set shared by list endpoints.
type ListQuery struct {
	Q        string
	SortBy   string
	Desc     bool
	Page     int
	PageSize int
}

func ParseListQuery(c *gin.Context, defaultSort string) ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return ListQuery{
		Q:        strings.TrimSpace(strings.ToLower(c.Query("q"))),
		SortBy:   strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", defaultSort))),
		Desc:     strings.EqualFold(strings.TrimSpace(c.Query("sort_dir")), "desc"),
		Page:     page,
		PageSize: pageSize,
	}
}

// Matches reports whether any of fields contains the search term.
func (q ListQuery) Matches(fields ...string) bool {
	if q.Q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q.Q) {
			return true
		}
	}
	return false
}

// Before turns a three-way comparison into a less function result honouring sort_dir.
func (q ListQuery) Before(cmp int) bool {
	if q.Desc {
		return cmp > 0
	}
	return cmp < 0
}
