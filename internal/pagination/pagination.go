package pagination

import (
	"math"
	"strconv"
)

// Params are the raw page and limit query values. Empty means unset.
type Params struct {
	Page  string
	Limit string
}

func (p Params) IsSet() bool {
	return p.Page != "" || p.Limit != ""
}

// PageInfo resolves the page number, page size and page count for totalItems
// rows. A missing or zero limit means one page holding everything. There is always at
// least one page, so page 1 of an empty result is valid.
func PageInfo(p Params, totalItems int) (page, limit, totalPages int, ok bool) {
	page, limit = 1, totalItems
	if p.Page != "" {
		parsed, err := strconv.Atoi(p.Page)
		if err != nil {
			return 0, 0, 0, false
		}
		page = parsed
	}
	if p.Limit != "" {
		parsed, err := strconv.Atoi(p.Limit)
		if err != nil || parsed < 0 {
			return 0, 0, 0, false
		}
		if parsed > 0 {
			limit = parsed
		}
	}

	totalPages = 1
	if limit > 0 {
		totalPages = int(math.Max(1, math.Ceil(float64(totalItems)/float64(limit))))
	}
	if page < 1 || totalPages < page {
		return 0, 0, 0, false
	}

	return page, limit, totalPages, true
}

// Paginate returns the window of items for the given page and limit. The
// caller is expected to have validated both with PageInfo.
func Paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
