// Package pagination slices result lists into fixed-size pages and
// computes the condensed page-number windows the listing screens render.
package pagination

// PageSize is the number of items per page across all listing screens.
const PageSize = 6

// Ellipsis marks a gap in a page window.
const Ellipsis = -1

type Page[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns the 1-indexed page of list. Pages past the end come
// back empty rather than erroring; an empty list has zero pages.
func Paginate[T any](list []T, pageSize, page int) Page[T] {
	if pageSize <= 0 || len(list) == 0 {
		return Page[T]{Items: []T{}, TotalPages: 0}
	}

	totalPages := (len(list) + pageSize - 1) / pageSize
	if page < 1 || page > totalPages {
		return Page[T]{Items: []T{}, TotalPages: totalPages}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}

	items := make([]T, end-start)
	copy(items, list[start:end])
	return Page[T]{Items: items, TotalPages: totalPages}
}

// Window condenses the page numbers around current into at most five
// visible pages plus Ellipsis markers. The first and last page are always
// present when total exceeds five.
func Window(current, total int) []int {
	const maxVisible = 5

	if total <= 0 {
		return []int{}
	}

	pages := make([]int, 0, 9)

	if total <= maxVisible {
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 3:
		for i := 1; i <= 4; i++ {
			pages = append(pages, i)
		}
		pages = append(pages, Ellipsis, total)
	case current >= total-2:
		pages = append(pages, 1, Ellipsis)
		for i := total - 3; i <= total; i++ {
			pages = append(pages, i)
		}
	default:
		pages = append(pages, 1, Ellipsis)
		for i := current - 1; i <= current+1; i++ {
			pages = append(pages, i)
		}
		pages = append(pages, Ellipsis, total)
	}

	return pages
}
