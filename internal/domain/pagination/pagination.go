// Package pagination slices result sets into fixed-size, 1-indexed pages.
//
// An empty result set still has one (empty) page, so a valid page number
// always exists.
package pagination

const (
	DefaultPageSize = 12
	DefaultWindow   = 5
)

type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

func (p Page[T]) HasPrev() bool { return p.Page > 1 }
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

func TotalPages(count, pageSize int) int {
	pageSize = normalizeSize(pageSize)
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Clamp bounds page to [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the clamped page of items. The result shares no storage with
// items.
func Slice[T any](items []T, pageSize, page int) Page[T] {
	pageSize = normalizeSize(pageSize)
	total := TotalPages(len(items), pageSize)
	page = Clamp(page, total)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Total:      len(items),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: total,
	}
}

// Window returns at most size page numbers starting two before current.
func Window(current, totalPages, size int) []int {
	if size <= 0 {
		size = DefaultWindow
	}
	if totalPages < 1 {
		totalPages = 1
	}
	start := 1
	end := totalPages
	if totalPages > size {
		start = current - 2
		if start < 1 {
			start = 1
		}
		end = start + size - 1
		if end > totalPages {
			end = totalPages
		}
	}

	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

func normalizeSize(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}
	return pageSize
}
