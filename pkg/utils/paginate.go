package utils

// DefaultPageSize is the number of records per page when none is configured.
const DefaultPageSize = 10

// PageOffset converts a 1-indexed page into a row offset for a result set of
// total rows. The first page is always valid so that an empty set yields an
// empty page; any other page must start inside the set.
func PageOffset(total, page, pageSize int) (int, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		return 0, ErrPageOutOfRange
	}

	offset := (page - 1) * pageSize
	if offset > 0 && offset >= total {
		return 0, ErrPageOutOfRange
	}
	return offset, nil
}

// Paginate returns the page-th slice of items, at most pageSize long.
func Paginate[T any](items []T, page, pageSize int) ([]T, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	offset, err := PageOffset(len(items), page, pageSize)
	if err != nil {
		return nil, err
	}

	end := min(offset+pageSize, len(items))
	return items[offset:end], nil
}
