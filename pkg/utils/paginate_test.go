package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := seq(19)

	first, err := Paginate(items, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, seq(10), first)

	second, err := Paginate(items, 2, 10)
	require.NoError(t, err)
	assert.Len(t, second, 9)
	assert.Equal(t, 11, second[0])
	assert.Equal(t, 19, second[8])
}

func TestPaginateOutOfRange(t *testing.T) {
	items := seq(19)

	for _, page := range []int{0, -1, 3, 100} {
		_, err := Paginate(items, page, 10)
		assert.ErrorIs(t, err, ErrPageOutOfRange, "page %d", page)
	}
}

func TestPaginateExactBoundary(t *testing.T) {
	items := seq(20)

	second, err := Paginate(items, 2, 10)
	require.NoError(t, err)
	assert.Len(t, second, 10)

	_, err = Paginate(items, 3, 10)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestPaginateEmptyFirstPage(t *testing.T) {
	page, err := Paginate([]string{}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page)

	_, err = Paginate([]string{}, 2, 10)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestPageOffsetDefaultsPageSize(t *testing.T) {
	offset, err := PageOffset(25, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, offset)
}
