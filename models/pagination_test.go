package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingParamsWithDefaults(t *testing.T) {
	params := ListingParams{}.WithDefaults()
	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)

	params = ListingParams{Page: 3, PageSize: 25}.WithDefaults()
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.PageSize)
}

func TestListingParamsOrder(t *testing.T) {
	assert.Equal(t, SortingOrderDesc, ListingParams{}.Order())
	assert.Equal(t, SortingOrderDesc, ListingParams{Sort: SortFilterNewest}.Order())
	assert.Equal(t, SortingOrderAsc, ListingParams{Sort: SortFilterOldest}.Order())
}

func TestListingParamsHasNext(t *testing.T) {
	// 5 matching rows, 2 per page: pages 1 and 2 have a next page, page 3
	// does not.
	assert.True(t, ListingParams{Page: 1, PageSize: 2}.HasNext(5, 2))
	assert.True(t, ListingParams{Page: 2, PageSize: 2}.HasNext(5, 2))
	assert.False(t, ListingParams{Page: 3, PageSize: 2}.HasNext(5, 1))

	// a page beyond the data returns no rows and no next page
	assert.False(t, ListingParams{Page: 9, PageSize: 10}.HasNext(5, 0))

	// an exact fit has no next page
	assert.False(t, ListingParams{Page: 1, PageSize: 5}.HasNext(5, 5))
}
