package models

type SortingOrder string

const (
	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// SortFilter is the URL-level sort override. Anything other than "oldest"
// sorts newest-first.
const (
	SortFilterNewest = "newest"
	SortFilterOldest = "oldest"
)

// ListingParams carries the request-scoped listing inputs: pagination window,
// sort override and the optional free-text query used when no rule tree is
// supplied.
type ListingParams struct {
	Page     int
	PageSize int
	Sort     string
	Query    string
}

func (p ListingParams) WithDefaults() ListingParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

func (p ListingParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p ListingParams) Order() SortingOrder {
	if p.Sort == SortFilterOldest {
		return SortingOrderAsc
	}
	return SortingOrderDesc
}

// HasNext reports whether rows beyond the current window matched, given the
// total match count and the number of rows returned for this page.
func (p ListingParams) HasNext(total, returned int) bool {
	return total > p.Offset()+returned
}

// ListingPage is one fetched page of rows, the next-page indicator and the
// total number of matching rows across all pages.
type ListingPage[Row any] struct {
	Items  []Row
	IsNext bool
	Total  int
}
