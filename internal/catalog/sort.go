package catalog

import "sort"

// SortField selects which entry attribute a sort option orders by.
type SortField string

const (
	SortBySeries SortField = "amiiboSeries"
	SortByName   SortField = "name"
)

// SortOption is one field/direction pair from the fixed cycle.
type SortOption struct {
	Field      SortField
	Descending bool
}

// SortOptions is the fixed cycle the sort key advances through, in order.
var SortOptions = []SortOption{
	{Field: SortBySeries},
	{Field: SortBySeries, Descending: true},
	{Field: SortByName},
	{Field: SortByName, Descending: true},
}

// Label renders the option for the status line, e.g. "amiiboSeries ASC".
func (o SortOption) Label() string {
	dir := "ASC"
	if o.Descending {
		dir = "DESC"
	}
	return string(o.Field) + " " + dir
}

func (e *Entry) sortKey(f SortField) string {
	if f == SortBySeries {
		return e.AmiiboSeries
	}
	return e.Name
}

// SortBy reorders the catalog by the given option. The sort is stable so
// runs of equal keys keep their relative order across repeated sorts, and a
// missing field (empty key) orders before every present value ascending and
// after descending.
func (c *Catalog) SortBy(opt SortOption) {
	sort.SliceStable(c.entries, func(i, j int) bool {
		a := c.entries[i].sortKey(opt.Field)
		b := c.entries[j].sortKey(opt.Field)
		if opt.Descending {
			return a > b
		}
		return a < b
	})
}
