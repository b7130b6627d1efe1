package catalog

import "testing"

func sortFixture() *Catalog {
	return New([]Entry{
		{Name: "Peach", AmiiboSeries: "Super Mario"},
		{Name: "Link", AmiiboSeries: "The Legend of Zelda"},
		{Name: "Isabelle"}, // no series
		{Name: "Mario", AmiiboSeries: "Super Mario"},
	})
}

func names(c *Catalog) []string {
	out := make([]string, c.Len())
	for i := 0; i < c.Len(); i++ {
		out[i] = c.At(i).Name
	}
	return out
}

func TestSortBy_SeriesAscendingMissingFirst(t *testing.T) {
	c := sortFixture()
	c.SortBy(SortOptions[0])

	got := names(c)
	// Missing series sorts before every present value; equal series keep
	// their relative order (stable sort).
	want := []string{"Isabelle", "Peach", "Mario", "Link"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortBy_SeriesDescendingMissingLast(t *testing.T) {
	c := sortFixture()
	c.SortBy(SortOptions[1])

	if got := c.At(c.Len() - 1).Name; got != "Isabelle" {
		t.Errorf("missing series should sort last descending, got %q at the end", got)
	}
	if got := c.At(0).AmiiboSeries; got != "The Legend of Zelda" {
		t.Errorf("first series = %q", got)
	}
}

func TestSortBy_NameAscending(t *testing.T) {
	c := sortFixture()
	c.SortBy(SortOptions[2])

	want := []string{"Isabelle", "Link", "Mario", "Peach"}
	got := names(c)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortBy_Idempotent(t *testing.T) {
	for _, opt := range SortOptions {
		t.Run(opt.Label(), func(t *testing.T) {
			c := sortFixture()
			c.SortBy(opt)
			once := names(c)
			c.SortBy(opt)
			twice := names(c)
			for i := range once {
				if once[i] != twice[i] {
					t.Fatalf("sorting twice changed order: %v vs %v", once, twice)
				}
			}
		})
	}
}

func TestSortBy_PreservesSelection(t *testing.T) {
	c := sortFixture()
	c.Toggle(1) // Link
	c.SortBy(SortOptions[2])

	if c.SelectedCount() != 1 {
		t.Fatalf("SelectedCount = %d, want 1", c.SelectedCount())
	}
	for i := 0; i < c.Len(); i++ {
		e := c.At(i)
		if e.Selected != (e.Name == "Link") {
			t.Errorf("selection did not follow entry %q through the sort", e.Name)
		}
	}
}

func TestSortOptionLabel(t *testing.T) {
	if got := SortOptions[0].Label(); got != "amiiboSeries ASC" {
		t.Errorf("Label = %q", got)
	}
	if got := SortOptions[3].Label(); got != "name DESC" {
		t.Errorf("Label = %q", got)
	}
}
