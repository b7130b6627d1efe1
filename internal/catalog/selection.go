package catalog

// Toggle flips the Selected flag on the entry at index i and keeps the
// selection count in step. Out-of-range indexes are a silent no-op.
// Returns true if a flag actually changed.
func (c *Catalog) Toggle(i int) bool {
	e := c.At(i)
	if e == nil {
		return false
	}
	e.Selected = !e.Selected
	if e.Selected {
		c.selectedCount++
	} else {
		c.selectedCount--
	}
	return true
}

// ToggleAll flips every entry's Selected flag in one pass. The resulting
// count is the number of entries that were unselected before the call, so
// starting from nothing selected this is "select all"; starting from a mixed
// state it flips the mix. The quirk is deliberate and matched by tests.
func (c *Catalog) ToggleAll() int {
	newSelected := 0
	for i := range c.entries {
		if !c.entries[i].Selected {
			newSelected++
		}
		c.entries[i].Selected = !c.entries[i].Selected
	}
	c.selectedCount = newSelected
	return newSelected
}

// ClearAll unselects every entry. Used after a batch action completes.
func (c *Catalog) ClearAll() {
	for i := range c.entries {
		c.entries[i].Selected = false
	}
	c.selectedCount = 0
}
