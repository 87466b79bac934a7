package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// Compare orders entries for display: catalogued recordings first, then by
// show, tour, date, date variant, master and finally numeric id.
func Compare(a, b Entry) int {
	ra, rb := a.recording(), b.recording()

	aHasID, bHasID := ra.ID != 0, rb.ID != 0
	if aHasID != bHasID {
		if aHasID {
			return -1
		}
		return 1
	}

	if c := compareFold(ra.Show, rb.Show); c != 0 {
		return c
	}
	if c := compareFold(ra.Tour, rb.Tour); c != 0 {
		return c
	}
	if c := strings.Compare(fullDate(ra.Date), fullDate(rb.Date)); c != 0 {
		return c
	}
	if c := strings.Compare(dateVariant(ra.Date), dateVariant(rb.Date)); c != 0 {
		return c
	}
	if c := compareFold(ra.Master, rb.Master); c != 0 {
		return c
	}
	return cmp.Compare(ra.ID, rb.ID)
}

// Sort orders entries in place using Compare. Equal entries keep their order.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, Compare)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func fullDate(d *Date) string {
	if d == nil {
		return ""
	}
	return d.FullDate
}

func dateVariant(d *Date) string {
	if d == nil {
		return ""
	}
	return d.DateVariant
}
