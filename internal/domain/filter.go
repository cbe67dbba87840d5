package domain

import "time"

// FilterSpec selects rows by inclusive calendar-date range and a strict
// category allow-list. An empty allow-list matches nothing.
type FilterSpec struct {
	StartDate  time.Time
	EndDate    time.Time
	Categories []string
}

// NewFilterSpec builds a FilterSpec, copying the category list
func NewFilterSpec(start, end time.Time, categories []string) FilterSpec {
	cats := make([]string, len(categories))
	copy(cats, categories)
	return FilterSpec{
		StartDate:  start,
		EndDate:    end,
		Categories: cats,
	}
}

// CategorySet returns the allow-list as a lookup set
func (f FilterSpec) CategorySet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.Categories))
	for _, c := range f.Categories {
		set[c] = struct{}{}
	}
	return set
}
