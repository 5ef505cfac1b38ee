package table

import "slices"

// State es la forma serializable del estado de una tabla
type State struct {
	Sorting   []SortSpec `json:"sorting"`
	Filter    string     `json:"filter"`
	Hidden    []string   `json:"hidden"`
	Selected  []string   `json:"selected"`
	Expanded  []string   `json:"expanded"`
	PageIndex int        `json:"pageIndex"`
	PageSize  int        `json:"pageSize"`
}

func (t *Table[T]) Snapshot() State {
	return State{
		Sorting:   t.Sorting(),
		Filter:    t.filter,
		Hidden:    sortedKeys(t.hidden),
		Selected:  sortedKeys(t.selected),
		Expanded:  sortedKeys(t.expanded),
		PageIndex: t.pageIndex,
		PageSize:  t.opts.PageSize,
	}
}

// Restore aplica un estado guardado; la página se ajusta al rango después del filtro
func (t *Table[T]) Restore(s State) {
	t.SetPageSize(s.PageSize)
	t.SetSorting(s.Sorting)
	t.SetFilter(s.Filter)

	clear(t.hidden)
	for _, key := range s.Hidden {
		t.SetColumnVisibility(key, false)
	}
	clear(t.selected)
	for _, id := range s.Selected {
		t.selected[id] = true
	}
	clear(t.expanded)
	for _, id := range s.Expanded {
		t.expanded[id] = true
	}
	t.SetPageIndex(s.PageIndex)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
