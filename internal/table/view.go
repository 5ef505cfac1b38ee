package table

import "slices"

type HeaderCell struct {
	Key      string     `json:"key"`
	Header   string     `json:"header"`
	Render   RenderHint `json:"render"`
	Sortable bool       `json:"sortable"`
	Hideable bool       `json:"hideable"`
	Sort     string     `json:"sort,omitempty"`
}

type Cell struct {
	Key    string     `json:"key"`
	Value  any        `json:"value"`
	Render RenderHint `json:"render"`
}

type Row[T any] struct {
	ID       string `json:"id"`
	Record   T      `json:"-"`
	Cells    []Cell `json:"cells"`
	Selected bool   `json:"selected"`
	Expanded bool   `json:"expanded"`
	Detail   any    `json:"detail,omitempty"`
}

// View es la página ya calculada. Una colección vacía produce StatusEmpty, nunca un error.
type View[T any] struct {
	Status          Status       `json:"status"`
	Columns         []HeaderCell `json:"columns"`
	Rows            []Row[T]     `json:"rows"`
	Sorting         []SortSpec   `json:"sorting"`
	Filter          string       `json:"filter"`
	PageIndex       int          `json:"pageIndex"`
	PageSize        int          `json:"pageSize"`
	PageCount       int          `json:"pageCount"`
	FilteredCount   int          `json:"filteredCount"`
	TotalCount      int          `json:"totalCount"`
	SelectedCount   int          `json:"selectedCount"`
	AllPageSelected bool         `json:"allPageSelected"`
	CanPrevPage     bool         `json:"canPrevPage"`
	CanNextPage     bool         `json:"canNextPage"`
}

func (t *Table[T]) View() View[T] {
	columns := t.VisibleColumns()

	v := View[T]{
		Columns:   make([]HeaderCell, 0, len(columns)),
		Rows:      []Row[T]{},
		Sorting:   t.Sorting(),
		Filter:    t.filter,
		PageIndex: t.pageIndex,
		PageSize:  t.opts.PageSize,
	}
	for _, c := range columns {
		h := HeaderCell{Key: c.Key, Header: c.Header, Render: c.Render, Sortable: c.Sortable, Hideable: c.Hideable}
		if i := slices.IndexFunc(v.Sorting, func(s SortSpec) bool { return s.Key == c.Key }); i >= 0 {
			h.Sort = "asc"
			if v.Sorting[i].Desc {
				h.Sort = "desc"
			}
		}
		v.Columns = append(v.Columns, h)
	}

	if t.loading {
		v.Status = StatusLoading
		return v
	}

	filtered := t.filteredRows()
	v.FilteredCount = len(filtered)
	v.TotalCount = len(t.data)
	v.PageCount = pageCount(len(filtered), t.opts.PageSize)
	v.SelectedCount = len(t.SelectedRows())
	v.AllPageSelected = t.IsAllPageRowsSelected()
	v.CanPrevPage = t.CanPrevPage()
	v.CanNextPage = t.CanNextPage()

	for _, r := range t.pageRows() {
		out := Row[T]{
			ID:       r.id,
			Record:   r.record,
			Cells:    make([]Cell, 0, len(columns)),
			Selected: t.IsRowSelected(r.id),
			Expanded: t.expanded[r.id],
		}
		for _, c := range columns {
			out.Cells = append(out.Cells, renderCell(c, r.record))
		}
		if out.Expanded && t.opts.Detail != nil {
			out.Detail = t.opts.Detail(r.record)
		}
		v.Rows = append(v.Rows, out)
	}

	if len(v.Rows) == 0 {
		v.Status = StatusEmpty
	} else {
		v.Status = StatusPopulated
	}
	return v
}

func renderCell[T any](c Column[T], record T) Cell {
	value := c.Display
	if value == nil {
		value = c.Accessor
	}
	return Cell{Key: c.Key, Value: value(record), Render: c.Render}
}
