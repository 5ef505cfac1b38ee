// Package table implementa la grilla interactiva genérica: orden, filtro de texto,
// paginación, selección, filas expandibles y visibilidad de columnas.
//
// Una Table guarda el estado de un único usuario y no es segura para uso concurrente.
package table

import (
	"slices"
	"strconv"
)

const DefaultPageSize = 10

// RenderHint le indica al cliente cómo presentar el valor de una celda
type RenderHint string

const (
	RenderText         RenderHint = "text"
	RenderMono         RenderHint = "mono"
	RenderNumber       RenderHint = "number"
	RenderCurrency     RenderHint = "currency"
	RenderDate         RenderHint = "date"
	RenderBadge        RenderHint = "badge"
	RenderProgress     RenderHint = "progress"
	RenderSatisfaction RenderHint = "satisfaction"
	RenderLink         RenderHint = "link"
)

// Column describe una columna de forma declarativa
type Column[T any] struct {
	Key      string
	Header   string
	Accessor func(T) any
	// Display, si existe, produce el valor presentado en la celda; el orden y el filtro usan Accessor
	Display  func(T) any
	Render   RenderHint
	Sortable bool
	Hideable bool
}

type Options[T any] struct {
	Columns   []Column[T]
	SearchKey string
	PageSize  int
	// RowID da la identidad del registro; sin él se usa la posición en los datos
	RowID func(T) string
	// Detail produce el panel de una fila expandida
	Detail func(T) any
}

type SortSpec struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

type Status string

const (
	StatusLoading   Status = "loading"
	StatusEmpty     Status = "empty"
	StatusPopulated Status = "populated"
)

type Table[T any] struct {
	opts      Options[T]
	data      []T
	loading   bool
	sorting   []SortSpec
	filter    string
	hidden    map[string]bool
	selected  map[string]bool
	expanded  map[string]bool
	pageIndex int
}

type row[T any] struct {
	id     string
	record T
}

func New[T any](opts Options[T], data []T) *Table[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &Table[T]{
		opts:     opts,
		data:     data,
		hidden:   make(map[string]bool),
		selected: make(map[string]bool),
		expanded: make(map[string]bool),
	}
}

// SetData reemplaza la colección; selección y expansión se conservan por identidad
func (t *Table[T]) SetData(data []T) {
	t.data = data
	t.loading = false
	t.clampPage()
}

func (t *Table[T]) SetLoading(loading bool) {
	t.loading = loading
}

func (t *Table[T]) column(key string) (Column[T], bool) {
	for _, c := range t.opts.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

func (t *Table[T]) rowID(record T, index int) string {
	if t.opts.RowID != nil {
		return t.opts.RowID(record)
	}
	return strconv.Itoa(index)
}

// --- Orden ---

// ToggleSort avanza el ciclo sin orden → asc → desc → sin orden de la columna.
// Sin multi, el orden de las demás columnas se descarta.
func (t *Table[T]) ToggleSort(key string, multi bool) bool {
	col, ok := t.column(key)
	if !ok || !col.Sortable {
		return false
	}

	pos := slices.IndexFunc(t.sorting, func(s SortSpec) bool { return s.Key == key })

	var next *SortSpec
	switch {
	case pos < 0:
		next = &SortSpec{Key: key}
	case !t.sorting[pos].Desc:
		next = &SortSpec{Key: key, Desc: true}
	}

	if !multi {
		t.sorting = t.sorting[:0]
		if next != nil {
			t.sorting = append(t.sorting, *next)
		}
		return true
	}

	switch {
	case pos < 0:
		t.sorting = append(t.sorting, *next)
	case next == nil:
		t.sorting = slices.Delete(t.sorting, pos, pos+1)
	default:
		t.sorting[pos] = *next
	}
	return true
}

// SetSorting reemplaza el orden; las claves desconocidas o no ordenables se ignoran
func (t *Table[T]) SetSorting(specs []SortSpec) {
	t.sorting = t.sorting[:0]
	for _, s := range specs {
		col, ok := t.column(s.Key)
		if !ok || !col.Sortable {
			continue
		}
		if slices.ContainsFunc(t.sorting, func(e SortSpec) bool { return e.Key == s.Key }) {
			continue
		}
		t.sorting = append(t.sorting, s)
	}
}

func (t *Table[T]) Sorting() []SortSpec {
	return slices.Clone(t.sorting)
}

// --- Filtro ---

// SetFilter cambia el texto de búsqueda y vuelve a la primera página
func (t *Table[T]) SetFilter(query string) {
	t.filter = query
	t.pageIndex = 0
}

func (t *Table[T]) Filter() string {
	return t.filter
}

// --- Paginación ---

func (t *Table[T]) PageSize() int {
	return t.opts.PageSize
}

func (t *Table[T]) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	t.opts.PageSize = size
	t.clampPage()
}

func (t *Table[T]) PageIndex() int {
	return t.pageIndex
}

// SetPageIndex posiciona la página dentro del rango válido
func (t *Table[T]) SetPageIndex(index int) {
	t.pageIndex = index
	t.clampPage()
}

func (t *Table[T]) PageCount() int {
	return pageCount(len(t.filteredRows()), t.opts.PageSize)
}

func (t *Table[T]) CanPrevPage() bool {
	return t.pageIndex > 0
}

func (t *Table[T]) CanNextPage() bool {
	return t.pageIndex < t.PageCount()-1
}

func (t *Table[T]) NextPage() bool {
	if !t.CanNextPage() {
		return false
	}
	t.pageIndex++
	return true
}

func (t *Table[T]) PrevPage() bool {
	if !t.CanPrevPage() {
		return false
	}
	t.pageIndex--
	return true
}

func (t *Table[T]) clampPage() {
	last := t.PageCount() - 1
	if t.pageIndex > last {
		t.pageIndex = last
	}
	if t.pageIndex < 0 {
		t.pageIndex = 0
	}
}

func pageCount(rows, size int) int {
	if rows == 0 {
		return 0
	}
	return (rows + size - 1) / size
}

// --- Selección ---

func (t *Table[T]) SetRowSelected(id string, selected bool) {
	if selected {
		t.selected[id] = true
		return
	}
	delete(t.selected, id)
}

func (t *Table[T]) ToggleRowSelected(id string) {
	t.SetRowSelected(id, !t.selected[id])
}

func (t *Table[T]) IsRowSelected(id string) bool {
	return t.selected[id]
}

// ToggleAllPageRowsSelected marca o desmarca solo las filas de la página visible
func (t *Table[T]) ToggleAllPageRowsSelected(selected bool) {
	for _, r := range t.pageRows() {
		t.SetRowSelected(r.id, selected)
	}
}

func (t *Table[T]) IsAllPageRowsSelected() bool {
	rows := t.pageRows()
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if !t.IsRowSelected(r.id) {
			return false
		}
	}
	return true
}

// SelectedRows devuelve los registros seleccionados en el orden de los datos,
// estén o no visibles con el filtro actual
func (t *Table[T]) SelectedRows() []T {
	var out []T
	for i, record := range t.data {
		if t.IsRowSelected(t.rowID(record, i)) {
			out = append(out, record)
		}
	}
	return out
}

// --- Expansión ---

func (t *Table[T]) ToggleExpanded(id string) {
	if t.expanded[id] {
		delete(t.expanded, id)
		return
	}
	t.expanded[id] = true
}

func (t *Table[T]) IsExpanded(id string) bool {
	return t.expanded[id]
}

// --- Visibilidad de columnas ---

// SetColumnVisibility solo afecta a columnas ocultables
func (t *Table[T]) SetColumnVisibility(key string, visible bool) bool {
	col, ok := t.column(key)
	if !ok || !col.Hideable {
		return false
	}
	if visible {
		delete(t.hidden, key)
	} else {
		t.hidden[key] = true
	}
	return true
}

func (t *Table[T]) ToggleColumnVisibility(key string) bool {
	return t.SetColumnVisibility(key, t.hidden[key])
}

func (t *Table[T]) IsColumnVisible(key string) bool {
	return !t.hidden[key]
}

func (t *Table[T]) VisibleColumns() []Column[T] {
	out := make([]Column[T], 0, len(t.opts.Columns))
	for _, c := range t.opts.Columns {
		if !t.hidden[c.Key] {
			out = append(out, c)
		}
	}
	return out
}

// --- Modelo de filas ---

func (t *Table[T]) filteredRows() []row[T] {
	rows := make([]row[T], 0, len(t.data))
	search, hasSearch := t.column(t.opts.SearchKey)
	for i, record := range t.data {
		if hasSearch && t.filter != "" && !matches(search.Accessor(record), t.filter) {
			continue
		}
		rows = append(rows, row[T]{id: t.rowID(record, i), record: record})
	}
	return rows
}

func (t *Table[T]) sortedRows() []row[T] {
	rows := t.filteredRows()
	if len(t.sorting) == 0 {
		return rows
	}

	type sortCol struct {
		accessor func(T) any
		desc     bool
	}
	cols := make([]sortCol, 0, len(t.sorting))
	for _, s := range t.sorting {
		if c, ok := t.column(s.Key); ok {
			cols = append(cols, sortCol{accessor: c.Accessor, desc: s.Desc})
		}
	}

	slices.SortStableFunc(rows, func(a, b row[T]) int {
		for _, c := range cols {
			cmp := compareValues(c.accessor(a.record), c.accessor(b.record))
			if c.desc {
				cmp = -cmp
			}
			if cmp != 0 {
				return cmp
			}
		}
		return 0
	})
	return rows
}

func (t *Table[T]) pageRows() []row[T] {
	rows := t.sortedRows()
	start := t.pageIndex * t.opts.PageSize
	if start >= len(rows) {
		return nil
	}
	end := min(start+t.opts.PageSize, len(rows))
	return rows[start:end]
}
