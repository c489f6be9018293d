package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/cell"
	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// Table defaults.
const (
	DefaultColumnWidth = 300
	LongTextRunes      = 50
)

const (
	tableBaseClass   = "table-auto divide-y divide-gray-200 bg-white"
	tableHeaderClass = "text-left text-xs font-medium text-gray-500 uppercase tracking-wider whitespace-normal break-words"
	cellClass        = "px-4 py-3"
	compactCellClass = "px-2 py-2"
	wrapCellClass    = "whitespace-normal break-words overflow-hidden"
	imageBoxClass    = "w-[120px] h-[120px] flex items-center justify-center overflow-hidden"
)

// TableColumn is a table column. An empty Title is derived from Key.
type TableColumn struct {
	Key   string
	Title string
}

// ColumnKind classifies a column by the value in its first row.
type ColumnKind int

const (
	ColumnDefault ColumnKind = iota
	ColumnImage
	ColumnImageList
	ColumnLongText
	ColumnStructured
)

func (k ColumnKind) String() string {
	switch k {
	case ColumnImage:
		return "image"
	case ColumnImageList:
		return "image-list"
	case ColumnLongText:
		return "long-text"
	case ColumnStructured:
		return "structured"
	default:
		return "default"
	}
}

// TableProps configures a Table.
type TableProps struct {
	Common

	// Data holds one map per row.
	Data []map[string]any

	// Columns are shown in order. Empty means every key of every row,
	// sorted alphabetically.
	Columns []TableColumn

	// SortBy is the key to sort rows by. Empty keeps the input order.
	SortBy   string
	SortDesc bool

	// PageSize enables pagination when positive. Page is 1-based.
	PageSize int
	Page     int

	// ColumnWidths maps keys to a CSS width that overrides the
	// classification-based width.
	ColumnWidths map[string]string

	// MinColumnWidth and MaxColumnWidth bound long text columns, in pixels.
	// Default DefaultColumnWidth.
	MinColumnWidth int
	MaxColumnWidth int

	// MaxCellHeight caps <pre> cells in pixels and makes them scroll.
	MaxCellHeight int

	Compact        bool
	DisableStripes bool
	DisableHover   bool
	Borderless     bool
}

// Table renders rows of key/value data. Cell values are rendered through
// the session's cell renderer registry.
type Table struct {
	Base
	p       TableProps
	columns []TableColumn
}

// NewTable creates a table. Negative sizes or a min width above the max
// width fail with ErrInvalidArgument.
func NewTable(s *Session, p TableProps) (*Table, error) {
	switch {
	case p.PageSize < 0:
		return nil, errors.New("DV004").WithDetailf("page size %d is negative", p.PageSize)
	case p.MinColumnWidth < 0 || p.MaxColumnWidth < 0 || p.MaxCellHeight < 0:
		return nil, errors.New("DV004").WithDetail("widths and heights must not be negative")
	}
	if p.MinColumnWidth == 0 {
		p.MinColumnWidth = DefaultColumnWidth
	}
	if p.MaxColumnWidth == 0 {
		p.MaxColumnWidth = DefaultColumnWidth
	}
	if p.MinColumnWidth > p.MaxColumnWidth {
		return nil, errors.New("DV004").
			WithDetailf("min column width %d exceeds max %d", p.MinColumnWidth, p.MaxColumnWidth)
	}
	if p.Page < 1 {
		p.Page = 1
	}

	base, err := newBase(s, "table", p.Common)
	if err != nil {
		return nil, err
	}

	columns := make([]TableColumn, 0, len(p.Columns))
	for _, c := range p.Columns {
		if c.Title == "" {
			c.Title = ColumnTitle(c.Key)
		}
		columns = append(columns, c)
	}
	if len(columns) == 0 {
		columns = InferColumns(p.Data)
	}

	t := &Table{Base: base, p: p, columns: columns}
	if err := s.adopt(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Columns returns the displayed columns.
func (t *Table) Columns() []TableColumn {
	out := make([]TableColumn, len(t.columns))
	copy(out, t.columns)
	return out
}

// InferColumns returns the sorted union of keys across rows.
func InferColumns(rows []map[string]any) []TableColumn {
	seen := make(map[string]bool)
	var keys []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	columns := make([]TableColumn, len(keys))
	for i, k := range keys {
		columns[i] = TableColumn{Key: k, Title: ColumnTitle(k)}
	}
	return columns
}

// ColumnTitle derives a title from a key: underscores become spaces and
// every word is capitalized.
func ColumnTitle(key string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range strings.ReplaceAll(key, "_", " ") {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DisplayRows returns the rows after sorting and pagination.
func (t *Table) DisplayRows() []map[string]any {
	rows := make([]map[string]any, len(t.p.Data))
	copy(rows, t.p.Data)

	if t.p.SortBy != "" {
		key, desc := t.p.SortBy, t.p.SortDesc
		sort.SliceStable(rows, func(i, j int) bool {
			a, aok := rows[i][key]
			b, bok := rows[j][key]
			if desc {
				return compareValues(b, bok, a, aok) < 0
			}
			return compareValues(a, aok, b, bok) < 0
		})
	}

	if size := t.p.PageSize; size > 0 {
		// Compare page indexes before multiplying so huge pages cannot overflow.
		pages := len(rows) / size
		if len(rows)%size != 0 {
			pages++
		}
		if t.p.Page-1 >= pages {
			return nil
		}
		start := (t.p.Page - 1) * size
		end := len(rows)
		if size < end-start {
			end = start + size
		}
		rows = rows[start:end]
	}
	return rows
}

// compareValues orders missing values first, numbers numerically, strings
// lexicographically and anything else by its string form.
func compareValues(a any, aok bool, b any, bok bool) int {
	aok = aok && a != nil
	bok = bok && b != nil
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}

	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// ColumnKinds classifies every column by the first row's value.
func (t *Table) ColumnKinds() map[string]ColumnKind {
	kinds := make(map[string]ColumnKind, len(t.columns))
	var first map[string]any
	if len(t.p.Data) > 0 {
		first = t.p.Data[0]
	}
	for _, c := range t.columns {
		kinds[c.Key] = t.classify(first[c.Key])
	}
	return kinds
}

func (t *Table) classify(v any) ColumnKind {
	cells := t.session.Cells()

	if items, ok := listItems(v); ok {
		for _, item := range items {
			if _, ok := item.(string); !ok {
				continue
			}
			if r, ok := cells.Match(item); ok && cell.MediaOf(r) == cell.MediaImage {
				return ColumnImageList
			}
		}
		return ColumnStructured
	}
	if r, ok := cells.Match(v); ok && cell.MediaOf(r) == cell.MediaImage {
		return ColumnImage
	}
	switch val := v.(type) {
	case string:
		if utf8.RuneCountInString(val) > LongTextRunes {
			return ColumnLongText
		}
	case map[string]any:
		return ColumnStructured
	default:
		if cell.IsStructured(v) {
			return ColumnStructured
		}
	}
	return ColumnDefault
}

// listItems returns the elements of a []any or []string.
func listItems(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

func (t *Table) widthStyle(key string, kind ColumnKind) string {
	if w, ok := t.p.ColumnWidths[key]; ok && w != "" {
		return "width: " + w
	}
	switch kind {
	case ColumnImageList:
		return "max-width: 1200px"
	case ColumnImage:
		return "max-width: 600px"
	case ColumnLongText:
		return "min-width: " + strconv.Itoa(t.p.MinColumnWidth) + "px; max-width: " + strconv.Itoa(t.p.MaxColumnWidth) + "px"
	default:
		return "max-width: 600px; min-width: 120px"
	}
}

// Node implements Component. A table without data renders nothing.
func (t *Table) Node() (*vdom.VNode, error) {
	if len(t.p.Data) == 0 {
		return nil, nil
	}

	base := cellClass
	if t.p.Compact {
		base = compactCellClass
	}
	kinds := t.ColumnKinds()

	header := vdom.Tr()
	for _, c := range t.columns {
		header.Append(vdom.Th(
			vdom.Scope("col"),
			vdom.Class(tableHeaderClass, base),
			vdom.StyleAttr(t.widthStyle(c.Key, kinds[c.Key])),
			c.Title,
		))
	}

	body := vdom.Tbody(vdom.Class("divide-y divide-gray-200 bg-white"))
	for i, row := range t.DisplayRows() {
		tr := vdom.Tr()
		for _, c := range t.columns {
			kind := kinds[c.Key]
			value, ok := row[c.Key]
			if !ok {
				value = ""
			}

			classes := []string{base}
			if !t.p.DisableStripes && i%2 == 1 {
				classes = append(classes, "bg-gray-50")
			}
			if !t.p.DisableHover {
				classes = append(classes, "hover:bg-gray-100")
			}
			if kind != ColumnImage && kind != ColumnImageList {
				classes = append(classes, wrapCellClass)
			}

			tr.Append(vdom.Td(
				vdom.Class(classes...),
				vdom.StyleAttr(t.widthStyle(c.Key, kind)),
				t.renderCell(value, kind),
			))
		}
		body.Append(tr)
	}

	border := "border"
	if t.p.Borderless {
		border = ""
	}
	table := vdom.Table(
		vdom.ID(t.id),
		vdom.Class(tableBaseClass, border),
		vdom.Thead(vdom.Class("sticky top-0 z-50 bg-gray-50 shadow-sm backdrop-blur-sm bg-opacity-75"), header),
		body,
	)
	t.decorate(table)

	return vdom.Div(vdom.Class("relative rounded-lg shadow"),
		vdom.Div(vdom.Class("overflow-x-auto rounded-lg"), table),
	), nil
}

func (t *Table) renderCell(v any, kind ColumnKind) *vdom.VNode {
	s := t.session
	cells := s.Cells()

	if kind == ColumnImageList {
		if items, ok := listItems(v); ok {
			name := "fallback"
			grid := vdom.Div(vdom.Class("grid grid-cols-5 gap-1 w-[620px]"))
			for _, item := range items {
				r, ok := cells.Match(item)
				if !ok || cell.MediaOf(r) != cell.MediaImage {
					continue
				}
				name = cell.Name(r)
				grid.Append(vdom.Div(vdom.Class(imageBoxClass), r.Render(item)))
			}
			s.observer.CellRendered(name)
			return grid
		}
	}

	if m, ok := v.(map[string]any); ok {
		s.observer.CellRendered("json")
		style := ""
		if t.p.MaxCellHeight > 0 {
			style = "max-height: " + strconv.Itoa(t.p.MaxCellHeight) + "px; overflow: auto"
		}
		text, err := cell.PrettyJSON(m)
		if err != nil {
			text = cell.Stringify(m)
		}
		return vdom.Pre(vdom.Class("text-xs"), vdom.StyleAttr(style), text)
	}

	if r, ok := cells.Match(v); ok {
		s.observer.CellRendered(cell.Name(r))
		return r.Render(v)
	}
	s.observer.CellRendered("fallback")
	return vdom.Text(cell.Stringify(v))
}
