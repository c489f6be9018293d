package document

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/ui"
)

// Kinds lists the body entry kinds a document may use.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type buildFunc func(b *builder, spec *yaml.Node) error

var kinds map[string]buildFunc

func init() {
	kinds = map[string]buildFunc{
		"container":  (*builder).container,
		"row":        (*builder).row,
		"column":     (*builder).column,
		"grid":       (*builder).grid,
		"header":     (*builder).header,
		"tag":        (*builder).tag,
		"text_input": (*builder).textInput,
		"button":     (*builder).button,
		"image":      (*builder).image,
		"video":      (*builder).video,
		"json":       (*builder).jsonView,
		"table":      (*builder).table,
	}
}

type builder struct {
	doc     *Document
	session *ui.Session
}

type commonSpec struct {
	ID    *string           `yaml:"id"`
	Attrs map[string]string `yaml:"attrs"`
}

func (c commonSpec) common() ui.Common {
	return ui.Common{ID: c.ID, Attrs: c.Attrs}
}

type spacingSpec struct {
	Gap     string `yaml:"gap"`
	Padding string `yaml:"padding"`
	Margin  string `yaml:"margin"`
}

func (sp spacingSpec) spacing() ui.Spacing {
	return ui.Spacing{Gap: sp.Gap, Padding: sp.Padding, Margin: sp.Margin}
}

// node builds one body entry.
func (b *builder) node(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return b.doc.nodeError("DV005", n).WithDetail("expected a mapping with a single kind key")
	}
	key, spec := n.Content[0], n.Content[1]
	build, ok := kinds[key.Value]
	if !ok {
		return b.doc.nodeError("DV005", key).
			WithDetailf("unknown node kind %q", key.Value).
			WithSuggestion("Known kinds: " + strings.Join(Kinds(), ", ") + ".")
	}
	if spec.Kind == yaml.ScalarNode && spec.Tag == "!!null" {
		spec = &yaml.Node{Kind: yaml.MappingNode, Line: spec.Line, Column: spec.Column}
	}
	if err := build(b, spec); err != nil {
		return b.locate(err, spec)
	}
	return nil
}

// locate attaches spec's position to coded errors that have none.
func (b *builder) locate(err error, spec *yaml.Node) error {
	var e *errors.Error
	if errors.As(err, &e) && e.Location == nil {
		return e.WithLocation(b.doc.Path, spec.Line, spec.Column)
	}
	return err
}

// decode decodes a spec mapping into v.
func (b *builder) decode(spec *yaml.Node, v any) error {
	if spec.Kind != yaml.MappingNode {
		return b.doc.nodeError("DV005", spec).WithDetail("expected a mapping of properties")
	}
	if err := spec.Decode(v); err != nil {
		return b.doc.nodeError("DV005", spec).Wrap(err)
	}
	return nil
}

// children builds the entries in list within the scope of parent.
func (b *builder) children(parent ui.ChildAcceptor, list []yaml.Node) error {
	return b.session.Within(parent, func() error {
		for i := range list {
			if err := b.node(&list[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *builder) container(spec *yaml.Node) error {
	var p struct {
		commonSpec  `yaml:",inline"`
		spacingSpec `yaml:",inline"`
		Children    []yaml.Node `yaml:"children"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	c, err := ui.NewContainer(b.session, ui.ContainerProps{Common: p.common(), Spacing: p.spacing()})
	if err != nil {
		return err
	}
	return b.children(c, p.Children)
}

func (b *builder) row(spec *yaml.Node) error {
	var p struct {
		commonSpec  `yaml:",inline"`
		spacingSpec `yaml:",inline"`
		Justify     string      `yaml:"justify"`
		Align       string      `yaml:"align"`
		Wrap        bool        `yaml:"wrap"`
		Children    []yaml.Node `yaml:"children"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	r, err := ui.NewRow(b.session, ui.RowProps{
		Common:  p.common(),
		Spacing: p.spacing(),
		Justify: p.Justify,
		Align:   p.Align,
		Wrap:    p.Wrap,
	})
	if err != nil {
		return err
	}
	return b.children(r, p.Children)
}

func (b *builder) column(spec *yaml.Node) error {
	var p struct {
		commonSpec  `yaml:",inline"`
		spacingSpec `yaml:",inline"`
		Justify     string      `yaml:"justify"`
		Align       string      `yaml:"align"`
		Children    []yaml.Node `yaml:"children"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	c, err := ui.NewColumn(b.session, ui.ColumnProps{
		Common:  p.common(),
		Spacing: p.spacing(),
		Justify: p.Justify,
		Align:   p.Align,
	})
	if err != nil {
		return err
	}
	return b.children(c, p.Children)
}

func (b *builder) grid(spec *yaml.Node) error {
	var p struct {
		commonSpec  `yaml:",inline"`
		spacingSpec `yaml:",inline"`
		Cols        int         `yaml:"cols"`
		Rows        int         `yaml:"rows"`
		Children    []yaml.Node `yaml:"children"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	g, err := ui.NewGrid(b.session, ui.GridProps{
		Common:  p.common(),
		Spacing: p.spacing(),
		Cols:    p.Cols,
		Rows:    p.Rows,
	})
	if err != nil {
		return err
	}
	return b.children(g, p.Children)
}

func (b *builder) header(spec *yaml.Node) error {
	var p struct {
		commonSpec `yaml:",inline"`
		Text       string `yaml:"text"`
		Level      *int   `yaml:"level"`
		Align      string `yaml:"align"`
		Color      string `yaml:"color"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	_, err := ui.NewHeader(b.session, ui.HeaderProps{
		Common: p.common(),
		Text:   p.Text,
		Level:  p.Level,
		Align:  p.Align,
		Color:  p.Color,
	})
	return err
}

func (b *builder) tag(spec *yaml.Node) error {
	var p struct {
		commonSpec `yaml:",inline"`
		Text       string `yaml:"text"`
		Color      string `yaml:"color"`
		Size       string `yaml:"size"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	_, err := ui.NewTag(b.session, ui.TagProps{Common: p.common(), Text: p.Text, Color: p.Color, Size: p.Size})
	return err
}

func (b *builder) textInput(spec *yaml.Node) error {
	var p struct {
		commonSpec  `yaml:",inline"`
		Label       string `yaml:"label"`
		Placeholder string `yaml:"placeholder"`
		Value       string `yaml:"value"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	_, err := ui.NewTextInput(b.session, ui.TextInputProps{
		Common:      p.common(),
		Label:       p.Label,
		Placeholder: p.Placeholder,
		Value:       p.Value,
	})
	return err
}

func (b *builder) button(spec *yaml.Node) error {
	var p struct {
		commonSpec `yaml:",inline"`
		Text       string `yaml:"text"`
		Label      string `yaml:"label"`
		OnClick    string `yaml:"onclick"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	_, err := ui.NewButton(b.session, ui.ButtonProps{
		Common:  p.common(),
		Text:    p.Text,
		Label:   p.Label,
		OnClick: p.OnClick,
	})
	return err
}

func (b *builder) image(spec *yaml.Node) error {
	var p struct {
		commonSpec `yaml:",inline"`
		Src        string `yaml:"src"`
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
		Alt        string `yaml:"alt"`
		Class      string `yaml:"class"`
		Eager      bool   `yaml:"eager"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	_, err := ui.NewImage(b.session, ui.ImageProps{
		Common: p.common(),
		Src:    b.imageSource(p.Src),
		Width:  p.Width,
		Height: p.Height,
		Alt:    p.Alt,
		Class:  p.Class,
		Eager:  p.Eager,
	})
	return err
}

// imageSource anchors local image paths at the document directory.
func (b *builder) imageSource(src string) string {
	if src == "" || ui.IsRemoteImage(src) {
		return src
	}
	return b.doc.resolve(strings.TrimPrefix(src, "img://"))
}

func (b *builder) video(spec *yaml.Node) error {
	var p struct {
		commonSpec `yaml:",inline"`
		Src        string `yaml:"src"`
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
		Class      string `yaml:"class"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	_, err := ui.NewVideo(b.session, ui.VideoProps{
		Common: p.common(),
		Src:    p.Src,
		Width:  p.Width,
		Height: p.Height,
		Class:  p.Class,
	})
	return err
}

func (b *builder) jsonView(spec *yaml.Node) error {
	var p struct {
		commonSpec  `yaml:",inline"`
		Data        yaml.Node `yaml:"data"`
		DataFile    string    `yaml:"data_file"`
		Theme       string    `yaml:"theme"`
		ExpandLevel int       `yaml:"expand_level"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	data, err := b.data(&p.Data, p.DataFile)
	if err != nil {
		return err
	}
	_, err = ui.NewJSONView(b.session, ui.JSONViewProps{
		Common:      p.common(),
		Data:        data,
		Theme:       p.Theme,
		ExpandLevel: p.ExpandLevel,
	})
	return err
}

type columnSpec struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
}

// UnmarshalYAML accepts a bare key as shorthand for {key: ...}.
func (c *columnSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		c.Key = n.Value
		return nil
	}
	type plain columnSpec
	return n.Decode((*plain)(c))
}

func (b *builder) table(spec *yaml.Node) error {
	var p struct {
		commonSpec     `yaml:",inline"`
		Data           yaml.Node         `yaml:"data"`
		DataFile       string            `yaml:"data_file"`
		Columns        []columnSpec      `yaml:"columns"`
		SortBy         string            `yaml:"sort_by"`
		SortDesc       bool              `yaml:"sort_desc"`
		PageSize       int               `yaml:"page_size"`
		Page           int               `yaml:"page"`
		ColumnWidths   map[string]string `yaml:"column_widths"`
		MinColumnWidth int               `yaml:"min_column_width"`
		MaxColumnWidth int               `yaml:"max_column_width"`
		MaxCellHeight  int               `yaml:"max_cell_height"`
		Compact        bool              `yaml:"compact"`
		DisableStripes bool              `yaml:"disable_stripes"`
		DisableHover   bool              `yaml:"disable_hover"`
		Borderless     bool              `yaml:"borderless"`
	}
	if err := b.decode(spec, &p); err != nil {
		return err
	}
	data, err := b.data(&p.Data, p.DataFile)
	if err != nil {
		return err
	}
	rows, err := Rows(data)
	if err != nil {
		return b.doc.nodeError("DV008", spec).WithDetail(err.Error())
	}

	var columns []ui.TableColumn
	for _, c := range p.Columns {
		columns = append(columns, ui.TableColumn{Key: c.Key, Title: c.Title})
	}
	_, err = ui.NewTable(b.session, ui.TableProps{
		Common:         p.common(),
		Data:           rows,
		Columns:        columns,
		SortBy:         p.SortBy,
		SortDesc:       p.SortDesc,
		PageSize:       p.PageSize,
		Page:           p.Page,
		ColumnWidths:   p.ColumnWidths,
		MinColumnWidth: p.MinColumnWidth,
		MaxColumnWidth: p.MaxColumnWidth,
		MaxCellHeight:  p.MaxCellHeight,
		Compact:        p.Compact,
		DisableStripes: p.DisableStripes,
		DisableHover:   p.DisableHover,
		Borderless:     p.Borderless,
	})
	return err
}

// data returns inline data, or the contents of file when set.
func (b *builder) data(inline *yaml.Node, file string) (any, error) {
	if file != "" {
		path := b.doc.resolve(file)
		b.doc.files[path] = struct{}{}
		return LoadData(path)
	}
	if inline.Kind == 0 {
		return nil, nil
	}
	var v any
	if err := inline.Decode(&v); err != nil {
		return nil, b.doc.nodeError("DV008", inline).Wrap(err)
	}
	return normalize(v), nil
}
