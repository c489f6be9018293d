// Package document loads YAML document definitions and builds them into
// pages.
//
// A document has a title, an optional body padding and a body list. Each
// body entry is a mapping with exactly one key naming the component kind:
//
//	title: Demo
//	padding: "4"
//	body:
//	  - header: {text: Hello, level: 1, color: blue}
//	  - row:
//	      justify: between
//	      children:
//	        - tag: {text: new, color: green}
//	        - button: {text: Go}
//	  - table: {data_file: rows.json, page_size: 10, sort_by: id, sort_desc: true}
//
// Relative data and image paths resolve against the document's directory.
package document

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/dataviewer/internal/errors"
	"github.com/vango-dev/dataviewer/pkg/ui"
)

// Document is a parsed document definition.
type Document struct {
	// Path is the file the document was read from. It anchors relative
	// paths and error locations.
	Path string

	Title   string
	Padding string
	Lang    string

	body  []yaml.Node
	files map[string]struct{}
}

type file struct {
	Title   string      `yaml:"title"`
	Padding string      `yaml:"padding"`
	Lang    string      `yaml:"lang"`
	Body    []yaml.Node `yaml:"body"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.New("DV010").WithDetail(path).Wrap(err)
	}
	raw, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("DV010").WithDetail(path)
		}
		return nil, errors.New("DV010").WithDetail(path).Wrap(err)
	}
	return Parse(abs, raw)
}

// Parse parses a document. path is used for relative paths and error
// locations only.
func Parse(path string, raw []byte) (*Document, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.New("DV009").WithDetail(path).Wrap(err)
	}
	return &Document{
		Path:    path,
		Title:   f.Title,
		Padding: f.Padding,
		Lang:    f.Lang,
		body:    f.Body,
	}, nil
}

// Dir is the directory relative paths resolve against.
func (d *Document) Dir() string {
	if d.Path == "" {
		return "."
	}
	return filepath.Dir(d.Path)
}

// Build creates the document's components in s and returns the page
// holding them. Containers are filled through the session scope stack.
func (d *Document) Build(s *ui.Session, opts ...ui.PageOption) (*ui.Page, error) {
	d.files = make(map[string]struct{})
	if d.Lang != "" {
		opts = append([]ui.PageOption{ui.WithLang(d.Lang)}, opts...)
	}
	page := ui.NewPage(s, ui.PageProps{Title: d.Title, Padding: d.Padding}, opts...)

	b := &builder{doc: d, session: s}
	err := page.Build(func() error {
		for i := range d.body {
			if err := b.node(&d.body[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger().Debug("document built",
		"path", d.Path,
		"components", len(s.IDs()),
		"data_files", len(d.files),
	)
	return page, nil
}

// Files returns the data files read by the last Build, sorted.
func (d *Document) Files() []string {
	out := make([]string, 0, len(d.files))
	for f := range d.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// resolve makes a document-relative path absolute.
func (d *Document) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.Dir(), path)
}

// nodeError locates err at n.
func (d *Document) nodeError(code string, n *yaml.Node) *errors.Error {
	return errors.New(code).WithLocation(d.Path, n.Line, n.Column)
}
