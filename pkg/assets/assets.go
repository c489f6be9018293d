package assets

import (
	"bytes"
	"embed"
	"io/fs"
	"sort"
	"strconv"
	"text/template"
)

// Head snippet keys. A session injects each key at most once.
const (
	KeyLightbox = "image_preview"
	KeyJSONView = "json_view"
)

//go:embed static
var static embed.FS

var headFiles = map[string]string{
	KeyLightbox: "static/lightbox.html",
	KeyJSONView: "static/jsonview.css",
}

var jsonViewScript = template.Must(
	template.New("jsonview.js.tmpl").
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		ParseFS(static, "static/jsonview.js.tmpl"),
)

// Head returns the shared head markup registered under key.
func Head(key string) (string, bool) {
	path, ok := headFiles[key]
	if !ok {
		return "", false
	}
	data, err := static.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// MustHead is like Head but panics on an unknown key.
func MustHead(key string) string {
	s, ok := Head(key)
	if !ok {
		panic("assets: unknown head snippet " + strconv.Quote(key))
	}
	return s
}

// Keys lists the registered head snippet keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(headFiles))
	for k := range headFiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// JSONViewScript renders the per-instance behaviour script of a JSON view
// with the given element id. Levels below zero collapse everything.
func JSONViewScript(id string, expandLevel int) (string, error) {
	if expandLevel < 0 {
		expandLevel = 0
	}
	var buf bytes.Buffer
	err := jsonViewScript.Execute(&buf, struct {
		ID          string
		ExpandLevel int
	}{id, expandLevel})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FS exposes the embedded static files.
func FS() fs.FS {
	return static
}
