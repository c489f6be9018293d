package cell

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/vango-dev/dataviewer/pkg/vdom"
)

// DefaultRenderer accepts every value and renders it as escaped text.
type DefaultRenderer struct{}

func (DefaultRenderer) Level() int               { return -1 }
func (DefaultRenderer) CanRender(any) bool       { return true }
func (DefaultRenderer) String() string           { return "DefaultRenderer" }
func (DefaultRenderer) Render(v any) *vdom.VNode { return vdom.Text(Stringify(v)) }

// Stringify converts a cell value to display text: nil is empty, booleans
// are Yes/No, slices and maps are indented JSON, and everything else uses
// its default format.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	}

	if IsStructured(v) {
		if s, err := PrettyJSON(v); err == nil {
			return s
		}
	}
	return fmt.Sprint(v)
}

// IsStructured reports whether v is a slice, array or map.
func IsStructured(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// PrettyJSON encodes v as two-space indented JSON without HTML escaping.
// Map keys are sorted.
func PrettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
