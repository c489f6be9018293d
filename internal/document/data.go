package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/dataviewer/internal/errors"
)

// Format is a data file encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	}
	return "", errors.New("DV006").WithDetailf("%s", path)
}

// LoadData reads and decodes a data file.
func LoadData(path string) (any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("DV011").WithDetail(path)
		}
		return nil, errors.New("DV011").WithDetail(path).Wrap(err)
	}
	v, err := DecodeData(format, raw)
	if err != nil {
		return nil, errors.New("DV008").WithDetail(path).Wrap(err)
	}
	return v, nil
}

// DecodeData decodes raw in the given format. JSON numbers are kept as
// json.Number so large integers survive.
func DecodeData(format Format, raw []byte) (any, error) {
	var v any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return normalize(v), nil
}

// EncodeData encodes rows in the given format.
func EncodeData(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatMsgpack:
		return msgpack.Marshal(v)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// Rows converts a decoded list of objects into table rows.
func Rows(v any) ([]map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("table data must be a list of objects, got %T", v)
	}
	rows := make([]map[string]any, 0, len(list))
	for i, item := range list {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("row %d is not an object", i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalize converts map[any]any, which some decoders produce for
// non-string keys, into map[string]any throughout v.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	}
	return v
}
