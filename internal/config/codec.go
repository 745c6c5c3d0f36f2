package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const indent = "    "

// Record is the on-disk unit: the owning plugin and its payload.
//
// Every codec decodes whole numbers as int and other numbers as float64.
// TOML has no null, so the toml codec drops entries whose value is nil.
type Record struct {
	Plugin string         `json:"plugin" yaml:"plugin" toml:"plugin"`
	Config map[string]any `json:"config" yaml:"config" toml:"config"`
}

// Codec encodes and decodes a record document for one file extension.
type Codec interface {
	Encode(rec Record) ([]byte, error)
	Decode(data []byte) (map[string]any, error)
}

var codecs = map[string]Codec{
	"js":   moduleCodec{},
	"json": jsonCodec{},
	"yaml": yamlCodec{},
	"yml":  yamlCodec{},
	"toml": tomlCodec{},
}

// CodecFor returns the codec for a file path's extension. Unknown extensions
// use plain JSON.
func CodecFor(path string) Codec {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if c, ok := codecs[ext]; ok {
		return c
	}
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) Encode(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (jsonCodec) Decode(data []byte) (map[string]any, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	switch doc := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return doc, nil
	default:
		return nil, fmt.Errorf("parsing JSON: document is %T, not an object", v)
	}
}

// decodeJSON decodes a single JSON value, keeping integers as int the way
// the yaml codec does.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return normalizeNumbers(v), nil
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 0); err == nil {
			return int(i)
		}
		f, _ := strconv.ParseFloat(t.String(), 64)
		return f
	case map[string]any:
		for k, x := range t {
			t[k] = normalizeNumbers(x)
		}
	case []any:
		for i, x := range t {
			t[i] = normalizeNumbers(x)
		}
	}
	return v
}

const (
	modulePrefix = "module.exports = "
	moduleSuffix = ";"
)

// moduleCodec reads and writes "module.exports = {...};" files shared with
// the JavaScript side of the tool family. The exported value must be JSON.
type moduleCodec struct{}

func (moduleCodec) Encode(rec Record) ([]byte, error) {
	body, err := jsonCodec{}.Encode(rec)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(modulePrefix)+len(body)+len(moduleSuffix))
	out = append(out, modulePrefix...)
	out = append(out, body...)
	out = append(out, moduleSuffix...)
	return out, nil
}

func (moduleCodec) Decode(data []byte) (map[string]any, error) {
	s := strings.TrimSpace(string(data))
	s = strings.TrimPrefix(s, "'use strict';")
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "module.exports") {
		return nil, fmt.Errorf("missing module.exports assignment")
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "module.exports"))
	if !strings.HasPrefix(s, "=") {
		return nil, fmt.Errorf("missing module.exports assignment")
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "="))
	s = strings.TrimSpace(strings.TrimSuffix(s, moduleSuffix))
	return jsonCodec{}.Decode([]byte(s))
}

type yamlCodec struct{}

func (yamlCodec) Encode(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(len(indent))
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func (yamlCodec) Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return doc, nil
}

type tomlCodec struct{}

func (tomlCodec) Encode(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = indent
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("marshaling TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func (tomlCodec) Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	return doc, nil
}
