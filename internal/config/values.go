package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/maps"
)

// keyDelim separates nested keys in dotted paths such as "server.port".
const keyDelim = "."

// GetValue looks up a dotted key in the merged config. Keys holding null are
// reported as missing.
func (s *Store) GetValue(key string, opts ReadOptions) (any, bool) {
	if key == "" {
		return nil, false
	}
	v := maps.Search(s.ReadConfig(opts), strings.Split(key, keyDelim))
	return v, v != nil
}

// SetValue stores value under a dotted key in the single record selected by
// opts (no merging) and rewrites it. Intermediate maps are created as needed.
func (s *Store) SetValue(key string, value any, opts CreateOptions) error {
	if key == "" {
		return fmt.Errorf("config key must not be empty")
	}
	return s.edit(opts, func(cfg map[string]any) {
		path := strings.Split(key, keyDelim)
		m := cfg
		for _, k := range path[:len(path)-1] {
			next, ok := m[k].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[k] = next
			}
			m = next
		}
		m[path[len(path)-1]] = value
	})
}

// DeleteValue removes a dotted key from the single record selected by opts
// and rewrites it. Deleting a missing key is not an error.
func (s *Store) DeleteValue(key string, opts CreateOptions) error {
	if key == "" {
		return fmt.Errorf("config key must not be empty")
	}
	return s.edit(opts, func(cfg map[string]any) {
		maps.Delete(cfg, strings.Split(key, keyDelim))
	})
}

func (s *Store) edit(opts CreateOptions, fn func(map[string]any)) error {
	name := opts.Name
	if name == "" {
		name = s.owner
	}
	owner := name
	if name == ToolName {
		owner = ToolOwner
	}

	path := s.pathIn(s.base(opts.Scope, opts.Folder), name, opts.Extension)
	cfg := s.ReadRecord(path)
	fn(cfg)

	opts.Name = name
	opts.Overwrite = true
	return s.create(owner, cfg, opts)
}

// ParseValue converts a command-line value: JSON literals (numbers, booleans,
// null, arrays, objects, quoted strings) are decoded, anything else is kept as
// the raw string.
func ParseValue(raw string) any {
	v, err := decodeJSON([]byte(raw))
	if err != nil {
		return raw
	}
	return v
}
