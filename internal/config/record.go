package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/maps"
)

// ReadOptions selects the record to read. The zero value reads the owner's
// record with the default extension, merging global under local.
type ReadOptions struct {
	Name      string
	Extension string
	Scope     Scope
	// Folder replaces the working directory as the local base.
	Folder string
}

// CreateOptions selects the record to write.
type CreateOptions struct {
	Name      string
	Extension string
	Scope     Scope
	// Folder replaces the working directory as the local base.
	Folder    string
	Overwrite bool
}

// ReadRecord returns the payload of the record at path. Any failure to read
// or decode it yields an empty payload.
func (s *Store) ReadRecord(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log().Debug("skipping unreadable config", slog.String("path", path),
				slog.String("error", err.Error()))
		}
		return map[string]any{}
	}

	doc, err := CodecFor(path).Decode(data)
	if err != nil {
		s.log().Debug("skipping malformed config", slog.String("path", path),
			slog.String("error", err.Error()))
		return map[string]any{}
	}
	maps.IntfaceKeysToStrings(doc)

	payload, ok := doc["config"].(map[string]any)
	if !ok {
		s.log().Debug("skipping config without payload", slog.String("path", path))
		return map[string]any{}
	}
	return payload
}

// ReadConfig returns a record's payload. For the global scope only the global
// record is read; otherwise the local record is deep-merged over the global
// one, local keys winning.
func (s *Store) ReadConfig(opts ReadOptions) map[string]any {
	global := s.ReadRecord(s.pathIn(s.GlobalHome(), opts.Name, opts.Extension))
	if opts.Scope == Global {
		return global
	}
	local := s.ReadRecord(s.pathIn(s.base(Local, opts.Folder), opts.Name, opts.Extension))
	return Merge(global, local)
}

// CreateConfig writes payload as a record. An existing record is left
// untouched and ErrExists returned unless Overwrite is set.
func (s *Store) CreateConfig(payload map[string]any, opts CreateOptions) error {
	name := opts.Name
	if name == "" {
		name = s.owner
	}
	return s.create(name, payload, opts)
}

func (s *Store) create(owner string, payload map[string]any, opts CreateOptions) error {
	path := s.pathIn(s.base(opts.Scope, opts.Folder), opts.Name, opts.Extension)

	if !opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			err := fmt.Errorf("%s %w", path, ErrExists)
			s.reporter.Error(err.Error())
			return err
		}
	}

	return s.writeRecord(path, Record{Plugin: owner, Config: payload})
}

func (s *Store) writeRecord(path string, rec Record) error {
	if rec.Config == nil {
		rec.Config = map[string]any{}
	}
	data, err := CodecFor(path).Encode(rec)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	s.log().Debug("wrote config", slog.String("path", path), slog.String("plugin", rec.Plugin))
	return nil
}

// Merge deep-merges layers left to right into a new map: nested maps merge
// key by key, every other value is replaced by later layers. Inputs are not
// modified.
func Merge(layers ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		maps.Merge(maps.Copy(layer), out)
	}
	return out
}
