package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/steamer/internal/console"
)

const (
	// DirName is the hidden directory holding records under a scope's base.
	DirName = ".steamer"
	// DefaultExtension is used when no extension is requested.
	DefaultExtension = "js"
)

// ErrExists is returned when creating a record that is already on disk
// without asking for an overwrite.
var ErrExists = errors.New("exists")

// Scope selects the directory a record is rooted in.
type Scope int

const (
	// Local records live under the working directory.
	Local Scope = iota
	// Global records live under the user's home directory.
	Global
)

func (s Scope) String() string {
	switch s {
	case Local:
		return "local"
	case Global:
		return "global"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// ErrorReporter receives user-facing failures before they are returned.
type ErrorReporter interface {
	Error(v any) string
}

// Store reads and writes the records owned by one plugin.
type Store struct {
	owner    string
	homeDir  func() (string, error)
	workDir  func() (string, error)
	reporter ErrorReporter
	logger   *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithHomeDir overrides how the global base directory is found.
func WithHomeDir(fn func() (string, error)) StoreOption {
	return func(s *Store) { s.homeDir = fn }
}

// WithWorkDir overrides how the local base directory is found.
func WithWorkDir(fn func() (string, error)) StoreOption {
	return func(s *Store) { s.workDir = fn }
}

// WithReporter sets where "already exists" failures are reported. Defaults
// to a console reporter on stdout.
func WithReporter(r ErrorReporter) StoreOption {
	return func(s *Store) { s.reporter = r }
}

// WithLogger sets the diagnostics logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore returns a Store whose default record name is owner.
func NewStore(owner string, opts ...StoreOption) *Store {
	s := &Store{
		owner:   owner,
		homeDir: os.UserHomeDir,
		workDir: os.Getwd,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.reporter == nil {
		s.reporter = console.New()
	}
	return s
}

// Owner returns the default record name.
func (s *Store) Owner() string {
	return s.owner
}

func (s *Store) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// WorkDir returns the local base directory.
func (s *Store) WorkDir() string {
	dir, err := s.workDir()
	if err != nil || dir == "" {
		s.log().Debug("cannot determine working directory", slog.Any("error", err))
		return "."
	}
	return dir
}

// GlobalHome returns the global base directory: the user's home directory, or
// the working directory when the home directory cannot be determined.
func (s *Store) GlobalHome() string {
	home, err := s.homeDir()
	if err != nil || home == "" {
		s.log().Debug("cannot determine home directory, using working directory",
			slog.Any("error", err))
		return s.WorkDir()
	}
	return home
}

// Dir returns the record directory for a scope.
func (s *Store) Dir(scope Scope) string {
	return s.dirIn(s.base(scope, ""))
}

// Path returns {base}/.steamer/{name}.{extension} for the scope. An empty
// name means the owner and an empty extension means DefaultExtension.
func (s *Store) Path(scope Scope, name, extension string) string {
	return s.pathIn(s.base(scope, ""), name, extension)
}

func (s *Store) base(scope Scope, folder string) string {
	if scope == Global {
		return s.GlobalHome()
	}
	if folder != "" {
		return folder
	}
	return s.WorkDir()
}

func (s *Store) dirIn(base string) string {
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	return filepath.Join(base, DirName)
}

func (s *Store) pathIn(base, name, extension string) string {
	if name == "" {
		name = s.owner
	}
	extension = strings.TrimPrefix(extension, ".")
	if extension == "" {
		extension = DefaultExtension
	}
	return filepath.Join(s.dirIn(base), name+"."+extension)
}
