// Package registry discovers library spec files and holds the built
// documentation models, indexed by library name for lookup by the CLI
// commands and the HTTP API.
package registry

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/specdoc-labs/specdoc/internal/jsonspec"
	"github.com/specdoc-labs/specdoc/internal/xmlspec"
	"github.com/specdoc-labs/specdoc/pkg/model"
)

// Format identifies the on-disk encoding of a spec file.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Library is one loaded spec file together with where it came from.
type Library struct {
	Doc    *model.LibraryDoc
	Path   string
	Format Format
}

// LibraryRegistry holds loaded libraries by name. If two spec files declare
// the same library name, the last one registered wins.
type LibraryRegistry struct {
	mu     sync.RWMutex
	byName map[string]*Library
	logger *slog.Logger
}

// NewLibraryRegistry creates an empty registry. A nil logger discards logs.
func NewLibraryRegistry(logger *slog.Logger) *LibraryRegistry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LibraryRegistry{
		byName: make(map[string]*Library),
		logger: logger,
	}
}

// DetectFormat maps a file extension to a spec format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".xml", ".libspec":
		return FormatXML, nil
	}
	return "", fmt.Errorf("unsupported spec file extension %q", filepath.Ext(path))
}

// BuildFile builds a single spec file, dispatching on its extension.
func BuildFile(path string) (*Library, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	var doc *model.LibraryDoc
	switch format {
	case FormatJSON:
		doc, err = jsonspec.Build(path)
	case FormatXML:
		doc, err = xmlspec.Build(path)
	}
	if err != nil {
		return nil, err
	}
	return &Library{Doc: doc, Path: path, Format: format}, nil
}

// Discover returns all spec file paths under the given directories, sorted.
// Directories that do not exist are skipped.
func Discover(dirs []string) ([]string, error) {
	var paths []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, err := DetectFormat(path); err == nil {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDirs discovers and builds every spec file under dirs. Builds run
// concurrently; each build is independent, so no synchronization beyond
// registration is needed. The first build failure aborts the load.
func (r *LibraryRegistry) LoadDirs(ctx context.Context, dirs []string) error {
	paths, err := Discover(dirs)
	if err != nil {
		return err
	}
	return r.LoadFiles(ctx, paths)
}

// LoadFiles builds the given spec files concurrently and registers them.
func (r *LibraryRegistry) LoadFiles(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lib, err := BuildFile(path)
			if err != nil {
				return fmt.Errorf("building %s: %w", path, err)
			}
			r.Register(lib)
			r.logger.Debug("loaded spec", "path", path, "library", lib.Doc.Name, "keywords", len(lib.Doc.Keywords))
			return nil
		})
	}
	return g.Wait()
}

// Register adds a library to the registry, replacing any previous library
// with the same name.
func (r *LibraryRegistry) Register(lib *Library) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[lib.Doc.Name] = lib
}

// Get returns the library with the given name.
func (r *LibraryRegistry) Get(name string) (*Library, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lib, ok := r.byName[name]
	return lib, ok
}

// List returns all libraries sorted by name.
func (r *LibraryRegistry) List() []*Library {
	r.mu.RLock()
	defer r.mu.RUnlock()
	libs := make([]*Library, 0, len(r.byName))
	for _, lib := range r.byName {
		libs = append(libs, lib)
	}
	sort.Slice(libs, func(i, j int) bool { return libs[i].Doc.Name < libs[j].Doc.Name })
	return libs
}

// Count returns the number of registered libraries.
func (r *LibraryRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
