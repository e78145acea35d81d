package fonts

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// ErrFontNotFound is returned when a name has no registered font
var ErrFontNotFound = errors.New("font not found")

// FontFileExtension is the only extension LoadDir picks up
const FontFileExtension = ".ttf"

// Resolver looks up a parsed font by catalog name
type Resolver interface {
	Resolve(name string) (*truetype.Font, error)
}

// Registry maps font names to parsed fonts. Lookups are case-insensitive.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*truetype.Font
	names map[string]string // lower-case key -> display name
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*truetype.Font),
		names: make(map[string]string),
	}
}

// NewDefaultRegistry creates a registry holding the bundled Go fonts
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	builtin := []struct {
		name string
		ttf  []byte
	}{
		{"Go Bold", gobold.TTF},
		{"Go Smallcaps", gosmallcaps.TTF},
		{"Go Mono Bold", gomonobold.TTF},
		{"Go Medium", gomedium.TTF},
		{"Go Regular", goregular.TTF},
		{"Go Bold Italic", gobolditalic.TTF},
	}
	for _, b := range builtin {
		if err := r.Register(b.name, b.ttf); err != nil {
			// Bundled fonts are known good; a failure here means a broken build.
			log.Printf("fonts: skipping builtin %s: %v", b.name, err)
		}
	}
	return r
}

// Register parses ttf and stores it under name, replacing any previous entry
func (r *Registry) Register(name string, ttf []byte) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("register font: empty name")
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	r.fonts[key] = f
	r.names[key] = name
	return nil
}

// LoadDir registers every .ttf file in dir under its base name without the
// extension. Files that fail to parse are logged and skipped. It returns the
// names that were registered.
func (r *Registry) LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read font directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), FontFileExtension) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("fonts: cannot read %s: %v", path, err)
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if err := r.Register(name, data); err != nil {
			log.Printf("fonts: %v", err)
			continue
		}
		loaded = append(loaded, name)
	}
	return loaded, nil
}

// Resolve returns the font registered under name
func (r *Registry) Resolve(name string) (*truetype.Font, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return f, nil
}

// Has reports whether name resolves
func (r *Registry) Has(name string) bool {
	_, err := r.Resolve(name)
	return err == nil
}

// Names returns the registered display names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.names))
	for _, n := range r.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
