package converter

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	docsysSvc "safha/internal/domain/services/docsystem"
)

// Registry routes content to converters by format name or file extension.
//
// Thread-safe for concurrent access.
type Registry struct {
	mu          sync.RWMutex
	byFormat    map[string]docsysSvc.ContentConverter
	byExtension map[string]docsysSvc.ContentConverter // key: lowercase extension with dot
}

// NewRegistry creates a registry with the text, markdown and HTML converters registered
func NewRegistry() *Registry {
	r := &Registry{
		byFormat:    make(map[string]docsysSvc.ContentConverter),
		byExtension: make(map[string]docsysSvc.ContentConverter),
	}

	r.Register(NewTextConverter())
	r.Register(NewMarkdownConverter())
	r.Register(NewHTMLConverter())

	return r
}

// Register adds a converter under its format name and extensions.
// Extensions are normalized to lowercase with a leading dot.
func (r *Registry) Register(c docsysSvc.ContentConverter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byFormat[c.Format()] = c
	for _, ext := range c.SupportedExtensions() {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.byExtension[ext] = c
	}
}

// ForFormat returns the converter registered for a format name
func (r *Registry) ForFormat(format string) (docsysSvc.ContentConverter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byFormat[format]
	return c, ok
}

// ForFile returns the converter for the file's extension (case-insensitive)
func (r *Registry) ForFile(filename string) (docsysSvc.ContentConverter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byExtension[strings.ToLower(filepath.Ext(filename))]
	return c, ok
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.byFormat))
	for name := range r.byFormat {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}
