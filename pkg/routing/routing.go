// Package routing resolves named admin routes into links.
package routing

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Route names used by the admin sidebar.
const (
	Dashboard        = "bolt_dashboard"
	ContentOverview  = "bolt_content_overview"
	ContentNew       = "bolt_content_new"
	ContentEdit      = "bolt_content_edit"
	Users            = "bolt_users"
	FileEdit         = "bolt_file_edit"
	FileManager      = "bolt_filemanager"
	APIEntrypoint    = "api_entrypoint"
	ClearCache       = "bolt_clear_cache"
	TranslationIndex = "translation_index"
	Kitchensink      = "bolt_kitchensink"
	About            = "bolt_about"
	Record           = "record"
)

// DefaultPrefix is the path prefix of the admin area.
const DefaultPrefix = "/bolt"

var (
	// ErrRouteNotFound is returned for route names missing from the table.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMissingParam is returned when a path placeholder has no value.
	ErrMissingParam = errors.New("missing route parameter")
)

// Params are the values substituted into a route pattern.
// Values without a matching placeholder are appended as query string.
type Params map[string]string

// Generator turns a route name and parameters into a link.
type Generator interface {
	Generate(name string, params Params) (string, error)
}

// Table is a Generator over a fixed set of chi-style patterns
// such as "/bolt/content/{contentType}".
type Table struct {
	routes map[string]string
}

// New creates a table from name to pattern mappings.
func New(routes map[string]string) *Table {
	t := &Table{routes: make(map[string]string, len(routes))}
	for k, v := range routes {
		t.routes[k] = v
	}
	return t
}

// Default returns the admin route table mounted under prefix.
func Default(prefix string) *Table {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = ""
	}

	return New(map[string]string{
		Dashboard:        prefix + "/",
		ContentOverview:  prefix + "/content/{contentType}",
		ContentNew:       prefix + "/new/{contentType}",
		ContentEdit:      prefix + "/edit/{id:[0-9]+}",
		Users:            prefix + "/users",
		FileEdit:         prefix + "/file-edit/{area}",
		FileManager:      prefix + "/filemanager/{area}",
		ClearCache:       prefix + "/clearcache",
		Kitchensink:      prefix + "/kitchensink",
		About:            prefix + "/about",
		TranslationIndex: prefix + "/_trans",
		APIEntrypoint:    "/api",
		Record:           "/{contentTypeSlug}/{slugOrId}",
	})
}

// Pattern returns the raw pattern registered for name.
func (t *Table) Pattern(name string) (string, bool) {
	p, ok := t.routes[name]
	return p, ok
}

// Names returns the registered route names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.routes))
	for k := range t.routes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Generate builds the link for the named route.
func (t *Table) Generate(name string, params Params) (string, error) {
	pattern, ok := t.routes[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}

	used := make(map[string]bool, len(params))

	var b strings.Builder
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("route %s: unterminated placeholder in %q", name, pattern)
		}
		end += open

		b.WriteString(rest[:open])

		key := rest[open+1 : end]
		if i := strings.IndexByte(key, ':'); i >= 0 {
			key = key[:i]
		}

		val, ok := params[key]
		if !ok || val == "" {
			return "", fmt.Errorf("%w: %s requires %q", ErrMissingParam, name, key)
		}
		used[key] = true
		b.WriteString(url.PathEscape(val))

		rest = rest[end+1:]
	}

	query := url.Values{}
	for k, v := range params {
		if !used[k] {
			query.Set(k, v)
		}
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}

	return b.String(), nil
}
