// Package contenttype loads the content type definitions that drive the
// per-type sections of the admin sidebar.
package contenttype

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultIcon is used when a definition does not name an icon.
	DefaultIcon = "fa-file"
)

// ErrUnknown is returned when a slug does not resolve to a configured content type.
var ErrUnknown = errors.New("unknown content type")

// ContentType describes one kind of manageable record.
type ContentType struct {
	// Slug identifies the content type in routes (e.g. "pages").
	Slug string `yaml:"slug" json:"slug"`

	// Name is the plural display name.
	Name string `yaml:"name" json:"name"`

	// SingularName is the display name of one record.
	SingularName string `yaml:"singular_name" json:"singular_name"`

	// SingularSlug is used in public record links.
	SingularSlug string `yaml:"singular_slug" json:"singular_slug"`

	// IconMany is shown next to the listing.
	IconMany string `yaml:"icon_many" json:"icon_many"`

	// IconOne is shown next to a single record.
	IconOne string `yaml:"icon_one" json:"icon_one"`

	// Singleton content types hold a single record.
	Singleton bool `yaml:"singleton" json:"singleton"`

	// ShowOnDashboard controls dashboard listings.
	ShowOnDashboard bool `yaml:"show_on_dashboard" json:"show_on_dashboard"`
}

// Set is an ordered collection of content types.
// Order is the order of definition in the configuration source.
type Set struct {
	items []ContentType
	index map[string]int
}

// NewSet creates a set from the given definitions, applying defaults.
// Duplicate slugs are rejected.
func NewSet(items ...ContentType) (*Set, error) {
	s := &Set{
		items: make([]ContentType, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	for _, ct := range items {
		ct = withDefaults(ct.Slug, ct)
		if ct.Slug == "" {
			return nil, errors.New("content type without slug")
		}
		if _, ok := s.index[ct.Slug]; ok {
			return nil, fmt.Errorf("duplicate content type slug %q", ct.Slug)
		}
		s.index[ct.Slug] = len(s.items)
		s.items = append(s.items, ct)
	}

	return s, nil
}

// All returns the content types in configuration order.
func (s *Set) All() []ContentType {
	out := make([]ContentType, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of content types.
func (s *Set) Len() int {
	return len(s.items)
}

// Get resolves a content type by slug. Returns ErrUnknown when the slug is not configured.
func (s *Set) Get(slug string) (ContentType, error) {
	i, ok := s.index[slug]
	if !ok {
		return ContentType{}, fmt.Errorf("%w: %q", ErrUnknown, slug)
	}
	return s.items[i], nil
}

// LoadFile reads content type definitions from a YAML file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content types %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse content types %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a YAML mapping of content type definitions keyed by name.
// The mapping order is kept, which is why this walks the yaml.Node instead
// of decoding into a map.
func Parse(data []byte) (*Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewSet()
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: content types must be a mapping", root.Line)
	}

	items := make([]ContentType, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		var ct ContentType
		if err := val.Decode(&ct); err != nil {
			return nil, fmt.Errorf("line %d: content type %q: %w", key.Line, key.Value, err)
		}
		items = append(items, withDefaults(key.Value, ct))
	}

	return NewSet(items...)
}

func withDefaults(key string, ct ContentType) ContentType {
	if ct.Slug == "" {
		ct.Slug = Slugify(key)
	}
	if ct.Name == "" {
		ct.Name = key
	}
	if ct.SingularName == "" {
		ct.SingularName = ct.Name
	}
	if ct.SingularSlug == "" {
		ct.SingularSlug = Slugify(ct.SingularName)
	}
	if ct.IconMany == "" {
		ct.IconMany = DefaultIcon
	}
	if ct.IconOne == "" {
		ct.IconOne = ct.IconMany
	}
	return ct
}

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
