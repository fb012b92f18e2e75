package contenttype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
showcases:
  name: Showcases
  singular_name: Showcase
  icon_many: "fa:gift"
pages:
  name: Pages
  singular_name: Page
  icon_many: "fa:sticky-note"
homepage:
  name: Homepage
  singular_name: Homepage
  singleton: true
`

func TestParseKeepsOrder(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	var slugs []string
	for _, ct := range s.All() {
		slugs = append(slugs, ct.Slug)
	}
	assert.Equal(t, []string{"showcases", "pages", "homepage"}, slugs)
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	pages, err := s.Get("pages")
	require.NoError(t, err)
	assert.Equal(t, "page", pages.SingularSlug)
	assert.Equal(t, "fa:sticky-note", pages.IconOne)
	assert.False(t, pages.Singleton)

	home, err := s.Get("homepage")
	require.NoError(t, err)
	assert.Equal(t, DefaultIcon, home.IconMany)
	assert.True(t, home.Singleton)
}

func TestParseExplicitSlug(t *testing.T) {
	s, err := Parse([]byte("Blog Posts:\n  slug: posts\n  singular_name: Blog Post\n"))
	require.NoError(t, err)

	ct, err := s.Get("posts")
	require.NoError(t, err)
	assert.Equal(t, "Blog Posts", ct.Name)
	assert.Equal(t, "blog-post", ct.SingularSlug)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestParseRejectsSequence(t *testing.T) {
	_, err := Parse([]byte("- pages\n- entries\n"))
	require.Error(t, err)
}

func TestParseRejectsDuplicateSlug(t *testing.T) {
	_, err := Parse([]byte("pages:\n  name: Pages\nmore:\n  slug: pages\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestGetUnknown(t *testing.T) {
	s, err := NewSet(ContentType{Slug: "pages"})
	require.NoError(t, err)

	_, err = s.Get("nope")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contenttypes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Page":           "page",
		"Blog Post":      "blog-post",
		"  Hello, World": "hello-world",
		"already-slug":   "already-slug",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}
