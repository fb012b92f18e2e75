package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sidebar/pkg/contenttype"
	"github.com/mchmarny/sidebar/pkg/routing"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLatestOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		_, err := s.Insert(ctx, Record{
			ContentType: "pages",
			Title:       "page " + string(rune('a'+i)),
			ModifiedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
	_, err := s.Insert(ctx, Record{ContentType: "entries", Title: "other", ModifiedAt: base.Add(24 * time.Hour)})
	require.NoError(t, err)

	got, err := s.Latest(ctx, "pages", 5)
	require.NoError(t, err)
	require.Len(t, got, 5)

	var titles []string
	for _, r := range got {
		titles = append(titles, r.Title)
		assert.Equal(t, StatusPublished, r.Status)
	}
	assert.Equal(t, []string{"page g", "page f", "page e", "page d", "page c"}, titles)
	assert.True(t, got[0].ModifiedAt.Equal(base.Add(6*time.Hour)))
}

func TestLatestEmpty(t *testing.T) {
	s := newStore(t)

	got, err := s.Latest(context.Background(), "pages", 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = s.Latest(context.Background(), "pages", 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestReady(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)

	require.NoError(t, s.Ready(context.Background()))
	require.NoError(t, s.Close())
	require.Error(t, s.Ready(context.Background()))
}

func TestInsertRequiresContentType(t *testing.T) {
	_, err := newStore(t).Insert(context.Background(), Record{Title: "x"})
	require.Error(t, err)
}

func TestLoadFixtures(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- contenttype: pages
  title: About
  slug: about
  modified_at: 2024-01-02T10:00:00Z
- contenttype: pages
  title: Contact
  slug: contact
  status: draft
  modified_at: 2024-01-03T10:00:00Z
`), 0o600))

	n, err := LoadFixtures(ctx, s, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.Latest(ctx, "pages", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Contact", got[0].Title)
	assert.Equal(t, StatusDraft, got[0].Status)

	_, err = LoadFixtures(ctx, s, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestService(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	types, err := contenttype.NewSet(contenttype.ContentType{
		Slug:         "pages",
		Name:         "Pages",
		SingularName: "Page",
		IconOne:      "fa-sticky-note",
	})
	require.NoError(t, err)

	svc := NewService(s, types, routing.Default(routing.DefaultPrefix))

	_, err = s.Insert(ctx, Record{ContentType: "pages", Title: "About", Slug: "about", ModifiedAt: time.Unix(100, 0)})
	require.NoError(t, err)
	_, err = s.Insert(ctx, Record{ContentType: "pages", Icon: "fa-star", ModifiedAt: time.Unix(200, 0)})
	require.NoError(t, err)

	ct, err := types.Get("pages")
	require.NoError(t, err)

	got, err := svc.FindLatest(ctx, ct, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	untitled, about := got[0], got[1]

	assert.Equal(t, Untitled, svc.Title(untitled))
	assert.Equal(t, "fa-star", untitled.Icon)
	link, err := svc.Link(untitled)
	require.NoError(t, err)
	assert.Equal(t, "/page/2", link)

	assert.Equal(t, "About", svc.Title(about))
	assert.Equal(t, "fa-sticky-note", about.Icon)
	link, err = svc.Link(about)
	require.NoError(t, err)
	assert.Equal(t, "/page/about", link)

	edit, err := svc.EditLink(about)
	require.NoError(t, err)
	assert.Equal(t, "/bolt/edit/1", edit)

	_, err = svc.Link(Record{ContentType: "nope", ID: 1})
	require.ErrorIs(t, err, contenttype.ErrUnknown)
}
