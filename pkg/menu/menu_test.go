package menu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCounter struct {
	values []string
}

func (c *countingCounter) Increment(val ...string) {
	c.values = append(c.values, val...)
}

func TestHandler(t *testing.T) {
	src := SourceFunc(func(context.Context) ([]Section, error) {
		root := NewRoot()
		_, err := root.AddChild("Dashboard", Item{URI: URL("/bolt/"), Extras: Extras{Icon: "fa-tachometer-alt"}})
		require.NoError(t, err)
		return Flatten(root), nil
	})

	counter := &countingCounter{}
	h := Handler(src, WithRequestCounter(counter))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bolt/api/menu", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{
		"name": "Dashboard",
		"singular_name": null,
		"slug": null,
		"singular_slug": null,
		"icon": "fa-tachometer-alt",
		"link": "/bolt/",
		"link_new": null,
		"contenttype": null,
		"singleton": null,
		"type": null,
		"active": null,
		"submenu": null
	}]`, rec.Body.String())
	assert.Equal(t, []string{"200"}, counter.values)
}

func TestHandlerError(t *testing.T) {
	src := SourceFunc(func(context.Context) ([]Section, error) {
		return nil, errors.New("content query failed")
	})

	counter := &countingCounter{}
	rec := httptest.NewRecorder()
	Handler(src, WithRequestCounter(counter)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed to build menu", body["error"])
	assert.Equal(t, []string{"500"}, counter.values)
}

func TestHandlerEmptyMenu(t *testing.T) {
	src := SourceFunc(func(context.Context) ([]Section, error) {
		return Flatten(NewRoot()), nil
	})

	rec := httptest.NewRecorder()
	Handler(src).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
