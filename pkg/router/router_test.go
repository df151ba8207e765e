package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupPrefixes(t *testing.T) {
	r := New()
	api := r.Group("/api")
	g := api.Group("/widgets")
	g.Get("/", "widgets.index", ok)
	g.Get("/{id}", "widgets.show", ok)

	path, found := r.Path("widgets.index")
	require.True(t, found)
	assert.Equal(t, "/api/widgets", path)

	path, found = r.Path("widgets.show")
	require.True(t, found)
	assert.Equal(t, "/api/widgets/{id}", path)
}

func TestURL(t *testing.T) {
	r := New()
	r.Get("/items/{id}", "items.show", ok)

	url, err := r.URL("items.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/items/7", url)

	_, err = r.URL("items.show", nil)
	assert.Error(t, err)

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestTrailingSlashAccepted(t *testing.T) {
	r := New()
	r.Group("/api").Get("/widgets", "widgets.index", ok)

	for _, target := range []string{"/api/widgets", "/api/widgets/"} {
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestRoutesSorted(t *testing.T) {
	r := New()
	r.Post("/b", "b.store", ok)
	r.Get("/a", "a.index", ok)

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "/a", infos[0].Path)
	assert.Equal(t, "/b", infos[1].Path)
}
