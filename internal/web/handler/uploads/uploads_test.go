package uploads

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marogo-civils/marogo-web/internal/media"
)

func newFixture(t *testing.T) (*fiber.App, *media.Store) {
	t.Helper()

	store := media.NewStore(t.TempDir())
	require.NoError(t, store.Ensure())

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, store))

	return app, store
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)

	return resp
}

func TestGetServesStoredImage(t *testing.T) {
	app, store := newFixture(t)

	require.NoError(t, store.Save("site-visit.webp", []byte("webp bytes")))

	resp := get(t, app, "/uploads/site-visit.webp")
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "webp bytes", string(body))
}

func TestGetMissingImageIs404(t *testing.T) {
	app, _ := newFixture(t)

	resp := get(t, app, "/uploads/never-stored.webp")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetRejectsPathLikeNames(t *testing.T) {
	app, store := newFixture(t)

	require.NoError(t, store.Save("real.webp", []byte("data")))

	for _, name := range []string{"..", "%2e%2e", "a%2fb.webp"} {
		resp := get(t, app, "/uploads/"+name)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "name %q must not resolve", name)

		_ = resp.Body.Close()
	}
}
