package submissions

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

// recordingViews captures the render data so tests can assert what the
// handler passed to the template.
type recordingViews struct {
	lastName string
	lastData fiber.Map
}

func (*recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	v.lastName = name
	if m, ok := data.(fiber.Map); ok {
		v.lastData = m
	}

	_, _ = io.WriteString(w, name)

	return nil
}

// memoryStorage is a minimal in-memory implementation of storage.Storage.
type memoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*memoryStorage)(nil)

func (s *memoryStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *memoryStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *memoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *memoryStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *memoryStorage) Close() error { return nil }

func newFixture(t *testing.T) (*fiber.App, *gorm.DB, *recordingViews) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactSubmission{}))

	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	sessions := session.NewManager(&memoryStorage{data: make(map[string][]byte)}, time.Minute)

	var s Service
	require.NoError(t, s.Init(app, &config.Config{Title: "Marogo Civils"}, db, sessions, content.NewRegistry()))

	return app, db, views
}

func TestGetRendersSubmission(t *testing.T) {
	app, db, views := newFixture(t)

	require.NoError(t, db.Create(&models.ContactSubmission{
		Name:        "T. Kachale",
		Email:       "t.kachale@example.com",
		Subject:     "Road maintenance",
		Message:     "We need periodic grading of the estate road.",
		SubmittedAt: time.Now(),
	}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/submissions/1", nil), -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, TemplateName, views.lastName)

	sub, ok := views.lastData["Submission"].(*models.ContactSubmission)
	require.True(t, ok)
	assert.Equal(t, "T. Kachale", sub.Name)
}

func TestGetUnknownSubmissionIs404(t *testing.T) {
	app, _, _ := newFixture(t)

	for _, target := range []string{"/admin/submissions/9", "/admin/submissions/x"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "target %s", target)

		_ = resp.Body.Close()
	}
}
