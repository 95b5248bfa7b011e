package manage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
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
	"github.com/marogo-civils/marogo-web/internal/media"
	"github.com/marogo-civils/marogo-web/internal/web/handler/dashboard"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

// noOpViews renders the template name so handler tests have a body to
// assert without parsing real templates.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, _ interface{}, _ ...string) error {
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

type fixture struct {
	app   *fiber.App
	db    *gorm.DB
	store *media.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Project{},
		&models.ProjectImage{},
		&models.Service{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.Statistic{},
		&models.TeamMember{},
		&models.ClientLogo{},
		&models.Certification{},
		&models.ContactSubmission{},
	))

	store := media.NewStore(t.TempDir())
	require.NoError(t, store.Ensure())

	app := fiber.New(fiber.Config{Views: noOpViews{}})

	cfg := &config.Config{Title: "Marogo Civils"}
	sessions := session.NewManager(&memoryStorage{data: make(map[string][]byte)}, time.Minute)

	var s Service
	require.NoError(t, s.Init(app, cfg, db, sessions, content.NewRegistry(), media.NewOptimizer(nil, store)))

	return &fixture{app: app, db: db, store: store}
}

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

// postMultipart submits fields plus named file uploads of fake image bytes.
func postMultipart(t *testing.T, app *fiber.App, target string, fields map[string]string, files map[string]string) *http.Response {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)

		_, err = part.Write([]byte("fake image bytes for " + filename))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestListUnknownTypeRedirectsToDashboard(t *testing.T) {
	f := newFixture(t)

	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, Path+"/gadgets", nil), -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, dashboard.Path, resp.Header.Get("Location"))
}

func TestListRendersManagePage(t *testing.T) {
	f := newFixture(t)

	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, Path+"/testimonials", nil), -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), TemplateManage)
}

func TestCreateTestimonialFromPlainForm(t *testing.T) {
	f := newFixture(t)

	resp := postForm(t, f.app, Path+"/testimonials", url.Values{
		"author":   {"J. Banda"},
		"position": {"Facilities Manager"},
		"quote":    {"Delivered on time and on budget."},
	})

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, Path+"/testimonials", resp.Header.Get("Location"))

	var rows []models.Testimonial
	require.NoError(t, f.db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "J. Banda", rows[0].Author)
}

func TestCreateProjectStoresImages(t *testing.T) {
	f := newFixture(t)

	resp := postMultipart(t, f.app, Path+"/projects",
		map[string]string{
			"title":    "Area 49 Warehouse",
			"category": "Building Construction",
			"details":  "Steel frame warehouse with office block.",
		},
		map[string]string{
			"project_image": "site photo.jpg",
		},
	)

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, Path+"/projects", resp.Header.Get("Location"))

	var row models.Project
	require.NoError(t, f.db.First(&row).Error)
	assert.Equal(t, "Area 49 Warehouse", row.Title)
	require.NotEmpty(t, row.ImageURL)
	assert.True(t, f.store.Exists(row.ImageURL), "main image must be written to the store")
}

func TestCreateProjectWithoutImageFails(t *testing.T) {
	f := newFixture(t)

	resp := postMultipart(t, f.app, Path+"/projects",
		map[string]string{
			"title":    "No Image Project",
			"category": "Building Construction",
			"details":  "Never stored.",
		},
		nil,
	)

	defer func() { _ = resp.Body.Close() }()

	// back to the listing with a flash, nothing inserted
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var n int64
	require.NoError(t, f.db.Model(&models.Project{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateTestimonialChangesFields(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Create(&models.Testimonial{
		Author: "Old Name",
		Quote:  "Old quote.",
	}).Error)

	var row models.Testimonial
	require.NoError(t, f.db.First(&row).Error)

	resp := postForm(t, f.app, EditPath+"/testimonials/1", url.Values{
		"author": {"New Name"},
		"quote":  {"New quote."},
	})

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, Path+"/testimonials", resp.Header.Get("Location"))

	require.NoError(t, f.db.First(&row, row.ID).Error)
	assert.Equal(t, "New Name", row.Author)
	assert.Equal(t, "New quote.", row.Quote)
}

func TestEditUnknownItemIs404(t *testing.T) {
	f := newFixture(t)

	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, EditPath+"/testimonials/99", nil), -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteRemovesRecordAndFiles(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.store.Save("logo.webp", []byte("logo bytes")))
	require.NoError(t, f.db.Create(&models.ClientLogo{
		Name:     "Press Corporation",
		ImageURL: "logo.webp",
	}).Error)

	resp := postForm(t, f.app, DeletePath+"/client_logos/1", nil)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusFound, resp.StatusCode)

	var n int64
	require.NoError(t, f.db.Model(&models.ClientLogo{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.False(t, f.store.Exists("logo.webp"), "owned file must be removed with the record")
}

func TestDeleteUnknownTypeIs404(t *testing.T) {
	f := newFixture(t)

	resp := postForm(t, f.app, DeletePath+"/gadgets/1", nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteSubmissionRedirectsToDashboard(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Create(&models.ContactSubmission{
		Name:        "A. Phiri",
		Email:       "a.phiri@example.com",
		Message:     "Quote please.",
		SubmittedAt: time.Now(),
	}).Error)

	resp := postForm(t, f.app, DeletePath+"/submissions/1", nil)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, dashboard.Path, resp.Header.Get("Location"))

	var n int64
	require.NoError(t, f.db.Model(&models.ContactSubmission{}).Count(&n).Error)
	assert.Zero(t, n)
}
