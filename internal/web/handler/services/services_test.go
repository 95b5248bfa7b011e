package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/db/models"
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

func newFixture(t *testing.T) (*fiber.App, *gorm.DB, *recordingViews) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Service{}, &models.Project{}))

	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	var s Service
	require.NoError(t, s.Init(app, &config.Config{Title: "Marogo Civils"}, db))

	return app, db, views
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)

	return resp
}

func TestGetListsServicesInDisplayOrder(t *testing.T) {
	app, db, views := newFixture(t)

	require.NoError(t, db.Create(&[]models.Service{
		{Title: "Later", Slug: "later", FullContent: "x", OrderNum: 5},
		{Title: "First", Slug: "first", FullContent: "x", OrderNum: 1},
	}).Error)

	resp := get(t, app, Path)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, TemplateName, views.lastName)

	listed, ok := views.lastData["Services"].([]models.Service)
	require.True(t, ok)
	require.Len(t, listed, 2)
	assert.Equal(t, "First", listed[0].Title)
	assert.Equal(t, "Later", listed[1].Title)
}

func TestGetDetailUnknownSlugIs404(t *testing.T) {
	app, _, _ := newFixture(t)

	resp := get(t, app, Path+"/no-such-service")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetDetailShowsRelatedProjectsByCategoryLink(t *testing.T) {
	app, db, views := newFixture(t)

	require.NoError(t, db.Create(&models.Service{
		Title:               "Solar and Power Systems",
		Slug:                "solar-and-power-systems",
		FullContent:         "Design and installation.",
		ProjectCategoryLink: "Solar Systems",
	}).Error)

	require.NoError(t, db.Create(&[]models.Project{
		{Title: "Clinic Solar Backup", Category: "Solar Systems", Details: "x", DatePosted: time.Now()},
		{Title: "Warehouse", Category: "Building Construction", Details: "x", DatePosted: time.Now()},
	}).Error)

	resp := get(t, app, Path+"/solar-and-power-systems")
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, TemplateNameDetail, views.lastName)

	related, ok := views.lastData["RelatedProjects"].([]models.Project)
	require.True(t, ok)
	require.Len(t, related, 1)
	assert.Equal(t, "Clinic Solar Backup", related[0].Title)
}

func TestGetDetailFallsBackToTitleMatch(t *testing.T) {
	app, db, views := newFixture(t)

	// no category link stored, the title itself matches the project category
	require.NoError(t, db.Create(&models.Service{
		Title:       "Irrigation",
		Slug:        "irrigation",
		FullContent: "Canals and pivots.",
	}).Error)

	require.NoError(t, db.Create(&models.Project{
		Title:      "Shire Valley Scheme",
		Category:   "Irrigation",
		Details:    "x",
		DatePosted: time.Now(),
	}).Error)

	resp := get(t, app, Path+"/irrigation")
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	related, ok := views.lastData["RelatedProjects"].([]models.Project)
	require.True(t, ok)
	require.Len(t, related, 1)
	assert.Equal(t, "Shire Valley Scheme", related[0].Title)
}
