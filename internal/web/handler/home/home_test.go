package home

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
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
	require.NoError(t, db.AutoMigrate(
		&models.Project{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.Statistic{},
		&models.ClientLogo{},
	))

	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	var s Service
	require.NoError(t, s.Init(app, &config.Config{Title: "Marogo Civils"}, db))

	return app, db, views
}

func TestGetCapsFeaturedProjectsAndPosts(t *testing.T) {
	app, db, views := newFixture(t)

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		require.NoError(t, db.Create(&models.Project{
			Title:      "Project " + strconv.Itoa(i),
			Details:    "x",
			Category:   "General Construction",
			DatePosted: base.AddDate(0, 0, i),
		}).Error)
		require.NoError(t, db.Create(&models.BlogPost{
			Title:      "Post " + strconv.Itoa(i),
			Content:    "x",
			Author:     "Admin",
			DatePosted: base.AddDate(0, 0, i),
		}).Error)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil), -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, TemplateName, views.lastName)

	projects, ok := views.lastData["Projects"].([]models.Project)
	require.True(t, ok)
	require.Len(t, projects, featuredProjects)
	assert.Equal(t, "Project 5", projects[0].Title, "newest project leads the strip")

	posts, ok := views.lastData["Posts"].([]models.BlogPost)
	require.True(t, ok)
	assert.Len(t, posts, latestPosts)
}

func TestGetOrdersStatisticsAndLogos(t *testing.T) {
	app, db, views := newFixture(t)

	require.NoError(t, db.Create(&[]models.Statistic{
		{Name: "Happy Clients", Value: 120, OrderNum: 2},
		{Name: "Projects Completed", Value: 85, OrderNum: 1},
	}).Error)
	require.NoError(t, db.Create(&[]models.ClientLogo{
		{Name: "Later Logo", ImageURL: "b.webp", OrderNum: 9},
		{Name: "First Logo", ImageURL: "a.webp", OrderNum: 1},
	}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil), -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats, ok := views.lastData["Statistics"].([]models.Statistic)
	require.True(t, ok)
	require.Len(t, stats, 2)
	assert.Equal(t, "Projects Completed", stats[0].Name)

	logos, ok := views.lastData["ClientLogos"].([]models.ClientLogo)
	require.True(t, ok)
	require.Len(t, logos, 2)
	assert.Equal(t, "First Logo", logos[0].Name)
}
