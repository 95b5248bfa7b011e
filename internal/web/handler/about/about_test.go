package about

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

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

func TestGetOrdersTeamAndCertifications(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TeamMember{}, &models.Certification{}, &models.Statistic{}))

	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	var s Service
	require.NoError(t, s.Init(app, &config.Config{Title: "Marogo Civils"}, db))

	require.NoError(t, db.Create(&[]models.TeamMember{
		{Name: "Deputy", Position: "Site Agent", ImageURL: "b.webp", OrderNum: 2},
		{Name: "Director", Position: "Managing Director", ImageURL: "a.webp", OrderNum: 1},
	}).Error)
	require.NoError(t, db.Create(&[]models.Certification{
		{Name: "NCIC Registration", OrderNum: 1},
		{Name: "MBS Certificate", OrderNum: 2},
	}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil), -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, TemplateName, views.lastName)

	team, ok := views.lastData["Team"].([]models.TeamMember)
	require.True(t, ok)
	require.Len(t, team, 2)
	assert.Equal(t, "Director", team[0].Name)

	certifications, ok := views.lastData["Certifications"].([]models.Certification)
	require.True(t, ok)
	require.Len(t, certifications, 2)
	assert.Equal(t, "NCIC Registration", certifications[0].Name)
}
