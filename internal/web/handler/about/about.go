// Package about serves the public about page.
package about

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
)

const (
	// Path is the path to the about page.
	Path = "/about"

	// TemplateName is the name of the about page template.
	TemplateName = "about"
)

// Service is the about page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the about page handler.
var Handler = Service{}

// Init initializes the about page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the about page with the team, accreditations and the headline
// numbers.
func (s *Service) Get(c *fiber.Ctx) error {
	var team []models.TeamMember
	if err := s.db.Order("order_num asc, id asc").Find(&team).Error; err != nil {
		return errors.Wrap(err, "failed to load team members")
	}

	var certifications []models.Certification
	if err := s.db.Order("order_num asc, id asc").Find(&certifications).Error; err != nil {
		return errors.Wrap(err, "failed to load certifications")
	}

	var statistics []models.Statistic
	if err := s.db.Order("order_num asc, id asc").Find(&statistics).Error; err != nil {
		return errors.Wrap(err, "failed to load statistics")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":          s.cfg.Title,
		"ActivePage":     "about",
		"Team":           team,
		"Certifications": certifications,
		"Statistics":     statistics,
	}, handler.BaseLayout)
}
