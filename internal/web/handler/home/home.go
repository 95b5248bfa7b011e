// Package home serves the public landing page.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
)

const (
	// Path is the path to the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "home"

	featuredProjects = 4
	latestPosts      = 3
)

// Service is the landing page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the landing page handler.
var Handler = Service{}

// Init initializes the landing page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the landing page.
func (s *Service) Get(c *fiber.Ctx) error {
	var projects []models.Project
	if err := s.db.Order("date_posted desc").Limit(featuredProjects).Find(&projects).Error; err != nil {
		return errors.Wrap(err, "failed to load featured projects")
	}

	var posts []models.BlogPost
	if err := s.db.Order("date_posted desc").Limit(latestPosts).Find(&posts).Error; err != nil {
		return errors.Wrap(err, "failed to load latest posts")
	}

	var testimonials []models.Testimonial
	if err := s.db.Find(&testimonials).Error; err != nil {
		return errors.Wrap(err, "failed to load testimonials")
	}

	var statistics []models.Statistic
	if err := s.db.Order("order_num asc, id asc").Find(&statistics).Error; err != nil {
		return errors.Wrap(err, "failed to load statistics")
	}

	var logos []models.ClientLogo
	if err := s.db.Order("order_num asc, id asc").Find(&logos).Error; err != nil {
		return errors.Wrap(err, "failed to load client logos")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":        s.cfg.Title,
		"ActivePage":   "home",
		"Projects":     projects,
		"Posts":        posts,
		"Testimonials": testimonials,
		"Statistics":   statistics,
		"ClientLogos":  logos,
	}, handler.BaseLayout)
}
