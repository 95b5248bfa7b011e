// Package services serves the public services listing and the per-service
// detail pages.
package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
)

const (
	// Path is the path to the services listing page.
	Path = "/services"

	// DetailPath is the path to a single service page.
	DetailPath = Path + "/:slug"

	// TemplateName is the name of the services listing template.
	TemplateName = "services"

	// TemplateNameDetail is the name of the service detail template.
	TemplateNameDetail = "service_detail"

	relatedProjects = 3
)

// Service is the services page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the services page handler.
var Handler = Service{}

// Init initializes the services page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
	app.Get(DetailPath, s.GetDetail)

	return nil
}

// Get renders the services listing page.
func (s *Service) Get(c *fiber.Ctx) error {
	var services []models.Service
	if err := s.db.Order("order_num asc, id asc").Find(&services).Error; err != nil {
		return errors.Wrap(err, "failed to load services")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"ActivePage": "services",
		"Services":   services,
	}, handler.BaseLayout)
}

// GetDetail renders a single service page, looked up by slug, together with
// up to three projects from the category the service is linked to.
func (s *Service) GetDetail(c *fiber.Ctx) error {
	var service models.Service
	if err := s.db.Where("slug = ?", c.Params("slug")).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.ErrNotFound
		}

		return errors.Wrap(err, "failed to load service")
	}

	// Services link to a project category by name. Older records predate the
	// link column and fall back to matching on the service title.
	link := service.ProjectCategoryLink
	if link == "" {
		link = service.Title
	}

	var related []models.Project
	if err := s.db.Where("lower(category) like lower(?)", "%"+link+"%").
		Order("date_posted desc").Limit(relatedProjects).Find(&related).Error; err != nil {
		return errors.Wrap(err, "failed to load related projects")
	}

	return c.Render(TemplateNameDetail, fiber.Map{
		"Title":           service.Title + " - " + s.cfg.Title,
		"ActivePage":      "services",
		"Service":         service,
		"RelatedProjects": related,
	}, handler.BaseLayout)
}
