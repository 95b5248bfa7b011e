// Package projects serves the public project portfolio and the per-project
// detail pages.
package projects

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
)

const (
	// Path is the path to the projects listing page.
	Path = "/projects"

	// DetailPath is the path to a single project page.
	DetailPath = Path + "/:id"

	// TemplateName is the name of the projects listing template.
	TemplateName = "projects"

	// TemplateNameDetail is the name of the project detail template.
	TemplateNameDetail = "project_detail"

	relatedProjects = 3
)

// Service is the projects page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the projects page handler.
var Handler = Service{}

// Init initializes the projects page handler.
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

// Get renders the projects listing page, newest first. A category query
// parameter narrows the listing to one of the known categories; unknown
// values fall back to the full listing.
func (s *Service) Get(c *fiber.Ctx) error {
	category := c.Query("category")
	if !content.ValidCategory(category) {
		category = ""
	}

	query := s.db.Order("date_posted desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return errors.Wrap(err, "failed to load projects")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":          s.cfg.Title,
		"ActivePage":     "projects",
		"Projects":       projects,
		"Categories":     content.Categories(),
		"ActiveCategory": category,
	}, handler.BaseLayout)
}

// GetDetail renders a single project page together with its gallery and up
// to three other projects from the same category.
func (s *Service) GetDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.ErrNotFound
	}

	var project models.Project
	if err := s.db.Preload("Images").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.ErrNotFound
		}

		return errors.Wrap(err, "failed to load project")
	}

	var related []models.Project
	if err := s.db.Where("category = ? and id <> ?", project.Category, project.ID).
		Order("date_posted desc").Limit(relatedProjects).Find(&related).Error; err != nil {
		return errors.Wrap(err, "failed to load related projects")
	}

	return c.Render(TemplateNameDetail, fiber.Map{
		"Title":           project.Title + " - " + s.cfg.Title,
		"ActivePage":      "projects",
		"Project":         project,
		"RelatedProjects": related,
	}, handler.BaseLayout)
}
