// Package blog serves the public news listing and the single-post pages.
package blog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
)

const (
	// Path is the path to the news listing page.
	Path = "/blog"

	// DetailPath is the path to a single post page.
	DetailPath = Path + "/:id"

	// TemplateName is the name of the news listing template.
	TemplateName = "blog"

	// TemplateNameDetail is the name of the single post template.
	TemplateNameDetail = "blog_post"
)

// Service is the news page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the news page handler.
var Handler = Service{}

// Init initializes the news page handler.
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

// Get renders the news listing page, newest first.
func (s *Service) Get(c *fiber.Ctx) error {
	var posts []models.BlogPost
	if err := s.db.Order("date_posted desc").Find(&posts).Error; err != nil {
		return errors.Wrap(err, "failed to load posts")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"ActivePage": "blog",
		"Posts":      posts,
	}, handler.BaseLayout)
}

// GetDetail renders a single post page.
func (s *Service) GetDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.ErrNotFound
	}

	var post models.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.ErrNotFound
		}

		return errors.Wrap(err, "failed to load post")
	}

	return c.Render(TemplateNameDetail, fiber.Map{
		"Title":      post.Title + " - " + s.cfg.Title,
		"ActivePage": "blog",
		"Post":       post,
	}, handler.BaseLayout)
}
