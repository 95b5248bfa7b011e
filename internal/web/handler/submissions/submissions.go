// Package submissions serves the admin view of a single contact submission.
package submissions

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/db/controller/contact"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
	"github.com/marogo-civils/marogo-web/internal/web/handler/dashboard"
	"github.com/marogo-civils/marogo-web/internal/web/navigation"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

const (
	// Path is the path to a single submission page.
	Path = handler.AdminRootPath + "/submissions/:id"

	// TemplateName is the name of the submission template.
	TemplateName = "admin/submission"
)

// Service is the submission view handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	sessions *session.Manager
	registry *content.Registry
}

// Handler is the submission view handler.
var Handler = Service{}

// Init initializes the submission view handler.
func (s *Service) Init(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	sessions *session.Manager,
	registry *content.Registry,
) error {
	if app == nil || cfg == nil || db == nil || sessions == nil || registry == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.sessions = sessions
	s.registry = registry

	app.Get(Path, s.Get)

	return nil
}

// Get renders one contact submission in full.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.ErrNotFound
	}

	sub, err := contact.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, contact.ErrSubmissionNotFound) {
			return fiber.ErrNotFound
		}

		return errors.Wrap(err, "failed to load submission")
	}

	nav := navigation.NewContext("Submission", "admin", "submissions").
		AddBreadcrumb("Dashboard", dashboard.Path, false).
		AddBreadcrumb("Submission from "+sub.Name, "", true)

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Submission": sub,
		"Types":      s.registry.All(),
		"Flashes":    s.sessions.Flashes(c),
		"Admin":      c.Locals(handler.AdminLocalKey),
	}, handler.AdminLayout)
}
