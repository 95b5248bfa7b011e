// Package dashboard serves the admin console landing page with per-type
// content counts and the newest contact submissions.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/db/controller/contact"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
	"github.com/marogo-civils/marogo-web/internal/web/navigation"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.AdminRootPath + "/dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	latestSubmissions = 5
)

// StatCard is one content count shown on the dashboard.
type StatCard struct {
	// Key is the content type identifier used in manage links.
	Key   string
	Label string
	Count int64
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	sessions *session.Manager
	registry *content.Registry
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
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

// Get renders the dashboard.
func (s *Service) Get(c *fiber.Ctx) error {
	types := s.registry.All()

	cards := make([]StatCard, 0, len(types)+1)

	for _, t := range types {
		n, err := t.Count(s.db)
		if err != nil {
			return errors.Wrapf(err, "failed to count %s", t.Name())
		}

		cards = append(cards, StatCard{Key: t.Name(), Label: t.Label(), Count: n})
	}

	subCount, err := contact.Count(s.db)
	if err != nil {
		return errors.Wrap(err, "failed to count submissions")
	}

	cards = append(cards, StatCard{Key: "submissions", Label: "Submission", Count: subCount})

	latest, err := contact.Latest(s.db, latestSubmissions)
	if err != nil {
		return errors.Wrap(err, "failed to load submissions")
	}

	nav := navigation.NewContext("Dashboard", "admin", "dashboard").
		AddBreadcrumb("Dashboard", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Title":       s.cfg.Title,
		"Navigation":  nav,
		"Stats":       cards,
		"Submissions": latest,
		"Types":       types,
		"Flashes":     s.sessions.Flashes(c),
		"Admin":       c.Locals(handler.AdminLocalKey),
	}, handler.AdminLayout)
}
