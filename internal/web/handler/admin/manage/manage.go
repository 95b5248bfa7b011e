// Package manage provides the generic content management pages of the admin
// console. One set of routes covers every registered content type: listing
// plus create form, edit form and delete.
package manage

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/media"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
	"github.com/marogo-civils/marogo-web/internal/web/handler/dashboard"
	"github.com/marogo-civils/marogo-web/internal/web/navigation"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

const (
	// Path is the base path of the manage pages.
	Path = handler.AdminRootPath + "/manage"

	// EditPath is the base path of the edit pages.
	EditPath = handler.AdminRootPath + "/edit"

	// DeletePath is the base path of the delete endpoint.
	DeletePath = handler.AdminRootPath + "/delete"

	// TemplateManage is the listing plus create form template.
	TemplateManage = "admin/manage"

	// TemplateEdit is the edit form template.
	TemplateEdit = "admin/edit"
)

// Service provides CRUD pages for every registered content type.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	sessions  *session.Manager
	registry  *content.Registry
	optimizer *media.Optimizer
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	sessions *session.Manager,
	registry *content.Registry,
	optimizer *media.Optimizer,
) error {
	if app == nil || cfg == nil || db == nil || sessions == nil || registry == nil || optimizer == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.sessions = sessions
	s.registry = registry
	s.optimizer = optimizer

	app.Get(Path+"/:type", s.List)
	app.Post(Path+"/:type", s.Create)
	app.Get(EditPath+"/:type/:id", s.Edit)
	app.Post(EditPath+"/:type/:id", s.Update)
	app.Post(DeletePath+"/:type/:id", s.Delete)

	return nil
}

// managePage is the manage listing URL of one content type.
func managePage(t content.Type) string {
	return Path + "/" + t.Name()
}

// lookup resolves the :type parameter. An unknown identifier flashes an
// error and sends the admin back to the dashboard.
func (s *Service) lookup(c *fiber.Ctx) (content.Type, error) {
	t, err := s.registry.Lookup(c.Params("type"))
	if err != nil {
		s.sessions.AddFlash(c, "danger", "Invalid content type.")

		return nil, c.Redirect(dashboard.Path)
	}

	return t, nil
}

// List shows all items of one type together with the create form.
func (s *Service) List(c *fiber.Ctx) error {
	t, err := s.lookup(c)
	if t == nil {
		return err
	}

	items, err := t.List(s.db)
	if err != nil {
		return errors.Wrapf(err, "failed to list %s", t.Name())
	}

	nav := navigation.NewContext("Manage "+t.Label()+"s", "admin", t.Name()).
		AddBreadcrumb("Dashboard", dashboard.Path, false).
		AddBreadcrumb(t.Label()+"s", managePage(t), true)

	return c.Render(TemplateManage, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"TypeName":   t.Name(),
		"TypeLabel":  t.Label(),
		"Items":      items,
		"Icons":      content.Icons(),
		"Categories": content.Categories(),
		"Types":      s.registry.All(),
		"Flashes":    s.sessions.Flashes(c),
		"Admin":      c.Locals(handler.AdminLocalKey),
	}, handler.AdminLayout)
}

// Create inserts a new item from the submitted form.
func (s *Service) Create(c *fiber.Ctx) error {
	t, err := s.lookup(c)
	if t == nil {
		return err
	}

	outcome, err := t.Create(c.UserContext(), s.db, formFromRequest(c), s.optimizer)
	if err != nil {
		log.Error().Err(err).Str("type", t.Name()).Msg("content create failed")
		s.sessions.AddFlash(c, "danger", content.UserMessage(err))

		return c.Redirect(managePage(t))
	}

	s.sessions.AddFlash(c, "success", t.Label()+" added successfully!")
	s.flashWarnings(c, outcome)

	return c.Redirect(managePage(t))
}

// flashWarnings surfaces non-fatal notes, e.g. an image stored unoptimized.
func (s *Service) flashWarnings(c *fiber.Ctx, outcome *content.Outcome) {
	if outcome == nil {
		return
	}

	for _, w := range outcome.Warnings {
		s.sessions.AddFlash(c, "warning", w)
	}
}
