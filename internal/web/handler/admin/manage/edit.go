package manage

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
	"github.com/marogo-civils/marogo-web/internal/web/handler/dashboard"
	"github.com/marogo-civils/marogo-web/internal/web/navigation"
)

// itemID parses the :id parameter.
func itemID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.ErrNotFound
	}

	return id, nil
}

// editPage is the edit URL of one item.
func editPage(t content.Type, id uint64) string {
	return EditPath + "/" + t.Name() + "/" + strconv.FormatUint(id, 10)
}

// Edit shows the edit form for one item.
func (s *Service) Edit(c *fiber.Ctx) error {
	t, err := s.lookup(c)
	if t == nil {
		return err
	}

	id, err := itemID(c)
	if err != nil {
		return err
	}

	item, err := t.Get(s.db, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return fiber.ErrNotFound
		}

		return errors.Wrapf(err, "failed to load %s %d", t.Name(), id)
	}

	nav := navigation.NewContext("Edit "+t.Label(), "admin", t.Name()).
		AddBreadcrumb("Dashboard", dashboard.Path, false).
		AddBreadcrumb(t.Label()+"s", managePage(t), false).
		AddBreadcrumb("Edit", editPage(t, id), true)

	return c.Render(TemplateEdit, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"TypeName":   t.Name(),
		"TypeLabel":  t.Label(),
		"ItemID":     id,
		"Item":       item,
		"Icons":      content.Icons(),
		"Categories": content.Categories(),
		"Types":      s.registry.All(),
		"Flashes":    s.sessions.Flashes(c),
		"Admin":      c.Locals(handler.AdminLocalKey),
	}, handler.AdminLayout)
}

// Update applies the submitted form to one item.
func (s *Service) Update(c *fiber.Ctx) error {
	t, err := s.lookup(c)
	if t == nil {
		return err
	}

	id, err := itemID(c)
	if err != nil {
		return err
	}

	outcome, err := t.Update(c.UserContext(), s.db, id, formFromRequest(c), s.optimizer)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return fiber.ErrNotFound
		}

		log.Error().Err(err).Str("type", t.Name()).Uint64("id", id).Msg("content update failed")
		s.sessions.AddFlash(c, "danger", content.UserMessage(err))

		// back to the form so the admin can correct the input
		return c.Redirect(editPage(t, id))
	}

	s.sessions.AddFlash(c, "success", t.Label()+" updated successfully!")
	s.flashWarnings(c, outcome)

	return c.Redirect(managePage(t))
}
