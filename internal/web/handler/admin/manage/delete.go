package manage

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/db/controller/contact"
	"github.com/marogo-civils/marogo-web/internal/web/handler/dashboard"
)

// submissionsType is the delete identifier for contact submissions, which
// live outside the content registry.
const submissionsType = "submissions"

// Delete removes one item and its stored files.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	if c.Params("type") == submissionsType {
		return s.deleteSubmission(c, id)
	}

	t, err := s.registry.Lookup(c.Params("type"))
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := content.Delete(s.db, t, id, s.optimizer.Store()); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return fiber.ErrNotFound
		}

		log.Error().Err(err).Str("type", t.Name()).Uint64("id", id).Msg("content delete failed")
		s.sessions.AddFlash(c, "danger", content.UserMessage(err))

		return c.Redirect(managePage(t))
	}

	s.sessions.AddFlash(c, "info", t.Label()+" deleted.")

	return c.Redirect(managePage(t))
}

func (s *Service) deleteSubmission(c *fiber.Ctx, id uint64) error {
	if err := contact.Delete(s.db, id); err != nil {
		if errors.Is(err, contact.ErrSubmissionNotFound) {
			return fiber.ErrNotFound
		}

		return errors.Wrapf(err, "failed to delete submission %d", id)
	}

	s.sessions.AddFlash(c, "info", "Submission deleted.")

	return c.Redirect(dashboard.Path)
}
