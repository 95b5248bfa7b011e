// Package uploads serves the optimized images out of the upload directory.
package uploads

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/marogo-civils/marogo-web/internal/media"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
)

// Path is the path an uploaded image is served under.
const Path = "/uploads/:filename"

// Service is the uploads handler service.
type Service struct {
	handler.Service
	store *media.Store
}

// Handler is the uploads handler.
var Handler = Service{}

// Init initializes the uploads handler.
func (s *Service) Init(app *fiber.App, store *media.Store) error {
	if app == nil || store == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.store = store

	app.Get(Path, s.Get)

	return nil
}

// Get serves one stored image. Names that do not pass the store's
// validation, including anything path-like, answer 404.
func (s *Service) Get(c *fiber.Ctx) error {
	name := c.Params("filename")
	if !s.store.ValidName(name) || !s.store.Exists(name) {
		return fiber.ErrNotFound
	}

	return c.SendFile(s.store.Path(name))
}
