// Package contact serves the public contact page and accepts form
// submissions posted from it.
package contact

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	contactdb "github.com/marogo-civils/marogo-web/internal/db/controller/contact"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
)

const (
	// Path is the path to the contact page.
	Path = "/contact"

	// TemplateName is the name of the contact page template.
	TemplateName = "contact"
)

// submissionForm is the payload posted by the contact form.
type submissionForm struct {
	Name    string `form:"name"    validate:"required,max=100"`
	Email   string `form:"email"   validate:"required,email,max=100"`
	Subject string `form:"subject" validate:"max=200"`
	Message string `form:"message" validate:"required"`
}

// Service is the contact page handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the contact page handler.
var Handler = Service{}

// Init initializes the contact page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validate = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the contact page.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"ActivePage": "contact",
	}, handler.BaseLayout)
}

// Post stores a contact form submission. The page submits via fetch and
// shows the returned message inline, so both outcomes answer with JSON.
func (s *Service) Post(c *fiber.Ctx) error {
	var form submissionForm
	if err := c.BodyParser(&form); err != nil {
		return s.rejected(c, "Please fill in all required fields.")
	}

	if err := s.validate.Struct(form); err != nil {
		return s.rejected(c, "Please fill in all required fields correctly.")
	}

	if _, err := contactdb.Create(s.db, &models.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}); err != nil {
		log.Error().Err(err).Msg("failed to store contact submission")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Something went wrong. Please try again later.",
		})
	}

	log.Info().Str("name", form.Name).Str("email", form.Email).Msg("contact submission received")

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Thank you! Your message has been sent successfully.",
	})
}

// rejected answers a submission that failed validation.
func (s *Service) rejected(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": msg,
	})
}
