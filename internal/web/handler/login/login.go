// Package login serves the admin console login page.
package login

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
	"github.com/marogo-civils/marogo-web/internal/web/handler/dashboard"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = handler.AdminRootPath + "/login"

	// TemplateName is the name of the login page template.
	TemplateName = "admin/login"
)

// ErrAuthenticationFailed is returned when the submitted credentials do not
// match the admin account.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	sessions *session.Manager
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Manager) error {
	if app == nil || cfg == nil || db == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.sessions = sessions

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the login page.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":   s.cfg.Title,
		"Flashes": s.sessions.Flashes(c),
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	admin, err := s.authenticate(c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, ErrAuthenticationFailed) {
			return s.failed(c, "Invalid username or password")
		}

		log.Error().Err(err).Msg("failed to check credentials")

		return s.failed(c, "Internal server error")
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return s.failed(c, "Internal server error")
	}

	if err = s.sessions.Write(sessionID, &session.Data{
		AdminID:  admin.ID,
		Username: admin.Username,
	}); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return s.failed(c, "Internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.sessions.Expiry().Seconds()),
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	s.sessions.AddFlash(c, "success", "Login successful!")

	return c.Redirect(dashboard.Path)
}

// authenticate loads the admin account and checks the password. Unknown
// usernames and wrong passwords both yield ErrAuthenticationFailed.
func (s *Service) authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin

	err := s.db.Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load admin account")
	}

	if !admin.VerifyPassword(password) {
		return nil, ErrAuthenticationFailed
	}

	return &admin, nil
}

// failed re-renders the login page with the given error message.
func (s *Service) failed(c *fiber.Ctx, msg string) error {
	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
		"Error": msg,
	})
}
