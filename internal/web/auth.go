package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/marogo-civils/marogo-web/internal/web/handler"
	"github.com/marogo-civils/marogo-web/internal/web/handler/dashboard"
	"github.com/marogo-civils/marogo-web/internal/web/handler/login"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

// AdminGate guards the admin console. Requests without a valid session are
// sent to the login page, logged in admins visiting the login page are sent
// to the dashboard. Public routes pass through untouched.
func AdminGate(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqPath := c.Path()
		if reqPath != handler.AdminRootPath && !strings.HasPrefix(reqPath, handler.AdminRootPath+"/") {
			return c.Next()
		}

		isLoginPage := strings.HasPrefix(reqPath, login.Path)

		data, err := sessions.Read(c.Cookies(session.CookieName))
		if err != nil {
			if isLoginPage {
				return c.Next()
			}

			return c.Redirect(login.Path)
		}

		if isLoginPage {
			return c.Redirect(dashboard.Path)
		}

		c.Locals(handler.AdminLocalKey, data)

		return c.Next()
	}
}
