package handler

const (
	// BaseLayout is the layout template for the public site.
	BaseLayout = "layouts/base"

	// AdminLayout is the layout template for the admin console.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = ""

	// AdminRootPath is the path prefix of the admin console.
	AdminRootPath = "/admin"

	// AdminLocalKey is the fiber.Locals key holding the session data of the
	// logged in admin.
	AdminLocalKey = "admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
