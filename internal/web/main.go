package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/content"
	fiberlogger "github.com/marogo-civils/marogo-web/internal/logger/adapter/fiber"
	"github.com/marogo-civils/marogo-web/internal/media"
	"github.com/marogo-civils/marogo-web/internal/web/handler"
	"github.com/marogo-civils/marogo-web/internal/web/handler/about"
	"github.com/marogo-civils/marogo-web/internal/web/handler/admin/manage"
	"github.com/marogo-civils/marogo-web/internal/web/handler/blog"
	contactpage "github.com/marogo-civils/marogo-web/internal/web/handler/contact"
	"github.com/marogo-civils/marogo-web/internal/web/handler/dashboard"
	"github.com/marogo-civils/marogo-web/internal/web/handler/home"
	"github.com/marogo-civils/marogo-web/internal/web/handler/login"
	"github.com/marogo-civils/marogo-web/internal/web/handler/logout"
	"github.com/marogo-civils/marogo-web/internal/web/handler/projects"
	"github.com/marogo-civils/marogo-web/internal/web/handler/services"
	"github.com/marogo-civils/marogo-web/internal/web/handler/submissions"
	"github.com/marogo-civils/marogo-web/internal/web/handler/uploads"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

// checkAlivePath answers load balancer health probes.
const checkAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	sessions     *session.Manager
	registry     *content.Registry
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request through /shutdown
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// checkAlive answers health probes, 503 once a shutdown started.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("ok")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, sessions *session.Manager, optimizer *media.Optimizer) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if sessions == nil {
		panic("session manager cannot be nil")
	}

	if optimizer == nil {
		panic("optimizer cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: checkAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	// session middleware guarding the admin console
	app.Use(AdminGate(sessions))

	registry := content.NewRegistry()

	// init web service
	service := &Service{
		cfg:      cfg,
		App:      app,
		db:       db,
		sessions: sessions,
		registry: registry,
	}
	service.alive.Store(true)

	app.Get(checkAlivePath, service.checkAlive)

	// init handlers (they register their own routes)
	for _, err := range []error{
		home.Handler.Init(app, cfg, db),
		about.Handler.Init(app, cfg, db),
		services.Handler.Init(app, cfg, db),
		projects.Handler.Init(app, cfg, db),
		blog.Handler.Init(app, cfg, db),
		contactpage.Handler.Init(app, cfg, db),
		uploads.Handler.Init(app, optimizer.Store()),
		login.Handler.Init(app, cfg, db, sessions),
		logout.Handler.Init(app, cfg, sessions),
		dashboard.Handler.Init(app, cfg, db, sessions, registry),
		manage.Handler.Init(app, cfg, db, sessions, registry, optimizer),
		submissions.Handler.Init(app, cfg, db, sessions, registry),
	} {
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize handler")
		}
	}

	// redirect the bare admin path to the dashboard
	app.Get(handler.AdminRootPath, func(c *fiber.Ctx) error {
		return c.Redirect(dashboard.Path)
	})

	return service
}
