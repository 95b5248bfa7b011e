// Package daemon assembles the database, session storage, upload pipeline
// and web service into one runnable unit.
package daemon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/storage"
	sessionmysql "github.com/gofiber/storage/mysql"
	sessionpostgres "github.com/gofiber/storage/postgres"
	sessionsqlite "github.com/gofiber/storage/sqlite3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/db/dsn"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/logger/adapter/stdlogger"
	"github.com/marogo-civils/marogo-web/internal/media"
	"github.com/marogo-civils/marogo-web/internal/tinify"
	"github.com/marogo-civils/marogo-web/internal/web"
	"github.com/marogo-civils/marogo-web/internal/web/session"
)

const (
	sessionTable       = "sessions"
	slowQueryThreshold = 200 * time.Millisecond
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	addr       string
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(d.addr)
}

// WaitShutdown blocks until the web service finished its graceful shutdown.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := openDatabase(cfg)

	ensureAdmin(cfg, db)

	sessions := session.NewManager(newSessionStorage(cfg), cfg.Webserver.Session.ExpiryTime)

	store := media.NewStore(cfg.Uploads.Dir)
	if err := store.Ensure(); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Uploads.Dir).Msg("failed to prepare upload directory")
	}

	optimizer := media.NewOptimizer(newCompressor(cfg), store)

	return &Daemon{
		webService: web.New(cfg, db, sessions, optimizer),
		addr:       fmt.Sprintf(":%d", cfg.Webserver.Port),
	}
}

// openDatabase connects to the configured engine and migrates the schema.
func openDatabase(cfg *config.Config) *gorm.DB {
	if cfg.DB.GormEngine == config.EngineSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), 0o750); err != nil { //nolint: mnd
			log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("can't create database directory")
		}
	}

	dialector, err := dsn.Dialector(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("engine", cfg.DB.GormEngine).Msg("unsupported database engine")
		return nil
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(stdlogger.New(), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	if err = db.AutoMigrate(
		&models.Admin{},
		&models.Project{},
		&models.ProjectImage{},
		&models.Service{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.Statistic{},
		&models.TeamMember{},
		&models.ClientLogo{},
		&models.Certification{},
		&models.ContactSubmission{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	return db
}

// newSessionStorage opens the session backend on the same engine the main
// database uses. For sqlite the sessions live in their own file next to
// the main database.
func newSessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         sessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			Username: cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			Table:    sessionTable,
		})
	default:
		return sessionsqlite.New(sessionsqlite.Config{
			Database: filepath.Join(filepath.Dir(cfg.DB.Path), "sessions.db"),
			Table:    sessionTable,
		})
	}
}

// newCompressor returns the remote image optimization client, nil when the
// service is disabled. A failing service check is logged but not fatal, the
// optimizer falls back to storing originals.
func newCompressor(cfg *config.Config) media.Compressor {
	if !cfg.Tinify.Enabled {
		log.Info().Msg("image optimization disabled, uploads are stored unmodified")
		return nil
	}

	timeout := time.Duration(cfg.Tinify.TimeoutSeconds) * time.Second

	client := tinify.New(tinify.Config{
		Key:     cfg.Tinify.Key,
		URL:     cfg.Tinify.URL,
		Timeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Validate(ctx); err != nil {
		log.Warn().Err(err).Msg("image optimization service check failed, uploads fall back to originals")
	} else {
		log.Info().Str("url", cfg.Tinify.URL).Msg("image optimization service ready")
	}

	return client
}
