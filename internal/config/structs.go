package config

import (
	"time"

	"github.com/marogo-civils/marogo-web/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Uploads   Uploads
	Tinify    Tinify
	Admin     Admin
}

// Admin holds the bootstrap settings of the console account.
type Admin struct {
	Username string // login name
	Password string // initial password, generated and logged once when empty
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// Uploads holds settings for the stored image directory.
type Uploads struct {
	Dir string // flat directory holding every uploaded image
}

// Tinify holds the remote image optimization service settings.
type Tinify struct {
	Enabled        bool
	Key            string // API key, sent as basic auth user "api"
	URL            string // service base URL, empty means https://api.tinify.com
	TimeoutSeconds int    // per-request timeout
}
