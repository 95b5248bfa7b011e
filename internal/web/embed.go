package web

import (
	"embed"
	"io/fs"
	"path"
)

var (
	// site stylesheets and scripts, served under /static
	//go:embed static/*
	embeddedStaticFiles embed.FS

	// public and admin page templates
	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS roots an embed.FS at the 'templates' directory so the
// template engine sees names like "home" instead of "templates/home".
type templateEmbedFS struct {
	content embed.FS
}

// Open opens the named file from the 'templates' directory.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join("templates", name))
}
