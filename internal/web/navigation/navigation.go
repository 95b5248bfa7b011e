// Package navigation carries the page state the admin templates need for
// the sidebar highlight and the breadcrumb trail.
package navigation

// Breadcrumb is a single link in the breadcrumb trail.
type Breadcrumb struct {
	Title  string
	URL    string
	Active bool
}

// Context describes where in the console the rendered page lives.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []Breadcrumb
	PageTitle     string
}

// NewContext creates the navigation context for one page. ActivePage is the
// content type identifier for the manage pages, so the sidebar can mark the
// entry being worked on.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]Breadcrumb, 0),
	}
}

// AddBreadcrumb appends one link to the trail and returns the context so
// calls can be chained.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, Breadcrumb{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive reports whether the given section and page are the ones being
// rendered.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive reports whether the given section is the one being
// rendered.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
