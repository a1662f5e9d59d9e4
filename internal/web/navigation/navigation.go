// Package navigation provides the page title, menu state and breadcrumbs of a page.
package navigation

// Link is a menu entry.
type Link struct {
	Title string
	URL   string
	Page  string
}

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Public menu of the site.
var PublicLinks = []Link{ //nolint:gochecknoglobals
	{Title: "Home", URL: "/", Page: "home"},
	{Title: "Gallery", URL: "/gallery", Page: "gallery"},
	{Title: "About", URL: "/about", Page: "about"},
	{Title: "Contact", URL: "/contact", Page: "contact"},
}

// AdminLinks is the admin menu.
var AdminLinks = []Link{ //nolint:gochecknoglobals
	{Title: "Overview", URL: "/admin", Page: "admin"},
	{Title: "Editor", URL: "/admin/editor", Page: "editor"},
	{Title: "Setup", URL: "/admin/setup", Page: "setup"},
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle   string
	ActivePage  string
	Links       []Link
	Breadcrumbs []BreadcrumbItem
}

// NewContext creates a navigation context with the public menu.
func NewContext(pageTitle, activePage string) *Context {
	return &Context{
		PageTitle:   pageTitle,
		ActivePage:  activePage,
		Links:       PublicLinks,
		Breadcrumbs: make([]BreadcrumbItem, 0),
	}
}

// NewAdminContext creates a navigation context with the admin menu.
func NewAdminContext(pageTitle, activePage string) *Context {
	c := NewContext(pageTitle, activePage)
	c.Links = AdminLinks

	return c.AddBreadcrumb("Admin", "/admin", activePage == "admin")
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive reports whether page is the current page.
func (c *Context) IsActive(page string) bool {
	return c.ActivePage == page
}

// Title joins the page title and the site title.
func (c *Context) Title(siteTitle string) string {
	switch {
	case c.PageTitle == "":
		return siteTitle
	case siteTitle == "":
		return c.PageTitle
	default:
		return c.PageTitle + " | " + siteTitle
	}
}
