package handler

const (
	// BaseLayout is the layout of the public pages.
	BaseLayout = "layouts/base"

	// AdminLayout is the layout of the admin pages.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = "/"

	// AdminPath prefixes every admin route.
	AdminPath = "/admin"

	// AdminAPIPath prefixes the admin JSON routes.
	AdminAPIPath = AdminPath + "/api"

	// LoginPath is the admin sign-in page.
	LoginPath = AdminPath + "/login"

	// EditorPath is the content editor.
	EditorPath = AdminPath + "/editor"

	// ErrNilACDFatalLogMsg is used if app or deps are nil.
	ErrNilACDFatalLogMsg = "app or deps is nil"
)
