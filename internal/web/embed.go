package web

import (
	"embed"
	"io/fs"
)

var (
	//go:embed static
	embeddedStaticFiles embed.FS

	//go:embed templates
	embeddedTemplates embed.FS
)

// Templates returns the page templates with names relative to the templates
// directory, e.g. "layouts/base.gohtml".
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// only fails for invalid directory names
		panic(err)
	}

	return sub
}
