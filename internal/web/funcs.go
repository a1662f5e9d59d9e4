package web

import (
	"html/template"
	"time"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/gallery"
	"github.com/lensfolio/lensfolio/internal/imageurl"
)

const defaultImageQuality = 80

// TemplateFuncs are the helpers available in every page template.
func TemplateFuncs() map[string]any {
	return map[string]any{
		"imageURL":    ImageURL,
		"imageAlt":    imageAlt,
		"prose":       content.Prose,
		"galleryLink": GalleryLink,
		"year": func() int {
			return time.Now().Year()
		},
		"safeURL": func(s string) template.URL {
			return template.URL(s) //nolint:gosec // editor provided links
		},
	}
}

// ImageURL resolves a stored image to a cropped CDN URL. img may be a
// content.Image or *content.Image, missing images give "".
func ImageURL(b imageurl.Builder, img any, width, height int) string {
	var ref string

	switch v := img.(type) {
	case content.Image:
		ref = v.Asset.Ref
	case *content.Image:
		if v == nil {
			return ""
		}

		ref = v.Asset.Ref
	default:
		return ""
	}

	return b.Image(ref).Width(width).Height(height).Fit("crop").Quality(defaultImageQuality).URL()
}

func imageAlt(img any, fallback string) string {
	switch v := img.(type) {
	case content.Image:
		if v.Alt != "" {
			return v.Alt
		}
	case *content.Image:
		if v != nil && v.Alt != "" {
			return v.Alt
		}
	}

	return fallback
}

// GalleryLink returns the gallery URL preselecting filter.
func GalleryLink(filter string) string {
	if q := gallery.QueryFor(filter); q != "" {
		return "/gallery?" + q
	}

	return "/gallery"
}
