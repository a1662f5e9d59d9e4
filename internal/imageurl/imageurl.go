// Package imageurl turns stored image references into transformation URLs of
// the image CDN and builds responsive srcsets for photo API images.
package imageurl

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL of the image CDN.
const DefaultBaseURL = "https://cdn.sanity.io"

// ErrInvalidRef is returned for references not shaped image-<id>-<w>x<h>-<ext>.
var ErrInvalidRef = errors.New("invalid image reference")

// Ref is a parsed image asset reference.
type Ref struct {
	ID     string
	Width  int
	Height int
	Format string
}

// ParseRef parses an asset reference like "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg".
func ParseRef(ref string) (Ref, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" || parts[1] == "" || parts[3] == "" {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	w, h, ok := strings.Cut(parts[2], "x")
	if !ok {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)

	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	return Ref{ID: parts[1], Width: width, Height: height, Format: parts[3]}, nil
}

// Builder creates image URLs for one project and dataset.
type Builder struct {
	ProjectID string
	Dataset   string
	BaseURL   string // DefaultBaseURL when empty
}

// Image starts a request for the given asset reference.
func (b Builder) Image(ref string) Request {
	return Request{builder: b, ref: ref}
}

// Request describes the transformation of one image. The zero values of the
// options leave the original size and quality untouched.
type Request struct {
	builder Builder
	ref     string
	width   int
	height  int
	fit     string
	quality int
	format  string
}

// Width of the delivered image in pixels.
func (r Request) Width(w int) Request {
	r.width = w
	return r
}

// Height of the delivered image in pixels.
func (r Request) Height(h int) Request {
	r.height = h
	return r
}

// Fit mode, e.g. "crop", "clip" or "max".
func (r Request) Fit(fit string) Request {
	r.fit = fit
	return r
}

// Quality between 1 and 100.
func (r Request) Quality(q int) Request {
	r.quality = q
	return r
}

// Format forces an output format, e.g. "webp".
func (r Request) Format(f string) Request {
	r.format = f
	return r
}

// URL returns the CDN URL or "" when the reference can not be resolved.
func (r Request) URL() string {
	ref, err := ParseRef(r.ref)
	if err != nil || r.builder.ProjectID == "" || r.builder.Dataset == "" {
		return ""
	}

	base := r.builder.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	u := fmt.Sprintf("%s/images/%s/%s/%s-%dx%d.%s",
		strings.TrimRight(base, "/"),
		r.builder.ProjectID,
		r.builder.Dataset,
		ref.ID,
		ref.Width,
		ref.Height,
		ref.Format,
	)

	q := url.Values{}

	if r.width > 0 {
		q.Set("w", strconv.Itoa(r.width))
	}

	if r.height > 0 {
		q.Set("h", strconv.Itoa(r.height))
	}

	if r.fit != "" {
		q.Set("fit", r.fit)
	}

	if r.quality > 0 {
		q.Set("q", strconv.Itoa(r.quality))
	}

	if r.format != "" {
		q.Set("fm", r.format)
	}

	if len(q) == 0 {
		return u
	}

	return u + "?" + q.Encode()
}
