package imageurl

import (
	"net/url"
	"strconv"
	"strings"
)

// LightboxWidths are the candidate widths of the lightbox srcset.
var LightboxWidths = []int{800, 1200, 1600, 2000, 2400} //nolint:gochecknoglobals

// LightboxQuality is the quality requested for lightbox candidates.
const LightboxQuality = 85

// SrcSet builds a srcset attribute from a photo API URL which understands the
// w and q query parameters. It returns "" for unparsable URLs.
func SrcSet(rawURL string, widths []int) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" || len(widths) == 0 {
		return ""
	}

	candidates := make([]string, 0, len(widths))

	for _, w := range widths {
		c := *u
		q := c.Query()
		q.Set("w", strconv.Itoa(w))
		q.Set("q", strconv.Itoa(LightboxQuality))
		c.RawQuery = q.Encode()

		candidates = append(candidates, c.String()+" "+strconv.Itoa(w)+"w")
	}

	return strings.Join(candidates, ", ")
}

// Sized returns rawURL with the width and quality parameters set.
func Sized(rawURL string, width int) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}

	q := u.Query()
	q.Set("w", strconv.Itoa(width))
	q.Set("q", strconv.Itoa(LightboxQuality))
	u.RawQuery = q.Encode()

	return u.String()
}
