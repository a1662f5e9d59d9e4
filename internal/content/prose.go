package content

import (
	"bytes"
	"html/template"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
)

//nolint:gochecknoglobals
var md = goldmark.New()

// Prose renders an editor text field as HTML. Editors may use markdown for
// emphasis and links; raw HTML in the source is not passed through.
func Prose(text string) template.HTML {
	var buf bytes.Buffer

	if err := md.Convert([]byte(text), &buf); err != nil {
		log.Warn().Err(err).Msg("render prose")
		return template.HTML(template.HTMLEscapeString(text)) //nolint:gosec // escaped
	}

	return template.HTML(buf.String()) //nolint:gosec // goldmark drops raw html by default
}
