package contact

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Signature closes every email.
type Signature struct {
	Name    string
	Email   string
	Website string
}

// Message is a rendered email body.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Renderer renders the notification and confirmation emails.
type Renderer struct {
	engine    *html.Engine
	signature Signature
}

// NewRenderer loads the email templates.
func NewRenderer(signature Signature) (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}

	engine := html.NewFileSystem(http.FS(sub), ".gohtml")
	engine.AddFunc("nl2br", nl2br)

	if err = engine.Load(); err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	return &Renderer{engine: engine, signature: signature}, nil
}

func nl2br(s string) template.HTML {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = template.HTMLEscapeString(l)
	}

	return template.HTML(strings.Join(lines, "<br>")) //nolint:gosec // every line is escaped
}

// RenderNotification renders the email sent to the site owner.
func (r *Renderer) RenderNotification(form Form) (Message, error) {
	return r.render("notification", "New Contact Form Submission from "+form.Name, form)
}

// RenderConfirmation renders the receipt sent to the submitter.
func (r *Renderer) RenderConfirmation(form Form) (Message, error) {
	subject := "Thank you for contacting"
	if r.signature.Name != "" {
		subject += " " + r.signature.Name
	}

	return r.render("confirmation", subject, form)
}

func (r *Renderer) render(name, subject string, form Form) (Message, error) {
	var buf bytes.Buffer

	err := r.engine.Render(&buf, name, map[string]any{
		"Form":      form,
		"Signature": r.signature,
	})
	if err != nil {
		return Message{}, fmt.Errorf("failed to render %s: %w", name, err)
	}

	text, err := htmltomarkdown.ConvertString(buf.String())
	if err != nil {
		return Message{}, fmt.Errorf("failed to convert %s to text: %w", name, err)
	}

	return Message{Subject: subject, HTML: buf.String(), Text: text}, nil
}
