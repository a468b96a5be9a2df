package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"

	"shelf/internal/nav"
	"shelf/internal/views"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const placeholderImage = "/static/placeholder.svg"

var funcs = template.FuncMap{
	"cover":      cover,
	"markdown":   markdown,
	"stars":      stars,
	"libraryURL": libraryURL,
	"optionURL":  optionURL,
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// cover renders an image that falls back to the placeholder when src is empty
// or fails to load
func cover(src, alt string) template.HTML {
	if src == "" {
		src = placeholderImage
	}
	return template.HTML(fmt.Sprintf(
		`<img src="%s" alt="%s" loading="lazy" onerror="this.onerror=null;this.src='%s'">`,
		template.HTMLEscapeString(src), template.HTMLEscapeString(alt), placeholderImage,
	))
}

// markdown converts discussion text to HTML. Raw HTML in the source is dropped.
func markdown(content string) template.HTML {
	var buf strings.Builder
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(content) + "</p>")
	}
	return template.HTML(buf.String())
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func libraryURL(genre string, tab views.LibraryTab) string {
	q := url.Values{}
	q.Set("page", string(nav.Library))
	q.Set("genre", genre)
	q.Set("tab", string(tab))
	return "/?" + q.Encode()
}

func optionURL(id string) string {
	q := url.Values{}
	q.Set("page", string(nav.Discussion))
	q.Set("option", id)
	return "/?" + q.Encode()
}
