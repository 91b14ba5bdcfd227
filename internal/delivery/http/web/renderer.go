// Package web renders the dashboard's HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages rendered by Renderer.
const (
	PageHome         = "home"
	PageInstructions = "instructions"
)

// Site holds values shown on every page.
type Site struct {
	SupportName  string
	SupportEmail string
}

// Renderer executes a page template inside the shared layout.
type Renderer struct {
	site         Site
	pages        map[string]*template.Template
	instructions template.HTML
}

// NewRenderer parses every page with the layout and renders the instructions Markdown.
func NewRenderer(site Site) (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{PageHome, PageInstructions} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	instructions, err := renderInstructions()
	if err != nil {
		return nil, err
	}
	return &Renderer{site: site, pages: pages, instructions: instructions}, nil
}

// Instructions returns the sanitised HTML of the instructions page body.
func (r *Renderer) Instructions() template.HTML {
	return r.instructions
}

type layoutData struct {
	Site Site
	Page any
}

// Render writes page with the given status. The page is rendered to a buffer
// first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", layoutData{Site: r.site, Page: data}); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
