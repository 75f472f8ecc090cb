// Package render is the thin HTML collaborator: it owns the embedded
// templates and nothing else. All decisions about what gets shown are made
// before data reaches it.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"blog/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Data map[string]interface{}

type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template against the shared base layout.
func New() (*Renderer, error) {
	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("render: can't read templates dir: %w", err)
	}

	pages := map[string]*template.Template{}
	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" {
			continue
		}
		t, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("render: can't parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// HTML renders a page into a buffer first so a template failure becomes a
// 500 instead of a half-written page.
func (rd *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, page string, data Data) {
	t, ok := rd.pages[page]
	if !ok {
		logger.Log(r.Context()).Errorf("render: unknown template %s", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		logger.Log(r.Context()).Errorf("render: failed executing %s: %v", page, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Log(r.Context()).Errorf("render: failed writing response: %v", err)
	}
}

func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rd.HTML(w, r, http.StatusNotFound, "not_found.html", Data{})
}
