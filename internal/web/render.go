package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// newMarkdown renders card faces. Raw HTML in card text is escaped because
// the unsafe renderer option stays off.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Table),
	)
}

func (s *Server) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": s.renderMarkdown,
		"percent": func(f float64) int {
			return int(f*100 + 0.5)
		},
		"cardNumber": cardNumber,
		"progressOf": func(index, total int) float64 {
			if total == 0 {
				return 0
			}
			return float64(cardNumber(index, total)) / float64(total)
		},
	}
}

// cardNumber is the one-based position of a stored index, wrapped into a deck
// that may have shrunk since the index was saved.
func cardNumber(index, total int) int {
	if total == 0 || index < 0 {
		return 0
	}
	return index%total + 1
}

func (s *Server) renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// render executes a named template into a buffer first so a failing template
// never leaves a half-written page behind.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		loggerFrom(r.Context()).Error("Failed to render template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// isFragment reports whether the request came from htmx and expects a partial.
func isFragment(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
