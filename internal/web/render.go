package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"

	"github.com/tickdown/tickdown/internal/errors"
	"github.com/tickdown/tickdown/internal/history"
	"github.com/tickdown/tickdown/internal/timer"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "timers", "history", "help"
}

// TimersPageData is the template data for the timers page.
type TimersPageData struct {
	PageData
	Timers     []timer.Timer
	Categories []string
	Category   string
	Total      int
}

// HistoryPageData is the template data for the history page.
type HistoryPageData struct {
	PageData
	Groups     []history.DayGroup
	Categories []string
	Category   string
	Total      int
}

// HelpPageData is the template data for the help page.
type HelpPageData struct {
	PageData
	RenderedHTML template.HTML
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
	helpMD    []byte
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) (*Renderer, error) {
	funcMap := template.FuncMap{
		"formatDuration": timer.FormatDuration,
		"formatClock":    timer.FormatClock,
		"formatDay":      formatDay,
		"relativeTime":   relativeTime,
		"formatTime":     formatTime,
	}

	// Parse layout as the base template
	layoutTmpl, err := template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout template: %w", err)
	}

	pages := map[string]string{
		"timers":  "timers.html",
		"history": "history.html",
		"help":    "help.html",
		"error":   "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t, err := layoutTmpl.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		templates[name] = t
	}

	helpMD, err := fs.ReadFile(templateFS, "help.md")
	if err != nil {
		return nil, fmt.Errorf("read help page source: %w", err)
	}

	return &Renderer{
		templates: templates,
		version:   version,
		helpMD:    helpMD,
	}, nil
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, name string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var tErr *errors.TickError
	if !stderrors.As(err, &tErr) {
		tErr = errors.NewInternal(err)
	}

	status := tErr.Status
	message := tErr.Message

	// JSON request
	if strings.Contains(req.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    string(tErr.Code),
				"message": message,
				"status":  status,
			},
		})
		return
	}

	// Full error page
	r.renderPageStatus(w, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md []byte) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert(md, &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(string(md)))
	}
	return template.HTML(buf.String())
}

// formatDay formats a day-group key as "Monday, January 2 2006".
func formatDay(t time.Time) string {
	return t.Format("Monday, January 2 2006")
}

// relativeTime formats a timestamp as a human-relative phrase ("3 hours ago").
func relativeTime(t time.Time) string {
	return humanize.Time(t)
}

// formatTime formats a timestamp as "15:04".
func formatTime(t time.Time) string {
	return t.Local().Format("15:04")
}
