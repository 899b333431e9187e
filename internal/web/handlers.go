package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tickdown/tickdown/internal/config"
	"github.com/tickdown/tickdown/internal/history"
	"github.com/tickdown/tickdown/internal/ops"
	"github.com/tickdown/tickdown/internal/state"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	container *state.Container
	cfg       *config.Config
	renderer  *Renderer
}

// HandleTimers handles GET /timers — the live timer list.
func (h *Handlers) HandleTimers(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	result, err := ops.List(h.container, ops.ListInput{Category: category})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "timers", TimersPageData{
		PageData: PageData{
			Title:   "Timers",
			Version: h.renderer.version,
			Nav:     "timers",
		},
		Timers:     result.Timers,
		Categories: ops.Categories(h.container),
		Category:   category,
		Total:      result.Total,
	})
}

// HandleHistory handles GET /history — completed timers grouped by day.
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	result, err := ops.History(h.container, ops.HistoryInput{Category: category})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "history", HistoryPageData{
		PageData: PageData{
			Title:   "History",
			Version: h.renderer.version,
			Nav:     "history",
		},
		Groups:     result.Groups,
		Categories: result.Categories,
		Category:   category,
		Total:      result.Total,
	})
}

// HandleExport handles GET /history/export — download the history
// collection as a JSON file. Served directly rather than written to
// disk, so the CLI path allowlist does not apply here.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	snap := h.container.Snapshot()
	payload, err := history.ExportJSON(snap.History)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	filename := fmt.Sprintf("history-%s.json", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(payload)
}

// HandleHelp handles GET /help — the markdown-rendered help page.
func (h *Handlers) HandleHelp(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderPage(w, "help", HelpPageData{
		PageData: PageData{
			Title:   "Help",
			Version: h.renderer.version,
			Nav:     "help",
		},
		RenderedHTML: renderMarkdown(h.renderer.helpMD),
	})
}
