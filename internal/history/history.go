// Package history derives read-only views over completed timers:
// category extraction, filtering, and calendar-day grouping. Everything
// here is recomputed per call; nothing is cached or stored.
package history

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/tickdown/tickdown/internal/timer"
)

// CategoryAll is the implicit wildcard that matches every category.
const CategoryAll = "all"

// ExportTitle is the fixed title attached to history exports.
const ExportTitle = "Timer History Data"

// DayGroup is one calendar day of completed timers, most recent first.
type DayGroup struct {
	// Date is midnight (local) of the group's day
	Date time.Time `json:"date"`

	// Entries are the day's completions, most recent completion first
	Entries []timer.HistoryEntry `json:"entries"`
}

// Categories returns the distinct categories present in entries, in
// first-seen order. The "all" wildcard is the caller's to prepend.
func Categories(entries []timer.HistoryEntry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// Filter returns the entries whose category exactly matches (case
// sensitive). CategoryAll matches everything.
func Filter(entries []timer.HistoryEntry, category string) []timer.HistoryEntry {
	if category == "" || category == CategoryAll {
		return entries
	}
	var out []timer.HistoryEntry
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// GroupByDay buckets entries by the local calendar day they completed
// on. Groups are ordered most-recent-day first; within a group, entries
// are ordered most-recent-completion first.
func GroupByDay(entries []timer.HistoryEntry) []DayGroup {
	buckets := make(map[time.Time][]timer.HistoryEntry)
	for _, e := range entries {
		y, m, d := e.CompletedAt.Local().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		buckets[day] = append(buckets[day], e)
	}

	groups := make([]DayGroup, 0, len(buckets))
	for day, es := range buckets {
		sort.SliceStable(es, func(i, j int) bool {
			return es[i].CompletedAt.After(es[j].CompletedAt)
		})
		groups = append(groups, DayGroup{Date: day, Entries: es})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}

// ExportJSON serializes the full, unfiltered history as indented JSON,
// the exact payload handed to the share/export surface.
func ExportJSON(entries []timer.HistoryEntry) ([]byte, error) {
	if entries == nil {
		entries = []timer.HistoryEntry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}
