package view

import (
	"html"
	"strings"

	"taskapp/internal/client"
)

// Filter is the client-side filter state. Empty string means wildcard.
type Filter struct {
	Search   string
	Status   string
	Priority string
}

// Match reports whether a task satisfies the conjunction of the three
// predicates: case-insensitive substring on title or description, status
// equality or wildcard, priority equality or wildcard.
func (f Filter) Match(t client.Task) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	return true
}

// ApplyFilters returns exactly the subset of tasks matching the filter.
func ApplyFilters(tasks []client.Task, f Filter) []client.Task {
	filtered := make([]client.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Card is one rendered task. All user-supplied fields are HTML-escaped.
type Card struct {
	ID          int64
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     string
	Owner       string
	CreatedAt   string
}

// Counters summarizes the full (unfiltered) task set.
type Counters struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Cancelled  int
}

// View is a structured description of the task list, decoupled from any
// concrete output target.
type View struct {
	Cards    []Card
	Empty    bool
	Counters Counters
}

func newCard(t client.Task) Card {
	card := Card{
		ID:          t.ID,
		Title:       html.EscapeString(t.Title),
		Description: html.EscapeString(t.Description),
		Status:      t.Status,
		Priority:    t.Priority,
		Owner:       html.EscapeString(t.OwnerName()),
		CreatedAt:   t.CreatedAt,
	}
	if t.DueDate != nil {
		card.DueDate = *t.DueDate
	}
	return card
}

// Render is a pure function of (task list, filter state). Counters always
// cover the full set; cards cover the filtered subset. An empty subset sets
// Empty so the caller shows the placeholder instead of an error state.
func Render(tasks []client.Task, f Filter) View {
	v := View{Cards: make([]Card, 0, len(tasks))}

	for _, t := range tasks {
		v.Counters.Total++
		switch t.Status {
		case "pending":
			v.Counters.Pending++
		case "in_progress":
			v.Counters.InProgress++
		case "completed":
			v.Counters.Completed++
		case "cancelled":
			v.Counters.Cancelled++
		}
	}

	for _, t := range ApplyFilters(tasks, f) {
		v.Cards = append(v.Cards, newCard(t))
	}
	v.Empty = len(v.Cards) == 0

	return v
}
