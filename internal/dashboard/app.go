package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"taskapp/internal/client"
	"taskapp/internal/view"
)

// ErrTitleRequired is returned by SubmitTask for a blank title. No network
// call is made in that case.
var ErrTitleRequired = errors.New("title is required")

// API is the slice of the task API client the dashboard needs.
type API interface {
	ListTasks(ctx context.Context) ([]client.Task, error)
	CreateTask(ctx context.Context, data client.TaskCreate) (*client.Task, error)
	UpdateTask(ctx context.Context, id int64, partial client.TaskUpdate) (*client.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*client.Stats, error)
	GetHealth(ctx context.Context) (*client.Health, error)
}

// TaskForm is the user input for a new task.
type TaskForm struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
}

// Snapshot is an immutable copy of the application state, safe to hand to
// renderers.
type Snapshot struct {
	Tasks   []client.Task
	Stats   *client.Stats
	Loading bool
	Badge   view.Badge
	Filter  view.Filter
	Alerts  []Alert
}

// App holds the dashboard state behind a mutex. The cached task list is not
// authoritative: every successful mutation reloads tasks and stats from the
// server, and the last completed refresh wins.
type App struct {
	api    API
	log    zerolog.Logger
	alerts *alertLog

	mu      sync.Mutex
	tasks   []client.Task
	stats   *client.Stats
	loading bool
	badge   view.Badge
	filter  view.Filter

	debounce    time.Duration
	searchTimer *time.Timer
}

func New(api API, log zerolog.Logger) *App {
	return &App{
		api:      api,
		log:      log,
		alerts:   newAlertLog(5 * time.Second),
		badge:    view.Badge{State: view.BadgeUnknown, Tooltip: "API status unknown"},
		debounce: 300 * time.Millisecond,
	}
}

// SetSearchDebounce overrides the search debounce interval.
func (a *App) SetSearchDebounce(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.debounce = d
}

// SetAlertTTL overrides how long alerts stay visible.
func (a *App) SetAlertTTL(ttl time.Duration) {
	a.alerts.setTTL(ttl)
}

// Refresh fetches the task list and stats, once each, and replaces the
// cached copies. A failed task load keeps the previous list and leaves the
// app retryable.
func (a *App) Refresh(ctx context.Context) error {
	a.setLoading(true)
	defer a.setLoading(false)

	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to load tasks")
		a.alerts.push(AlertError, "Failed to load tasks")
		return err
	}

	stats, err := a.api.GetStats(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to load stats")
		a.alerts.push(AlertError, "Failed to load stats")
		return err
	}

	a.mu.Lock()
	a.tasks = tasks
	a.stats = stats
	a.mu.Unlock()

	a.log.Debug().Int("tasks", len(tasks)).Msg("refreshed")
	return nil
}

// SubmitTask validates the form and creates a task. A blank title surfaces a
// validation alert and never issues a network request. On success the task
// list and stats are reloaded exactly once each.
func (a *App) SubmitTask(ctx context.Context, form TaskForm) error {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		a.alerts.push(AlertWarning, "Title is required")
		return ErrTitleRequired
	}

	data := client.TaskCreate{
		Title:       title,
		Description: form.Description,
		Priority:    form.Priority,
	}
	if form.DueDate != "" {
		dueDate := form.DueDate
		data.DueDate = &dueDate
	}

	created, err := a.api.CreateTask(ctx, data)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to create task")
		a.alerts.push(AlertError, "Failed to create task")
		return err
	}

	a.log.Info().Int64("id", created.ID).Msg("created task")
	a.alerts.push(AlertSuccess, "Task created")
	return a.Refresh(ctx)
}

// SetTaskStatus updates one task's status, then reloads the task list and
// stats exactly once each. A failed update leaves the cached state untouched.
func (a *App) SetTaskStatus(ctx context.Context, id int64, status string) error {
	_, err := a.api.UpdateTask(ctx, id, client.TaskUpdate{Status: &status})
	if err != nil {
		a.log.Error().Err(err).Int64("id", id).Msg("failed to update task")
		a.alerts.push(AlertError, "Failed to update task")
		return err
	}

	a.alerts.push(AlertSuccess, "Task updated")
	return a.Refresh(ctx)
}

// RemoveTask deletes a task after explicit confirmation. A declined
// confirmation issues no request at all.
func (a *App) RemoveTask(ctx context.Context, id int64, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		a.log.Error().Err(err).Int64("id", id).Msg("failed to delete task")
		a.alerts.push(AlertError, "Failed to delete task")
		return err
	}

	a.alerts.push(AlertSuccess, "Task deleted")
	return a.Refresh(ctx)
}

// ProbeHealth polls /health once and sets the badge. A transport failure
// leaves the badge in the unknown state.
func (a *App) ProbeHealth(ctx context.Context) {
	health, err := a.api.GetHealth(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("health probe failed")
		health = nil
	}

	a.mu.Lock()
	a.badge = view.HealthBadge(health)
	a.mu.Unlock()
}

// SetSearch updates the free-text filter after the debounce interval.
// Filtering is local, so no network call is involved.
func (a *App) SetSearch(term string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.searchTimer != nil {
		a.searchTimer.Stop()
	}
	a.searchTimer = time.AfterFunc(a.debounce, func() {
		a.mu.Lock()
		a.filter.Search = term
		a.mu.Unlock()
	})
}

// SetStatusFilter applies immediately; empty means all statuses.
func (a *App) SetStatusFilter(status string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filter.Status = status
}

// SetPriorityFilter applies immediately; empty means all priorities.
func (a *App) SetPriorityFilter(priority string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filter.Priority = priority
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	tasks := make([]client.Task, len(a.tasks))
	copy(tasks, a.tasks)

	return Snapshot{
		Tasks:   tasks,
		Stats:   a.stats,
		Loading: a.loading,
		Badge:   a.badge,
		Filter:  a.filter,
		Alerts:  a.alerts.active(),
	}
}

// View renders the current state through the pure renderer.
func (a *App) View() view.View {
	snap := a.Snapshot()
	return view.Render(snap.Tasks, snap.Filter)
}

func (a *App) setLoading(loading bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = loading
}
