package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"taskapp/internal/client"
	"taskapp/internal/dashboard"
	"taskapp/internal/view"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// fakeAPI counts calls so the tests can assert exactly how many requests an
// operation issued.
type fakeAPI struct {
	mu sync.Mutex

	tasks  []client.Task
	stats  *client.Stats
	health *client.Health

	listErr   error
	createErr error
	updateErr error
	deleteErr error
	statsErr  error
	healthErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	statsCalls  int
	healthCalls int
}

func (f *fakeAPI) ListTasks(ctx context.Context) ([]client.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tasks, nil
}

func (f *fakeAPI) CreateTask(ctx context.Context, data client.TaskCreate) (*client.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	task := client.Task{ID: int64(len(f.tasks) + 1), Title: data.Title, Status: "pending", Priority: data.Priority}
	f.tasks = append(f.tasks, task)
	return &task, nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id int64, partial client.TaskUpdate) (*client.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if partial.Status != nil {
				f.tasks[i].Status = *partial.Status
			}
			return &f.tasks[i], nil
		}
	}
	return nil, errors.New("task not found")
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return errors.New("task not found")
}

func (f *fakeAPI) GetStats(ctx context.Context) (*client.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsCalls++
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	if f.stats != nil {
		return f.stats, nil
	}
	return &client.Stats{TotalTasks: len(f.tasks)}, nil
}

func (f *fakeAPI) GetHealth(ctx context.Context) (*client.Health, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.healthCalls++
	if f.healthErr != nil {
		return nil, f.healthErr
	}
	return f.health, nil
}

func (f *fakeAPI) calls() (list, create, update, del, stats, health int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.createCalls, f.updateCalls, f.deleteCalls, f.statsCalls, f.healthCalls
}

func newTestApp(api *fakeAPI) *dashboard.App {
	return dashboard.New(api, zerolog.Nop())
}

func hasAlert(alerts []dashboard.Alert, level dashboard.AlertLevel) bool {
	for _, a := range alerts {
		if a.Level == level {
			return true
		}
	}
	return false
}

func TestSubmitTask_BlankTitleIssuesNoRequest(t *testing.T) {
	api := &fakeAPI{}
	app := newTestApp(api)

	err := app.SubmitTask(context.Background(), dashboard.TaskForm{Title: "   "})

	assert.ErrorIs(t, err, dashboard.ErrTitleRequired)

	list, create, update, del, stats, _ := api.calls()
	assert.Zero(t, list+create+update+del+stats, "no network call for blank title")
	assert.True(t, hasAlert(app.Snapshot().Alerts, dashboard.AlertWarning))
}

func TestSubmitTask_ReloadsOnceEach(t *testing.T) {
	api := &fakeAPI{}
	app := newTestApp(api)

	err := app.SubmitTask(context.Background(), dashboard.TaskForm{Title: "  Write report "})

	assert.NoError(t, err)

	list, create, _, _, stats, _ := api.calls()
	assert.Equal(t, 1, create)
	assert.Equal(t, 1, list, "tasks reloaded exactly once")
	assert.Equal(t, 1, stats, "stats reloaded exactly once")

	snap := app.Snapshot()
	assert.Len(t, snap.Tasks, 1)
	assert.Equal(t, "Write report", snap.Tasks[0].Title, "title is trimmed")
}

func TestSubmitTask_CreateFailureLeavesStateUntouched(t *testing.T) {
	api := &fakeAPI{
		tasks: []client.Task{{ID: 1, Title: "A", Status: "pending", Priority: "low"}},
	}
	app := newTestApp(api)
	assert.NoError(t, app.Refresh(context.Background()))

	api.mu.Lock()
	api.createErr = errors.New("boom")
	api.mu.Unlock()

	err := app.SubmitTask(context.Background(), dashboard.TaskForm{Title: "New"})

	assert.Error(t, err)

	snap := app.Snapshot()
	assert.Len(t, snap.Tasks, 1, "cached tasks unchanged after failed create")
	assert.True(t, hasAlert(snap.Alerts, dashboard.AlertError))

	list, _, _, _, stats, _ := api.calls()
	assert.Equal(t, 1, list, "no reload after failed mutation")
	assert.Equal(t, 1, stats)
}

func TestSetTaskStatus_ReloadsOnceEach(t *testing.T) {
	api := &fakeAPI{
		tasks: []client.Task{{ID: 1, Title: "A", Status: "pending", Priority: "low"}},
	}
	app := newTestApp(api)

	err := app.SetTaskStatus(context.Background(), 1, "completed")

	assert.NoError(t, err)

	list, _, update, _, stats, _ := api.calls()
	assert.Equal(t, 1, update)
	assert.Equal(t, 1, list)
	assert.Equal(t, 1, stats)
	assert.Equal(t, "completed", app.Snapshot().Tasks[0].Status)
}

func TestRemoveTask_DeclinedConfirmationIssuesNoRequest(t *testing.T) {
	api := &fakeAPI{
		tasks: []client.Task{{ID: 1, Title: "A", Status: "pending", Priority: "low"}},
	}
	app := newTestApp(api)

	err := app.RemoveTask(context.Background(), 1, func() bool { return false })

	assert.NoError(t, err)

	list, _, _, del, stats, _ := api.calls()
	assert.Zero(t, del, "declined confirmation must not issue a request")
	assert.Zero(t, list+stats)
}

func TestRemoveTask_Confirmed(t *testing.T) {
	api := &fakeAPI{
		tasks: []client.Task{{ID: 1, Title: "A", Status: "pending", Priority: "low"}},
	}
	app := newTestApp(api)

	err := app.RemoveTask(context.Background(), 1, func() bool { return true })

	assert.NoError(t, err)

	list, _, _, del, stats, _ := api.calls()
	assert.Equal(t, 1, del)
	assert.Equal(t, 1, list)
	assert.Equal(t, 1, stats)
	assert.Empty(t, app.Snapshot().Tasks)
}

func TestRefresh_ListFailureKeepsPreviousTasks(t *testing.T) {
	api := &fakeAPI{
		tasks: []client.Task{{ID: 1, Title: "A", Status: "pending", Priority: "low"}},
	}
	app := newTestApp(api)
	assert.NoError(t, app.Refresh(context.Background()))

	api.mu.Lock()
	api.listErr = errors.New("connection refused")
	api.mu.Unlock()

	err := app.Refresh(context.Background())

	assert.Error(t, err)

	snap := app.Snapshot()
	assert.Len(t, snap.Tasks, 1, "previous tasks retained")
	assert.False(t, snap.Loading, "app stays retryable")
	assert.True(t, hasAlert(snap.Alerts, dashboard.AlertError))
}

func TestProbeHealth(t *testing.T) {
	api := &fakeAPI{health: &client.Health{Status: "unhealthy"}}
	app := newTestApp(api)

	app.ProbeHealth(context.Background())

	snap := app.Snapshot()
	assert.Equal(t, view.BadgeUnhealthy, snap.Badge.State)
	assert.Contains(t, snap.Badge.Tooltip, "unhealthy")

	_, _, _, _, _, health := api.calls()
	assert.Equal(t, 1, health, "probe runs once")
}

func TestProbeHealth_TransportFailure(t *testing.T) {
	api := &fakeAPI{healthErr: errors.New("connection refused")}
	app := newTestApp(api)

	app.ProbeHealth(context.Background())

	assert.Equal(t, view.BadgeUnknown, app.Snapshot().Badge.State)
}

func TestSetSearch_Debounced(t *testing.T) {
	api := &fakeAPI{}
	app := newTestApp(api)
	app.SetSearchDebounce(20 * time.Millisecond)

	app.SetSearch("fo")
	app.SetSearch("foo")

	assert.Empty(t, app.Snapshot().Filter.Search, "filter not applied before the debounce interval")

	assert.Eventually(t, func() bool {
		return app.Snapshot().Filter.Search == "foo"
	}, time.Second, 5*time.Millisecond, "only the last search term is applied")

	list, _, _, _, stats, _ := api.calls()
	assert.Zero(t, list+stats, "search filtering is local")
}

func TestView_FiltersRenderedCards(t *testing.T) {
	api := &fakeAPI{
		tasks: []client.Task{
			{ID: 1, Title: "A", Status: "pending", Priority: "low"},
			{ID: 2, Title: "B", Status: "completed", Priority: "high"},
		},
	}
	app := newTestApp(api)
	assert.NoError(t, app.Refresh(context.Background()))
	app.SetStatusFilter("completed")

	v := app.View()

	assert.Len(t, v.Cards, 1)
	assert.Equal(t, int64(2), v.Cards[0].ID)
	assert.Equal(t, 2, v.Counters.Total)
}
