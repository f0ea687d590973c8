package taskstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/storage"
	"github.com/gurama/tasktracker/internal/storage/memory"
	"github.com/gurama/tasktracker/internal/storage/storagemock"
	"github.com/gurama/tasktracker/internal/taskstore"
)

// clock returns t and then moves it forward by step on every call.
type clock struct {
	t    time.Time
	step time.Duration
}

func (c *clock) Now() time.Time {
	t := c.t
	c.t = c.t.Add(c.step)
	return t
}

func newClock(step time.Duration) *clock {
	return &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), step: step}
}

func newStore(t *testing.T, c *clock) *taskstore.Store {
	t.Helper()
	s, err := taskstore.New(context.Background(), taskstore.Config{Clock: c.Now})
	require.NoError(t, err)
	return s
}

func encode(t *testing.T, tasks []model.Task) []byte {
	t.Helper()
	b, err := storage.EncodeTasks(tasks)
	require.NoError(t, err)
	return b
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()

	// A frozen clock makes every creation share the same tick.
	s := newStore(t, newClock(0))

	const n = 50
	for i := 0; i < n; i++ {
		task, ok := s.Create(ctx, fmt.Sprintf("task %d", i))
		require.True(t, ok)
		assert.Equal(t, model.TaskStatusNotStarted, task.Status)
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	}

	tasks := s.Snapshot()
	require.Len(t, tasks, n)

	seen := map[int64]bool{}
	for i, task := range tasks {
		assert.False(t, seen[task.ID], "duplicated id %d", task.ID)
		seen[task.ID] = true
		assert.Equal(t, fmt.Sprintf("task %d", i), task.Title, "insertion order must be kept")
	}
}

func TestCreateIgnoresBlankTitles(t *testing.T) {
	tests := map[string]struct {
		title string
	}{
		"empty":       {title: ""},
		"spaces":      {title: "   "},
		"tabs and nl": {title: "\t\n "},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t, newClock(time.Second))
			_, ok := s.Create(ctx, "existing")
			require.True(t, ok)

			task, ok := s.Create(ctx, test.title)
			assert.False(t, ok)
			assert.Equal(t, model.Task{}, task)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestCreateTrimsTitle(t *testing.T) {
	s := newStore(t, newClock(time.Second))

	task, ok := s.Create(context.Background(), "  Buy milk \n")
	require.True(t, ok)
	assert.Equal(t, "Buy milk", task.Title)
}

func TestSetStatusUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newClock(time.Second))
	s.Create(ctx, "a")
	s.Create(ctx, "b")

	before := encode(t, s.Snapshot())
	_, ok := s.SetStatus(ctx, 9999, model.TaskStatusCompleted)
	assert.False(t, ok)
	assert.Equal(t, before, encode(t, s.Snapshot()))
}

func TestSetStatusInvalidStatusIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newClock(time.Second))
	task, _ := s.Create(ctx, "a")

	before := encode(t, s.Snapshot())
	_, ok := s.SetStatus(ctx, task.ID, "blocked")
	assert.False(t, ok)
	assert.Equal(t, before, encode(t, s.Snapshot()))
}

func TestSetStatusOnlyChangesTargetTask(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newClock(time.Second))
	a, _ := s.Create(ctx, "a")
	b, _ := s.Create(ctx, "b")
	c, _ := s.Create(ctx, "c")

	updated, ok := s.SetStatus(ctx, b.ID, model.TaskStatusOngoing)
	require.True(t, ok)

	tasks := s.Snapshot()
	require.Len(t, tasks, 3)
	assert.Equal(t, a, tasks[0])
	assert.Equal(t, c, tasks[2])

	got := tasks[1]
	assert.Equal(t, updated, got)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.Title, got.Title)
	assert.Equal(t, b.CreatedAt, got.CreatedAt)
	assert.Equal(t, model.TaskStatusOngoing, got.Status)
	assert.True(t, got.UpdatedAt.After(b.UpdatedAt))
}

func TestSetStatusUnrestrictedTransitions(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newClock(time.Second))
	task, _ := s.Create(ctx, "a")

	transitions := []model.TaskStatus{
		model.TaskStatusCompleted,
		model.TaskStatusNotStarted,
		model.TaskStatusOngoing,
		model.TaskStatusOngoing,
		model.TaskStatusNotStarted,
	}

	prev := task.UpdatedAt
	for _, status := range transitions {
		got, ok := s.SetStatus(ctx, task.ID, status)
		require.True(t, ok)
		assert.Equal(t, status, got.Status)
		assert.False(t, got.UpdatedAt.Before(prev))
		prev = got.UpdatedAt
	}
}

func TestSetStatusUpdatedAtNeverGoesBackwards(t *testing.T) {
	ctx := context.Background()
	c := newClock(0)
	s := newStore(t, c)
	task, _ := s.Create(ctx, "a")

	// Wall clock jumps one hour back.
	c.t = c.t.Add(-time.Hour)
	got, ok := s.SetStatus(ctx, task.ID, model.TaskStatusCompleted)
	require.True(t, ok)
	assert.Equal(t, task.CreatedAt, got.UpdatedAt)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newClock(time.Second))
	task, _ := s.Create(ctx, "a")

	snap := s.Snapshot()
	snap[0].Title = "mutated"
	snap[0].Status = model.TaskStatusCompleted

	got, ok := s.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, task, got)
	assert.Equal(t, 1, s.Len())
}

func TestScenarioBuyMilk(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newClock(time.Second))

	task, ok := s.Create(ctx, "Buy milk")
	require.True(t, ok)
	tasks := s.Snapshot()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, model.TaskStatusNotStarted, tasks[0].Status)

	updated, ok := s.SetStatus(ctx, task.ID, model.TaskStatusOngoing)
	require.True(t, ok)
	assert.Equal(t, model.TaskStatusOngoing, updated.Status)
	assert.NotEqual(t, task.UpdatedAt, updated.UpdatedAt)

	before := s.Snapshot()
	_, ok = s.SetStatus(ctx, 9999, model.TaskStatusCompleted)
	assert.False(t, ok)
	assert.Equal(t, before, s.Snapshot())
}

func TestStorePersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	m := &storagemock.Repository{}
	m.On("LoadTasks", mock.Anything).Once().Return([]model.Task{}, nil)
	m.On("SaveTasks", mock.Anything, mock.MatchedBy(func(tasks []model.Task) bool { return len(tasks) == 1 })).Twice().Return(nil)

	s, err := taskstore.New(ctx, taskstore.Config{Repository: m, Clock: newClock(time.Second).Now})
	require.NoError(t, err)

	task, _ := s.Create(ctx, "a")
	s.SetStatus(ctx, task.ID, model.TaskStatusCompleted)

	// No-ops don't save.
	s.Create(ctx, " ")
	s.SetStatus(ctx, 42, model.TaskStatusCompleted)

	m.AssertExpectations(t)
}

func TestStoreSaveFailuresAreNotSurfaced(t *testing.T) {
	ctx := context.Background()
	m := &storagemock.Repository{}
	m.On("LoadTasks", mock.Anything).Once().Return(nil, nil)
	m.On("SaveTasks", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

	s, err := taskstore.New(ctx, taskstore.Config{Repository: m})
	require.NoError(t, err)

	task, ok := s.Create(ctx, "a")
	assert.True(t, ok)
	_, ok = s.SetStatus(ctx, task.ID, model.TaskStatusOngoing)
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestNewLoadFailure(t *testing.T) {
	m := &storagemock.Repository{}
	m.On("LoadTasks", mock.Anything).Once().Return(nil, fmt.Errorf("database locked"))

	_, err := taskstore.New(context.Background(), taskstore.Config{Repository: m})
	assert.Error(t, err)
	m.AssertExpectations(t)
}

func TestNewIgnoresInvalidHydratedTasks(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m := &storagemock.Repository{}
	m.On("LoadTasks", mock.Anything).Once().Return([]model.Task{
		{ID: 1, Title: "a", Status: model.TaskStatusOngoing, CreatedAt: created, UpdatedAt: created},
		{ID: 1, Title: "b", Status: model.TaskStatusOngoing, CreatedAt: created, UpdatedAt: created},
	}, nil)

	s, err := taskstore.New(context.Background(), taskstore.Config{Repository: m})
	require.NoError(t, err)
	assert.Empty(t, s.Snapshot())
}

func TestStoreRestartKeepsTasksAndUniqueIDs(t *testing.T) {
	ctx := context.Background()
	kv, err := memory.NewKV(memory.KVConfig{})
	require.NoError(t, err)
	repo, err := storage.NewTaskRepository(storage.TaskRepositoryConfig{KV: kv})
	require.NoError(t, err)

	c := newClock(0)
	s1, err := taskstore.New(ctx, taskstore.Config{Repository: repo, Clock: c.Now})
	require.NoError(t, err)
	a, _ := s1.Create(ctx, "a")
	b, _ := s1.Create(ctx, "b")
	s1.SetStatus(ctx, a.ID, model.TaskStatusCompleted)
	exp := s1.Snapshot()

	// Same frozen clock after restart, ids must still be unique.
	s2, err := taskstore.New(ctx, taskstore.Config{Repository: repo, Clock: c.Now})
	require.NoError(t, err)
	assert.Equal(t, exp, s2.Snapshot())

	d, ok := s2.Create(ctx, "d")
	require.True(t, ok)
	assert.Greater(t, d.ID, b.ID)

	got, ok := s2.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, model.TaskStatusCompleted, got.Status)
}
