// Package taskstore holds the ordered task list and the only two operations
// allowed to mutate it: creating a task and changing a task status.
//
// The store is UI agnostic, renderers and report generators only consume
// snapshots. When a repository is configured, the store is hydrated from it
// on creation and every applied mutation saves the full snapshot back, on a
// best effort basis.
package taskstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/storage"
)

// Config is the configuration for the task store.
type Config struct {
	// Repository is optional, without it the store is not persisted.
	Repository storage.Repository
	// Clock defaults to time.Now.
	Clock  func() time.Time
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "taskstore.Store"})
	return nil
}

// Store is the owner of the task list.
type Store struct {
	tasks  []model.Task
	index  map[int64]int
	ids    *idGenerator
	repo   storage.Repository
	clock  func() time.Time
	logger log.Logger
	mu     sync.RWMutex
}

// New returns a store hydrated from the configured repository. Corrupt
// persisted tasks result in an empty store, repository read failures are
// returned so a broken backend is never overwritten with an empty list.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Store{
		index:  map[int64]int{},
		ids:    &idGenerator{},
		repo:   cfg.Repository,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}

	if s.repo == nil {
		return s, nil
	}

	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	if err := model.ValidateTasks(tasks); err != nil {
		s.logger.Warningf("Ignoring persisted tasks: %s", err)
		tasks = nil
	}

	for _, t := range tasks {
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t)
		s.ids.observe(t.ID)
	}

	s.logger.Debugf("Store hydrated with %d tasks", len(s.tasks))
	return s, nil
}

// Create appends a new not started task with the trimmed title. A blank
// title is ignored and reported with a false result.
func (s *Store) Create(ctx context.Context, title string) (model.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		s.logger.Debugf("Ignoring task with empty title")
		return model.Task{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := model.Task{
		ID:        s.ids.next(now),
		Title:     title,
		Status:    model.TaskStatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.index[task.ID] = len(s.tasks)
	s.tasks = append(s.tasks, task)
	s.logger.Debugf("Created task %d", task.ID)

	s.persist(ctx)

	return task, true
}

// SetStatus changes the status of a task and refreshes its update time.
// Unknown ids and invalid statuses are ignored and reported with a false
// result. Any status can move to any other status.
func (s *Store) SetStatus(ctx context.Context, id int64, status model.TaskStatus) (model.Task, bool) {
	if !status.IsValid() {
		s.logger.Debugf("Ignoring invalid status %q for task %d", status, id)
		return model.Task{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		s.logger.Debugf("Ignoring status change for missing task %d", id)
		return model.Task{}, false
	}

	// Never move backwards in time, even if the wall clock does.
	task := s.tasks[i]
	now := s.now()
	if now.Before(task.UpdatedAt) {
		now = task.UpdatedAt
	}

	task.Status = status
	task.UpdatedAt = now
	s.tasks[i] = task
	s.logger.Debugf("Task %d status set to %s", id, status)

	s.persist(ctx)

	return task, true
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int64) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

// Snapshot returns a copy of the tasks in insertion order.
func (s *Store) Snapshot() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}

func (s *Store) snapshot() []model.Task {
	tasks := make([]model.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// persist must be called with the lock held so saves keep mutation order.
func (s *Store) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}

	if err := s.repo.SaveTasks(ctx, s.snapshot()); err != nil {
		s.logger.Warningf("Could not persist tasks: %s", err)
	}
}

func (s *Store) now() time.Time { return s.clock().UTC() }
