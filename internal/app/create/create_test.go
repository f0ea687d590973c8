package create_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurama/tasktracker/internal/app/create"
	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/taskstore"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config create.ServiceConfig
		expErr bool
	}{
		"Valid config should create service.": {
			config: create.ServiceConfig{Store: &taskstore.Store{}, Logger: log.Noop},
		},
		"Missing store should fail.": {
			config: create.ServiceConfig{Logger: log.Noop},
			expErr: true,
		},
		"Nil logger should default to noop.": {
			config: create.ServiceConfig{Store: &taskstore.Store{}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := create.NewService(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(svc)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestServiceRun(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		req      create.Request
		expTask  *model.Task
		expErr   error
		expTasks int
	}{
		"A title should create a not started task.": {
			req: create.Request{Title: "Buy milk"},
			expTask: &model.Task{
				ID:        now.UnixMilli(),
				Title:     "Buy milk",
				Status:    model.TaskStatusNotStarted,
				CreatedAt: now,
				UpdatedAt: now,
			},
			expTasks: 1,
		},
		"A blank title should fail without creating anything.": {
			req:      create.Request{Title: "   "},
			expErr:   model.ErrNotValid,
			expTasks: 0,
		},
		"An empty title should fail without creating anything.": {
			req:      create.Request{},
			expErr:   model.ErrNotValid,
			expTasks: 0,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			store, err := taskstore.New(context.Background(), taskstore.Config{Clock: func() time.Time { return now }})
			require.NoError(err)

			svc, err := create.NewService(create.ServiceConfig{Store: store})
			require.NoError(err)

			task, err := svc.Run(context.Background(), test.req)

			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				assert.Nil(task)
			} else if assert.NoError(err) {
				assert.Equal(test.expTask, task)
			}
			assert.Equal(test.expTasks, store.Len())
		})
	}
}
