package lib

import (
	"errors"
	"time"

	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/report"
)

// StorageType identifies where the client persists the tasks.
type StorageType string

const (
	// StorageSQLite stores the tasks on a SQLite database.
	StorageSQLite StorageType = "sqlite"
	// StorageFile stores the tasks on a JSON file.
	StorageFile StorageType = "file"
	// StorageMemory keeps the tasks in memory only.
	StorageMemory StorageType = "memory"
)

// TaskStatus represents the progress of a task. Any status can move to any
// other status.
type TaskStatus string

const (
	// TaskStatusNotStarted is the status of new tasks.
	TaskStatusNotStarted TaskStatus = "not-started"
	// TaskStatusOngoing indicates the task is in progress.
	TaskStatusOngoing TaskStatus = "ongoing"
	// TaskStatusCompleted indicates the task is done.
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a read-only snapshot of a task at the time of the API call.
type Task struct {
	// ID is the unique identifier assigned at creation.
	ID int64
	// Title is the trimmed, non empty title.
	Title string
	// Status is the current status.
	Status TaskStatus
	// CreatedAt is when the task was created.
	CreatedAt time.Time
	// UpdatedAt is when the task was last changed, never before CreatedAt.
	UpdatedAt time.Time
}

// ListTasksOpts are the options for [Client.ListTasks].
type ListTasksOpts struct {
	// Status only returns the tasks with this status.
	Status *TaskStatus
}

// ReportFormat is the format of a generated report.
type ReportFormat string

const (
	// ReportFormatPDF generates a paginated PDF document.
	ReportFormatPDF ReportFormat = "pdf"
	// ReportFormatMarkdown generates a Markdown document.
	ReportFormatMarkdown ReportFormat = "markdown"
)

// ReportOpts are the options for [Client.Report].
type ReportOpts struct {
	// Format defaults to [ReportFormatPDF].
	Format ReportFormat
}

// ReportInfo describes a generated report.
type ReportInfo struct {
	// ID is the unique report identifier (ULID).
	ID     string
	Format ReportFormat
	// Pages is the number of pages, zero for non paginated formats.
	Pages       int
	GeneratedAt time.Time
	// Size is the number of bytes written.
	Size int
}

// --- Conversion helpers ---

func fromInternalTask(t model.Task) Task {
	return Task{
		ID:        t.ID,
		Title:     t.Title,
		Status:    TaskStatus(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func fromInternalTaskList(ts []model.Task) []Task {
	result := make([]Task, len(ts))
	for i, t := range ts {
		result[i] = fromInternalTask(t)
	}
	return result
}

func toInternalStatusFilter(opts *ListTasksOpts) *model.TaskStatus {
	if opts == nil || opts.Status == nil {
		return nil
	}
	s := model.TaskStatus(*opts.Status)
	return &s
}

func fromInternalReport(r *report.Report) *ReportInfo {
	return &ReportInfo{
		ID:          r.ID,
		Format:      ReportFormat(r.Format),
		Pages:       r.Pages,
		GeneratedAt: r.GeneratedAt,
		Size:        len(r.Data),
	}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrAlreadyExists):
		return joinErrors(err, ErrAlreadyExists)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

// mappedError keeps the internal error message while matching the public sentinel.
type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
