package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/gurama/tasktracker/internal/model"
)

// JSONPrinter prints task information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskOutput uses the same field names as the persisted tasks.
type taskOutput struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type messageOutput struct {
	Message string `json:"message"`
}

func newTaskOutput(t model.Task) taskOutput {
	return taskOutput{
		ID:        t.ID,
		Title:     t.Title,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.UTC(),
		UpdatedAt: t.UpdatedAt.UTC(),
	}
}

// PrintList prints tasks as a JSON array, an empty list prints [].
func (j *JSONPrinter) PrintList(tasks []model.Task) error {
	items := make([]taskOutput, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, newTaskOutput(t))
	}
	return j.encode(items)
}

// PrintTask prints a task as a JSON object.
func (j *JSONPrinter) PrintTask(task model.Task) error {
	return j.encode(newTaskOutput(task))
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
