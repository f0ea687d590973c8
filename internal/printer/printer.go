// Package printer renders tasks for the different front ends. Every printer
// only consumes task snapshots, none of them can mutate the store.
package printer

import "github.com/gurama/tasktracker/internal/model"

// Printer knows how to print task information in a specific format.
type Printer interface {
	PrintList(tasks []model.Task) error
	PrintTask(task model.Task) error
	PrintMessage(msg string) error
}

// Format is a printer format name.
type Format string

const (
	FormatTable   Format = "table"
	FormatCompact Format = "compact"
	FormatJSON    Format = "json"
	FormatHTML    Format = "html"
)

// Formats returns the supported printer formats.
func Formats() []string {
	return []string{string(FormatTable), string(FormatCompact), string(FormatJSON), string(FormatHTML)}
}
