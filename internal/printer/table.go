package printer

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/muesli/reflow/truncate"

	"github.com/gurama/tasktracker/internal/model"
)

const maxTitleWidth = 48

// TablePrinter prints task information in a table format.
type TablePrinter struct {
	writer io.Writer
	color  bool
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer, color bool) *TablePrinter {
	return &TablePrinter{writer: w, color: color}
}

// PrintList prints tasks in a table format. The colored status goes last so
// escape sequences don't break the column alignment.
func (t *TablePrinter) PrintList(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tTITLE\tCREATED\tUPDATED\tSTATUS")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			strconv.FormatInt(task.ID, 10),
			truncate.StringWithTail(task.Title, maxTitleWidth, "..."),
			FormatDate(task.CreatedAt),
			TimeAgo(task.UpdatedAt),
			colorize(t.color, task.Status, string(task.Status)),
		)
	}

	return tw.Flush()
}

// PrintTask prints detailed task information.
func (t *TablePrinter) PrintTask(task model.Task) error {
	fmt.Fprintf(t.writer, "ID:       %d\n", task.ID)
	fmt.Fprintf(t.writer, "Title:    %s\n", task.Title)
	fmt.Fprintf(t.writer, "Status:   %s\n", colorize(t.color, task.Status, task.Status.Label()))
	fmt.Fprintf(t.writer, "Created:  %s\n", FormatTimestamp(task.CreatedAt))
	fmt.Fprintf(t.writer, "Updated:  %s\n", FormatTimestamp(task.UpdatedAt))
	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}
