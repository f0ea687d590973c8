package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/gurama/tasktracker/internal/model"
)

// CompactPrinter prints every task as a small stacked card, the way the
// mobile front end lays tasks out on narrow screens.
type CompactPrinter struct {
	writer io.Writer
	width  int
	color  bool
}

// NewCompactPrinter creates a new compact printer wrapping titles at width.
func NewCompactPrinter(w io.Writer, width int, color bool) *CompactPrinter {
	if width < 20 {
		width = 20
	}
	return &CompactPrinter{writer: w, width: width, color: color}
}

// PrintList prints one card per task separated by a blank line.
func (c *CompactPrinter) PrintList(tasks []model.Task) error {
	for i, task := range tasks {
		if i > 0 {
			fmt.Fprintln(c.writer)
		}
		if err := c.PrintTask(task); err != nil {
			return err
		}
	}
	return nil
}

// PrintTask prints a single task card.
func (c *CompactPrinter) PrintTask(task model.Task) error {
	title := wordwrap.String(task.Title, c.width)
	fmt.Fprintln(c.writer, title)

	status := colorize(c.color, task.Status, task.Status.Label())
	_, err := fmt.Fprintf(c.writer, "  %s · #%d · created %s\n", status, task.ID, FormatDate(task.CreatedAt))
	return err
}

// PrintMessage prints a simple text message.
func (c *CompactPrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(c.writer, strings.TrimSpace(msg))
	return err
}
