package printer

import (
	"html/template"
	"io"

	"github.com/gurama/tasktracker/internal/model"
)

// DefaultHTMLTitle is the page heading used by the HTML printer.
const DefaultHTMLTitle = "Gurama Task Tracking"

var htmlTpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"color":     func(s model.TaskStatus) string { return string(statusColors[s]) },
	"timestamp": FormatTimestamp,
	"date":      FormatDate,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; color: #111827; }
.task { border: 1px solid #E5E7EB; border-radius: 0.5rem; padding: 0.75rem 1rem; margin-bottom: 0.75rem; }
.status { color: #FFFFFF; border-radius: 9999px; padding: 0.125rem 0.5rem; font-size: 0.75rem; }
.meta { color: #6B7280; font-size: 0.875rem; }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
{{- if .Message }}
<p class="message">{{ .Message }}</p>
{{- end }}
{{- range .Tasks }}
<div class="task" id="task-{{ .ID }}">
<h2>{{ .Title }}</h2>
<span class="status" style="background-color: {{ color .Status }}">{{ .Status.Label }}</span>
<p class="meta">Created {{ date .CreatedAt }}, last updated {{ timestamp .UpdatedAt }}</p>
</div>
{{- else }}
{{- if not .Message }}
<p class="empty">No tasks yet.</p>
{{- end }}
{{- end }}
</body>
</html>
`))

type htmlPage struct {
	Title   string
	Message string
	Tasks   []model.Task
}

// HTMLPrinter prints task information as a standalone HTML page that can be
// opened in a browser.
type HTMLPrinter struct {
	writer io.Writer
	title  string
}

// NewHTMLPrinter creates a new HTML printer, an empty title uses the default one.
func NewHTMLPrinter(w io.Writer, title string) *HTMLPrinter {
	if title == "" {
		title = DefaultHTMLTitle
	}
	return &HTMLPrinter{writer: w, title: title}
}

// PrintList prints all the tasks on a single page.
func (h *HTMLPrinter) PrintList(tasks []model.Task) error {
	return htmlTpl.Execute(h.writer, htmlPage{Title: h.title, Tasks: tasks})
}

// PrintTask prints a page with a single task.
func (h *HTMLPrinter) PrintTask(task model.Task) error {
	return htmlTpl.Execute(h.writer, htmlPage{Title: h.title, Tasks: []model.Task{task}})
}

// PrintMessage prints a page with a message.
func (h *HTMLPrinter) PrintMessage(msg string) error {
	return htmlTpl.Execute(h.writer, htmlPage{Title: h.title, Message: msg})
}
