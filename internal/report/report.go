// Package report renders read-only task snapshots into exportable documents.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
)

const (
	// DefaultTitle is the report header.
	DefaultTitle = "Task Report"
	// DefaultProductName is shown on every page footer.
	DefaultProductName = "Gurama Task Tracking"

	generatedLayout = "Jan 2, 2006, 3:04:05 PM"
	dateLayout      = "Jan 2, 2006"
)

// Format is the report document format.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "markdown"
)

// Report is a generated document.
type Report struct {
	ID          string
	Format      Format
	GeneratedAt time.Time
	// Pages is the number of pages, only set for paginated formats.
	Pages int
	Data  []byte
}

// GeneratorConfig is the configuration for the report generator.
type GeneratorConfig struct {
	Title       string
	ProductName string
	// Location is used to render dates, defaults to time.Local.
	Location *time.Location
	// Clock defaults to time.Now.
	Clock func() time.Time
	// DisableCompression writes plain PDF content streams.
	DisableCompression bool
	Logger             log.Logger
}

func (c *GeneratorConfig) defaults() error {
	c.Title = DisplayTitle(c.Title)
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	c.ProductName = DisplayTitle(c.ProductName)
	if c.ProductName == "" {
		c.ProductName = DefaultProductName
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "report.Generator"})
	return nil
}

// Generator generates task reports. It never mutates the tasks it receives.
type Generator struct {
	title       string
	productName string
	location    *time.Location
	clock       func() time.Time
	compress    bool
	logger      log.Logger
}

// NewGenerator returns a new report generator.
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Generator{
		title:       cfg.Title,
		productName: cfg.ProductName,
		location:    cfg.Location,
		clock:       cfg.Clock,
		compress:    !cfg.DisableCompression,
		logger:      cfg.Logger,
	}, nil
}

// Generate renders the tasks in the requested format.
func (g *Generator) Generate(format Format, tasks []model.Task) (*Report, error) {
	switch format {
	case FormatPDF:
		return g.PDF(tasks)
	case FormatMarkdown:
		return g.Markdown(tasks)
	default:
		return nil, fmt.Errorf("unknown report format %q: %w", format, model.ErrNotValid)
	}
}

func (g *Generator) newReport(format Format) *Report {
	now := g.clock()
	return &Report{
		ID:          ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Format:      format,
		GeneratedAt: now,
	}
}

func (g *Generator) formatGenerated(t time.Time) string {
	return t.In(g.location).Format(generatedLayout)
}

func (g *Generator) formatDate(t time.Time) string {
	return t.In(g.location).Format(dateLayout)
}

// StatusGlyph returns the marker printed before a task title.
func StatusGlyph(s model.TaskStatus) string {
	switch s {
	case model.TaskStatusOngoing:
		return "[~]"
	case model.TaskStatusCompleted:
		return "[x]"
	default:
		return "[ ]"
	}
}

// DisplayTitle collapses every whitespace run of a title, line breaks
// included, into a single space so a task always renders on one line.
func DisplayTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// StatusText returns the upper case status, e.g. "NOT STARTED".
func StatusText(s model.TaskStatus) string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "-", " "))
}
