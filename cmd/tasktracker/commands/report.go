package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	appreport "github.com/gurama/tasktracker/internal/app/report"
	"github.com/gurama/tasktracker/internal/conventions"
	"github.com/gurama/tasktracker/internal/printer"
	"github.com/gurama/tasktracker/internal/report"
)

const stdoutPath = "-"

type ReportCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
	out    string
}

// NewReportCommand returns the report command.
func NewReportCommand(rootCmd *RootCommand, app *kingpin.Application) *ReportCommand {
	c := &ReportCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("report", "Export the tasks as a report.")
	c.Cmd.Flag("format", "Report format (pdf, markdown).").Default(string(report.FormatPDF)).EnumVar(&c.format, string(report.FormatPDF), string(report.FormatMarkdown))
	c.Cmd.Flag("out", "Output file, use - for stdout. PDF reports default to "+conventions.ReportFile+", markdown ones to stdout.").Short('o').StringVar(&c.out)

	return c
}

func (c ReportCommand) Name() string { return c.Cmd.FullCommand() }

func (c ReportCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger
	settings := c.rootCmd.Settings
	format := report.Format(c.format)

	out := c.out
	if out == "" {
		out = settings.ReportOutput
	}
	if out == "" {
		out = stdoutPath
		if format == report.FormatPDF {
			out = conventions.ReportFile
		}
	}

	store, closeStore, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	gen, err := report.NewGenerator(report.GeneratorConfig{
		Title:       settings.ReportTitle,
		ProductName: settings.ReportProductName,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("could not create report generator: %w", err)
	}

	svc, err := appreport.NewService(appreport.ServiceConfig{
		Store:     store,
		Generator: gen,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if out == stdoutPath {
		return c.runToStdout(ctx, svc, format)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("could not create report file: %w", err)
	}

	r, err := svc.Run(ctx, appreport.Request{Format: format, Output: f})
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("could not close report file: %w", cerr)
	}
	if err != nil {
		_ = os.Remove(out)
		return fmt.Errorf("could not generate report: %w", err)
	}

	msg := fmt.Sprintf("Report %s written to %s", r.ID, out)
	if r.Pages > 0 {
		msg = fmt.Sprintf("%s (pages: %d)", msg, r.Pages)
	}
	return printer.NewTablePrinter(c.rootCmd.Stdout, false).PrintMessage(msg)
}

// runToStdout writes the report to stdout, markdown reports are rendered when
// stdout is a terminal.
func (c ReportCommand) runToStdout(ctx context.Context, svc *appreport.Service, format report.Format) error {
	stdout := c.rootCmd.Stdout
	if format != report.FormatMarkdown || !printer.IsTerminal(stdout) {
		if _, err := svc.Run(ctx, appreport.Request{Format: format, Output: stdout}); err != nil {
			return fmt.Errorf("could not generate report: %w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if _, err := svc.Run(ctx, appreport.Request{Format: format, Output: &buf}); err != nil {
		return fmt.Errorf("could not generate report: %w", err)
	}

	rendered, err := printer.RenderMarkdown(buf.String(), printer.TerminalWidth(stdout, defaultTerminalWidth), !c.rootCmd.NoColor)
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, rendered)
	return err
}
