package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/gurama/tasktracker/internal/app/list"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/printer"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	statusFilter    string
	format          string
	formatSetByUser bool
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List all tasks.")
	c.Cmd.Flag("status", "Filter by status (not-started, ongoing, completed).").StringVar(&c.statusFilter)
	c.Cmd.Flag("format", "Output format ("+strings.Join(printer.Formats(), ", ")+").").Default(string(printer.FormatTable)).
		IsSetByUser(&c.formatSetByUser).EnumVar(&c.format, printer.Formats()...)

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Parse status filter if provided.
	var statusFilter *model.TaskStatus
	if c.statusFilter != "" {
		status, err := model.ParseTaskStatus(c.statusFilter)
		if err != nil {
			return fmt.Errorf("invalid status filter: %w", err)
		}
		statusFilter = &status
	}

	format := c.format
	if !c.formatSetByUser && c.rootCmd.Settings.ListFormat != "" {
		format = c.rootCmd.Settings.ListFormat
	}
	p, err := c.rootCmd.NewPrinter(format)
	if err != nil {
		return err
	}

	store, closeStore, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := list.NewService(list.ServiceConfig{
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, list.Request{
		StatusFilter: statusFilter,
	})
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	if err := p.PrintList(tasks); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
