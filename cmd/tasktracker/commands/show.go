package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/gurama/tasktracker/internal/app/show"
	"github.com/gurama/tasktracker/internal/printer"
)

type ShowCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id     int64
	format string
}

// NewShowCommand returns the show command.
func NewShowCommand(rootCmd *RootCommand, app *kingpin.Application) *ShowCommand {
	c := &ShowCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("show", "Get the details of a task.")
	c.Cmd.Arg("id", "Task ID.").Required().Int64Var(&c.id)
	c.Cmd.Flag("format", "Output format ("+strings.Join(printer.Formats(), ", ")+").").Default(string(printer.FormatTable)).EnumVar(&c.format, printer.Formats()...)

	return c
}

func (c ShowCommand) Name() string { return c.Cmd.FullCommand() }

func (c ShowCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	p, err := c.rootCmd.NewPrinter(c.format)
	if err != nil {
		return err
	}

	store, closeStore, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := show.NewService(show.ServiceConfig{
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, show.Request{ID: c.id})
	if err != nil {
		return fmt.Errorf("could not get task: %w", err)
	}

	if err := p.PrintTask(*task); err != nil {
		return fmt.Errorf("could not print task: %w", err)
	}

	return nil
}
