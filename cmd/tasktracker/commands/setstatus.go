package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/gurama/tasktracker/internal/app/update"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/printer"
)

type SetStatusCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id     int64
	status string
	format string
}

// NewSetStatusCommand returns the set-status command.
func NewSetStatusCommand(rootCmd *RootCommand, app *kingpin.Application) *SetStatusCommand {
	c := &SetStatusCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("set-status", "Change the status of a task.")
	c.Cmd.Arg("id", "Task ID.").Required().Int64Var(&c.id)
	c.Cmd.Arg("status", "New status (not-started, ongoing, completed).").Required().HintOptions(model.TaskStatusValues()...).StringVar(&c.status)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c SetStatusCommand) Name() string { return c.Cmd.FullCommand() }

func (c SetStatusCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	store, closeStore, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := update.NewService(update.ServiceConfig{
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, update.Request{ID: c.id, Status: c.status})
	if err != nil {
		return fmt.Errorf("could not set task status: %w", err)
	}

	if c.format == string(printer.FormatJSON) {
		return printer.NewJSONPrinter(c.rootCmd.Stdout).PrintTask(*task)
	}

	return printer.NewTablePrinter(c.rootCmd.Stdout, false).PrintMessage(fmt.Sprintf("Task %d is now %s", task.ID, task.Status.Label()))
}
