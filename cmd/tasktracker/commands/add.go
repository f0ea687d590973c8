package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/gurama/tasktracker/internal/app/create"
	"github.com/gurama/tasktracker/internal/printer"
)

type AddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	title  []string
	format string
}

// NewAddCommand returns the add command.
func NewAddCommand(rootCmd *RootCommand, app *kingpin.Application) *AddCommand {
	c := &AddCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("add", "Create a new task.")
	c.Cmd.Arg("title", "Task title.").Required().StringsVar(&c.title)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c AddCommand) Name() string { return c.Cmd.FullCommand() }

func (c AddCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	store, closeStore, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := create.NewService(create.ServiceConfig{
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, create.Request{Title: strings.Join(c.title, " ")})
	if err != nil {
		return fmt.Errorf("could not create task: %w", err)
	}

	if c.format == string(printer.FormatJSON) {
		return printer.NewJSONPrinter(c.rootCmd.Stdout).PrintTask(*task)
	}

	return printer.NewTablePrinter(c.rootCmd.Stdout, false).PrintMessage(fmt.Sprintf("Created task %d: %s", task.ID, task.Title))
}
