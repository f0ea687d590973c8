package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/gurama/tasktracker/internal/conventions"
	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/printer"
	"github.com/gurama/tasktracker/internal/storage/backend"
	storageio "github.com/gurama/tasktracker/internal/storage/io"
	"github.com/gurama/tasktracker/internal/taskstore"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"

	defaultTerminalWidth = 80
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigFile string
	Storage    string
	DBPath     string
	DataDir    string

	// Settings loaded from the config file, if any.
	Settings model.Settings

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger

	storageSetByUser bool
	dbPathSetByUser  bool
	dataDirSetByUser bool
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}
	home := homedir.HomeDir()

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger and output color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("config", "Path to a YAML or TOML settings file.").StringVar(&c.ConfigFile)
	app.Flag("storage", "Storage backend.").Default(string(model.StorageBackendSQLite)).IsSetByUser(&c.storageSetByUser).
		EnumVar(&c.Storage, string(model.StorageBackendSQLite), string(model.StorageBackendFile), string(model.StorageBackendMemory))
	app.Flag("db-path", "Path to the SQLite database file.").Envar("TASKTRACKER_DB_PATH").Default(conventions.DBPath(home)).IsSetByUser(&c.dbPathSetByUser).StringVar(&c.DBPath)
	app.Flag("data-dir", "Directory used by the file storage backend.").Default(conventions.FileDataDir(home)).IsSetByUser(&c.dataDirSetByUser).StringVar(&c.DataDir)

	return c
}

// LoadSettings loads the settings file when one has been configured. Flags
// set on the command line take precedence over the file values. Relative
// storage paths in the file are resolved against the file directory.
func (r *RootCommand) LoadSettings(ctx context.Context) error {
	if r.ConfigFile == "" {
		return nil
	}

	configPath, err := filepath.Abs(r.ConfigFile)
	if err != nil {
		return fmt.Errorf("could not resolve settings path: %w", err)
	}

	repo := storageio.NewSettingsRepository(os.DirFS("/"))
	s, err := repo.GetSettings(ctx, configPath[1:])
	if err != nil {
		return fmt.Errorf("could not load settings: %w", err)
	}
	r.Settings = s

	if !r.storageSetByUser && s.Storage != "" {
		r.Storage = string(s.Storage)
	}
	configDir := filepath.Dir(configPath)
	if !r.dbPathSetByUser && s.DBPath != "" {
		r.DBPath = resolvePath(configDir, s.DBPath)
	}
	if !r.dataDirSetByUser && s.DataDir != "" {
		r.DataDir = resolvePath(configDir, s.DataDir)
	}

	return nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// OpenStore opens the configured storage backend and returns the task store
// hydrated from it, the returned function closes the backend.
func (r *RootCommand) OpenStore(ctx context.Context) (*taskstore.Store, func() error, error) {
	b, err := backend.Open(ctx, backend.Config{
		Backend: model.StorageBackend(r.Storage),
		DBPath:  r.DBPath,
		DataDir: r.DataDir,
		Logger:  r.Logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not open storage: %w", err)
	}

	store, err := taskstore.New(ctx, taskstore.Config{
		Repository: b.Repository,
		Logger:     r.Logger,
	})
	if err != nil {
		_ = b.Close()
		return nil, nil, fmt.Errorf("could not load tasks: %w", err)
	}

	return store, b.Close, nil
}

// NewPrinter returns the printer for the format, writing to stdout.
func (r *RootCommand) NewPrinter(format string) (printer.Printer, error) {
	color := !r.NoColor && printer.IsTerminal(r.Stdout)

	switch printer.Format(format) {
	case printer.FormatTable:
		return printer.NewTablePrinter(r.Stdout, color), nil
	case printer.FormatCompact:
		return printer.NewCompactPrinter(r.Stdout, printer.TerminalWidth(r.Stdout, defaultTerminalWidth), color), nil
	case printer.FormatJSON:
		return printer.NewJSONPrinter(r.Stdout), nil
	case printer.FormatHTML:
		return printer.NewHTMLPrinter(r.Stdout, r.Settings.ReportProductName), nil
	default:
		return nil, fmt.Errorf("unknown output format %q: %w", format, model.ErrNotValid)
	}
}
