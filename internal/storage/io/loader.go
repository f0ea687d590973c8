package io

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gurama/tasktracker/internal/model"
)

// SettingsRepository loads user settings from YAML or TOML files.
type SettingsRepository struct {
	fs fs.FS
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(filesystem fs.FS) *SettingsRepository {
	return &SettingsRepository{fs: filesystem}
}

// GetSettings loads the settings file at path, the format is selected by its extension.
func (r *SettingsRepository) GetSettings(ctx context.Context, filePath string) (model.Settings, error) {
	data, err := fs.ReadFile(r.fs, filePath)
	if err != nil {
		return model.Settings{}, fmt.Errorf("reading settings file: %w", err)
	}

	if ctx.Err() != nil {
		return model.Settings{}, ctx.Err()
	}

	var cfg SettingsFile
	switch ext := strings.ToLower(path.Ext(filePath)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return model.Settings{}, fmt.Errorf("parsing YAML: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return model.Settings{}, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		return model.Settings{}, fmt.Errorf("unsupported settings file extension %q: %w", ext, model.ErrNotValid)
	}

	s := cfg.toModel()
	if err := s.Validate(); err != nil {
		return model.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// SettingsFile represents the settings file structure.
type SettingsFile struct {
	Storage string             `yaml:"storage" toml:"storage"`
	DBPath  string             `yaml:"db_path" toml:"db_path"`
	DataDir string             `yaml:"data_dir" toml:"data_dir"`
	Report  ReportSettingsFile `yaml:"report" toml:"report"`
	List    ListSettingsFile   `yaml:"list" toml:"list"`
}

// ReportSettingsFile represents the report section of the settings file.
type ReportSettingsFile struct {
	Title       string `yaml:"title" toml:"title"`
	ProductName string `yaml:"product_name" toml:"product_name"`
	Output      string `yaml:"output" toml:"output"`
}

// ListSettingsFile represents the list section of the settings file.
type ListSettingsFile struct {
	Format string `yaml:"format" toml:"format"`
}

func (c SettingsFile) toModel() model.Settings {
	return model.Settings{
		Storage:           model.StorageBackend(strings.ToLower(strings.TrimSpace(c.Storage))),
		DBPath:            c.DBPath,
		DataDir:           c.DataDir,
		ReportTitle:       c.Report.Title,
		ReportProductName: c.Report.ProductName,
		ReportOutput:      c.Report.Output,
		ListFormat:        c.List.Format,
	}
}
