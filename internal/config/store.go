package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ParamSnapshot is a saved set of calculator field values, keyed by the
// field names in fields.go.
type ParamSnapshot struct {
	Fields  map[string]string `yaml:"fields"`
	SavedAt time.Time         `yaml:"saved_at"`
}

// NewParamSnapshot stamps a field map with the current time.
func NewParamSnapshot(fields map[string]string) ParamSnapshot {
	return ParamSnapshot{Fields: fields, SavedAt: time.Now()}
}

// ParamStore persists parameter snapshots so a tweaked scenario can be
// reloaded later.
type ParamStore interface {
	Save(snap ParamSnapshot) error
	Load() (ParamSnapshot, error)
}

// FileParamStore keeps the snapshot in a single YAML file.
type FileParamStore struct {
	Path string
}

// NewFileParamStore creates a store at path.
func NewFileParamStore(path string) *FileParamStore {
	return &FileParamStore{Path: path}
}

// DefaultStorePath places the snapshot under the user's home directory,
// falling back to the working directory when home is unknown.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".firecalc-params.yaml"
	}
	return filepath.Join(home, ".firecalc-params.yaml")
}

// Save writes the snapshot, creating parent directories as needed.
func (fs *FileParamStore) Save(snap ParamSnapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	if dir := filepath.Dir(fs.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(fs.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", fs.Path, err)
	}
	return nil
}

// Load reads the snapshot back. A missing file is an error the caller
// can distinguish with os.IsNotExist.
func (fs *FileParamStore) Load() (ParamSnapshot, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		return ParamSnapshot{}, err
	}
	var snap ParamSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return ParamSnapshot{}, fmt.Errorf("failed to parse %s: %w", fs.Path, err)
	}
	return snap, nil
}
