package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Repository defines the interface for loading and saving EntitySpec files.
// This interface enables dependency injection and makes testing easier.
type Repository interface {
	// Load reads an EntitySpec from a file
	Load(path string) (*EntitySpec, error)

	// Save writes an EntitySpec to a file
	Save(spec *EntitySpec, path string) error
}

// FileRepository implements Repository for file-based storage
type FileRepository struct{}

// NewFileRepository creates a new file-based scaffold repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Load reads an EntitySpec from a YAML file
func (r *FileRepository) Load(path string) (*EntitySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaffold file: %w", err)
	}

	var spec EntitySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal scaffold: %w", err)
	}

	return &spec, nil
}

// Save writes an EntitySpec to a YAML file
func (r *FileRepository) Save(spec *EntitySpec, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("marshal scaffold: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scaffold file: %w", err)
	}

	return nil
}

// Default instance for package-level functions
var defaultRepository = NewFileRepository()

// LoadEntitySpec reads an EntitySpec from a YAML file using the default repository.
func LoadEntitySpec(path string) (*EntitySpec, error) {
	return defaultRepository.Load(path)
}

// SaveEntitySpec writes an EntitySpec to a YAML file using the default repository.
func SaveEntitySpec(spec *EntitySpec, path string) error {
	return defaultRepository.Save(spec, path)
}

// Compile-time verification that FileRepository implements Repository
var _ Repository = (*FileRepository)(nil)
