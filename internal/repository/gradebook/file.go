package gradebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/report-card/internal/config"
	domain "github.com/oshokin/report-card/internal/domain/gradebook"
)

// Repository defines persistence operations for the gradebook.
type Repository interface {
	Load(ctx context.Context) (*domain.Book, error)
	Save(ctx context.Context, book *domain.Book) error
}

// FileRepository persists the gradebook to a JSON file on disk.
// The file holds a single top-level object mapping student name to a
// subject -> score object, e.g. {"Alice": {"Math": 92}}.
type FileRepository struct {
	// path is the filesystem location of the JSON gradebook file.
	path string
}

var (
	// ErrNotFound is returned when the gradebook file does not exist yet.
	ErrNotFound = errors.New("gradebook not found")
	// ErrMalformedFile is returned when the file content does not match
	// the expected name -> subject -> number shape.
	ErrMalformedFile = errors.New("gradebook file is malformed")
)

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the gradebook from disk.
func (r *FileRepository) Load(_ context.Context) (*domain.Book, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read gradebook file: %w", err)
	}

	// Decoding into the concrete map shape validates the structure:
	// any top-level array, nested non-object, or non-numeric score fails here.
	var snapshot map[string]map[string]float64
	if err = json.Unmarshal(contents, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}

	return domain.FromSnapshot(snapshot), nil
}

// Save writes the whole gradebook to disk, overwriting any existing file.
func (r *FileRepository) Save(_ context.Context, book *domain.Book) error {
	data, err := json.MarshalIndent(book.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode gradebook: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err = os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
			return fmt.Errorf("create gradebook directory: %w", err)
		}
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write gradebook file: %w", err)
	}

	return nil
}
