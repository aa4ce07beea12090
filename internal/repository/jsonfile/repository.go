// Package jsonfile persists the task list as a single JSON array on disk.
package jsonfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tasklist/internal/domain"
	apperrors "tasklist/internal/errors"
	"tasklist/internal/validation"
)

//go:embed tasklist.schema.json
var schemaJSON string

const schemaURL = "tasklist.schema.json"

// Repository defines the persistence operations for the task list
type Repository interface {
	// Load reads the whole task list. It never panics on bad content; the
	// outcome is reported through LoadResult.Status.
	Load(ctx context.Context) LoadResult

	// Save replaces the file with the given tasks in order.
	Save(ctx context.Context, tasks []domain.Task) error

	// Path returns the file location.
	Path() string
}

// FileRepository implements Repository on top of one JSON file
type FileRepository struct {
	path      string
	schema    *jsonschema.Schema
	validator *validation.TaskValidator
}

// New creates a repository for the file at path. The file does not need to exist.
func New(path string) (*FileRepository, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile task file schema: %w", err)
	}
	return &FileRepository{
		path:      path,
		schema:    schema,
		validator: validation.NewTaskValidator(),
	}, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// Path returns the file location
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads and checks the task file
func (r *FileRepository) Load(ctx context.Context) LoadResult {
	if err := ctx.Err(); err != nil {
		return LoadResult{Status: LoadStatusReadError, Err: err}
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{Status: LoadStatusMissing}
		}
		return LoadResult{Status: LoadStatusReadError, Err: apperrors.NewPersistenceError("read", r.path, err)}
	}

	tasks, err := r.decode(data)
	if err != nil {
		return LoadResult{Status: LoadStatusParseError, Err: apperrors.NewParseError(r.path, err)}
	}
	return LoadResult{Status: LoadStatusLoaded, Tasks: tasks}
}

func (r *FileRepository) decode(data []byte) ([]domain.Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := r.schema.Validate(doc); err != nil {
		return nil, err
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	if err := r.validator.ValidateTasks(tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Save writes the tasks to a temporary file next to the target and renames
// it into place, so a failed write leaves the previous file intact.
func (r *FileRepository) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", " ")
	if err := encoder.Encode(tasks); err != nil {
		return apperrors.NewPersistenceError("encode", r.path, err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".tasklist-*.json")
	if err != nil {
		return apperrors.NewPersistenceError("write", r.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return apperrors.NewPersistenceError("write", r.path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewPersistenceError("write", r.path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return apperrors.NewPersistenceError("write", r.path, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return apperrors.NewPersistenceError("write", r.path, err)
	}
	return nil
}
