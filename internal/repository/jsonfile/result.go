package jsonfile

import "tasklist/internal/domain"

// LoadStatus is the outcome of reading the task file
type LoadStatus int

const (
	// LoadStatusLoaded means the file was read and every task is valid.
	LoadStatusLoaded LoadStatus = iota
	// LoadStatusMissing means there is no file yet; start empty.
	LoadStatusMissing
	// LoadStatusParseError means the file exists but is not a valid task list.
	LoadStatusParseError
	// LoadStatusReadError means the file could not be read at all.
	LoadStatusReadError
)

// String returns the status name
func (s LoadStatus) String() string {
	switch s {
	case LoadStatusLoaded:
		return "loaded"
	case LoadStatusMissing:
		return "missing"
	case LoadStatusParseError:
		return "parse_error"
	case LoadStatusReadError:
		return "read_error"
	default:
		return "unknown"
	}
}

// LoadResult carries the loaded tasks or the reason there are none
type LoadResult struct {
	Status LoadStatus
	Tasks  []domain.Task
	Err    error
}

// OK reports whether the session can start from Tasks without reporting anything.
func (r LoadResult) OK() bool {
	return r.Status == LoadStatusLoaded || r.Status == LoadStatusMissing
}
