package usecase

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// sourceError classifies a failed document load: a missing group directory is
// ErrNotFound, anything else ErrDependencyUnavailable.
func sourceError(groupKey string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: odds documents for %s: %v", ErrNotFound, groupKey, err)
	}
	return fmt.Errorf("%w: load odds documents for %s: %v", ErrDependencyUnavailable, groupKey, err)
}
