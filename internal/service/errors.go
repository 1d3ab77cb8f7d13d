package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every lookup failure below.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	ErrPRNotFound      = fmt.Errorf("pull request %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
)

var (
	ErrAlreadyExists     = errors.New("already exists")
	ErrSelfFork          = errors.New("cannot fork a project you own")
	ErrDuplicateRequest  = errors.New("an open pull request already covers this change range")
	ErrInvalidParent     = errors.New("parent comment belongs to another pull request")
	ErrNotAFork          = errors.New("project is not a fork")
	ErrProjectInUse      = errors.New("project is referenced by pull requests or forks")
	ErrInvalidResolution = errors.New("resolution must be a closed status")
	ErrEmailTaken        = errors.New("email already in use")
	ErrInvalidInput      = errors.New("invalid input")
)

// AlreadyExistsError reports an occupied fork or storage path.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

// Is makes errors.Is(err, ErrAlreadyExists) match.
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// StorageProvisioningError reports a failed clone, init or remove after the
// database was changed. The row is left in place and must be reconciled by hand.
type StorageProvisioningError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageProvisioningError) Error() string {
	return fmt.Sprintf("storage %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageProvisioningError) Unwrap() error {
	return e.Err
}
