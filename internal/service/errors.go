package service

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated means no resolvable student identity was attached
// to the request. Retrying without re-auth will not help.
var ErrUnauthenticated = errors.New("no authenticated student identity")

// DependencyError wraps a failed store or metadata-provider call. The
// reconciliation aborted; the caller should retry the whole batch.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency failure in %s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func dependencyErr(op string, err error) error {
	return &DependencyError{Op: op, Err: err}
}

// IsDependencyFailure reports whether err is (or wraps) a DependencyError.
func IsDependencyFailure(err error) bool {
	var de *DependencyError
	return errors.As(err, &de)
}
