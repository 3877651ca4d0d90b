// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrTaskFailed is matched by every *TaskError returned from For.
	ErrTaskFailed = errors.New("parallel: task failed")

	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("parallel: workers must be >= 1")

	// ErrNilFunc indicates a nil callback.
	ErrNilFunc = errors.New("parallel: nil callback")
)

// TaskError aggregates the failures of one For call, ordered by index.
type TaskError struct {
	Causes []error // one wrapped error per failed index
}

// Error summarizes the failure count and the first cause.
func (e *TaskError) Error() string {
	var b strings.Builder
	b.WriteString(ErrTaskFailed.Error())
	b.WriteString(": ")
	b.WriteString(strconv.Itoa(len(e.Causes)))
	b.WriteString(" index(es) failed")
	if len(e.Causes) > 0 {
		b.WriteString("; first: ")
		b.WriteString(e.Causes[0].Error())
	}

	return b.String()
}

// Is reports ErrTaskFailed as a match.
func (e *TaskError) Is(target error) bool { return target == ErrTaskFailed }

// Unwrap exposes every cause to errors.Is / errors.As.
func (e *TaskError) Unwrap() []error { return e.Causes }
