// Package workspace owns the buffers of a session and the panes that view
// them.
//
// Buffers live in an Arena keyed by BufferID. A Pane stores only the id of
// the buffer it shows, so any number of panes can view one buffer. Every
// mutation goes through the Workspace, which fans the changed lines out to
// each pane viewing the buffer. Each pane resolves them against its own
// viewport and wrap width.
package workspace

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferNotFound indicates the arena has no buffer with the id.
	ErrBufferNotFound = errors.New("buffer not found")

	// ErrPaneNotFound indicates the workspace has no pane with the id.
	ErrPaneNotFound = errors.New("pane not found")

	// ErrReadOnly indicates an edit was attempted on a view that is not a
	// text buffer.
	ErrReadOnly = errors.New("buffer is read-only")

	// ErrBufferInUse indicates a buffer cannot be closed while panes show it.
	ErrBufferInUse = errors.New("buffer is shown in a pane")
)

// OpError records the operation and target that failed.
type OpError struct {
	Op     string
	Target string
	Err    error
}

func (e *OpError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
