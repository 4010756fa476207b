package store

import "fmt"

// RunStatus is the lifecycle state of a directive run. A run logged as
// Started has no end time yet; the other three are terminal. The store
// never rewrites a status once written, so corrections are made by
// logging a new run.
type RunStatus string

const (
	StatusStarted RunStatus = "started"
	StatusSuccess RunStatus = "success"
	StatusFailed  RunStatus = "failed"
	StatusPartial RunStatus = "partial"
)

func ParseRunStatus(s string) (RunStatus, error) {
	switch RunStatus(s) {
	case StatusStarted, StatusSuccess, StatusFailed, StatusPartial:
		return RunStatus(s), nil
	}
	return "", fmt.Errorf("%w: unrecognized run status %q (expected started, success, failed, or partial)", ErrValidation, s)
}

func (s RunStatus) Terminal() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusPartial:
		return true
	}
	return false
}
