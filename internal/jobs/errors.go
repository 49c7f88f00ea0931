package jobs

import "errors"

// ErrCancelled is returned by a handler that observed a cancellation
// request and stopped early. The job still terminates as FAILED, with a
// distinguishing message, to keep the state machine binary.
var ErrCancelled = errors.New("cancelled by user")

// fatalError marks a handler error that retrying cannot fix (unreadable
// input file, malformed payload). The runner fails the job immediately
// instead of letting the queue redeliver it.
type fatalError struct{ err error }

func (f *fatalError) Error() string { return f.err.Error() }
func (f *fatalError) Unwrap() error { return f.err }

// Fatal wraps err so the runner treats it as terminal.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

// IsFatal reports whether err carries the terminal marker.
func IsFatal(err error) bool {
	var f *fatalError
	return errors.As(err, &f)
}
