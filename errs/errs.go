package errs

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/make-release/log"
)

// Error wraps an error with the task in which it occurred.
type Error struct {
	task string
	err  error
}

func NewError(task string, err error) *Error {
	return &Error{task, err}
}

func (err *Error) Error() string {
	if err.err == nil {
		return "task failed: " + err.task
	}
	return err.err.Error()
}

func (err *Error) Unwrap() error {
	return err.err
}

// LogWith prints the error into the log using the given logger.
func (err *Error) LogWith(logger log.Logger) {
	if err.task != "" {
		logger.Fail(err.task)
	}
	if err.err != nil {
		logger.NewLine(fmt.Sprintf("(err = %v)", err.err))
	}
}

// RootCause returns the innermost error that is not an *Error.
func RootCause(err error) error {
	for {
		ex, ok := err.(*Error)
		if !ok || ex.err == nil {
			return err
		}
		err = ex.err
	}
}

// Log logs err at the info level. Any error can be passed in,
// only *Error gets the task printed.
func Log(err error) {
	LogWith(log.V(log.Info), err)
}

func LogWith(logger log.Logger, err error) {
	if ex, ok := err.(*Error); ok {
		ex.LogWith(logger)
		return
	}
	logger.Fail(err.Error())
}

// Fatal logs the error and exits the process.
func Fatal(err error) {
	Log(err)
	log.Fatalln("\nError:", RootCause(err))
}
