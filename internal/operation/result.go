// Package operation defines the result value returned by every mutating
// repoctl operation. Results are constructed synchronously at the operation
// boundary and consumed by the CLI for logging and exit-code selection.
package operation

// Result is the outcome of a single operation (clone, add-file, push).
type Result struct {
	// Success reports whether the operation completed (or, on a dry run,
	// whether it would have completed).
	Success bool

	// Message is a human-readable description of what happened or, on a
	// dry run, what would have happened.
	Message string

	// Err carries the typed failure when Success is false. Successful
	// no-ops (nothing to commit, already up to date) keep their
	// informational error here so callers can still detect them.
	Err error

	// DryRun marks results produced without touching disk or network.
	DryRun bool
}

// Succeed returns a successful Result with the given message.
func Succeed(message string) Result {
	return Result{Success: true, Message: message}
}

// WouldSucceed returns a successful dry-run Result with the given message.
func WouldSucceed(message string) Result {
	return Result{Success: true, Message: message, DryRun: true}
}

// NoOp returns a successful Result for an operation that had nothing to
// do, keeping the informational error available to callers.
func NoOp(message string, err error) Result {
	return Result{Success: true, Message: message, Err: err}
}

// Fail returns a failed Result carrying the typed error.
func Fail(err error) Result {
	return Result{Success: false, Message: err.Error(), Err: err}
}
