// Package err provides the standardized error type used across the project.
//
// Every component returns typed failures to its caller instead of terminating
// the process; the CLI entry point is the only place that may abort. Errors
// carry a package name, an operation, and one of a small set of codes that
// callers can branch on with IsCode or errors.Is:
//
//	if err.IsCode(e, err.CodeCorruptIndex) {
//	    // the staging index could not be parsed
//	}
//
// There are no retryable failures in this design. A code tells the caller
// what went wrong, not what to do next.
package err
