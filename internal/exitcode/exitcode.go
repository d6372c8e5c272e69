// Package exitcode defines process exit codes and maps errors onto them.
package exitcode

import (
	goerrors "errors"
	"os"
	"strings"

	"github.com/tstackhq/tstack-kit/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ConfigInvalid indicates the entity configuration failed normalization
	ConfigInvalid = 3

	// PlanInvalid indicates a generation plan failed validation
	PlanInvalid = 4

	// DriftDetected indicates the scaffold drifted from its lock entry
	DriftDetected = 5

	// Interrupted indicates the run was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Coded errors are classified by their code prefix; anything else falls
// back to a small set of message heuristics.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var kitErr *errors.KitError
	if goerrors.As(err, &kitErr) {
		return codeForKitError(kitErr)
	}

	var list *errors.List
	if goerrors.As(err, &list) {
		return codeForList(list)
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "drift detected") {
		return DriftDetected
	}
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "invalid argument") {
		return UsageError
	}

	return GeneralError
}

func codeForKitError(err *errors.KitError) int {
	switch err.Code {
	case errors.ErrCodePlanDriftDetected, errors.ErrCodeScaffoldLockStale:
		return DriftDetected
	}

	switch {
	case strings.HasPrefix(string(err.Code), "NAME-"),
		strings.HasPrefix(string(err.Code), "CONFIG-"):
		return ConfigInvalid
	case strings.HasPrefix(string(err.Code), "PLAN-"):
		return PlanInvalid
	}

	return GeneralError
}

// codeForList picks the most specific exit code carried by any error in
// the list. Plan errors outrank configuration errors because a broken
// plan usually points at a bug rather than bad input.
func codeForList(list *errors.List) int {
	code := GeneralError
	for _, kitErr := range list.Errors() {
		switch c := codeForKitError(kitErr); c {
		case DriftDetected:
			return DriftDetected
		case PlanInvalid:
			code = PlanInvalid
		case ConfigInvalid:
			if code != PlanInvalid {
				code = ConfigInvalid
			}
		}
	}
	return code
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ConfigInvalid:
		return "Entity configuration invalid"
	case PlanInvalid:
		return "Generation plan invalid"
	case DriftDetected:
		return "Scaffold drift detected"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
