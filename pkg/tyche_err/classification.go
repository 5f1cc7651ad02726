// pkg/tyche_err/classification.go
//
// Maps errors to process exit codes. User-caused validation failures exit 2,
// everything else exits 1, success exits 0.

package tyche_err

const (
	// ExitOK - command completed
	ExitOK = 0
	// ExitInternal - bugs and entropy-source failures
	ExitInternal = 1
	// ExitValidation - invalid input or arguments
	ExitValidation = 2
)

// ExitCode returns the exit code appropriate for err.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsExpectedUserError(err):
		return ExitValidation
	default:
		return ExitInternal
	}
}
