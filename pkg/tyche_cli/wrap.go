// pkg/tyche_cli/wrap.go

package tyche_cli

import (
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Wrap adapts a handler taking a RuntimeContext into a cobra RunE, adding
// panic recovery, lifecycle logging, and a span per invocation.
func Wrap(fn func(rc *tyche_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if logger.L() == nil {
			logger.InitFallback()
		}

		rc := tyche_io.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)

		defer func() {
			if r := recover(); r != nil {
				err = cerr.AssertionFailedf("panic: %v", r)
				rc.Log.Error("Panic recovered", zap.Any("panic", r))
			}
		}()

		rc.Log.Debug("Command execution started")
		err = fn(rc, cmd, args)
		return err
	}
}
