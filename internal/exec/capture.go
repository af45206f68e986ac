// Package exec runs local helper commands and captures their output.
package exec

import (
	"bytes"
	"context"
	osexec "os/exec"

	"github.com/tandem-cli/tandem/internal/errors"
)

// Capture runs a command line through /bin/sh and returns its stdout and
// stderr. A non-zero exit status is not an error as long as the command ran:
// telemetry batches guard optional sections with `|| true` and a partial
// transcript is still usable. Context cancellation kills the command and is
// reported as the context's error.
func Capture(ctx context.Context, command string) (stdout, stderr []byte, err error) {
	// Always /bin/sh: batch syntax relies on POSIX `;`, `||` and redirects.
	cmd := osexec.CommandContext(ctx, "/bin/sh", "-c", command)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if runErr := cmd.Run(); runErr != nil {
		if ctx.Err() != nil {
			return outBuf.Bytes(), errBuf.Bytes(), ctx.Err()
		}
		if _, ok := runErr.(*osexec.ExitError); !ok {
			return nil, errBuf.Bytes(), errors.WrapWithCode(runErr, errors.ErrExec,
				"Couldn't run the command locally",
				"Make sure /bin/sh exists and is executable.")
		}
	}

	return outBuf.Bytes(), errBuf.Bytes(), nil
}
