// Package consoleutil holds what every package of the console extension
// shares: stack-carrying errors and the fatal report used when the host
// build doesn't match what the extension expects.
package consoleutil

import (
	"bytes"
	"fmt"
	"log"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(stackTracer); !ok {
		return errors.WithStack(err)
	}
	return err
}

func StackTrace(err error) string {
	buf := &bytes.Buffer{}
	if err, ok := err.(stackTracer); ok {
		for _, f := range err.StackTrace() {
			fmt.Fprintf(buf, "%+v\n", f)
		}
	}
	return buf.String()
}

// Fail reports an unrecoverable incompatibility with the host build and
// stops the current goroutine.
func Fail(format string, args ...any) {
	log.Panicf("consoleutil: "+format, args...)
}
