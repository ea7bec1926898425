package netwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/yusing/go-netwatch/internal/gperr"
)

type (
	// Strategy decides how a single connectivity probe is performed.
	Strategy interface {
		fmt.Stringer
		// AdjustHost normalizes host into the form the strategy probes.
		AdjustHost(host string) string
		// IsConnected runs one probe against host and reports whether
		// the internet is reachable through it.
		IsConnected(ctx context.Context, host string, port int, timeout time.Duration, handler ErrorHandler) bool
		// DefaultHost returns the host probed when none is configured.
		DefaultHost() string
	}

	// ErrorHandler is notified of errors the probe loop recovers from,
	// such as failing to release a probe connection.
	ErrorHandler interface {
		HandleError(err error, msg string)
	}

	// ErrorHandlerFunc adapts a function to the ErrorHandler interface.
	ErrorHandlerFunc func(err error, msg string)

	// ProbeResult is the outcome of a single connectivity probe.
	ProbeResult struct {
		Connected bool          `json:"connected"`
		Latency   time.Duration `json:"latency"`
	}
)

func (f ErrorHandlerFunc) HandleError(err error, msg string) {
	f(err, msg)
}

// DefaultErrorHandler logs probe errors with the global logger.
func DefaultErrorHandler() ErrorHandler {
	return ErrorHandlerFunc(func(err error, msg string) {
		gperr.LogError(msg, err)
	})
}
