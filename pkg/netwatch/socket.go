package netwatch

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"
)

// SocketStrategy probes connectivity by opening a raw TCP connection
// to the configured host and closing it right away.
type SocketStrategy struct {
	dialer *net.Dialer
	dial   func(ctx context.Context, network, address string) (net.Conn, error)
}

const DefaultSocketHost = "www.google.com"

func NewSocketStrategy() *SocketStrategy {
	s := &SocketStrategy{
		dialer: &net.Dialer{
			FallbackDelay: -1,
		},
	}
	s.dial = s.dialer.DialContext
	return s
}

// String implements fmt.Stringer of Strategy.
func (s *SocketStrategy) String() string {
	return "socket"
}

// DefaultHost implements Strategy.
func (s *SocketStrategy) DefaultHost() string {
	return DefaultSocketHost
}

// AdjustHost implements Strategy.
// It strips a single leading http:// or https:// from host,
// anything else is left untouched.
func (s *SocketStrategy) AdjustHost(host string) string {
	if stripped, ok := strings.CutPrefix(host, "http://"); ok {
		return stripped
	}
	if stripped, ok := strings.CutPrefix(host, "https://"); ok {
		return stripped
	}
	return host
}

// IsConnected implements Strategy.
//
// A failed dial means no connectivity and is not reported to handler,
// a connection that cannot be closed still counts as connected.
func (s *SocketStrategy) IsConnected(ctx context.Context, host string, port int, timeout time.Duration, handler ErrorHandler) bool {
	ctx, cancel := context.WithTimeoutCause(ctx, timeout, errors.New("connect timed out"))
	defer cancel()

	conn, dialErr := s.dial(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if dialErr != nil {
		return false
	}
	if err := conn.Close(); err != nil {
		handler.HandleError(err, "Could not close the socket")
	}
	return true
}
