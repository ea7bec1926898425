package netwatch

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yusing/go-netwatch/pkg"
)

// WalledGardenStrategy probes connectivity with an HTTP request against
// an endpoint that captive portals intercept. Any response, whatever its
// status code, means the request left the local network.
type WalledGardenStrategy struct {
	client *http.Client
}

const DefaultWalledGardenHost = "http://clients3.google.com/generate_204"

var pinger = &http.Client{
	Transport: &http.Transport{
		DisableKeepAlives: true,
		ForceAttemptHTTP2: false,
	},
	CheckRedirect: func(r *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func NewWalledGardenStrategy() *WalledGardenStrategy {
	return &WalledGardenStrategy{client: pinger}
}

// String implements fmt.Stringer of Strategy.
func (s *WalledGardenStrategy) String() string {
	return "walled_garden"
}

// DefaultHost implements Strategy.
func (s *WalledGardenStrategy) DefaultHost() string {
	return DefaultWalledGardenHost
}

// AdjustHost implements Strategy.
// It prepends http:// to host unless host already has an
// http:// or https:// prefix.
func (s *WalledGardenStrategy) AdjustHost(host string) string {
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host
	}
	return "http://" + host
}

// IsConnected implements Strategy.
//
// Request failures are reported to handler, the response status is
// deliberately not inspected.
func (s *WalledGardenStrategy) IsConnected(ctx context.Context, host string, port int, timeout time.Duration, handler ErrorHandler) bool {
	ctx, cancel := context.WithTimeoutCause(ctx, timeout, errors.New("ping request timed out"))
	defer cancel()

	target, err := probeURL(host, port)
	if err != nil {
		handler.HandleError(err, "Could not establish connection with WalledGardenStrategy")
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		handler.HandleError(err, "Could not establish connection with WalledGardenStrategy")
		return false
	}
	req.Close = true
	req.Header.Set("Connection", "close")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", "go-netwatch/"+pkg.GetVersion())

	resp, err := s.client.Do(req)
	if err != nil {
		handler.HandleError(err, "Could not establish connection with WalledGardenStrategy")
		return false
	}
	if err := resp.Body.Close(); err != nil {
		handler.HandleError(err, "Could not close the connection")
	}
	return true
}

// probeURL rebuilds host with the probe port, keeping scheme and path.
func probeURL(host string, port int) (string, error) {
	u, err := url.Parse(host)
	if err != nil {
		return "", err
	}
	u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(port))
	return u.String(), nil
}
