package netwatch

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yusing/go-netwatch/pkg"

	. "github.com/yusing/go-netwatch/internal/utils/testing"
)

func TestWalledGardenAdjustHost(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{"NoScheme", "clients3.google.com/generate_204", "http://clients3.google.com/generate_204"},
		{"HTTP", "http://clients3.google.com/generate_204", "http://clients3.google.com/generate_204"},
		{"HTTPS", "https://clients3.google.com/generate_204", "https://clients3.google.com/generate_204"},
	}
	s := NewWalledGardenStrategy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ExpectEqual(t, s.AdjustHost(tt.host), tt.expected)
		})
	}
}

func serverHostPort(t *testing.T, server *httptest.Server) (string, int) {
	t.Helper()
	u, err := url.Parse(server.URL)
	ExpectNoError(t, err)
	port, err := strconv.Atoi(u.Port())
	ExpectNoError(t, err)
	return "http://" + u.Hostname(), port
}

func TestWalledGardenIsConnected(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"NoContent", http.StatusNoContent},
		{"NotFound", http.StatusNotFound},
		{"InternalServerError", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			}))
			defer server.Close()

			host, port := serverHostPort(t, server)
			handler := &recordingHandler{}
			ExpectTrue(t, NewWalledGardenStrategy().IsConnected(context.Background(), host, port, time.Second, handler))
			ExpectEqual(t, handler.count(), 0)
		})
	}
}

func TestWalledGardenRequestHeaders(t *testing.T) {
	var userAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent.Store(r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	host, port := serverHostPort(t, server)
	handler := &recordingHandler{}
	ExpectTrue(t, NewWalledGardenStrategy().IsConnected(context.Background(), host, port, time.Second, handler))
	ExpectEqual(t, userAgent.Load().(string), "go-netwatch/"+pkg.GetVersion())
}

func TestWalledGardenRedirectNotFollowed(t *testing.T) {
	var followed atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/redirected" {
			followed.Store(true)
			return
		}
		http.Redirect(w, r, "/redirected", http.StatusFound)
	}))
	defer server.Close()

	host, port := serverHostPort(t, server)
	handler := &recordingHandler{}
	ExpectTrue(t, NewWalledGardenStrategy().IsConnected(context.Background(), host, port, time.Second, handler))
	ExpectFalse(t, followed.Load())
	ExpectEqual(t, handler.count(), 0)
}

func TestWalledGardenConnectionError(t *testing.T) {
	l, err := net.Listen("tcp", "localhost:0")
	ExpectNoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	ExpectNoError(t, l.Close())

	handler := &recordingHandler{}
	ExpectFalse(t, NewWalledGardenStrategy().IsConnected(context.Background(), "http://localhost", port, time.Second, handler))
	ExpectEqual(t, handler.count(), 1)
	ExpectEqual(t, handler.lastMsg(), "Could not establish connection with WalledGardenStrategy")
}

func TestWalledGardenInvalidHost(t *testing.T) {
	handler := &recordingHandler{}
	ExpectFalse(t, NewWalledGardenStrategy().IsConnected(context.Background(), "http://bad host", 80, time.Second, handler))
	ExpectEqual(t, handler.count(), 1)
	ExpectEqual(t, handler.lastMsg(), "Could not establish connection with WalledGardenStrategy")
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

type failingCloseBody struct{}

func (failingCloseBody) Read([]byte) (int, error) { return 0, io.EOF }
func (failingCloseBody) Close() error             { return errors.New("close failed") }

func TestWalledGardenBodyCloseErrorReported(t *testing.T) {
	s := &WalledGardenStrategy{client: &http.Client{
		Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusNoContent,
				Body:       failingCloseBody{},
				Request:    r,
			}, nil
		}),
	}}

	handler := &recordingHandler{}
	ExpectTrue(t, s.IsConnected(context.Background(), "http://clients3.google.com/generate_204", 80, time.Second, handler))
	ExpectEqual(t, handler.count(), 1)
	ExpectEqual(t, handler.lastMsg(), "Could not close the connection")
}

func TestWalledGardenDefaultHost(t *testing.T) {
	ExpectEqual(t, NewWalledGardenStrategy().DefaultHost(), DefaultWalledGardenHost)
}
