package netwatch

import (
	"encoding/json"
	"testing"

	. "github.com/yusing/go-netwatch/internal/utils/testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusConnected, "connected"},
		{StatusDisconnected, "disconnected"},
		{StatusUnknown, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			ExpectEqual(t, tt.status.String(), tt.expected)

			data, err := json.Marshal(tt.status)
			ExpectNoError(t, err)
			ExpectEqual(t, string(data), `"`+tt.expected+`"`)
		})
	}
}

func TestStatusGoodBad(t *testing.T) {
	tests := []struct {
		status Status
		good   bool
	}{
		{StatusConnected, true},
		{StatusDisconnected, false},
		{StatusUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			ExpectEqual(t, tt.status.Good(), tt.good)
			ExpectEqual(t, tt.status.Bad(), !tt.good)
		})
	}
}
