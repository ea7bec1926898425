package netwatch

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/yusing/go-netwatch/internal/utils/strutils"
)

type JSONRepresentation struct {
	Name       string
	Config     *Config
	Status     Status
	Started    time.Time
	Uptime     time.Duration
	Latency    time.Duration
	LastOnline time.Time
}

func (jsonRepr *JSONRepresentation) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"name":          jsonRepr.Name,
		"config":        jsonRepr.Config,
		"status":        jsonRepr.Status.String(),
		"started":       jsonRepr.Started.Unix(),
		"startedStr":    strutils.FormatTime(jsonRepr.Started),
		"uptime":        jsonRepr.Uptime.Seconds(),
		"uptimeStr":     strutils.FormatDuration(jsonRepr.Uptime),
		"latency":       jsonRepr.Latency.Seconds(),
		"latencyStr":    strconv.Itoa(int(jsonRepr.Latency.Milliseconds())) + " ms",
		"lastOnline":    jsonRepr.LastOnline.Unix(),
		"lastOnlineStr": strutils.FormatLastSeen(jsonRepr.LastOnline),
	})
}
