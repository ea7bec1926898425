package netwatch

import (
	"time"

	F "github.com/yusing/go-netwatch/internal/utils/functional"
)

var lastOnlineMap = F.NewMapOf[string, time.Time]()

func setLastOnline(host string, lastOnline time.Time) {
	lastOnlineMap.Store(host, lastOnline)
}

func updateLastOnline(host string) {
	setLastOnline(host, time.Now())
}

// GetLastOnline returns the last time a probe against host succeeded,
// or the zero time if it never did.
func GetLastOnline(host string) time.Time {
	lastOnline, _ := lastOnlineMap.Load(host)
	return lastOnline
}
