package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/yusing/go-netwatch/internal/common"
)

type ConnectivityMetrics struct {
	Status,
	ProbeLatency *Gauge
	ProbeTotal *Counter
}

var cm ConnectivityMetrics

const netwatchNamespace = "netwatch"

func GetConnectivityMetrics() *ConnectivityMetrics {
	return &cm
}

func (cm *ConnectivityMetrics) Unregister(l Labels) {
	cm.Status.Delete(l)
	cm.ProbeLatency.Delete(l)
	cm.ProbeTotal.Delete(l)
}

func init() {
	if !common.PrometheusEnabled {
		return
	}
	initConnectivityMetrics()
}

func initConnectivityMetrics() {
	lbls := []string{"strategy", "host"}
	partitionsHelp := ", partitioned by " + strings.Join(lbls, ", ")
	cm = ConnectivityMetrics{
		Status: NewGauge(prometheus.GaugeOpts{
			Namespace: netwatchNamespace,
			Name:      "connectivity_status",
			Help:      "Whether the internet is reachable, 1 for connected and 0 for disconnected" + partitionsHelp,
		}, lbls...),
		ProbeLatency: NewGauge(prometheus.GaugeOpts{
			Namespace: netwatchNamespace,
			Name:      "probe_latency_ms",
			Help:      "How long the last reachability probe took" + partitionsHelp,
		}, lbls...),
		ProbeTotal: NewCounter(prometheus.CounterOpts{
			Namespace: netwatchNamespace,
			Name:      "probe_total",
			Help:      "How many reachability probes were run" + partitionsHelp,
		}, lbls...),
	}
}
