package metrics

import "github.com/prometheus/client_golang/prometheus"

type ProbeMetricLabels struct {
	Strategy, Host string
}

func (lbl *ProbeMetricLabels) toPromLabels() prometheus.Labels {
	return prometheus.Labels{
		"strategy": lbl.Strategy,
		"host":     lbl.Host,
	}
}
