package netwatch

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/yusing/go-netwatch/internal/common"
	"github.com/yusing/go-netwatch/internal/logging"
	"github.com/yusing/go-netwatch/internal/metrics"
	"github.com/yusing/go-netwatch/internal/task"
	"github.com/yusing/go-netwatch/internal/utils/atomic"
	"github.com/yusing/go-netwatch/internal/utils/strutils"
)

// Observer runs a Strategy periodically and streams connectivity changes.
type Observer struct {
	strategy Strategy
	cfg      Config

	status     atomic.Value[Status]
	lastResult atomic.Value[*ProbeResult]
	started    atomic.Value[bool]
	startTime  time.Time

	task *task.Task
}

var ErrAlreadyObserving = errors.New("already observing")

// NewObserver returns an Observer probing with the given strategy.
//
// A nil cfg uses DefaultConfig, an empty cfg.Host uses the strategy
// default host. The config is validated eagerly, no probe runs on error.
func NewObserver(strategy Strategy, cfg *Config) (*Observer, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	conf := *cfg
	if conf.Host == "" {
		conf.Host = strategy.DefaultHost()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	conf.Host = strategy.AdjustHost(conf.Host)

	o := &Observer{
		strategy:  strategy,
		cfg:       conf,
		startTime: time.Now(),
	}
	o.status.Store(StatusUnknown)
	return o, nil
}

// ObserveInternetConnectivity validates cfg, starts probing with the
// given strategy and returns the connectivity stream.
func ObserveInternetConnectivity(ctx context.Context, strategy Strategy, cfg *Config) (<-chan bool, error) {
	o, err := NewObserver(strategy, cfg)
	if err != nil {
		return nil, err
	}
	return o.Observe(ctx)
}

// Observe starts the probe loop and returns the connectivity stream.
//
// The first probe result is always emitted, later results only when they
// differ from the previous one. The stream is closed when ctx is canceled
// or Finish is called. Observe can be called only once per Observer.
func (o *Observer) Observe(ctx context.Context) (<-chan bool, error) {
	if o.started.Swap(true) {
		return nil, ErrAlreadyObserving
	}

	o.task = task.RootTask("netwatch."+o.strategy.String(), true)
	ch := make(chan bool)

	go o.observeLoop(ctx, ch)

	return ch, nil
}

// Finish implements task.TaskFinisher.
func (o *Observer) Finish(reason any) {
	if o.task != nil {
		o.task.Finish(reason)
	}
}

func (o *Observer) observeLoop(ctx context.Context, ch chan<- bool) {
	logger := logging.With().
		Str("strategy", o.strategy.String()).
		Str("host", o.cfg.Host).
		Logger()

	// finishing the task cancels ctx, interrupting an in-flight probe.
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-o.task.Context().Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	var lbls *metrics.ProbeMetricLabels
	if common.PrometheusEnabled {
		lbls = &metrics.ProbeMetricLabels{
			Strategy: o.strategy.String(),
			Host:     o.cfg.Host,
		}
	}

	defer func() {
		cancel()
		o.status.Store(StatusUnknown)
		if lbls != nil {
			metrics.GetConnectivityMetrics().Unregister(lbls)
		}
		close(ch)
		o.task.Finish(nil)
	}()

	if o.cfg.InitialDelay > 0 {
		delay := time.NewTimer(o.cfg.InitialDelay)
		select {
		case <-ctx.Done():
			delay.Stop()
			return
		case <-delay.C:
		}
	}

	if !o.probe(ctx, ch, &logger, lbls) {
		return
	}

	ticker := time.NewTicker(o.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !o.probe(ctx, ch, &logger, lbls) {
				return
			}
		}
	}
}

// probe runs a single probe and emits the result if it differs from the
// previous one. It reports false when the observer should stop.
func (o *Observer) probe(ctx context.Context, ch chan<- bool, logger *zerolog.Logger, lbls *metrics.ProbeMetricLabels) bool {
	start := time.Now()
	connected := o.strategy.IsConnected(ctx, o.cfg.Host, o.cfg.Port, o.cfg.Timeout, o.cfg.ErrorHandler)
	latency := time.Since(start)

	o.lastResult.Store(&ProbeResult{Connected: connected, Latency: latency})

	var status Status
	lastOnline := GetLastOnline(o.cfg.Host)
	if connected {
		status = StatusConnected
		updateLastOnline(o.cfg.Host)
	} else {
		status = StatusDisconnected
	}

	if lbls != nil {
		m := metrics.GetConnectivityMetrics()
		var v float64
		if connected {
			v = 1
		}
		m.Status.With(lbls).Set(v)
		m.ProbeLatency.With(lbls).Set(float64(latency.Milliseconds()))
		m.ProbeTotal.With(lbls).Inc()
	}

	if o.status.Swap(status) != status {
		if connected {
			ev := logger.Info()
			if !lastOnline.IsZero() {
				ev = ev.Str("downtime", strutils.FormatDuration(time.Since(lastOnline)))
			}
			ev.Msg("internet is up")
		} else {
			logger.Warn().
				Str("last_online", strutils.FormatLastSeen(lastOnline)).
				Msg("internet went down")
		}
		select {
		case ch <- connected:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// Status returns the connectivity status seen by the last probe,
// StatusUnknown before the first probe and after the observer stopped.
func (o *Observer) Status() Status {
	return o.status.Load()
}

// LastResult returns the outcome of the most recent probe, or nil before
// the first probe completes.
func (o *Observer) LastResult() *ProbeResult {
	return o.lastResult.Load()
}

func (o *Observer) Latency() time.Duration {
	res := o.lastResult.Load()
	if res == nil {
		return 0
	}
	return res.Latency
}

func (o *Observer) Uptime() time.Duration {
	return time.Since(o.startTime)
}

// Name returns the name of the probing strategy.
func (o *Observer) Name() string {
	return o.strategy.String()
}

// String implements fmt.Stringer.
func (o *Observer) String() string {
	return o.Name()
}

// MarshalJSON implements json.Marshaler.
func (o *Observer) MarshalJSON() ([]byte, error) {
	return (&JSONRepresentation{
		Name:       o.Name(),
		Config:     &o.cfg,
		Status:     o.status.Load(),
		Started:    o.startTime,
		Uptime:     o.Uptime(),
		Latency:    o.Latency(),
		LastOnline: GetLastOnline(o.cfg.Host),
	}).MarshalJSON()
}
