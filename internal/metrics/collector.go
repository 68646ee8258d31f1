package metrics

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// SystemCollector periodically refreshes uptime, goroutine and memory gauges.
type SystemCollector struct {
	metrics   *Metrics
	logger    *zap.Logger
	startTime time.Time
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func NewSystemCollector(metrics *Metrics, logger *zap.Logger) *SystemCollector {
	return &SystemCollector{
		metrics:   metrics,
		logger:    logger,
		startTime: time.Now(),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

func (sc *SystemCollector) Start(interval time.Duration) {
	go sc.collectLoop(interval)
	sc.logger.Info("System metrics collector started", zap.Duration("interval", interval))
}

// Stop must be called at most once, after Start.
func (sc *SystemCollector) Stop() {
	close(sc.stopCh)
	<-sc.doneCh
	sc.logger.Info("System metrics collector stopped")
}

func (sc *SystemCollector) collectLoop(interval time.Duration) {
	defer close(sc.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sc.collect()
	for {
		select {
		case <-ticker.C:
			sc.collect()
		case <-sc.stopCh:
			return
		}
	}
}

func (sc *SystemCollector) collect() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	sc.metrics.UpdateSystemMetrics(time.Since(sc.startTime), &memStats)
}
