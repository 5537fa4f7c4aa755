package dash

import (
	"bufio"
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/barokit/baro/internal/logger"
)

// DefaultInterval is the pause between consuming input lines.
const DefaultInterval = time.Second

// Ingestor feeds the router from a line-oriented reader on a fixed cadence:
// it waits one interval, then consumes the next available line. Input
// arriving faster than the interval is rate-limited to one line per tick,
// which keeps bursty producers from flooding the charts.
type Ingestor struct {
	router   *Router
	in       io.Reader
	interval time.Duration
	log      logger.Logger

	lines atomic.Int64
	done  chan struct{}
	once  sync.Once
}

// NewIngestor creates an ingestor reading from in. A non-positive interval
// falls back to DefaultInterval.
func NewIngestor(router *Router, in io.Reader, interval time.Duration) *Ingestor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ingestor{
		router:   router,
		in:       in,
		interval: interval,
		log:      logger.Default(),
		done:     make(chan struct{}),
	}
}

// SetLogger replaces the logger used for read diagnostics.
func (ig *Ingestor) SetLogger(l logger.Logger) {
	if l != nil {
		ig.log = l
	}
}

// Start launches the read loop in a goroutine. Cancelling ctx stops the
// loop between cycles; a read already blocked on a quiet source only
// returns once the input closes, so shutdown latency is bounded by the
// producer, not by us.
func (ig *Ingestor) Start(ctx context.Context) {
	ig.once.Do(func() {
		go ig.run(ctx)
	})
}

// Done is closed once the loop has stopped, whether by cancellation, end of
// input or a read error.
func (ig *Ingestor) Done() <-chan struct{} {
	return ig.done
}

// Lines returns how many input lines have been consumed so far.
func (ig *Ingestor) Lines() int64 {
	return ig.lines.Load()
}

func (ig *Ingestor) run(ctx context.Context) {
	defer close(ig.done)

	scanner := bufio.NewScanner(ig.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(ig.interval):
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				ig.log.Error("input read failed: %v", err)
			} else {
				ig.log.Info("input closed after %d lines", ig.lines.Load())
			}
			return
		}

		ig.router.Ingest(scanner.Text())
		ig.lines.Add(1)
	}
}
