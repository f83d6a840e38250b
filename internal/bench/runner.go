package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/yndnr/omap-go/internal/telemetry/logger"
	"github.com/yndnr/omap-go/internal/telemetry/metric"
	"github.com/yndnr/omap-go/pkg/omap"
)

// PhaseResult reports one workload phase.
type PhaseResult struct {
	Phase     string
	Ops       int
	Duration  time.Duration
	OpsPerSec float64
}

// Result reports a full benchmark run.
type Result struct {
	Phases []PhaseResult

	// ForwardDigest and BackwardDigest are the order digests observed
	// by the traversal phase.
	ForwardDigest  uint64
	BackwardDigest uint64

	// ExpectedForward and ExpectedBackward are the digests of the keys
	// that survived the delete phase, in insertion order and its
	// reverse.
	ExpectedForward  uint64
	ExpectedBackward uint64

	// FinalLen is the container length after all phases.
	FinalLen int

	// OrderVerified reports whether the observed digests and length
	// matched the expectations. Only meaningful when verification is
	// enabled.
	OrderVerified bool
}

// Runner drives an ordered map through the configured workload.
type Runner struct {
	cfg     Config
	log     logger.Logger
	metrics *metric.Registry
	limiter *rate.Limiter
}

// NewRunner creates a runner. A nil log falls back to the default
// logger; a nil registry disables metrics collection.
func NewRunner(cfg Config, log logger.Logger, metrics *metric.Registry) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench config: %w", err)
	}
	if log == nil {
		log = logger.Default()
	}

	r := &Runner{
		cfg:     cfg,
		log:     log.With("component", "bench"),
		metrics: metrics,
	}
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return r, nil
}

// Run executes all workload phases and returns the collected results.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	m := omap.New[string, uint64]()
	gen := NewKeyGen(r.cfg.Seed)
	res := &Result{}

	r.log.Info("benchmark starting",
		"entries", r.cfg.Entries,
		"update_ratio", r.cfg.UpdateRatio,
		"delete_ratio", r.cfg.DeleteRatio,
		"rate_limit", r.cfg.RateLimit,
	)

	keys := gen.Keys(r.cfg.Entries)

	if err := r.fill(ctx, m, keys, res); err != nil {
		return nil, err
	}
	if err := r.update(ctx, m, keys, res); err != nil {
		return nil, err
	}
	remaining, err := r.deletePhase(ctx, m, keys, res)
	if err != nil {
		return nil, err
	}
	r.iterate(m, res)

	res.FinalLen = m.Len()
	res.ExpectedForward = DigestOf(remaining)
	res.ExpectedBackward = DigestOfReverse(remaining)

	if r.cfg.Verify {
		res.OrderVerified = res.ForwardDigest == res.ExpectedForward &&
			res.BackwardDigest == res.ExpectedBackward &&
			res.FinalLen == len(remaining)
		if !res.OrderVerified {
			r.log.Error("order verification failed",
				"forward", res.ForwardDigest,
				"expected_forward", res.ExpectedForward,
				"backward", res.BackwardDigest,
				"expected_backward", res.ExpectedBackward,
				"len", res.FinalLen,
				"expected_len", len(remaining),
			)
			return res, fmt.Errorf("order verification failed: length %d, expected %d", res.FinalLen, len(remaining))
		}
		r.log.Info("order verified", "len", res.FinalLen)
	}

	return res, nil
}

// fill inserts every key, establishing the insertion order.
func (r *Runner) fill(ctx context.Context, m *omap.Map[string, uint64], keys []string, res *Result) error {
	start := time.Now()
	for i, k := range keys {
		if err := r.pace(ctx); err != nil {
			return err
		}
		m.Set(k, uint64(i))
	}
	r.finishPhase(res, "fill", len(keys), start, "set")
	return nil
}

// update re-sets a spread of existing keys; their positions must not
// change, which the traversal phase verifies via digests.
func (r *Runner) update(ctx context.Context, m *omap.Map[string, uint64], keys []string, res *Result) error {
	count := int(r.cfg.UpdateRatio * float64(len(keys)))
	if count == 0 {
		return nil
	}
	stride := len(keys) / count

	start := time.Now()
	ops := 0
	for i := 0; i < len(keys) && ops < count; i += stride {
		if err := r.pace(ctx); err != nil {
			return err
		}
		m.Set(keys[i], uint64(i)+1<<32)
		ops++
	}
	r.finishPhase(res, "update", ops, start, "set")
	return nil
}

// deletePhase removes a spread of keys, always including the current
// front and back, and returns the keys still present in order.
func (r *Runner) deletePhase(ctx context.Context, m *omap.Map[string, uint64], keys []string, res *Result) ([]string, error) {
	count := int(r.cfg.DeleteRatio * float64(len(keys)))
	deleted := make(map[string]bool, count+2)

	start := time.Now()
	ops := 0

	if count > 0 {
		// Ends first so front/back repair is always exercised.
		for _, k := range []string{keys[0], keys[len(keys)-1]} {
			if err := r.pace(ctx); err != nil {
				return nil, err
			}
			if m.Delete(k) {
				deleted[k] = true
				ops++
			}
		}

		stride := len(keys) / count
		for i := stride; i < len(keys) && ops < count; i += stride {
			if err := r.pace(ctx); err != nil {
				return nil, err
			}
			k := keys[i]
			if deleted[k] {
				continue
			}
			m.Delete(k)
			deleted[k] = true
			ops++
		}
	}
	r.finishPhase(res, "delete", ops, start, "delete")

	remaining := make([]string, 0, len(keys)-len(deleted))
	for _, k := range keys {
		if !deleted[k] {
			remaining = append(remaining, k)
		}
	}
	return remaining, nil
}

// iterate runs the key-only traversals in both directions, folding the
// visited keys into order digests.
func (r *Runner) iterate(m *omap.Map[string, uint64], res *Result) {
	start := time.Now()
	fwd := NewOrderDigest()
	for k := range m.IterKeys() {
		fwd.Add(k)
	}
	fwdDur := time.Since(start)
	res.ForwardDigest = fwd.Sum()
	r.observeIteration("forward", fwdDur)
	r.addPhase(res, "iterate-forward", fwd.Count(), fwdDur)

	start = time.Now()
	bwd := NewOrderDigest()
	for k := range m.RevIterKeys() {
		bwd.Add(k)
	}
	bwdDur := time.Since(start)
	res.BackwardDigest = bwd.Sum()
	r.observeIteration("backward", bwdDur)
	r.addPhase(res, "iterate-backward", bwd.Count(), bwdDur)

	if r.metrics != nil {
		r.metrics.MapLength.Set(float64(m.Len()))
	}
}

// pace blocks until the rate limiter admits the next op.
func (r *Runner) pace(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

func (r *Runner) finishPhase(res *Result, phase string, ops int, start time.Time, op string) {
	dur := time.Since(start)
	if r.metrics != nil {
		r.metrics.OpsTotal.WithLabelValues(op).Add(float64(ops))
	}
	r.addPhase(res, phase, ops, dur)
}

func (r *Runner) addPhase(res *Result, phase string, ops int, dur time.Duration) {
	pr := PhaseResult{
		Phase:    phase,
		Ops:      ops,
		Duration: dur,
	}
	if dur > 0 {
		pr.OpsPerSec = float64(ops) / dur.Seconds()
	}
	res.Phases = append(res.Phases, pr)

	r.log.Info("phase complete",
		"phase", phase,
		"ops", ops,
		"duration", dur.String(),
	)
}

func (r *Runner) observeIteration(direction string, dur time.Duration) {
	if r.metrics != nil {
		r.metrics.IterationSeconds.WithLabelValues(direction).Observe(dur.Seconds())
	}
}
