package trace

import "errors"

// MultiTracer fans events out; each target stamps its own Seq.
type MultiTracer struct {
	targets []Tracer
	level   Level
}

func NewMultiTracer(level Level, targets ...Tracer) *MultiTracer {
	return &MultiTracer{targets: targets, level: level}
}

func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.targets {
		cp := *ev
		tr.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error { return t.each(Tracer.Flush) }
func (t *MultiTracer) Close() error { return t.each(Tracer.Close) }

func (t *MultiTracer) each(fn func(Tracer) error) error {
	errs := make([]error, 0, len(t.targets))
	for _, tr := range t.targets {
		errs = append(errs, fn(tr))
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

// Ring returns the first ring target, or nil.
func (t *MultiTracer) Ring() *RingTracer {
	for _, tr := range t.targets {
		if r, ok := tr.(*RingTracer); ok {
			return r
		}
	}
	return nil
}
