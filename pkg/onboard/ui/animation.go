package ui

import "time"

// tween is a value animated between two points over a fixed duration.
type tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
}

func (t *tween) animate(now time.Time, to float64, duration time.Duration) {
	t.from = t.value(now)
	t.to = to
	t.start = now
	t.duration = duration
}

// jump sets the value with no animation.
func (t *tween) jump(v float64) {
	t.from, t.to = v, v
	t.duration = 0
}

func (t *tween) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p >= 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

func (t *tween) value(now time.Time) float64 {
	return t.from + (t.to-t.from)*easeOut(t.progress(now))
}

func (t *tween) done(now time.Time) bool {
	return t.progress(now) >= 1
}

func easeOut(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}
