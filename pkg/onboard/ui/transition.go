package ui

import (
	"time"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/router"
	"github.com/veandco/go-sdl2/sdl"
)

type slide struct {
	from, to page
	dir      router.Direction
	start    time.Time
	done     func()
}

// SlideTransitioner slides pages horizontally. It is driven by the frame
// loop: Update finishes a slide and Draw renders either the slide or the
// current page.
type SlideTransitioner struct {
	duration time.Duration
	active   *slide
}

func NewSlideTransitioner(duration time.Duration) *SlideTransitioner {
	if duration <= 0 {
		duration = constants.DefaultPageTransition
	}
	return &SlideTransitioner{duration: duration}
}

func (t *SlideTransitioner) Transition(from, to router.View, dir router.Direction, animated bool, done func()) {
	t.finish()

	fromPage, okFrom := from.(page)
	toPage, okTo := to.(page)
	if !animated || !okFrom || !okTo {
		done()
		return
	}

	t.active = &slide{from: fromPage, to: toPage, dir: dir, start: time.Now(), done: done}
}

// Busy reports whether a slide is on screen.
func (t *SlideTransitioner) Busy() bool {
	return t.active != nil
}

func (t *SlideTransitioner) Update(now time.Time) {
	if t.active != nil && t.progress(now) >= 1 {
		t.finish()
	}
}

func (t *SlideTransitioner) finish() {
	if t.active == nil {
		return
	}
	done := t.active.done
	t.active = nil
	done()
}

func (t *SlideTransitioner) progress(now time.Time) float64 {
	p := float64(now.Sub(t.active.start)) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

func (t *SlideTransitioner) Draw(renderer *sdl.Renderer, area sdl.Rect, current page, now time.Time) {
	if t.active == nil {
		if current != nil {
			current.draw(renderer, area)
		}
		return
	}

	p := easeOut(t.progress(now))
	sign := float64(1)
	if t.active.dir == router.DirectionBackward {
		sign = -1
	}

	width := float64(area.W)
	fromArea, toArea := area, area
	fromArea.X += int32(-sign * p * width)
	toArea.X += int32(sign * (1 - p) * width)

	t.active.from.draw(renderer, fromArea)
	t.active.to.draw(renderer, toArea)
}
