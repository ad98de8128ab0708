// Package anim maps the stopwatch count to a smoothly animated ring position
// and a display color pair.
//
// The animator never jumps the rendered arc directly to its target. Every
// count change starts a short ease-out tween from the currently rendered
// fraction toward (count mod 60)/60, with one exception: when the elapsed
// minute rolls over while counting up, the fraction snaps to zero first so
// the ring reads as completing a revolution and restarting instead of
// winding backward. The snap is suppressed while counting down, where the
// minute index is non-monotonic and the heuristic does not apply.
package anim

import (
	"fmt"
	"time"
)

// DefaultTweenDuration is how long the arc takes to settle on a new target.
// Short enough to finish well inside the one second between ticks.
const DefaultTweenDuration = 300 * time.Millisecond

// Easing maps normalized elapsed time t in [0,1] to progress in [0,1].
type Easing func(t float64) float64

// EaseOutCubic decelerates monotonically toward the target.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Linear passes time through unchanged. Used by tests and as a fallback.
func Linear(t float64) float64 { return t }

// Tween interpolates a value from one position to another over a fixed
// duration. It is a plain value: copy it freely, query it with any clock.
type Tween struct {
	From, To float64
	Start    time.Time
	Duration time.Duration
	Ease     Easing
}

// Value returns the interpolated position at now and whether the tween has
// completed. Before Start it returns From; at or after Start+Duration it
// returns To. A tween with nowhere to go is complete from the outset, so
// it never holds a frame loop open.
func (tw Tween) Value(now time.Time) (float64, bool) {
	if tw.Duration <= 0 || tw.From == tw.To || !now.Before(tw.Start.Add(tw.Duration)) {
		return tw.To, true
	}
	if now.Before(tw.Start) {
		return tw.From, false
	}
	t := float64(now.Sub(tw.Start)) / float64(tw.Duration)
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return tw.From + (tw.To-tw.From)*ease(t), false
}

// Palette is a two-color gradient, hex-encoded ("#rrggbb"), blended across
// the rendered arc.
type Palette struct {
	Name  string
	Start string
	End   string
}

// Animator derives the rendered arc fraction and color pair from the
// engine's count. It keeps the last observed minute index to detect
// rollovers; any number of rollovers between two observations produces
// exactly one snap.
type Animator struct {
	palettes []Palette
	alert    Palette
	duration time.Duration

	tween        Tween
	lastMinute   int
	lastCount    int
	countingDown bool
	observed     bool
}

// New returns an animator cycling through palettes by elapsed minute and
// using alert while counting down. palettes must be non-empty.
func New(palettes []Palette, alert Palette) *Animator {
	return &Animator{
		palettes: palettes,
		alert:    alert,
		duration: DefaultTweenDuration,
	}
}

// SetTweenDuration overrides the settle time. Non-positive durations make
// every observation land instantly; tests use this to cut through timing.
func (a *Animator) SetTweenDuration(d time.Duration) {
	a.duration = d
}

// Observe feeds the animator a new count. It applies the minute-rollover
// snap rule, then starts an ease-out tween from the currently rendered
// fraction toward (count mod 60)/60.
func (a *Animator) Observe(count int, countingDown bool, now time.Time) {
	minute := count / 60
	target := float64(count%60) / 60

	from, _ := a.tween.Value(now)
	if !a.observed {
		// First observation renders in place, no sweep from stale state.
		from = target
	} else if minute != a.lastMinute && !countingDown {
		// Ring completed a revolution: restart from zero instantly
		// rather than animating backward from near-full.
		from = 0
	}

	a.tween = Tween{
		From:     from,
		To:       target,
		Start:    now,
		Duration: a.duration,
		Ease:     EaseOutCubic,
	}
	a.lastMinute = minute
	a.lastCount = count
	a.countingDown = countingDown
	a.observed = true
}

// Fraction returns the animated angle fraction in [0,1] at now.
func (a *Animator) Fraction(now time.Time) float64 {
	v, _ := a.tween.Value(now)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Animating reports whether a tween is still in flight at now. The frame
// driver keeps scheduling redraws only while this is true.
func (a *Animator) Animating(now time.Time) bool {
	_, done := a.tween.Value(now)
	return !done
}

// Colors returns the palette for the last observed state: the alert palette
// while counting down, otherwise the palette selected by elapsed minute.
func (a *Animator) Colors() Palette {
	if a.countingDown {
		return a.alert
	}
	return a.palettes[(a.lastCount/60)%len(a.palettes)]
}

// FormatTime renders a count as MM:SS, zero-padded, with minutes unbounded.
func FormatTime(count int) string {
	if count < 0 {
		count = 0
	}
	return fmt.Sprintf("%02d:%02d", count/60, count%60)
}
