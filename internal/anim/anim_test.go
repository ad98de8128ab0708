package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPalettes = []Palette{
		{Name: "ocean", Start: "#7aa2f7", End: "#9ece6a"},
		{Name: "dusk", Start: "#bb9af7", End: "#7dcfff"},
	}
	testAlert = Palette{Name: "alert", Start: "#f7768e", End: "#e0af68"}
)

func newTestAnimator() *Animator {
	return New(testPalettes, testAlert)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "00:00", FormatTime(0))
	assert.Equal(t, "01:05", FormatTime(65))
	assert.Equal(t, "60:00", FormatTime(3600))
	assert.Equal(t, "00:59", FormatTime(59))
	assert.Equal(t, "00:00", FormatTime(-7), "negative counts clamp to zero")
}

func TestEaseOutCubic(t *testing.T) {
	assert.InDelta(t, 0, EaseOutCubic(0), 1e-9)
	assert.InDelta(t, 1, EaseOutCubic(1), 1e-9)

	// Monotonically decelerating: increasing, with shrinking increments.
	prev, prevStep := 0.0, 1.0
	for i := 1; i <= 10; i++ {
		v := EaseOutCubic(float64(i) / 10)
		step := v - prev
		assert.Greater(t, v, prev)
		assert.LessOrEqual(t, step, prevStep+1e-9)
		prev, prevStep = v, step
	}
}

func TestTweenValue(t *testing.T) {
	start := time.Now()
	tw := Tween{From: 0, To: 1, Start: start, Duration: 100 * time.Millisecond, Ease: Linear}

	v, done := tw.Value(start)
	assert.InDelta(t, 0, v, 1e-9)
	assert.False(t, done)

	v, done = tw.Value(start.Add(50 * time.Millisecond))
	assert.InDelta(t, 0.5, v, 1e-9)
	assert.False(t, done)

	v, done = tw.Value(start.Add(100 * time.Millisecond))
	assert.InDelta(t, 1, v, 1e-9)
	assert.True(t, done)

	// Zero duration lands immediately.
	v, done = Tween{From: 0, To: 0.4}.Value(start)
	assert.InDelta(t, 0.4, v, 1e-9)
	assert.True(t, done)

	// A tween with no distance to cover is complete from the start.
	still := Tween{From: 0.3, To: 0.3, Start: start, Duration: 100 * time.Millisecond, Ease: Linear}
	v, done = still.Value(start)
	assert.InDelta(t, 0.3, v, 1e-9)
	assert.True(t, done, "stationary tween must not report as animating")
}

func TestObserveEasesTowardTarget(t *testing.T) {
	a := newTestAnimator()
	now := time.Now()

	a.Observe(0, false, now)
	a.Observe(15, false, now)
	assert.True(t, a.Animating(now))

	mid := a.Fraction(now.Add(DefaultTweenDuration / 2))
	end := a.Fraction(now.Add(DefaultTweenDuration))
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 0.25)
	assert.InDelta(t, 0.25, end, 1e-9)
	assert.False(t, a.Animating(now.Add(DefaultTweenDuration)))
}

func TestMinuteRolloverSnapsToZero(t *testing.T) {
	a := newTestAnimator()
	now := time.Now()

	a.Observe(59, false, now)
	now = now.Add(time.Second)
	require.InDelta(t, float64(59)/60, a.Fraction(now), 1e-9)

	// 59 -> 60 while running: snap to zero, then ease toward 0.
	a.Observe(60, false, now)
	assert.InDelta(t, 0, a.Fraction(now), 1e-9,
		"arc must restart from zero, not wind backward from near-full")
	assert.InDelta(t, 0, a.Fraction(now.Add(DefaultTweenDuration)), 1e-9)
}

func TestMultipleRolloversSnapOnce(t *testing.T) {
	a := newTestAnimator()
	now := time.Now()

	a.Observe(59, false, now)
	now = now.Add(time.Second)

	// Two rollovers between observations still reads as one restart.
	a.Observe(130, false, now)
	assert.InDelta(t, 0, a.tween.From, 1e-9)
	assert.InDelta(t, float64(10)/60, a.tween.To, 1e-9)
}

func TestSnapSuppressedWhileCountingDown(t *testing.T) {
	a := newTestAnimator()
	now := time.Now()

	a.Observe(61, false, now)
	now = now.Add(DefaultTweenDuration)
	require.InDelta(t, float64(1)/60, a.Fraction(now), 1e-9)

	// 61 -> 59 counting down crosses the minute boundary, but the arc
	// eases back instead of snapping.
	a.Observe(59, true, now)
	assert.InDelta(t, float64(1)/60, a.tween.From, 1e-9)
	assert.InDelta(t, float64(59)/60, a.tween.To, 1e-9)
}

func TestFirstObservationDoesNotSweep(t *testing.T) {
	a := newTestAnimator()
	now := time.Now()

	a.Observe(45, false, now)
	assert.InDelta(t, float64(45)/60, a.Fraction(now), 1e-9)
	assert.False(t, a.Animating(now))
}

func TestFractionStaysInRange(t *testing.T) {
	a := newTestAnimator()
	now := time.Now()
	for count := 0; count < 200; count += 7 {
		a.Observe(count, count%3 == 0, now)
		for _, dt := range []time.Duration{0, 50 * time.Millisecond, DefaultTweenDuration, time.Second} {
			f := a.Fraction(now.Add(dt))
			assert.GreaterOrEqual(t, f, 0.0)
			assert.LessOrEqual(t, f, 1.0)
		}
		now = now.Add(time.Second)
	}
}

func TestPaletteSelection(t *testing.T) {
	a := newTestAnimator()
	now := time.Now()

	a.Observe(10, false, now)
	assert.Equal(t, "ocean", a.Colors().Name)

	// Second minute cycles to the next palette, fourth wraps around.
	a.Observe(70, false, now)
	assert.Equal(t, "dusk", a.Colors().Name)
	a.Observe(130, false, now)
	assert.Equal(t, "ocean", a.Colors().Name)

	// Counting down always uses the alert palette.
	a.Observe(70, true, now)
	assert.Equal(t, "alert", a.Colors().Name)
}

func TestSetTweenDurationInstant(t *testing.T) {
	a := newTestAnimator()
	a.SetTweenDuration(0)
	now := time.Now()

	a.Observe(0, false, now)
	a.Observe(30, false, now)
	assert.InDelta(t, 0.5, a.Fraction(now), 1e-9)
	assert.False(t, a.Animating(now))
}
