package clipboard

import "time"

// Indicator is the transient "copied" flag. Each Mark opens a fresh window,
// superseding any earlier one.
type Indicator struct {
	ResetAfter time.Duration
	until      time.Time
	generation int
}

// NewIndicator returns an indicator with the given window, or DefaultResetAfter.
func NewIndicator(resetAfter time.Duration) *Indicator {
	if resetAfter <= 0 {
		resetAfter = DefaultResetAfter
	}
	return &Indicator{ResetAfter: resetAfter}
}

// Mark starts or restarts the window and returns its generation. Timers that
// expire later can pass the generation to Expire so a stale timer does not
// clear a newer copy.
func (i *Indicator) Mark(now time.Time) int {
	window := i.ResetAfter
	if window <= 0 {
		window = DefaultResetAfter
	}
	i.until = now.Add(window)
	i.generation++
	return i.generation
}

// Active reports whether the window is open at now.
func (i *Indicator) Active(now time.Time) bool {
	return !i.until.IsZero() && now.Before(i.until)
}

// On reports whether the indicator is set, ignoring the clock. Used by
// event-driven callers that clear it through Expire.
func (i *Indicator) On() bool {
	return !i.until.IsZero()
}

// Expire clears the indicator if generation is still the latest mark.
func (i *Indicator) Expire(generation int) {
	if generation == i.generation {
		i.until = time.Time{}
	}
}

// Clear resets the indicator.
func (i *Indicator) Clear() {
	i.until = time.Time{}
}
